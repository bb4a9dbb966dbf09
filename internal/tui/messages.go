package tui

type cipherDoneMsg struct {
	outputPath string
	format     string
	err        error
}

type keyDerivedMsg struct {
	key string
	err error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
