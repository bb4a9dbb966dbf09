// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vyshusym

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the server adapter into a single process
// lifecycle.
package client
