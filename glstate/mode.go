// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

//go:generate core generate

// Modes are the exit policies for scoped state.
type Modes int32 //enums:enum

const (
	// Restore queries the previous value on entry and applies it
	// again on exit.
	Restore Modes = iota

	// Reset applies a fixed neutral value on exit, without querying.
	Reset
)
