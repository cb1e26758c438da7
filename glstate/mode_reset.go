// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build glstate_reset

package glstate

// Mode is the exit policy compiled into this program.
const Mode = Reset
