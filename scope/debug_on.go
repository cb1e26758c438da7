// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package scope

// Debug is whether frames are traced with slog and bindings check for
// context errors on exit. It is set by the debug build tag.
const Debug = true
