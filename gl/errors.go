// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"slices"
)

// Error is an error flag reported by [Context.GetError], together
// with the operation after which it was observed.
type Error struct {
	Code Enum
	Op   string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("gl: %v", e.Code)
	}
	return fmt.Sprintf("gl: %v after %s", e.Code, e.Op)
}

// ErrorKeeper is implemented by contexts that can take error flags
// back after they were read with [Context.GetError], so that a
// later GetError by the caller still sees them.
type ErrorKeeper interface {
	KeepErrors(codes []Enum)
}

// PeekErrors reads the pending error flags of c. If c is an
// [ErrorKeeper] the flags are handed back, otherwise they are
// cleared. A context records at most one flag per error kind, so
// this terminates after a few calls.
func PeekErrors(c Context) []Enum {
	var codes []Enum
	for range 8 {
		code := c.GetError()
		if code == NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if k, ok := c.(ErrorKeeper); ok && len(codes) > 0 {
		k.KeepErrors(codes)
	}
	return codes
}

// CheckError peeks the error flags of c with [PeekErrors] and returns
// the first one not in before as an [*Error], or nil if there is
// none. Passing the flags seen at the start of op keeps errors raised
// earlier from being reported against it.
func CheckError(c Context, op string, before ...Enum) error {
	for _, code := range PeekErrors(c) {
		if !slices.Contains(before, code) {
			return &Error{Code: code, Op: op}
		}
	}
	return nil
}
