// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

// frames counts the frames entered by the process, for [NewName].
var frames atomic.Uint64

// NewName returns a name for a new frame of the given kind that is
// unique within the process, of the form kind#N.
func NewName(kind string) string {
	return frameName(kind, frames.Add(1))
}

func frameName(kind string, id uint64) string {
	return kind + "#" + strconv.FormatUint(id, 10)
}

// Frame is one entered scope: the value captured by its enter action,
// and the exit action still to run. A Frame must not outlive the block
// that entered it.
type Frame[T any] struct {
	kind  string
	id    uint64
	value T
	exit  func(T)
	done  bool
}

// Enter runs enter and returns a frame holding its result. Calling
// [Frame.Exit] on the frame runs exit with that result. If enter
// panics, no frame is returned and exit never runs.
func Enter[T any](kind string, enter func() T, exit func(T)) *Frame[T] {
	f := &Frame[T]{kind: kind, id: frames.Add(1), exit: exit}
	if Debug {
		slog.Debug("scope enter", "frame", f.Name())
	}
	f.value = enter()
	return f
}

// Exit runs the exit action of the frame. Only the first call has an
// effect, so Exit can be both deferred and called explicitly.
func (f *Frame[T]) Exit() {
	if f.done {
		return
	}
	f.done = true
	f.exit(f.value)
	if Debug {
		slog.Debug("scope exit", "frame", f.Name())
	}
}

// Name returns the unique name of the frame (see [NewName]).
func (f *Frame[T]) Name() string {
	return frameName(f.kind, f.id)
}

// Value returns the value captured by the enter action.
func (f *Frame[T]) Value() T {
	return f.value
}

// With runs enter, then body, then exit with the value returned by
// enter. exit runs exactly once, including when body panics.
func With[T any](kind string, enter func() T, exit func(T), body func()) {
	f := Enter(kind, enter, exit)
	defer f.Exit()
	body()
}

// Do is the plain form of [With], for scopes whose exit action does not
// depend on anything captured on entry.
func Do(kind string, enter, exit, body func()) {
	With(kind, func() struct{} {
		enter()
		return struct{}{}
	}, func(struct{}) {
		exit()
	}, body)
}
