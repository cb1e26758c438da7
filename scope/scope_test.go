// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scope

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder []string

func (r *recorder) add(s string) func() {
	return func() { *r = append(*r, s) }
}

func TestDoOrder(t *testing.T) {
	var r recorder
	Do("test", r.add("enter"), r.add("exit"), r.add("body"))
	assert.Equal(t, recorder{"enter", "body", "exit"}, r)
}

func TestWithValue(t *testing.T) {
	state := 3
	With("test", func() int {
		old := state
		state = 9
		return old
	}, func(old int) {
		state = old
	}, func() {
		assert.Equal(t, 9, state)
		state = 42
	})
	assert.Equal(t, 3, state)
}

func TestNestedExitOrder(t *testing.T) {
	var r recorder
	Do("outer", r.add("enter A"), r.add("exit A"), func() {
		Do("inner", r.add("enter B"), r.add("exit B"), r.add("body"))
	})
	assert.Equal(t, recorder{"enter A", "enter B", "body", "exit B", "exit A"}, r)
}

func TestEarlyReturn(t *testing.T) {
	var r recorder
	for i := range 3 {
		Do("loop", r.add("enter"), r.add("exit"), func() {
			if i == 1 {
				return
			}
			r.add("body")()
		})
	}
	assert.Equal(t, recorder{"enter", "body", "exit", "enter", "exit", "enter", "body", "exit"}, r)
}

func TestPanicRunsExit(t *testing.T) {
	var r recorder
	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		Do("outer", r.add("enter A"), r.add("exit A"), func() {
			Do("inner", r.add("enter B"), r.add("exit B"), func() {
				panic(boom)
			})
		})
	})
	assert.Equal(t, recorder{"enter A", "enter B", "exit B", "exit A"}, r)
}

func TestEnterPanicSkipsExit(t *testing.T) {
	var r recorder
	assert.Panics(t, func() {
		Do("test", func() { panic("enter") }, r.add("exit"), r.add("body"))
	})
	assert.Empty(t, r)
}

func TestFrameExitOnce(t *testing.T) {
	n := 0
	f := Enter("test", func() int { return 5 }, func(v int) {
		assert.Equal(t, 5, v)
		n++
	})
	assert.Equal(t, 5, f.Value())
	assert.False(t, f.done)
	f.Exit()
	f.Exit()
	assert.True(t, f.done)
	assert.Equal(t, 1, n)
}

func TestFrameDefer(t *testing.T) {
	state := "a"
	func() {
		defer Enter("test", func() string {
			old := state
			state = "b"
			return old
		}, func(old string) {
			state = old
		}).Exit()
		assert.Equal(t, "b", state)
	}()
	assert.Equal(t, "a", state)
}

func TestUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		name := NewName("texbind")
		assert.True(t, strings.HasPrefix(name, "texbind#"), name)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	a := Enter("prog", func() int { return 0 }, func(int) {})
	b := Enter("prog", func() int { return 0 }, func(int) {})
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestSequentialScopes(t *testing.T) {
	state := 1
	set := func(v int) func() int {
		return func() int {
			old := state
			state = v
			return old
		}
	}
	restore := func(old int) { state = old }
	for n := range 10 {
		With("seq", set(n+100), restore, func() {
			assert.Equal(t, n+100, state)
		})
	}
	assert.Equal(t, 1, state)
}
