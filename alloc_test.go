package pasteparser

import (
	"errors"
	"testing"
)

var errExhausted = errors.New("test allocator exhausted")

// testAlloc tracks every node it hands out. It fails the failAt'th allocation
// if failAt is positive, and reports frees of nodes it does not own.
type testAlloc struct {
	t      testing.TB
	live   map[*Node]bool
	allocs int
	frees  int
	failAt int
}

func newTestAlloc(t testing.TB, failAt int) *testAlloc {
	return &testAlloc{t: t, live: make(map[*Node]bool), failAt: failAt}
}

func (a *testAlloc) Alloc() (*Node, error) {
	a.allocs++
	if a.allocs == a.failAt {
		return nil, errExhausted
	}
	n := new(Node)
	a.live[n] = true
	return n, nil
}

func (a *testAlloc) Free(n *Node) {
	a.t.Helper()
	if !a.live[n] {
		a.t.Errorf("free of node %p (%v) that is not live", n, n)
		return
	}
	delete(a.live, n)
	a.frees++
}

// leaks reports an error for each node still live.
func (a *testAlloc) leaks(what string) {
	a.t.Helper()
	for n := range a.live {
		a.t.Errorf("%s: leaked node %v", what, n)
	}
}
