// Package ast defines the abstract syntax tree produced by the parser and
// mutated in place by the resolver.
package ast

import (
	"fmt"
	"sync"
)

// Span is a half-open byte range [Start, End) into the original source
// text. Both offsets are always within [0, len(source)] and Start <= End.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a Span, panicking if the range is inverted.
func NewSpan(start, end uint32) Span {
	if start > end {
		panic(fmt.Sprintf("ast: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Join returns the smallest span that encloses all of the given spans.
// Panics if called with zero spans.
func Join(spans ...Span) Span {
	if len(spans) == 0 {
		panic("ast: Join requires at least one span")
	}
	result := spans[0]
	for _, s := range spans[1:] {
		if s.Start < result.Start {
			result.Start = s.Start
		}
		if s.End > result.End {
			result.End = s.End
		}
	}
	return result
}

func (s Span) Len() uint32 { return s.End - s.Start }

// View returns the slice of source denoted by s.
func (s Span) View(source string) string {
	return source[s.Start:s.End]
}

// Atom is an interned, immutable, cheaply-comparable string. Two atoms
// with equal contents share the same backing pointer, so equality and
// hashing are O(1).
type Atom struct {
	ptr *string
}

var (
	internMu    sync.Mutex
	internTable = make(map[string]*string)
)

// Intern returns the shared Atom for s, allocating a new entry the first
// time a given string is seen.
func Intern(s string) Atom {
	internMu.Lock()
	defer internMu.Unlock()
	if p, ok := internTable[s]; ok {
		return Atom{ptr: p}
	}
	// copy so the caller's (possibly larger) backing array isn't pinned
	owned := string([]byte(s))
	internTable[owned] = &owned
	return Atom{ptr: &owned}
}

func (a Atom) String() string {
	if a.ptr == nil {
		return ""
	}
	return *a.ptr
}

func (a Atom) IsZero() bool { return a.ptr == nil }

func (a Atom) Equal(other Atom) bool { return a.ptr == other.ptr }
