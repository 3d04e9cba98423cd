// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package moerr collects the small, closed set of error kinds the
// aggregating hash table can raise. Unlike the upstream moerr package
// this one does not thread context.Context through every constructor:
// the table has no cancellation model (see the concurrency section of
// SPEC_FULL.md), so there is nothing for a context to carry.
package moerr

import "fmt"

// Code groups errors by class, following moerr's numeric grouping
// convention without reusing its actual code space.
type Code uint16

const (
	// Group 1: internal / not implemented.
	ErrUnimplemented Code = 20100 + iota
	ErrInvariantViolation
	ErrCapacityExhausted
)

var codeNames = map[Code]string{
	ErrUnimplemented:      "unimplemented",
	ErrInvariantViolation: "invariant violation",
	ErrCapacityExhausted:  "capacity exhausted",
}

// Error is the single error type the table returns. It carries a Code so
// callers can classify a failure with errors.As without string matching.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", codeNames[e.Code], e.Msg)
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// NewUnimplemented reports a feature the source explicitly does not
// implement: parallel ingest, an unknown aggregate kind, resizing a
// non-empty table, or an unknown scalar type reaching the AVG gather.
func NewUnimplemented(what string, args ...any) *Error {
	return newError(ErrUnimplemented, what, args...)
}

// NewInvariantViolation reports state that the data-model invariants in
// SPEC_FULL.md §3 forbid: a full slot with COUNT == 0, or a FLAG byte
// that is neither EMPTY nor FULL.
func NewInvariantViolation(what string, args ...any) *Error {
	return newError(ErrInvariantViolation, what, args...)
}

// NewCapacityExhausted reports that probing completed a full wrap around
// the table without finding an empty or matching slot.
func NewCapacityExhausted(what string, args ...any) *Error {
	return newError(ErrCapacityExhausted, what, args...)
}

// Is lets errors.Is match on code equality rather than pointer identity,
// so callers can compare against a sentinel built with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
