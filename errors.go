package extrucal

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrRange        = errors.New("value out of range")
	ErrDomain       = errors.New("degenerate geometry")
)

// TypeError reports a parameter that received a value of the wrong kind.
type TypeError struct {
	Param string
	Value any
	Want  string // "number" or "integer"
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("'%s' should be %s, got %T (%v)", e.Param, article(e.Want), e.Value, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// RangeError reports a parameter outside its physically valid band.
// Bound is the limit that was crossed.
type RangeError struct {
	Param string
	Value float64
	Bound float64
	Msg   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s=%g violates bound %g", e.Msg, e.Param, e.Value, e.Bound)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// DomainError reports a computation whose result would be undefined.
type DomainError struct {
	Op  string
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

func article(want string) string {
	if want == "integer" {
		return "an integer"
	}
	return "a " + want
}
