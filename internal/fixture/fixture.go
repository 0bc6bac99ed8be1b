// Package fixture holds placeholder values, errors and fallible actions shared
// by the tests and examples of this module.
package fixture

import (
	"fmt"

	"github.com/ib-77/roperrs/pkg/rop"
)

// Outcome switches the result of the fallible placeholder functions.
type Outcome int

const (
	Succeed Outcome = iota
	Fail
)

type A struct{ N int }
type B struct{ S string }
type C struct{ F float64 }

type ErrA struct{}
type ErrB struct{}
type ErrC struct{}

func (ErrA) Error() string { return "error A" }
func (ErrB) Error() string { return "error B" }
func (ErrC) Error() string { return "error C" }

func DoA(outcome Outcome) rop.Result[A, ErrA] {
	if outcome == Fail {
		return rop.Fail[A](ErrA{})
	}
	return rop.Success[A, ErrA](A{N: 1})
}

func DoB(outcome Outcome) rop.Result[B, ErrB] {
	if outcome == Fail {
		return rop.Fail[B](ErrB{})
	}
	return rop.Success[B, ErrB](B{S: "b"})
}

func DoC(outcome Outcome) rop.Result[C, ErrC] {
	if outcome == Fail {
		return rop.Fail[C](ErrC{})
	}
	return rop.Success[C, ErrC](C{F: 0.5})
}

// Source tells which low-level error a HighLevelErr was built from.
type Source string

const (
	FromA       Source = "A"
	FromB       Source = "B"
	FromC       Source = "C"
	Placeholder Source = "placeholder"
)

// HighLevelErr is the aggregate error type the low-level errors convert into.
type HighLevelErr struct {
	Source Source
}

func (e HighLevelErr) Error() string {
	return fmt.Sprintf("high level error from %s", e.Source)
}

func FromErrA(ErrA) HighLevelErr { return HighLevelErr{Source: FromA} }
func FromErrB(ErrB) HighLevelErr { return HighLevelErr{Source: FromB} }
func FromErrC(ErrC) HighLevelErr { return HighLevelErr{Source: FromC} }
