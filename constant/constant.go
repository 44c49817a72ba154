// Package constant defines the literal constants that may appear in IR
// literal expressions and literal patterns.  The IR threads these values
// through unchanged; only backends interpret them.
package constant

import (
	"fmt"
	"strconv"
)

// A Value is one literal constant.  The set of implementations is closed.
type Value interface {
	constValue()
	String() string
}

type Bool bool

func (Bool) constValue() {}

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

type Char rune

func (Char) constValue() {}

func (c Char) String() string {
	return "'" + string(rune(c)) + "'"
}

type String string

func (String) constValue() {}

func (s String) String() string {
	return strconv.Quote(string(s))
}

type Int int64

func (Int) constValue() {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type Float float64

func (Float) constValue() {}

func (f Float) String() string {
	return fmt.Sprintf("%g", float64(f))
}
