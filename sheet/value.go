// Package sheet reads and writes the xlsx workbooks puzzles are exchanged as.
package sheet

import (
	"strconv"
	"strings"
)

// Value is a cell that holds either an integer or text.
type Value struct {
	num   int
	text  string
	isNum bool
}

// ParseValue stores s as a number if it reads as an integer
// (surrounding space and a sign are allowed), as verbatim text otherwise.
func ParseValue(s string) Value {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return Value{num: n, isNum: true}
	}
	return Value{text: s}
}

func (v Value) IsNumber() bool {
	return v.isNum
}

// Int returns the number, ok is false for text.
func (v Value) Int() (n int, ok bool) {
	return v.num, v.isNum
}

// String is the canonical form of the value, as spreadsheet applications show it.
func (v Value) String() string {
	if !v.IsNumber() {
		return v.text
	}
	return strconv.Itoa(v.num)
}

// Any returns the int or string, as excelize expects cell values.
func (v Value) Any() any {
	if n, ok := v.Int(); ok {
		return n
	}
	return v.text
}
