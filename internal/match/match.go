// Package match provides the string comparators listctl orders and removes
// elements with.
package match

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/gobwas/glob"

	"github.com/liuzl/linkedlist"
	"github.com/liuzl/linkedlist/internal/config"
)

// Lexical compares byte-wise, or on lower-cased strings when ignoreCase is set.
func Lexical(ignoreCase bool) linkedlist.CompareFunc[string] {
	if !ignoreCase {
		return strings.Compare
	}
	return func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Numeric orders values that parse as numbers by their value and places them
// before everything else, which is ordered lexically.
func Numeric(ignoreCase bool) linkedlist.CompareFunc[string] {
	lexical := Lexical(ignoreCase)
	return func(a, b string) int {
		x, errA := strconv.ParseFloat(a, 64)
		y, errB := strconv.ParseFloat(b, 64)
		switch {
		case errA == nil && errB == nil:
			return cmp.Compare(x, y)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return lexical(a, b)
	}
}

// ForOrder returns the comparator named by a config order value.
func ForOrder(order string, ignoreCase bool) linkedlist.CompareFunc[string] {
	if order == config.OrderNumeric {
		return Numeric(ignoreCase)
	}
	return Lexical(ignoreCase)
}

// Glob compiles pattern into an equality-only comparator: it returns 0 for
// every element the pattern matches and 1 otherwise, ignoring its first
// argument. It is meant for List.Remove and is not an ordering.
func Glob(pattern string, ignoreCase bool) (linkedlist.CompareFunc[string], error) {
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(_, x string) int {
		if ignoreCase {
			x = strings.ToLower(x)
		}
		if g.Match(x) {
			return 0
		}
		return 1
	}, nil
}
