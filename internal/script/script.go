// Package script parses listctl operation tokens and replays them against a
// basic or sorted list of strings.
package script

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadToken = errors.New("script: bad token")

type Mode string

const (
	ModeBasic  Mode = "basic"
	ModeSorted Mode = "sorted"
)

type Kind string

const (
	KindEnd      Kind = "end"
	KindFront    Kind = "front"
	KindAdd      Kind = "add"
	KindRemove   Kind = "remove"
	KindMatch    Kind = "match"
	KindFirst    Kind = "first"
	KindLast     Kind = "last"
	KindPopFirst Kind = "pop-first"
	KindPopLast  Kind = "pop-last"
	KindSize     Kind = "size"
)

// takesArg lists the kinds written as kind:ARG.
var takesArg = map[Kind]bool{
	KindEnd:    true,
	KindFront:  true,
	KindAdd:    true,
	KindRemove: true,
	KindMatch:  true,
}

var allowed = map[Mode]map[Kind]bool{
	ModeBasic: {
		KindEnd: true, KindFront: true, KindRemove: true, KindMatch: true,
		KindFirst: true, KindLast: true, KindPopFirst: true, KindPopLast: true, KindSize: true,
	},
	// end and front are let through so the sorted list itself can refuse them.
	ModeSorted: {
		KindEnd: true, KindFront: true, KindAdd: true, KindRemove: true,
		KindFirst: true, KindLast: true, KindPopFirst: true, KindPopLast: true, KindSize: true,
	},
}

type Op struct {
	Kind Kind
	Arg  string
}

func (o Op) String() string {
	if takesArg[o.Kind] {
		return string(o.Kind) + ":" + o.Arg
	}
	return string(o.Kind)
}

// Parse turns tokens into operations valid for mode. Only the first colon
// separates the kind from its argument, so arguments may contain colons.
func Parse(mode Mode, tokens []string) ([]Op, error) {
	kinds, ok := allowed[mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	ops := make([]Op, 0, len(tokens))
	for _, token := range tokens {
		name, arg, hasArg := strings.Cut(token, ":")
		kind := Kind(name)
		if !allowed[ModeBasic][kind] && !allowed[ModeSorted][kind] {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
		if !kinds[kind] {
			return nil, fmt.Errorf("%w: %q is not available in %s mode", ErrBadToken, token, mode)
		}
		if takesArg[kind] != hasArg {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, token)
		}
		ops = append(ops, Op{Kind: kind, Arg: arg})
	}

	return ops, nil
}
