package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/liuzl/linkedlist"
	"github.com/liuzl/linkedlist/internal/config"
	"github.com/liuzl/linkedlist/internal/log"
	"github.com/liuzl/linkedlist/internal/match"
)

const opKey = "op"

// Result records the outcome of a read operation. Empty is set when the list
// had nothing to return.
type Result struct {
	Op    string `json:"op"`
	Value string `json:"value,omitempty"`
	Empty bool   `json:"empty,omitempty"`
}

type Report struct {
	Mode     Mode     `json:"mode"`
	Size     int      `json:"size"`
	Elements []string `json:"elements"`
	Results  []Result `json:"results,omitempty"`
}

// Encode writes the report as JSON or as plain text.
func (r *Report) Encode(w io.Writer, format string) error {
	if format == config.FormatJSON {
		return jsoniter.NewEncoder(w).Encode(r)
	}

	var sb strings.Builder
	for _, res := range r.Results {
		if res.Empty {
			fmt.Fprintf(&sb, "%s => <empty>\n", res.Op)
			continue
		}
		fmt.Fprintf(&sb, "%s => %s\n", res.Op, res.Value)
	}
	fmt.Fprintf(&sb, "%s size=%d [%s]\n", r.Mode, r.Size, strings.Join(r.Elements, " "))
	_, err := io.WriteString(w, sb.String())

	return err
}

// readable is the part of the API both list kinds share.
type readable interface {
	Len() int
	GetFirst() (string, bool)
	GetLast() (string, bool)
	RetrieveFirstElement() (string, bool)
	RetrieveLastElement() (string, bool)
	Values() []string
}

type Runner struct {
	compare    linkedlist.CompareFunc[string]
	ignoreCase bool
	log        log.Logger
}

func NewRunner(compare linkedlist.CompareFunc[string], ignoreCase bool, logger log.Logger) *Runner {
	return &Runner{compare: compare, ignoreCase: ignoreCase, log: logger}
}

// Run applies ops to a fresh list of the given mode and stops at the first
// failing operation.
func (r *Runner) Run(mode Mode, ops []Op) (*Report, error) {
	report := &Report{Mode: mode}

	var (
		list  readable
		apply func(Op) error
	)
	switch mode {
	case ModeBasic:
		l := linkedlist.New[string]()
		list, apply = l, func(op Op) error { return r.applyBasic(l, op) }
	case ModeSorted:
		l := linkedlist.NewSortedList(r.compare)
		list, apply = l, func(op Op) error { return r.applySorted(l, op) }
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	for _, op := range ops {
		logger := r.log.WithField(opKey, op.String())
		if res, ok := read(list, op); ok {
			logger.Trace("read")
			report.Results = append(report.Results, res)
			continue
		}
		if err := apply(op); err != nil {
			logger.WithError(err).Debug("operation failed")
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.WithField("size", list.Len()).Trace("applied")
	}

	report.Size = list.Len()
	report.Elements = list.Values()

	return report, nil
}

func read(list readable, op Op) (Result, bool) {
	var (
		v  string
		ok bool
	)
	switch op.Kind {
	case KindFirst:
		v, ok = list.GetFirst()
	case KindLast:
		v, ok = list.GetLast()
	case KindPopFirst:
		v, ok = list.RetrieveFirstElement()
	case KindPopLast:
		v, ok = list.RetrieveLastElement()
	case KindSize:
		v, ok = strconv.Itoa(list.Len()), true
	default:
		return Result{}, false
	}

	return Result{Op: op.String(), Value: v, Empty: !ok}, true
}

func (r *Runner) applyBasic(l *linkedlist.List[string], op Op) error {
	switch op.Kind {
	case KindEnd:
		l.AddToEnd(op.Arg)
	case KindFront:
		l.AddToFront(op.Arg)
	case KindRemove:
		l.Remove(op.Arg, r.compare)
	case KindMatch:
		c, err := match.Glob(op.Arg, r.ignoreCase)
		if err != nil {
			return err
		}
		l.Remove(op.Arg, c)
	default:
		return fmt.Errorf("%w: %q is not available in %s mode", ErrBadToken, op, ModeBasic)
	}

	return nil
}

func (r *Runner) applySorted(l *linkedlist.SortedList[string], op Op) error {
	switch op.Kind {
	case KindAdd:
		l.Add(op.Arg)
	case KindRemove:
		l.Remove(op.Arg)
	case KindEnd:
		return l.AddToEnd(op.Arg)
	case KindFront:
		return l.AddToFront(op.Arg)
	default:
		return fmt.Errorf("%w: %q is not available in %s mode", ErrBadToken, op, ModeSorted)
	}

	return nil
}
