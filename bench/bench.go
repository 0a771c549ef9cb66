package bench

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tliron/commonlog"

	"github.com/coregx/pathcomb/simd"
)

var log = commonlog.GetLogger("pathcomb.bench")

// Run errors
var (
	// ErrNoCases indicates no case was selected
	ErrNoCases = errors.New("no benchmark cases")

	// ErrUnknownCase indicates Config.Cases names a case that was not given
	ErrUnknownCase = errors.New("unknown benchmark case")

	// ErrMismatch indicates two cases disagree on the outcome for the input
	ErrMismatch = errors.New("cases disagree on parse outcome")
)

// Case is a named parse routine. All cases in a run must parse the same
// grammar so their outcomes can be compared.
type Case[T comparable] struct {
	Name  string
	Parse func(path string) (T, string, bool)
}

// Result is the measurement of one case for one round.
type Result struct {
	Case        string
	Round       int
	N           int
	NsPerOp     int64
	AllocsPerOp int64
	BytesPerOp  int64
	OpsPerSec   float64
	Matched     bool
}

// sink keeps benchmark loops from being optimized away.
var sink int

var initOnce sync.Once

// Run measures every selected case cfg.Count times on cfg.Input.
//
// Before timing anything, Run parses the input once with every case and
// returns ErrMismatch if they do not all agree. Cancelling ctx stops the run
// between rounds; the results gathered so far are returned with ctx.Err().
func Run[T comparable](ctx context.Context, cfg Config, cases []Case[T]) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	selected, err := selectCases(cfg.Cases, cases)
	if err != nil {
		return nil, err
	}
	if err := verify(cfg.Input, selected); err != nil {
		return nil, err
	}

	initOnce.Do(testing.Init)
	if err := flag.Set("test.benchtime", cfg.BenchTime.String()); err != nil {
		return nil, fmt.Errorf("set bench time: %w", err)
	}

	_, _, matched := selected[0].Parse(cfg.Input)
	log.Infof("running %d case(s) x %d round(s) on %q (vector search: %v)",
		len(selected), cfg.Count, cfg.Input, simd.HasVector())

	results := make([]Result, 0, len(selected)*cfg.Count)
	for round := 1; round <= cfg.Count; round++ {
		for _, c := range selected {
			if err := ctx.Err(); err != nil {
				log.Warningf("run cancelled after %d result(s)", len(results))
				return results, err
			}

			r := measure(c, cfg.Input)
			r.Round = round
			r.Matched = matched
			log.Debug("measured", "case", r.Case, "round", round, "ns/op", r.NsPerOp, "allocs/op", r.AllocsPerOp)
			results = append(results, r)
		}
	}
	return results, nil
}

func measure[T comparable](c Case[T], input string) Result {
	parse := c.Parse
	br := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		hits := 0
		for i := 0; i < b.N; i++ {
			if _, _, ok := parse(input); ok {
				hits++
			}
		}
		sink = hits
	})

	r := Result{
		Case:        c.Name,
		N:           br.N,
		NsPerOp:     br.NsPerOp(),
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
	}
	if br.T > 0 {
		r.OpsPerSec = float64(br.N) / br.T.Seconds()
	}
	return r
}

// selectCases returns the cases named in names, in the order given. An empty
// names list selects every case.
func selectCases[T comparable](names []string, cases []Case[T]) ([]Case[T], error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	if len(names) == 0 {
		return cases, nil
	}

	selected := make([]Case[T], 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(cases, func(c Case[T]) bool { return c.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCase, name)
		}
		selected = append(selected, cases[i])
	}
	return selected, nil
}

// verify checks that every case produces the same outcome as the first.
func verify[T comparable](input string, cases []Case[T]) error {
	want, wantRest, wantOK := cases[0].Parse(input)
	for _, c := range cases[1:] {
		got, rest, ok := c.Parse(input)
		if got != want || rest != wantRest || ok != wantOK {
			return fmt.Errorf("%w: %s = (%v, %q, %v), %s = (%v, %q, %v)",
				ErrMismatch, cases[0].Name, want, wantRest, wantOK, c.Name, got, rest, ok)
		}
	}
	return nil
}

// WriteTable renders results as an ASCII table.
func WriteTable(w io.Writer, results []Result) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"case", "round", "n", "ns/op", "allocs/op", "B/op", "ops/s", "matched"})
	for _, r := range results {
		row := []string{
			r.Case,
			strconv.Itoa(r.Round),
			strconv.Itoa(r.N),
			strconv.FormatInt(r.NsPerOp, 10),
			strconv.FormatInt(r.AllocsPerOp, 10),
			strconv.FormatInt(r.BytesPerOp, 10),
			strconv.FormatFloat(r.OpsPerSec, 'f', 0, 64),
			strconv.FormatBool(r.Matched),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
