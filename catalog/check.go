package catalog

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/dba/army"
)

// Problem is a consistency finding about one army or variant.
type Problem struct {
	Ref     army.Ref
	Message string
}

func (p Problem) String() string {
	return p.Ref.String() + ": " + p.Message
}

// CheckOptions bounds the work Check does per variant.
type CheckOptions struct {
	// PermutationLimit flags variants admitting more compositions than
	// this. Zero disables the check.
	PermutationLimit int
	// Workers caps concurrent variant checks. Zero means GOMAXPROCS.
	Workers int
}

// Check runs consistency checks over the whole catalog concurrently:
//   - each army holds as many variants as its header announces,
//   - every troop definition prints to a form that parses back to itself,
//   - permutation counts stay within opts.PermutationLimit,
//   - enemy and ally references name armies in the catalog.
//
// Problems are returned in reference order. The error is non-nil only if
// ctx is cancelled.
func (c *Catalog) Check(ctx context.Context, opts CheckOptions) ([]Problem, error) {
	var (
		mu       sync.Mutex
		problems []Problem
	)
	report := func(ref army.Ref, format string, args ...any) {
		mu.Lock()
		problems = append(problems, Problem{Ref: ref, Message: fmt.Sprintf(format, args...)})
		mu.Unlock()
	}

	for _, a := range c.Armies() {
		if !a.Complete() {
			report(a.Ref(), "header announces %d variants, found %d", a.Header.VariantCount, len(a.Variants))
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, v := range c.Variants() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.checkVariant(v, opts, report)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Ref.Compare(problems[j].Ref) < 0
	})
	log.Infof("checked %d armies, %d problems", len(c.armies), len(problems))
	return problems, nil
}

func (c *Catalog) checkVariant(v *army.Variant, opts CheckOptions, report func(army.Ref, string, ...any)) {
	printed := v.Troops.String()
	again, err := c.cache.Parse(printed)
	switch {
	case err != nil:
		report(v.Ref, "troops %q do not parse back: %v", printed, err)
	case !again.Equal(v.Troops):
		report(v.Ref, "troops %q print as %q", printed, again.String())
	}

	if opts.PermutationLimit > 0 {
		if n := v.Troops.PermutationCount(); n > opts.PermutationLimit {
			report(v.Ref, "troops admit %d compositions, limit is %d", n, opts.PermutationLimit)
		}
	}

	for _, ref := range v.Enemies {
		if _, ok := c.Army(ref); !ok {
			report(v.Ref, "unknown enemy %s", ref)
		}
	}
	for _, ref := range v.Allies {
		if _, ok := c.Army(ref); !ok {
			report(v.Ref, "unknown ally %s", ref)
		}
	}
}
