// Package catalog loads the DBA army lists from CSV and answers queries
// over them: which armies fought in a year, which variants call a terrain
// home, which field a given element or troop composition.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/dba/army"
	"github.com/dhamidi/dba/troop"
)

var log = commonlog.GetLogger("dba.catalog")

// Catalog is an in-memory set of armies keyed by group reference. It is
// not modified after loading and is safe for concurrent reads.
type Catalog struct {
	armies map[army.Ref]*army.Army
	cache  *troop.Cache
}

type Option func(*Catalog)

// WithCache shares a troop expression cache with the catalog. Queries by
// troop pattern and loading both go through it.
func WithCache(c *troop.Cache) Option {
	return func(cat *Catalog) {
		cat.cache = c
	}
}

func New(opts ...Option) *Catalog {
	c := &Catalog{armies: make(map[army.Ref]*army.Army)}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = troop.NewCache()
	}
	return c
}

// Cache returns the troop expression cache used by the catalog.
func (c *Catalog) Cache() *troop.Cache {
	return c.cache
}

// LoadFiles opens the header and variant files and calls Load.
func LoadFiles(ctx context.Context, headersPath, variantsPath string, opts ...Option) (*Catalog, error) {
	hf, err := os.Open(headersPath)
	if err != nil {
		return nil, fmt.Errorf("open headers: %w", err)
	}
	defer hf.Close()
	vf, err := os.Open(variantsPath)
	if err != nil {
		return nil, fmt.Errorf("open variants: %w", err)
	}
	defer vf.Close()
	return Load(ctx, hf, vf, opts...)
}

// Load reads army headers and variants. Rows that fail to parse are
// skipped and reported in the returned error; the catalog holds every row
// that loaded, so a non-nil catalog may come with a non-nil error.
func Load(ctx context.Context, headers, variants io.Reader, opts ...Option) (*Catalog, error) {
	c := New(opts...)
	var errs []error

	headerRecords, err := ReadHeaders(headers)
	if err != nil {
		errs = append(errs, fmt.Errorf("read headers: %w", err))
	}
	for _, rec := range headerRecords {
		if err := c.addHeader(rec); err != nil {
			errs = append(errs, fmt.Errorf("headers line %d: %w", rec.Line, err))
		}
	}

	variantRecords, err := ReadVariants(variants)
	if err != nil {
		errs = append(errs, fmt.Errorf("read variants: %w", err))
	}
	built, err := c.buildVariants(ctx, variantRecords)
	if err != nil {
		return nil, err
	}
	for i, v := range built {
		if v.err != nil {
			errs = append(errs, fmt.Errorf("variants line %d: %w", variantRecords[i].Line, v.err))
			continue
		}
		a, ok := c.armies[v.variant.Ref.Group()]
		if !ok {
			errs = append(errs, fmt.Errorf("variants line %d: could not find army %s", variantRecords[i].Line, v.variant.Ref.Group()))
			continue
		}
		if err := a.AddVariant(v.variant); err != nil {
			errs = append(errs, fmt.Errorf("variants line %d: %w", variantRecords[i].Line, err))
		}
	}

	log.Infof("loaded %d armies and %d variants, %d rows skipped", len(c.armies), c.variantCount(), len(errs))
	for _, err := range errs {
		log.Warningf("%s", err)
	}
	return c, errors.Join(errs...)
}

func (c *Catalog) addHeader(rec HeaderRecord) error {
	ref, err := army.ParseRef(rec.Ref)
	if err != nil {
		return err
	}
	if _, ok := c.armies[ref]; ok {
		return fmt.Errorf("duplicate army %s", ref)
	}
	h, err := army.NewHeader(ref, rec.GroupName, rec.VarCount)
	if err != nil {
		return err
	}
	c.armies[ref] = army.NewArmy(h)
	return nil
}

type builtVariant struct {
	variant *army.Variant
	err     error
}

// buildVariants parses the troop definitions of all records concurrently.
// Only cancellation of ctx fails the whole build.
func (c *Catalog) buildVariants(ctx context.Context, records []VariantRecord) ([]builtVariant, error) {
	out := make([]builtVariant, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i].variant, out[i].err = c.buildVariant(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Catalog) buildVariant(rec VariantRecord) (*army.Variant, error) {
	ref, err := rec.Ref()
	if err != nil {
		return nil, err
	}
	troops, err := c.cache.Parse(rec.Troops())
	if err != nil {
		return nil, fmt.Errorf("%w, armyRef=%s", err, ref)
	}
	return army.NewVariant(ref, rec.Name, troops, rec.Topography, rec.Agg, rec.Enemies, rec.Allies)
}

// Add inserts an army built elsewhere, replacing any army with the same
// reference. Intended for tests and embedding; do not call concurrently
// with queries.
func (c *Catalog) Add(a *army.Army) {
	c.armies[a.Ref()] = a
}

func (c *Catalog) variantCount() int {
	n := 0
	for _, a := range c.armies {
		n += len(a.Variants)
	}
	return n
}

// Len returns the number of armies.
func (c *Catalog) Len() int {
	return len(c.armies)
}
