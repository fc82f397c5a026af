package army

import (
	"fmt"
	"sort"
)

// Army is a group header with its variants kept in reference order.
type Army struct {
	Header   *Header
	Variants []*Variant
}

func NewArmy(h *Header) *Army {
	return &Army{Header: h}
}

func (a *Army) Ref() Ref {
	return a.Header.Ref
}

func (a *Army) String() string {
	return a.Header.String()
}

// AddVariant inserts v in reference order. The variant must belong to the
// army's group and its reference must not already be present.
func (a *Army) AddVariant(v *Variant) error {
	if v.Ref.Group() != a.Header.Ref {
		return fmt.Errorf("variant %s does not belong to army %s", v.Ref, a.Header.Ref)
	}
	i := sort.Search(len(a.Variants), func(i int) bool {
		return a.Variants[i].Ref.Compare(v.Ref) >= 0
	})
	if i < len(a.Variants) && a.Variants[i].Ref == v.Ref {
		return fmt.Errorf("army %s: duplicate variant %s", a.Header.Ref, v.Ref)
	}
	a.Variants = append(a.Variants, nil)
	copy(a.Variants[i+1:], a.Variants[i:])
	a.Variants[i] = v
	return nil
}

// Variant returns the variant with the given reference.
func (a *Army) Variant(ref Ref) (*Variant, bool) {
	for _, v := range a.Variants {
		if v.Ref == ref {
			return v, true
		}
	}
	return nil, false
}

// Complete reports whether as many variants were loaded as the header
// announces.
func (a *Army) Complete() bool {
	return len(a.Variants) == a.Header.VariantCount
}

// SortArmies sorts armies by reference.
func SortArmies(armies []*Army) {
	sort.Slice(armies, func(i, j int) bool {
		return armies[i].Ref().Compare(armies[j].Ref()) < 0
	})
}

// SortVariants sorts variants by reference.
func SortVariants(variants []*Variant) {
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].Ref.Compare(variants[j].Ref) < 0
	})
}
