// Package order sorts and reorders classified items.
package order

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// flagFirst is the flag value that sorts ahead of every other ruled node.
const flagFirst = "D"

// Comparator orders classified items. Text fields use locale-aware collation.
//
// A Comparator is not safe for concurrent use: the underlying collator keeps
// scratch buffers.
type Comparator struct {
	col *collate.Collator
}

// NewComparator builds a comparator for the given language tag. The zero tag
// (language.Und) selects the root collation order.
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{col: collate.New(tag)}
}

// Compare returns -1, 0 or +1.
//
//  1. status: ruled < unruled < invalid
//  2. both ruled: flag D, sid (present first), sn (absent last), tier, region, country
//  3. otherwise: remark, when both items have one
func (c *Comparator) Compare(a, b domain.ClassifiedItem) int {
	if d := cmp.Compare(a.Status().Priority(), b.Status().Priority()); d != 0 {
		return d
	}

	pa, okA := a.Parsed()
	pb, okB := b.Parsed()
	if okA && okB {
		return c.compareParsed(pa, pb)
	}

	ra, okA := a.Remark()
	rb, okB := b.Remark()
	if okA && okB {
		return c.compareText(ra, rb)
	}
	return 0
}

func (c *Comparator) compareParsed(a, b domain.ParsedRemark) int {
	// flag D first
	if d := cmp.Compare(flagRank(b), flagRank(a)); d != 0 {
		return d
	}

	switch {
	case a.SID != nil && b.SID == nil:
		return -1
	case a.SID == nil && b.SID != nil:
		return 1
	case a.SID != nil && b.SID != nil:
		if d := c.compareText(*a.SID, *b.SID); d != 0 {
			return d
		}
	}

	if d := compareSN(a.SN, b.SN); d != 0 {
		return d
	}
	if d := cmp.Compare(a.Tier, b.Tier); d != 0 {
		return d
	}
	if d := c.compareText(a.Region, b.Region); d != 0 {
		return d
	}
	return c.compareText(a.Country, b.Country)
}

func (c *Comparator) compareText(a, b string) int {
	return sign(c.col.CompareString(a, b))
}

// Sort returns a stably sorted copy of items.
func (c *Comparator) Sort(items []domain.ClassifiedItem) []domain.ClassifiedItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, c.Compare)
	return out
}

func flagRank(p domain.ParsedRemark) int {
	if p.HasFlag(flagFirst) {
		return 1
	}
	return 0
}

// compareSN orders series numbers ascending; a missing sn sorts after any value.
func compareSN(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
