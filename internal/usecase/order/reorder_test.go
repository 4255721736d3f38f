package order

import (
	"errors"
	"testing"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/usecase/classify"
	"github.com/aalvaropc/nodesort/internal/usecase/decode"
	"github.com/google/go-cmp/cmp"
)

func sample() []domain.ClassifiedItem {
	return []domain.ClassifiedItem{
		item(0, "US-East-Tier1"),
		item(1, "Plain"),
		invalid(2, "ftp://x"),
	}
}

func TestReorder_AppliesPermutation(t *testing.T) {
	items := sample()

	got, err := Reorder(items, []int{2, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalInts(ids(got), []int{2, 0, 1}) {
		t.Fatalf("unexpected order %v", ids(got))
	}
	if diff := cmp.Diff(items[0], got[1]); diff != "" {
		t.Fatalf("item content changed:\n%s", diff)
	}
}

func TestReorder_RejectsBadPermutations(t *testing.T) {
	cases := []struct {
		name string
		ids  []int
	}{
		{"too short", []int{0, 1}},
		{"too long", []int{0, 1, 2, 3}},
		{"unknown id", []int{0, 1, 7}},
		{"duplicate", []int{0, 0, 1}},
		{"nil", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Reorder(sample(), c.ids)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidPermutation) {
				t.Fatalf("expected ErrInvalidPermutation, got %v", err)
			}
			if !domain.IsKind(err, domain.KindInvalidPermutation) {
				t.Fatalf("expected invalid_permutation kind, got %v", err)
			}
		})
	}
}

func TestReorder_RoundTripKeepsContent(t *testing.T) {
	c := classify.New(decode.New())
	items := c.ClassifyText("vless://h#b\nvless://h#A-B-Tier1\nss://\nvless://h#a")

	reordered, err := Reorder(items, []int{3, 1, 0, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again := c.ClassifyText(domain.JoinLinks(reordered))
	if len(again) != len(items) {
		t.Fatalf("expected %d items after round trip, got %d", len(items), len(again))
	}

	// Same content, ignoring ids.
	for i, it := range again {
		want := reordered[i]
		want.ID = it.ID
		if diff := cmp.Diff(want, it); diff != "" {
			t.Fatalf("item %d changed after round trip:\n%s", i, diff)
		}
	}
}

func TestMove(t *testing.T) {
	cases := []struct {
		from, to int
		want     []int
	}{
		{0, 2, []int{1, 2, 0, 3}},
		{3, 0, []int{3, 0, 1, 2}},
		{1, 1, []int{0, 1, 2, 3}},
		{2, 1, []int{0, 2, 1, 3}},
	}
	for _, c := range cases {
		got, err := Move([]int{0, 1, 2, 3}, c.from, c.to)
		if err != nil {
			t.Fatalf("Move(%d,%d): unexpected error %v", c.from, c.to, err)
		}
		if !equalInts(got, c.want) {
			t.Fatalf("Move(%d,%d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}

	if _, err := Move([]int{0, 1}, 0, 2); err == nil {
		t.Fatalf("expected out of range error")
	}
	if _, err := Move(nil, 0, 0); err == nil {
		t.Fatalf("expected error for empty ids")
	}
}
