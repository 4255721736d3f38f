package order

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/usecase/classify"
	"github.com/aalvaropc/nodesort/internal/usecase/decode"
)

func item(id int, remark string) domain.ClassifiedItem {
	c := classify.New(decode.New())
	return c.Classify(domain.Link{ID: id, Raw: "vless://host:443#" + remark})
}

func invalid(id int, link string) domain.ClassifiedItem {
	c := classify.New(decode.New())
	return c.Classify(domain.Link{ID: id, Raw: link})
}

func ids(items []domain.ClassifiedItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCompare_StatusPriority(t *testing.T) {
	c := NewComparator(language.Und)
	ruled := item(0, "US-East-Tier1")
	unruled := item(1, "Plain")
	bad := invalid(2, "ftp://x")

	if c.Compare(ruled, unruled) != -1 || c.Compare(unruled, bad) != -1 || c.Compare(ruled, bad) != -1 {
		t.Fatalf("expected ruled < unruled < invalid")
	}
	if c.Compare(bad, ruled) != 1 {
		t.Fatalf("expected invalid > ruled")
	}
}

func TestCompare_FlagDBeatsSID(t *testing.T) {
	c := NewComparator(language.Und)
	flagged := item(0, "A-B-Tier1-flag:D")
	withSID := item(1, "A-B-Tier1-sid:x")

	if got := c.Compare(flagged, withSID); got != -1 {
		t.Fatalf("flag:D should sort first, got %d", got)
	}
	sorted := c.Sort([]domain.ClassifiedItem{withSID, flagged})
	if sorted[0].ID != 0 {
		t.Fatalf("expected flag:D item first, got %v", ids(sorted))
	}
}

func TestCompare_SNWithinSID(t *testing.T) {
	c := NewComparator(language.Und)
	sn2 := item(0, "US-East-Tier1-sid:alpha-sn:2")
	sn1 := item(1, "US-East-Tier1-sid:alpha-sn:1")

	sorted := c.Sort([]domain.ClassifiedItem{sn2, sn1})
	if !equalInts(ids(sorted), []int{1, 0}) {
		t.Fatalf("expected sn=1 first, got %v", ids(sorted))
	}
}

func TestCompare_RuleCascade(t *testing.T) {
	c := NewComparator(language.Und)

	in := []domain.ClassifiedItem{
		item(0, "US-West-Tier2"),
		item(1, "US-East-Tier2"),
		item(2, "JP-East-Tier2"),
		item(3, "US-East-Tier1"),
		item(4, "US-East-Tier3-sid:beta"),
		item(5, "US-East-Tier3-sid:alpha"),
		item(6, "US-East-Tier9-sid:alpha-sn:1"),
		item(7, "US-East-Tier9-flag:D"),
		item(8, "US-East-Tier1-sid:alpha-flag:A"),
	}

	got := ids(c.Sort(in))
	// 7: flag D
	// 6: sid alpha sn 1
	// 8, 5: sid alpha no sn -> tier 1 before tier 3
	// 4: sid beta
	// 3: no sid, tier 1
	// 2, 1: tier 2 region East, country JP < US
	// 0: tier 2 region West
	want := []int{7, 6, 8, 5, 4, 3, 2, 1, 0}
	if !equalInts(got, want) {
		t.Fatalf("sorted ids = %v, want %v", got, want)
	}
}

func TestCompare_RemarkOrderForUnruledAndInvalid(t *testing.T) {
	c := NewComparator(language.Und)
	in := []domain.ClassifiedItem{
		item(0, "zeta"),
		item(1, "Alpha"),
		item(2, "beta"),
		invalid(3, "trojan://h#B-B-Tier1-sn:1"),
		invalid(4, "trojan://h#A-A-Tier1-sn:1"),
		invalid(5, "ftp://nothing"),
	}

	got := ids(c.Sort(in))
	// Invalid items without a remark compare equal to everything invalid and keep input order.
	want := []int{1, 2, 0, 4, 3, 5}
	if !equalInts(got, want) {
		t.Fatalf("sorted ids = %v, want %v", got, want)
	}
}

func TestSort_StableForTies(t *testing.T) {
	c := NewComparator(language.Und)
	in := []domain.ClassifiedItem{
		invalid(0, "trojan://one#US-East-Tier1-sn:3"),
		item(1, "US-East-Tier1"),
		invalid(2, "trojan://two#US-East-Tier1-sn:3"),
		invalid(3, "ftp://a"),
		invalid(4, "ftp://b"),
		item(5, "US-East-Tier1"),
	}

	got := ids(c.Sort(in))
	want := []int{1, 5, 0, 2, 3, 4}
	if !equalInts(got, want) {
		t.Fatalf("sorted ids = %v, want %v", got, want)
	}
	if !equalInts(ids(in), []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("Sort must not mutate its input")
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	c := NewComparator(language.Und)
	all := []domain.ClassifiedItem{
		item(0, "US-East-Tier1"),
		item(1, "US-East-Tier1-flag:D"),
		item(2, "US-East-Tier1-sid:a"),
		item(3, "US-East-Tier1-sid:a-sn:4"),
		item(4, "US-West-Tier2-sid:b-sn:1"),
		item(5, "JP-East-Tier1"),
		item(6, "Plain"),
		item(7, "plain"),
		invalid(8, "ss://"),
		invalid(9, "trojan://h#A-B-Tier1-sn:1"),
	}

	for _, a := range all {
		for _, b := range all {
			ab, ba := c.Compare(a, b), c.Compare(b, a)
			if ab != -ba {
				t.Fatalf("compare(%d,%d)=%d but compare(%d,%d)=%d", a.ID, b.ID, ab, b.ID, a.ID, ba)
			}
			if ab < -1 || ab > 1 {
				t.Fatalf("compare must return -1, 0 or 1, got %d", ab)
			}
		}
	}

	for _, a := range all {
		for _, b := range all {
			for _, x := range all {
				if a.Status() != b.Status() || b.Status() != x.Status() {
					continue
				}
				if c.Compare(a, b) <= 0 && c.Compare(b, x) <= 0 && c.Compare(a, x) > 0 {
					t.Fatalf("not transitive for %d <= %d <= %d", a.ID, b.ID, x.ID)
				}
			}
		}
	}
}

func TestCompare_LocaleAware(t *testing.T) {
	c := NewComparator(language.Und)
	// Byte order would put "Zebra" before "apple".
	if got := c.Compare(item(0, "apple"), item(1, "Zebra")); got != -1 {
		t.Fatalf("expected collated order apple < Zebra, got %d", got)
	}
	if got := c.Compare(item(0, "éclair"), item(1, "fig")); got != -1 {
		t.Fatalf("expected accented letters to collate with their base, got %d", got)
	}
}
