package classify

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/usecase/decode"
	"github.com/google/go-cmp/cmp"
)

func vmess(json string) string {
	return "vmess://" + base64.StdEncoding.EncodeToString([]byte(json))
}

func newClassifier() *Classifier {
	return New(decode.New())
}

func TestClassify_VmessRuled(t *testing.T) {
	link := vmess(`{"ps":"US-East-Tier1"}`)
	items := newClassifier().ClassifyText(link)

	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	want := domain.ClassifiedItem{
		ID:           0,
		OriginalLink: link,
		Class: domain.Ruled{
			Remark: "US-East-Tier1",
			Parsed: domain.ParsedRemark{Country: "US", Region: "East", Tier: 1},
		},
	}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Fatalf("item mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_VlessUnruled(t *testing.T) {
	item := newClassifier().Classify(domain.Link{ID: 4, Raw: "vless://host:443?x=1#My%20Node"})

	if item.Status() != domain.StatusUnruled {
		t.Fatalf("expected unruled, got %s", item.Status())
	}
	if r, _ := item.Remark(); r != "My Node" {
		t.Fatalf("unexpected remark %q", r)
	}
	if item.ID != 4 {
		t.Fatalf("expected id to come from the link")
	}
}

func TestClassify_EmptySSIsInvalid(t *testing.T) {
	item := newClassifier().Classify(domain.Link{Raw: "ss://"})

	if item.Status() != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %s", item.Status())
	}
	e, ok := item.Err()
	if !ok {
		t.Fatalf("expected error")
	}
	if e.Kind != domain.LinkRemarkMissing && e.Kind != domain.LinkDecodeFailed {
		t.Fatalf("unexpected kind %s", e.Kind)
	}
}

func TestClassify_RuleConflict(t *testing.T) {
	item := newClassifier().Classify(domain.Link{Raw: "trojan://pw@h:443#US-East-Tier1-sn:3"})

	if item.Status() != domain.StatusInvalid {
		t.Fatalf("expected invalid, got %s", item.Status())
	}
	e, _ := item.Err()
	if e == nil || e.Kind != domain.LinkRuleConflict {
		t.Fatalf("expected rule conflict, got %v", e)
	}
	if e.Message() != "rule conflict: sn requires sid" {
		t.Fatalf("unexpected message %q", e.Message())
	}
	if r, ok := item.Remark(); !ok || r != "US-East-Tier1-sn:3" {
		t.Fatalf("expected remark retained, got %q", r)
	}
	if _, ok := item.Parsed(); ok {
		t.Fatalf("conflicting remark must not be ruled")
	}
}

func TestClassify_DecodeErrorsBecomeInvalid(t *testing.T) {
	cases := []struct {
		link string
		msg  string
	}{
		{"http://example.com", "unsupported link protocol"},
		{"vmess://%%%", "link decode failure"},
		{"vless://uuid@h:443", "could not extract remark"},
	}
	c := newClassifier()
	for _, tc := range cases {
		item := c.Classify(domain.Link{Raw: tc.link})
		e, ok := item.Err()
		if !ok {
			t.Errorf("%q: expected invalid item", tc.link)
			continue
		}
		if e.Message() != tc.msg {
			t.Errorf("%q: message %q, want %q", tc.link, e.Message(), tc.msg)
		}
		if _, ok := item.Remark(); ok {
			t.Errorf("%q: decode failure must not carry a remark", tc.link)
		}
	}
}

type stubDecoder struct {
	remark string
	err    error
}

func (s stubDecoder) Decode(string) (string, error) { return s.remark, s.err }

func TestClassify_ForeignDecoderErrorsMapToDecodeFailed(t *testing.T) {
	item := New(stubDecoder{err: errors.New("boom")}).Classify(domain.Link{Raw: "x"})
	e, ok := item.Err()
	if !ok || e.Kind != domain.LinkDecodeFailed {
		t.Fatalf("expected decode failure, got %+v", item)
	}

	item = New(stubDecoder{}).Classify(domain.Link{Raw: "x"})
	e, ok = item.Err()
	if !ok || e.Kind != domain.LinkRemarkMissing {
		t.Fatalf("expected missing remark for empty decode, got %+v", item)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := newClassifier()
	links := []string{
		vmess(`{"ps":"US-East-Tier1-sid:a-sn:1"}`),
		"vless://h#Plain",
		"ss://",
		"trojan://h#A-B-Tier1-sn:1",
		"foo",
	}
	for _, l := range links {
		a := c.Classify(domain.Link{ID: 1, Raw: l})
		b := c.Classify(domain.Link{ID: 1, Raw: l})
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("classify(%q) not idempotent:\n%s", l, diff)
		}
	}
}

func TestClassify_SNWithoutSIDNeverRuled(t *testing.T) {
	c := newClassifier()
	remarks := []string{
		"US-East-Tier1-sn:0",
		"US-East-Tier1-sn:3-flag:D",
		"A-B-Tier9-sn:12",
	}
	for _, r := range remarks {
		item := c.Classify(domain.Link{Raw: "vless://h#" + r})
		if item.Status() == domain.StatusRuled {
			t.Errorf("%q must not be ruled", r)
		}
		if e, ok := item.Err(); !ok || e.Kind != domain.LinkRuleConflict {
			t.Errorf("%q: expected rule conflict", r)
		}
	}
}

func TestClassifyText_IDsFollowSurvivingLines(t *testing.T) {
	text := "vless://h#one\n\n  \nvless://h#two\nbogus\n"
	items := newClassifier().ClassifyText(text)

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, it := range items {
		if it.ID != i {
			t.Fatalf("item %d has id %d", i, it.ID)
		}
	}
	if items[2].Status() != domain.StatusInvalid {
		t.Fatalf("expected bogus line to be invalid, not dropped")
	}
}
