// Package classify turns raw links into classified items by combining the
// link decoder with the remark rule parser.
package classify

import (
	"errors"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/usecase/remark"
)

// RemarkDecoder extracts the remark from a raw link.
type RemarkDecoder interface {
	Decode(link string) (string, error)
}

type Classifier struct {
	decoder RemarkDecoder
}

func New(d RemarkDecoder) *Classifier {
	return &Classifier{decoder: d}
}

// Classify is pure: the same link always yields the same item.
func (c *Classifier) Classify(link domain.Link) domain.ClassifiedItem {
	item := domain.ClassifiedItem{
		ID:           link.ID,
		OriginalLink: link.Raw,
	}

	rm, err := c.decoder.Decode(link.Raw)
	if err != nil {
		item.Class = domain.Invalid{Err: asLinkError(err)}
		return item
	}
	if rm == "" {
		item.Class = domain.Invalid{Err: &domain.LinkError{Kind: domain.LinkRemarkMissing}}
		return item
	}

	parsed, ok := remark.Parse(rm)
	switch {
	case !ok:
		item.Class = domain.Unruled{Remark: rm}
	case parsed.SN != nil && parsed.SID == nil:
		item.Class = domain.Invalid{
			Remark: rm,
			Err:    &domain.LinkError{Kind: domain.LinkRuleConflict},
		}
	default:
		item.Class = domain.Ruled{Remark: rm, Parsed: parsed}
	}
	return item
}

// ClassifyText rebuilds the full item list from raw input text.
func (c *Classifier) ClassifyText(text string) []domain.ClassifiedItem {
	links := domain.SplitLinks(text)
	out := make([]domain.ClassifiedItem, 0, len(links))
	for _, l := range links {
		out = append(out, c.Classify(l))
	}
	return out
}

func asLinkError(err error) *domain.LinkError {
	var le *domain.LinkError
	if errors.As(err, &le) {
		return le
	}
	return &domain.LinkError{Kind: domain.LinkDecodeFailed, Err: err}
}
