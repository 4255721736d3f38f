package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// nodeItem adapts a classified item to bubbles/list.
type nodeItem struct {
	item       domain.ClassifiedItem
	previewLen int
}

func (n nodeItem) FilterValue() string {
	if r, ok := n.item.Remark(); ok {
		return r
	}
	return n.item.OriginalLink
}

// label is the one-line text shown for an item.
func (n nodeItem) label() string {
	switch c := n.item.Class.(type) {
	case domain.Ruled:
		return c.Remark
	case domain.Unruled:
		return c.Remark
	default:
		msg := "unknown error"
		if e, ok := n.item.Err(); ok {
			msg = e.Message()
		}
		return fmt.Sprintf("[error] %s - (%s)", msg, domain.Preview(n.item.OriginalLink, n.previewLen))
	}
}

type nodeDelegate struct {
	theme    Theme
	maxWidth int
}

func (d nodeDelegate) Height() int                             { return 1 }
func (d nodeDelegate) Spacing() int                            { return 0 }
func (d nodeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d nodeDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	n, ok := li.(nodeItem)
	if !ok {
		return
	}

	style := d.theme.Unruled
	switch n.item.Status() {
	case domain.StatusRuled:
		style = d.theme.Ruled
	case domain.StatusInvalid:
		style = d.theme.Invalid
	}

	cursor := "  "
	if index == m.Index() {
		cursor = d.theme.Selected.Render("> ")
	}

	text := n.label()
	if d.maxWidth > 0 {
		text = clampString(text, d.maxWidth)
	}
	fmt.Fprint(w, cursor+style.Render(text))
}

var _ list.ItemDelegate = nodeDelegate{}
