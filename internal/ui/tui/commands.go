package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/nodesort/internal/domain"
)

// cmdLoadLinks reads the link file and rebuilds the classified list.
func cmdLoadLinks(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Store == nil || deps.Classifier == nil {
			return linksLoadedMsg{path: deps.Path, err: errors.New("link store or classifier is nil")}
		}

		text, err := deps.Store.ReadLinks(deps.Path)
		if err != nil {
			return linksLoadedMsg{path: deps.Path, err: err}
		}
		return linksLoadedMsg{path: deps.Path, items: deps.Classifier.ClassifyText(text)}
	}
}

// cmdWriteLinks writes items back in their current order.
func cmdWriteLinks(deps Deps, items []domain.ClassifiedItem) tea.Cmd {
	text := domain.JoinLinks(items)
	count := len(items)
	return func() tea.Msg {
		if deps.Store == nil {
			return linksWrittenMsg{path: deps.Path, err: errors.New("link store is nil")}
		}
		err := deps.Store.WriteLinks(deps.Path, text)
		return linksWrittenMsg{path: deps.Path, count: count, err: err}
	}
}
