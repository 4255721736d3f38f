package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/nodesort/internal/domain"
	"github.com/aalvaropc/nodesort/internal/usecase/order"
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	list  list.Model
	items []domain.ClassifiedItem

	loading bool
	dirty   bool
	toast   string
	err     error
	width   int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, nodeDelegate{theme: t}, 0, 0)
	l.Title = "nodesort"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		log:     log,
		list:    l,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadLinks(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(msg.Width-4, msg.Height-8)
		m.list.SetDelegate(nodeDelegate{theme: m.theme, maxWidth: msg.Width - 8})
		return m, nil

	case linksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.toast = userMessage(msg.err)
			m.log.Error("tui.load_failed", "path", msg.path, "err", msg.err)
			return m, nil
		}
		m.err = nil
		m.dirty = false
		m.toast = fmt.Sprintf("Loaded %d links", len(msg.items))
		m.log.Info("tui.loaded", "path", msg.path, "count", len(msg.items))
		cmd := m.setItems(msg.items, 0)
		return m, cmd

	case linksWrittenMsg:
		if msg.err != nil {
			m.err = msg.err
			m.toast = userMessage(msg.err)
			m.log.Error("tui.write_failed", "path", msg.path, "err", msg.err)
			return m, nil
		}
		m.err = nil
		m.dirty = false
		m.toast = fmt.Sprintf("Saved %d links", msg.count)
		m.log.Info("tui.written", "path", msg.path, "count", msg.count)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "K", "shift+up":
			return m.move(-1)
		case "J", "shift+down":
			return m.move(1)
		case "s":
			return m.sort()
		case "w":
			if m.loading {
				return m, nil
			}
			m.toast = "Saving..."
			return m, cmdWriteLinks(m.deps, m.items)
		case "r":
			m.loading = true
			m.toast = "Reloading..."
			return m, cmdLoadLinks(m.deps)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// move shifts the selected item by delta positions.
func (m model) move(delta int) (tea.Model, tea.Cmd) {
	from := m.list.Index()
	to := from + delta
	if m.loading || len(m.items) == 0 || to < 0 || to >= len(m.items) {
		return m, nil
	}

	ids, err := order.Move(idsOf(m.items), from, to)
	if err == nil {
		var next []domain.ClassifiedItem
		next, err = order.Reorder(m.items, ids)
		if err == nil {
			m.dirty = true
			m.toast = ""
			cmd := m.setItems(next, to)
			return m, cmd
		}
	}
	m.toast = userMessage(err)
	m.log.Error("tui.move_failed", "from", from, "to", to, "err", err)
	return m, nil
}

func (m model) sort() (tea.Model, tea.Cmd) {
	if m.loading || m.deps.Sorter == nil {
		return m, nil
	}
	sorted := m.deps.Sorter.Sort(m.items)
	m.dirty = true
	m.toast = "Sorted"
	m.log.Debug("tui.sorted", "count", len(sorted))
	cmd := m.setItems(sorted, 0)
	return m, cmd
}

func (m *model) setItems(items []domain.ClassifiedItem, selected int) tea.Cmd {
	m.items = items
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, nodeItem{item: it, previewLen: m.deps.PreviewLen})
	}
	cmd := m.list.SetItems(li)
	m.list.Select(selected)
	return cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("nodesort"))
	b.WriteString("  ")
	b.WriteString(m.theme.Subtitle.Render(m.deps.Path))
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.theme.Card.Render("Loading..."))
	case m.err != nil && len(m.items) == 0:
		b.WriteString(m.theme.Card.Render(m.theme.Invalid.Render(userMessage(m.err))))
	default:
		b.WriteString(m.theme.Card.Render(m.list.View()))
	}
	b.WriteString("\n")

	s := domain.NewNodeList(m.items).Summary
	status := fmt.Sprintf("ruled %d  unruled %d  invalid %d", s.Ruled, s.Unruled, s.Invalid)
	if m.dirty {
		status += "  (unsaved)"
	}
	b.WriteString(m.theme.Subtitle.Render(status))
	if m.toast != "" {
		b.WriteString("  ")
		b.WriteString(m.theme.Toast.Render(m.toast))
	}
	b.WriteString("\n")

	help := "↑/↓ select • K/J move • s sort • w write • r reload • q quit"
	if m.deps.Debug && m.deps.LogPath != "" {
		help += " • log: " + m.deps.LogPath
	}
	b.WriteString(m.theme.Help.Render(help))
	return b.String()
}

func idsOf(items []domain.ClassifiedItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

var _ tea.Model = model{}
