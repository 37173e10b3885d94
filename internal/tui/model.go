// Package tui is an interactive chart viewer. It renders one chart in a
// scrollable viewport and hot-reloads the catalog when a catalog file in the
// data directory changes, so name edits show up without restarting.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/chart"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
	"github.com/nimblemo/bodygraph/internal/render"
)

// KeyMap defines the viewer's key bindings.
type KeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recompute"),
		),
	}
}

// MsgCatalogChanged reports that a catalog file was rewritten on disk.
type MsgCatalogChanged struct{ Language string }

// Model is the root BubbleTea model.
type Model struct {
	Input    chart.Input
	Provider ephemeris.Provider
	DataDir  string
	Language string

	cat      *catalog.Catalog
	chart    *chart.Chart
	viewport viewport.Model
	keys     KeyMap
	watcher  *catalog.Watcher
	width    int
	height   int
	ready    bool
	err      error
}

// New creates a viewer for one birth input. The catalog must already be
// loaded and validated; the chart is computed in Init.
func New(in chart.Input, p ephemeris.Provider, cat *catalog.Catalog, dataDir string) Model {
	return Model{
		Input:    in,
		Provider: p,
		DataDir:  dataDir,
		Language: cat.Language,
		cat:      cat,
		keys:     DefaultKeyMap(),
	}
}

// Init computes the chart and, when a data directory is configured, starts
// the catalog watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.computeCmd()}
	if m.DataDir != "" {
		cmds = append(cmds, m.watchCmd())
	}
	return tea.Batch(cmds...)
}

type msgChart struct {
	chart *chart.Chart
	err   error
}

func (m Model) computeCmd() tea.Cmd {
	in, p, angles := m.Input, m.Provider, m.cat.AngleTable()
	return func() tea.Msg {
		c, err := chart.Assemble(p, in, angles)
		return msgChart{chart: c, err: err}
	}
}

// watchCmd starts the fsnotify watcher and forwards its first change; the
// update loop re-issues the wait after each message.
func (m Model) watchCmd() tea.Cmd {
	return func() tea.Msg {
		w, err := catalog.NewWatcher(m.DataDir)
		if err != nil {
			return nil
		}
		if err := w.Start(); err != nil {
			return nil
		}
		return msgWatcherReady{watcher: w}
	}
}

type msgWatcherReady struct{ watcher *catalog.Watcher }

func waitForChange(w *catalog.Watcher) tea.Cmd {
	return func() tea.Msg {
		lang, ok := <-w.Changes
		if !ok {
			return nil
		}
		return MsgCatalogChanged{Language: lang}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.watcher != nil {
				m.watcher.Stop()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.computeCmd()
		}

	case msgChart:
		m.chart, m.err = msg.chart, msg.err
		m.refreshContent()
		return m, nil

	case msgWatcherReady:
		m.watcher = msg.watcher
		return m, waitForChange(m.watcher)

	case MsgCatalogChanged:
		if msg.Language == m.Language {
			if cat, err := catalog.Load(m.DataDir, m.Language); err == nil {
				m.cat = cat
			}
			m.refreshContent()
		}
		return m, waitForChange(m.watcher)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.viewport.SetContent(styleError.Render(fmt.Sprintf("chart failed: %v", m.err)))
	case m.chart != nil:
		m.viewport.SetContent(render.Text(m.chart, m.cat))
	default:
		m.viewport.SetContent("computing…")
	}
}

var (
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleFooter = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// View renders the viewport over a one-line key help footer.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	footer := styleFooter.Render("q quit · r recompute · ↑/↓ scroll")
	return m.viewport.View() + "\n" + footer
}
