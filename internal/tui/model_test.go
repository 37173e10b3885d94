package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nimblemo/bodygraph/internal/catalog"
	"github.com/nimblemo/bodygraph/internal/chart"
	"github.com/nimblemo/bodygraph/internal/ephemeris"
)

// movingSun advances the Sun at the mean solar rate so the design solver can
// bracket a root; every other body is pinned.
type movingSun struct{}

func (movingSun) Longitude(body ephemeris.Body, jd float64) (float64, error) {
	if body == ephemeris.Sun {
		return math.Mod(jd*360.0/365.25, 360.0), nil
	}
	return float64(body) * 20.0, nil
}

func testModel(t *testing.T) Model {
	t.Helper()

	cat, err := catalog.Load("", "en")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	in := chart.Input{Year: 1990, Month: 5, Day: 15, Hour: 14, Minute: 30, UTCOffset: 3.0}
	return New(in, movingSun{}, cat, "")
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	if m.Language != "en" {
		t.Errorf("language = %q, want en", m.Language)
	}
	if m.ready {
		t.Error("model ready before first WindowSizeMsg")
	}
	if got := m.View(); !strings.Contains(got, "loading") {
		t.Errorf("pre-size view = %q", got)
	}
}

func TestUpdateWindowSize(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.viewport.Width != 80 || m.viewport.Height != 22 {
		t.Errorf("viewport = %dx%d, want 80x22", m.viewport.Width, m.viewport.Height)
	}
	if got := m.View(); !strings.Contains(got, "quit") {
		t.Errorf("view missing key help footer: %q", got)
	}
}

func TestUpdateQuit(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit key returned %T, want tea.QuitMsg", cmd())
	}
}

func TestComputeCmd(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	msg, ok := m.computeCmd()().(msgChart)
	if !ok {
		t.Fatalf("computeCmd returned %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("compute failed: %v", msg.err)
	}
	if msg.chart == nil {
		t.Fatal("compute returned no chart")
	}
}

func TestUpdateChartMsg(t *testing.T) {
	t.Parallel()

	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m = next.(Model)

	msg := m.computeCmd()().(msgChart)
	next, _ = m.Update(msg)
	m = next.(Model)

	if got := m.View(); !strings.Contains(got, "Bodygraph Chart") {
		t.Errorf("view missing chart header after msgChart")
	}
}
