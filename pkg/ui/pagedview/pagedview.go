// Package pagedview provides a Bubble Tea component for a horizontally paged
// view. It wraps a [paging.Controller]: key presses become animated seeks,
// mouse wheel input becomes raw drag deltas, and released flings resolve
// through the controller's physics. The component renders the current and
// next page side by side, shifted by the fractional page offset.
package pagedview

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/flick/pkg/paging"
)

const (
	// chromeHeight is the number of rows reserved below the page content for
	// the status line and the pagination dots.
	chromeHeight = 2

	// wheelDelta is the drag distance of one mouse wheel notch, in cells.
	wheelDelta = 3

	// flingSpeed is the velocity of a key-triggered fling, in pages per
	// second.
	flingSpeed = 2.5

	frameInterval = time.Second / 60
)

type (
	// PageSettledMsg reports that motion has stopped on a new page. It is
	// emitted once per settled page, with consecutive duplicates suppressed.
	PageSettledMsg struct {
		Page int
	}

	frameMsg      time.Time
	motionDoneMsg struct{}
)

// Model is the paged view component.
type Model struct {
	ctrl        *paging.Controller
	pages       []string
	keys        KeyMap
	paginator   paginator.Model
	width       int
	height      int
	lastSettled int
}

// New creates a paged view over the given page contents.
func New(ctrl *paging.Controller, pages []string) Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = fuchsiaFg("•")
	p.InactiveDot = grayFg("◦")
	p.SetTotalPages(max(len(pages), 1))

	return Model{
		ctrl:        ctrl,
		pages:       pages,
		keys:        DefaultKeyMap(),
		paginator:   p,
		lastSettled: ctrl.Page(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if m.ctrl.InMotion() {
			return m, m.tick()
		}

		return m, nil

	case motionDoneMsg:
		return m.handleMotionDone()

	case PageSettledMsg:
		slog.Debug("page settled", slog.Int("page", msg.Page))

		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	last := max(m.ctrl.PageCount()-1, 0)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.startMotion(m.animateTo(min(m.ctrl.Page()+1, last)))

	case key.Matches(msg, m.keys.Prev):
		return m, m.startMotion(m.animateTo(max(m.ctrl.Page()-1, 0)))

	case key.Matches(msg, m.keys.First):
		return m, m.startMotion(m.animateTo(0))

	case key.Matches(msg, m.keys.Last):
		return m, m.startMotion(m.animateTo(last))

	case key.Matches(msg, m.keys.FlingFwd):
		return m, m.startMotion(m.fling(flingSpeed * m.pageSize()))

	case key.Matches(msg, m.keys.FlingBack):
		return m, m.startMotion(m.fling(-flingSpeed * m.pageSize()))
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	// Wheel input is direct manipulation: it applies immediately, even while
	// an animation owns the exclusivity gate.
	switch msg.Button { //nolint:exhaustive // Only wheel buttons scroll.
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.ctrl.Dispatch(-wheelDelta)

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.ctrl.Dispatch(wheelDelta)
	}

	return m, nil
}

func (m Model) handleMotionDone() (Model, tea.Cmd) {
	page := m.ctrl.Page()
	m.paginator.Page = page

	if page == m.lastSettled {
		return m, nil
	}
	m.lastSettled = page

	return m, func() tea.Msg {
		return PageSettledMsg{Page: page}
	}
}

// SetSize updates the component dimensions and pushes the new page size to
// the controller.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h

	if err := m.ctrl.SetPageSize(float64(w)); err != nil {
		slog.Error("set page size", slog.Any("err", err))
	}
}

// Controller exposes the underlying position controller.
func (m Model) Controller() *paging.Controller {
	return m.ctrl
}

// startMotion launches a blocking controller operation in a command and
// starts the frame ticker that re-renders while the motion is in flight.
func (m Model) startMotion(motion tea.Cmd) tea.Cmd {
	return tea.Batch(motion, m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) animateTo(page int) tea.Cmd {
	ctrl := m.ctrl

	return func() tea.Msg {
		err := ctrl.AnimateScrollToPage(context.Background(), page, 0, 0)
		if err != nil {
			slog.Error("animate to page", slog.Int("page", page), slog.Any("err", err))
		}

		return motionDoneMsg{}
	}
}

func (m Model) fling(velocity float64) tea.Cmd {
	ctrl := m.ctrl

	return func() tea.Msg {
		_, err := ctrl.Fling(context.Background(), velocity, nil)
		if err != nil {
			slog.Error("fling", slog.Any("err", err))
		}

		return motionDoneMsg{}
	}
}

func (m Model) pageSize() float64 {
	return math.Max(m.ctrl.PageSize(), 1)
}

func (m Model) statusView() string {
	p := m.paginator
	p.Page = m.ctrl.Page()

	status := statusStyle.Render(fmt.Sprintf(
		"page %d/%d", m.ctrl.Page()+1, max(m.ctrl.PageCount(), 1),
	))

	dots := p.View()
	if ansi.PrintableRuneWidth(dots) > m.width {
		// If the dot pagination is wider than available space, use arabic
		// numerals.
		p.Type = paginator.Arabic
		dots = p.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dots),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, status),
	)
}
