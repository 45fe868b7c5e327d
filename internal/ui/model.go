// Package ui is the terminal rendering surface of the showcase: a tab per
// category, a card grid, and a detail overlay for the selected card.
//
// The model never decides what is shown. It forwards user actions to the
// category's state.Controller and paints the resulting display.Model.
package ui

import (
	"errors"
	"fmt"

	"projects/showcase/internal/display"
	"projects/showcase/internal/domain"
	"projects/showcase/internal/service"
	"projects/showcase/internal/state"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
)

// Model is the root Bubble Tea model.
type Model struct {
	svc    *service.Service
	kinds  []domain.CatalogKind
	active int
	cursor map[domain.CatalogKind]int

	width  int
	height int
	status string
	help   help.Model
}

func New(svc *service.Service) Model {
	return Model{
		svc:    svc,
		kinds:  svc.Kinds(),
		cursor: make(map[domain.CatalogKind]int),
		width:  defaultWidth,
		height: defaultHeight,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) activeKind() domain.CatalogKind {
	if len(m.kinds) == 0 {
		return ""
	}
	return m.kinds[m.active]
}

func (m Model) controller() *state.Controller {
	ctrl, err := m.svc.Controller(m.activeKind())
	if err != nil {
		return nil
	}
	return ctrl
}

func (m Model) columns() int {
	return max(1, m.width/(cardWidth+3))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		ctrl := m.controller()
		if ctrl == nil {
			if key.Matches(msg, keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		if ctrl.Selection().OverlayOpen() {
			return m.updateOverlay(ctrl, msg)
		}
		return m.updateGrid(ctrl, msg)

	case tea.MouseMsg:
		ctrl := m.controller()
		if ctrl == nil || !ctrl.Selection().OverlayOpen() {
			return m, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && !m.insideOverlay(ctrl, msg.X, msg.Y) {
			ctrl.CloseOverlay()
		}
		return m, nil
	}

	return m, nil
}

// updateOverlay handles keys while the detail overlay is open. Keys other
// than close and like stay inside the overlay.
func (m Model) updateOverlay(ctrl *state.Controller, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		ctrl.CloseOverlay()
		m.status = ""
	case key.Matches(msg, keys.Like):
		if item, ok := ctrl.SelectedItem(); ok {
			m.like(ctrl, item.ID)
		}
	}
	return m, nil
}

func (m Model) updateGrid(ctrl *state.Controller, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := ctrl.View()
	kind := m.activeKind()
	cur := min(m.cursor[kind], max(0, len(view)-1))
	cols := m.columns()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextTab):
		m.active = (m.active + 1) % len(m.kinds)
		m.status = ""
		return m, nil
	case key.Matches(msg, keys.PrevTab):
		m.active = (m.active - 1 + len(m.kinds)) % len(m.kinds)
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.Left):
		cur = max(0, cur-1)
	case key.Matches(msg, keys.Right):
		cur = min(max(0, len(view)-1), cur+1)
	case key.Matches(msg, keys.Up):
		if cur-cols >= 0 {
			cur -= cols
		}
	case key.Matches(msg, keys.Down):
		if cur+cols < len(view) {
			cur += cols
		}

	case key.Matches(msg, keys.NextFilter):
		ctrl.CycleCategoryFilter(1)
		cur = 0
	case key.Matches(msg, keys.PrevFilter):
		ctrl.CycleCategoryFilter(-1)
		cur = 0
	case key.Matches(msg, keys.NextSort):
		ctrl.CycleSortKey(1)
		cur = 0
	case key.Matches(msg, keys.PrevSort):
		ctrl.CycleSortKey(-1)
		cur = 0

	case key.Matches(msg, keys.Open):
		if len(view) > 0 {
			item := view[cur]
			if err := ctrl.SelectItem(&item); err != nil {
				m.setError(err)
			}
		}
	case key.Matches(msg, keys.Like):
		if len(view) > 0 {
			m.like(ctrl, view[cur].ID)
		}
	}

	m.cursor[kind] = cur
	return m, nil
}

func (m *Model) like(ctrl *state.Controller, id int) {
	item, err := ctrl.Like(id)
	if err != nil {
		m.setError(err)
		return
	}
	m.status = fmt.Sprintf("♥ %s now has %d likes", item.Title, item.LikeCount)
}

func (m *Model) setError(err error) {
	if errors.Is(err, domain.ErrInvalidArgument) {
		m.status = "not available here"
	} else {
		m.status = err.Error()
	}
	log.Warnf("⚠️ %s: %v", m.activeKind(), err)
}

// insideOverlay reports whether screen cell (x, y) falls on the overlay box,
// which View centers on the screen.
func (m Model) insideOverlay(ctrl *state.Controller, x, y int) bool {
	model := display.Build(ctrl)
	if model.Detail == nil {
		return false
	}
	w, h := overlaySize(renderDetail(model))
	left := (m.width - w) / 2
	top := (m.height - h) / 2
	return x >= left && x < left+w && y >= top && y < top+h
}

// Cursor returns the highlighted card index of the active category.
func (m Model) Cursor() int {
	return m.cursor[m.activeKind()]
}

func (m Model) ActiveKind() domain.CatalogKind {
	return m.activeKind()
}
