package ui

import (
	"bytes"
	"context"
	"testing"

	"projects/showcase/internal/domain"
	"projects/showcase/internal/fixture"
	"projects/showcase/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *service.Service) {
	t.Helper()
	svc := service.NewService(fixture.NewEmbeddedSource(), domain.CatalogKinds, service.InitialSelection{})
	require.NoError(t, svc.Load(context.Background()))

	m := New(svc)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Game Innovation Hub")
	assert.Contains(t, out, "Climate Change Simulator")
	assert.Contains(t, out, "Top Rated")
	assert.Contains(t, out, "All SDGs")
	assert.Equal(t, domain.CatalogKindGames, m.ActiveKind())
}

func TestModel_Tabs(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.CatalogKindWebsites, m.ActiveKind())
	assert.Contains(t, m.View(), "Urban Green Spaces Mapper")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.CatalogKindDigitalArt, m.ActiveKind())
}

func TestModel_SortAndFilter(t *testing.T) {
	m, svc := newTestModel(t)
	games, err := svc.Controller(domain.CatalogKindGames)
	require.NoError(t, err)

	m = send(t, m, runes("s"), runes("s"))
	assert.Equal(t, domain.SortMostViewed, games.Selection().SortKey)

	m = send(t, m, runes("f"))
	assert.Equal(t, domain.Tag("SDG 3: Good Health and Well-being"), games.Selection().CategoryFilter)
	assert.Contains(t, m.View(), "Snake Multiplayer")
	assert.NotContains(t, m.View(), "Climate Change Simulator")

	m = send(t, m, runes("F"))
	assert.Equal(t, domain.NoTag, games.Selection().CategoryFilter)
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_CursorMovement(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last card")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Cursor())
}

func TestModel_OverlayOpenClose(t *testing.T) {
	m, svc := newTestModel(t)
	games, err := svc.Controller(domain.CatalogKindGames)
	require.NoError(t, err)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	item, ok := games.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, 1, item.ID, "second card under top rated is Snake Multiplayer")
	assert.Contains(t, m.View(), "https://github.com/username/snake-multiplayer")

	// Keys that are not close or like stay inside the overlay.
	m = send(t, m, runes("s"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, games.Selection().OverlayOpen())
	assert.Equal(t, domain.SortTopRated, games.Selection().SortKey)
	assert.Equal(t, domain.CatalogKindGames, m.ActiveKind())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, games.Selection().OverlayOpen())
	assert.Contains(t, m.View(), "Game Innovation Hub")
}

func TestModel_OverlayMouse(t *testing.T) {
	m, svc := newTestModel(t)
	games, err := svc.Controller(domain.CatalogKindGames)
	require.NoError(t, err)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, games.Selection().OverlayOpen())

	inside := tea.MouseMsg{X: 60, Y: 20, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m = send(t, m, inside)
	assert.True(t, games.Selection().OverlayOpen(), "clicks inside the overlay do not close it")

	outside := tea.MouseMsg{X: 0, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	send(t, m, outside)
	assert.False(t, games.Selection().OverlayOpen())
}

func TestModel_Like(t *testing.T) {
	m, svc := newTestModel(t)
	games, err := svc.Controller(domain.CatalogKindGames)
	require.NoError(t, err)

	m = send(t, m, runes("+"))
	item, ok := games.Catalog().Item(2)
	require.True(t, ok)
	assert.Equal(t, int64(79), item.LikeCount)
	assert.Contains(t, m.View(), "now has 79 likes")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("L"))
	item, _ = games.SelectedItem()
	assert.Equal(t, int64(80), item.LikeCount)
	assert.True(t, games.Selection().OverlayOpen())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyTab}, runes("+"))
	assert.Contains(t, m.View(), "not available here")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPrint(t *testing.T) {
	_, svc := newTestModel(t)

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, svc.Models()))

	out := buf.String()
	assert.Contains(t, out, "🎮 Game Innovation Hub")
	assert.Contains(t, out, "🎨 Digital Art")
	assert.Contains(t, out, "Filter: All SDGs | Sort: Top Rated")
	assert.Contains(t, out, "♥ 78")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Climate Change Simulator")),
		bytes.Index(buf.Bytes(), []byte("Snake Multiplayer")))
}
