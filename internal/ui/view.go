package ui

import (
	"fmt"
	"strings"

	"projects/showcase/internal/display"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	ctrl := m.controller()
	if ctrl == nil {
		return mutedStyle.Render("No catalogs loaded. Press q to quit.")
	}

	model := display.Build(ctrl)

	if model.Detail != nil {
		box := renderDetail(model)
		footer := m.help.View(overlayKeys{likes: model.HasLikes})
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box) +
			"\n" + footer
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(model.Title))
	b.WriteString("\n")
	b.WriteString(renderControls(model))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid(model))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(gridKeys{likes: model.HasLikes}))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.kinds))
	for i, kind := range m.kinds {
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(kind.GetCategoryName()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderControls(model display.Model) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		controlLabelStyle.Render("Filter "),
		controlValueStyle.Render(display.SelectedLabel(model.FilterOptions)),
		controlLabelStyle.Render("   Sort "),
		controlValueStyle.Render(display.SelectedLabel(model.SortOptions)),
	)
}

func (m Model) renderGrid(model display.Model) string {
	if len(model.Cards) == 0 {
		return mutedStyle.Render("No projects match this filter.")
	}

	cols := m.columns()
	cur := m.cursor[model.Kind]

	var rows []string
	for start := 0; start < len(model.Cards); start += cols {
		end := min(start+cols, len(model.Cards))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(model.Cards[i], i == cur))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c display.Card, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	inner := cardWidth - 2
	title := cardTitleStyle.Render(truncate(c.Title, inner-6))
	rating := ratingStyle.Render("★ " + c.Rating)
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(rating))

	lines := []string{
		title + strings.Repeat(" ", gap) + rating,
		mutedStyle.Render(truncate(c.Description, inner*2)),
	}
	if c.Author != "" {
		lines = append(lines, mutedStyle.Render("by "+c.Author))
	}
	lines = append(lines, tagStyle.Render(truncate(c.Tag, inner)))

	stats := mutedStyle.Render(fmt.Sprintf("%d views", c.Views))
	if c.Likes != nil {
		stats += "  " + likeStyle.Render(fmt.Sprintf("♥ %d", *c.Likes))
	}
	lines = append(lines, stats)

	return style.Render(strings.Join(lines, "\n"))
}

func renderDetail(model display.Model) string {
	d := model.Detail

	lines := []string{
		cardTitleStyle.Render(d.Title),
		"",
		d.Description,
		"",
		fmt.Sprintf("%s %s", controlLabelStyle.Render("Rating "), ratingStyle.Render("★ "+d.Rating)),
		fmt.Sprintf("%s %d", controlLabelStyle.Render("Views  "), d.Views),
		fmt.Sprintf("%s %s", controlLabelStyle.Render("SDG    "), tagStyle.Render(d.TagCode)),
		fmt.Sprintf("%s %s", controlLabelStyle.Render("Created"), d.CreatedAt),
	}
	if d.Author != "" {
		lines = append(lines, fmt.Sprintf("%s %s", controlLabelStyle.Render("Author "), d.Author))
	}
	if d.Likes != nil {
		lines = append(lines, fmt.Sprintf("%s %s", controlLabelStyle.Render("Likes  "), likeStyle.Render(fmt.Sprintf("♥ %d", *d.Likes))))
	}
	if d.GitHubLink != "" {
		lines = append(lines, fmt.Sprintf("%s %s", controlLabelStyle.Render("GitHub "), d.GitHubLink))
	}
	if d.HostedLink != "" {
		lines = append(lines, fmt.Sprintf("%s %s", controlLabelStyle.Render("Demo   "), d.HostedLink))
	}
	if d.Thumbnail != "" {
		lines = append(lines, "", mutedStyle.Render(truncate(d.Thumbnail, 56)))
	}

	return overlayStyle.Render(strings.Join(lines, "\n"))
}

func overlaySize(box string) (int, int) {
	return lipgloss.Width(box), lipgloss.Height(box)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
