package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/version"
)

func (m Model) View() string {
	if m.loadErr != nil {
		return m.unavailableView()
	}
	if m.loading || m.sess == nil {
		return m.theme.Hint.Render("Loading dataset…")
	}

	parts := []string{
		m.renderTopBar(),
		m.renderInputs(),
		m.renderBanner(),
	}
	if m.res.Empty {
		parts = append(parts, m.theme.Warning.Render("No tweets match that filter."))
	} else {
		if msg := m.renderLocator(); msg != "" {
			parts = append(parts, msg)
		}
		parts = append(parts,
			m.renderStats(),
			"",
			m.renderTabs(),
			m.renderPage(m.res.Page(m.tab)),
		)
	}
	parts = append(parts, m.statusBar(), m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) unavailableView() string {
	msg := m.loadErr.Error()
	var le *dataset.LoadError
	if errors.As(m.loadErr, &le) {
		msg = fmt.Sprintf("%s\n\n%s", le.Path, le.Err)
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Error.Render("Dataset unavailable"),
		"",
		msg,
		"",
		m.theme.Hint.Render("Set dataset.path in the config or pass --file.  q to quit"),
	)
	return m.theme.Border.Render(content)
}

func (m Model) renderTopBar() string {
	title := fmt.Sprintf("%s • split bill sentiment", version.Short())
	right := fmt.Sprintf("%s  |  %d shown", m.source, m.res.Stats.Total)
	return m.theme.Title.Render(title) + "  " + m.theme.Label.Render(right)
}

func (m Model) renderInputs() string {
	labels := [3]string{"Filter", "Exclude", "Locate"}
	fields := make([]string, len(labels))
	for i, label := range labels {
		style := m.theme.Label
		if m.mode == mode(i+1) {
			style = m.theme.Header
		}
		fields[i] = style.Render(label+": ") + m.inputs[i].View()
	}
	return strings.Join(fields, "   ")
}

// renderBanner states whether the view is filtered.
func (m Model) renderBanner() string {
	q := m.res.Query
	if !m.res.FilterActive {
		return m.theme.Success.Render("Showing ALL data")
	}
	var parts []string
	if q.Include != "" {
		parts = append(parts, fmt.Sprintf("containing %q", q.Include))
	}
	if q.Exclude != "" {
		parts = append(parts, fmt.Sprintf("without %q", q.Exclude))
	}
	return m.theme.Info.Render("Filter mode: showing tweets " + strings.Join(parts, " and "))
}

func (m Model) renderLocator() string {
	if !m.res.Locating {
		return ""
	}
	loc := m.res.Location
	kw := m.res.Query.Locate
	if !loc.Found {
		return m.theme.Error.Render(fmt.Sprintf("%q was not found in the data currently shown", kw))
	}
	return m.theme.Success.Render(fmt.Sprintf("Found %q first at row %d, page %d", kw, loc.Rank, loc.Page)) +
		"  " + m.theme.Hint.Render(fmt.Sprintf("enter: go to page %d", loc.Page))
}

func (m Model) renderStats() string {
	s := m.res.Stats
	parts := []string{m.theme.Value.Render(fmt.Sprintf("Total %d", s.Total))}
	for _, l := range []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral} {
		parts = append(parts, m.labelStyle(l).Render(
			fmt.Sprintf("%s %d (%.1f%%)", l, s.Count(l), s.Percent(l))))
	}
	if s.HasMean() {
		parts = append(parts, fmt.Sprintf("mean %s (%s)",
			utils.FormatScore(sentiment.RoundScore(s.Mean)), m.labelStyle(s.MeanLabel()).Render(s.MeanLabel().String())))
	}
	return strings.Join(parts, m.theme.Hint.Render(" · "))
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(sentiment.Subsets))
	for i, sub := range sentiment.Subsets {
		name := fmt.Sprintf("%d %s (%d)", i+1, sub, m.res.Page(sub).TotalRows)
		if sub == m.tab {
			tabs[i] = m.theme.TabActive.Render(name)
		} else {
			tabs[i] = m.theme.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPage(p session.Page) string {
	if p.Empty {
		return m.theme.Hint.Render("No data.")
	}

	textWidth := max(m.width-34, 20)
	rows := make([][]string, len(p.Rows))
	for i, r := range p.Rows {
		text := utils.Truncate(r.Text, textWidth)
		if !r.HasText {
			text = m.theme.Hint.Render("(no text)")
		}
		rows[i] = []string{
			strconv.Itoa(r.Rank),
			text,
			m.labelStyle(r.Label).Render(r.Label.String()),
			utils.FormatScore(r.Score),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(m.theme.Label).
		Headers("No", "Tweet", "Label", "Score").
		Rows(rows...).
		StyleFunc(m.cellStyle)

	prev, next := "← prev", "next →"
	if p.CanPrev {
		prev = m.theme.Value.Render(prev)
	} else {
		prev = m.theme.Hint.Render(prev)
	}
	if p.CanNext {
		next = m.theme.Value.Render(next)
	} else {
		next = m.theme.Hint.Render(next)
	}
	info := fmt.Sprintf("Page %d of %d (Total: %d rows)", p.Current, p.TotalPages, p.TotalRows)
	nav := strings.Join([]string{prev, m.pager.View(), next, m.theme.Label.Render(info)}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), nav)
}

// headerRow is the StyleFunc row index of the table header.
const headerRow = 0

func (m Model) cellStyle(row, col int) lipgloss.Style {
	if row == headerRow {
		return m.theme.Header.Copy().Padding(0, 1)
	}
	return lipgloss.NewStyle().Padding(0, 1)
}

func (m Model) statusBar() string {
	md := "BROWSE"
	switch m.mode {
	case modeInclude:
		md = "FILTER"
	case modeExclude:
		md = "EXCLUDE"
	case modeLocate:
		md = "LOCATE"
	}
	line := fmt.Sprintf("%s | %s | %d rows per page", md, m.tab, m.pageSize)
	if m.status != "" {
		line += "   |   " + m.status
	}
	return m.theme.StatusBar.Render(line)
}

func (m Model) labelStyle(l sentiment.Label) lipgloss.Style {
	switch l {
	case sentiment.Positive:
		return m.theme.Positive
	case sentiment.Negative:
		return m.theme.Negative
	default:
		return m.theme.Neutral
	}
}
