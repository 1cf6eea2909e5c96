package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact, FormatQuiet:
		return f, nil
	}
	return FormatDefault, fmt.Errorf("unknown format %q (want default, table, json, csv, compact or quiet)", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}

	return &RenderConfig{
		Format: FormatDefault,
		Width:  width,
		Color:  true,
	}
}

// Row is one record line for output.
type Row struct {
	Rank     int     `json:"rank"`
	Position int     `json:"position"`
	Text     string  `json:"text"`
	Missing  bool    `json:"missing_text,omitempty"`
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
}

// PageList is one page of a subset with its paging metadata.
type PageList struct {
	Subset     string            `json:"subset"`
	Rows       []Row             `json:"rows"`
	Total      int               `json:"total"`
	Page       int               `json:"page,omitempty"`
	PerPage    int               `json:"per_page,omitempty"`
	TotalPages int               `json:"total_pages,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Rank      lipgloss.Style
	Label     lipgloss.Style
	Score     lipgloss.Style
	Text      lipgloss.Style
	Missing   lipgloss.Style
	Header    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	color     bool
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}

	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

// Styles exposes the renderer's style set for callers printing their own
// lines next to rendered output.
func (r *Renderer) Styles() *Styles { return r.styles }

// initStyles initializes the style set
func initStyles(color bool) *Styles {
	styles := &Styles{color: color}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Rank = lipgloss.NewStyle().Faint(true)
		styles.Label = lipgloss.NewStyle().Bold(true)
		styles.Score = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Text = lipgloss.NewStyle()
		styles.Missing = lipgloss.NewStyle().Faint(true).Italic(true)
		styles.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CBA6F7"))
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	} else {
		// Monochrome styles
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.Rank = lipgloss.NewStyle()
		styles.Label = lipgloss.NewStyle().Bold(true)
		styles.Score = lipgloss.NewStyle()
		styles.Text = lipgloss.NewStyle()
		styles.Missing = lipgloss.NewStyle()
		styles.Header = lipgloss.NewStyle().Bold(true)
		styles.Success = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
	}

	return styles
}

// LabelStyle returns the style for a sentiment label name.
func (s *Styles) LabelStyle(label string) lipgloss.Style {
	if !s.color {
		return s.Label
	}
	return s.Label.Copy().Foreground(ColorForLabel(label))
}

// RenderPageList renders a page according to the configured format
func (r *Renderer) RenderPageList(list *PageList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list)
	case FormatCompact:
		return r.renderCompact(list)
	case FormatQuiet:
		return r.renderQuiet(list)
	default:
		return r.renderDefault(list)
	}
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))
}

// pagination rebuilds paging info from the list; the page was already
// resolved, so the cursor is never reset here.
func (list *PageList) pagination() *PaginationInfo {
	page := list.Page
	return NewPagination(list.Total, list.PerPage, &page)
}

// renderDefault renders rows one block per record
func (r *Renderer) renderDefault(list *PageList) (string, error) {
	var builder strings.Builder

	// Header
	builder.WriteString(r.styles.Title.Render(list.Subset + " tweets"))
	if f := formatFilters(list.Filters); f != "" {
		builder.WriteString("  ")
		builder.WriteString(r.styles.Meta.Render(f))
	}
	builder.WriteString("\n")
	builder.WriteString(r.separator())
	builder.WriteString("\n")

	if len(list.Rows) == 0 {
		builder.WriteString(r.styles.Warning.Render("No matching data."))
		builder.WriteString("\n")
		return builder.String(), nil
	}

	pagination := list.pagination()
	builder.WriteString(r.styles.Meta.Render(pagination.FormatSummary()))
	builder.WriteString("\n")
	builder.WriteString(r.separator())
	builder.WriteString("\n")

	for _, row := range list.Rows {
		builder.WriteString(r.renderSingleRow(row))
		builder.WriteString(r.separator())
		builder.WriteString("\n")
	}

	if nav := pagination.FormatNavigation(); nav != "" {
		builder.WriteString(r.styles.Meta.Render(nav))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// renderSingleRow renders a single record: meta line, then text
func (r *Renderer) renderSingleRow(row Row) string {
	var builder strings.Builder

	meta := []string{
		r.styles.Rank.Render(fmt.Sprintf("#%d", row.Rank)),
		r.styles.LabelStyle(row.Label).Render(row.Label),
		r.styles.Score.Render(FormatScore(row.Score)),
	}
	builder.WriteString(strings.Join(meta, "  "))
	builder.WriteString("\n")

	if row.Missing {
		builder.WriteString(r.styles.Missing.Render("  (no text)"))
	} else {
		builder.WriteString(r.styles.Text.Render("  " + row.Text))
	}
	builder.WriteString("\n")

	return builder.String()
}

// renderJSON renders the page as JSON
func (r *Renderer) renderJSON(list *PageList) (string, error) {
	if list.Rows == nil {
		list.Rows = []Row{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// renderCSV renders the page as CSV
func (r *Renderer) renderCSV(list *PageList) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	if err := w.Write([]string{"rank", "position", "text", "label", "score"}); err != nil {
		return "", err
	}
	for _, row := range list.Rows {
		record := []string{
			strconv.Itoa(row.Rank),
			strconv.Itoa(row.Position),
			row.Text,
			row.Label,
			FormatScore(row.Score),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return builder.String(), nil
}

// tableHeaderRow is the row index lipgloss/table passes to StyleFunc for
// the header; data rows start at 1.
const tableHeaderRow = 0

func (r *Renderer) cellStyle(row, col int) lipgloss.Style {
	if row == tableHeaderRow {
		return r.styles.Header.Copy().Padding(0, 1)
	}
	return lipgloss.NewStyle().Padding(0, 1)
}

// renderTable renders the page as a bordered table
func (r *Renderer) renderTable(list *PageList) (string, error) {
	textWidth := max(r.config.Width-36, 20)

	rows := make([][]string, 0, len(list.Rows))
	for _, row := range list.Rows {
		rows = append(rows, []string{
			strconv.Itoa(row.Rank),
			Truncate(row.Text, textWidth),
			row.Label,
			FormatScore(row.Score),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Separator).
		Headers("#", "Tweet", "Sentiment", "Score").
		Rows(rows...).
		StyleFunc(r.cellStyle)

	var builder strings.Builder
	builder.WriteString(t.Render())
	builder.WriteString("\n")
	if p := list.pagination(); p != nil {
		builder.WriteString(r.styles.Meta.Render(p.FormatSummary()))
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// renderCompact renders one line per record
func (r *Renderer) renderCompact(list *PageList) (string, error) {
	var builder strings.Builder

	for _, row := range list.Rows {
		line := fmt.Sprintf("%s %s %s %s",
			r.styles.Rank.Render(fmt.Sprintf("%4d", row.Rank)),
			r.styles.LabelStyle(row.Label).Render(runewidth.FillRight(row.Label, 8)),
			r.styles.Score.Render(fmt.Sprintf("%8s", FormatScore(row.Score))),
			Truncate(row.Text, max(r.config.Width-24, 20)))
		builder.WriteString(line)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// renderQuiet renders only the tweet text (for scripting)
func (r *Renderer) renderQuiet(list *PageList) (string, error) {
	var builder strings.Builder

	for _, row := range list.Rows {
		builder.WriteString(row.Text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// FormatScore prints a display score with four decimals.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

// Truncate flattens newlines and cuts s to width terminal cells.
func Truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "…")
}

func formatFilters(filters map[string]string) string {
	var parts []string
	for _, key := range []string{"include", "exclude"} {
		if v := filters[key]; v != "" {
			parts = append(parts, fmt.Sprintf("%s: %q", key, v))
		}
	}
	return strings.Join(parts, "  ")
}

// ColorForLabel returns the accent color of a sentiment label.
func ColorForLabel(label string) lipgloss.Color {
	switch strings.ToLower(label) {
	case "positive":
		return lipgloss.Color("#A6E3A1") // green
	case "negative":
		return lipgloss.Color("#F38BA8") // red
	default:
		return lipgloss.Color("#94E2D5") // teal
	}
}
