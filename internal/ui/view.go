package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"reminders/internal/todo"
)

const (
	detailHeight = 20
	editHeight   = 3
	editTitle    = "Modify"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Reverse(true)
	editingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func loadingView() string {
	return "Fetching todos from Shortcuts…"
}

// render lays the state out as three stacked panes: the todo list takes
// whatever height is left, the detail pane and edit box are fixed.
func render(s *State, width, height int, input textinput.Model, hint string) string {
	listHeight := height - detailHeight - editHeight
	if height <= 0 {
		listHeight = len(s.Todos()) + 1
	}
	panes := make([]string, 0, 3)
	if listHeight > 0 {
		panes = append(panes, renderList(s, width, listHeight))
	}
	panes = append(panes, renderDetail(s, width), renderEdit(s, width, input, hint))
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

// columnWidths mirrors the list header: icon, list, description, tags.
// Each of the first three includes one column of spacing.
func columnWidths(width int) []int {
	const icon, list, minTags = 4, 11, 25
	if width <= 0 {
		return []int{icon, list, 41, minTags}
	}
	rest := width - icon - list
	desc := rest * 80 / 100
	tags := rest - desc
	if tags < minTags {
		tags = minTags
		desc = rest - tags
	}
	if desc < 1 {
		desc = 1
	}
	return []int{icon, list, desc, tags}
}

// scrollOffset keeps the cursor row inside a window of visible rows.
func scrollOffset(cursor, visible int) int {
	if visible <= 0 || cursor < visible {
		return 0
	}
	return cursor - visible + 1
}

func renderList(s *State, width, height int) string {
	if height <= 0 {
		return ""
	}
	todos := s.Todos()
	cur, hasCursor := s.ListCursor().Index()
	offset := 0
	if hasCursor {
		offset = scrollOffset(cur, height-1)
	}
	end := min(len(todos), offset+max(height-1, 0))

	widths := columnWidths(width)
	rows := make([][]string, 0, end-offset)
	for _, t := range todos[offset:end] {
		cells := t.Row()
		for i := range cells {
			cells[i] = fit(cells[i], widths[i], i < len(widths)-1)
		}
		rows = append(rows, cells)
	}
	headers := todo.Headers()
	for i := range headers {
		headers[i] = fit(headers[i], widths[i], i < len(widths)-1)
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Width(widths[col])
			if row == table.HeaderRow {
				return headerStyle.Width(widths[col])
			}
			idx := offset + row
			if idx < len(todos) && bool(todos[idx].Completed) {
				st = st.Faint(true)
			}
			// The list row under the cursor is highlighted whether or not
			// the list has focus; only the detail pane is focus-gated.
			if hasCursor && idx == cur {
				st = st.Inherit(highlightStyle)
			}
			return st
		})

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(t.Render())
}

// fit truncates s to the column width, reserving one cell of spacing when
// gap is set.
func fit(s string, width int, gap bool) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if gap {
		width--
	}
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// fitLines truncates each line of s to width so a value never wraps onto
// extra rows. A non-positive width leaves s alone.
func fitLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = fit(l, width, false)
	}
	return strings.Join(lines, "\n")
}

// highlightedPair is the detail pair drawn highlighted. Unlike the list
// cursor row, it only shows while the detail pane has focus.
func highlightedPair(s *State) (int, bool) {
	if s.Focus() != PaneDetail {
		return 0, false
	}
	i, ok := s.DetailCursor().Index()
	return i / 2, ok
}

type detailField struct {
	label string
	value string
}

func detailFields(t todo.Todo) []detailField {
	return []detailField{
		{"Title", t.Title},
		{"List", t.List},
		{"Status", t.Completed.String()},
		{"Tags", todo.FormatTags(t.Tags)},
		{"Note", t.Note},
	}
}

func renderDetail(s *State, width int) string {
	var lines []string
	if t, ok := s.Selected(); ok {
		sel, highlight := highlightedPair(s)
		for i, f := range detailFields(t) {
			label := labelStyle
			value := lipgloss.NewStyle()
			if width > 0 {
				label = label.Width(width)
				value = value.Width(width)
			}
			if highlight && i == sel {
				label = label.Inherit(highlightStyle)
				value = value.Inherit(highlightStyle)
			}
			lines = append(lines, label.Render("["+f.label+"]"), value.Render(fitLines(f.value, width)))
		}
	}

	pane := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		Height(detailHeight - 1).
		MaxHeight(detailHeight)
	if width > 0 {
		pane = pane.Width(width)
	}
	return pane.Render(strings.Join(lines, "\n"))
}

func renderEdit(s *State, width int, input textinput.Model, hint string) string {
	inner := width - 2
	if width <= 0 {
		inner = 40
	}

	editing := s.Mode() == ModeEdit
	var content string
	switch {
	case editing:
		input.Width = max(inner-1, 0)
		input.TextStyle = editingStyle
		input.SetValue(s.Buffer())
		input.Focus()
		input.CursorEnd()
		content = input.View()
	case s.Buffer() != "":
		content = runewidth.Truncate(s.Buffer(), inner, "…")
	default:
		content = ansi.Truncate(hint, inner, "…")
	}

	border := lipgloss.NormalBorder()
	top := border.TopLeft + editTitle + strings.Repeat(border.Top, max(inner-runewidth.StringWidth(editTitle), 0)) + border.TopRight
	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		Width(inner).
		MaxHeight(editHeight - 1)
	if editing {
		top = editingStyle.Render(top)
		body = body.BorderForeground(editingStyle.GetForeground())
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body.Render(content))
}
