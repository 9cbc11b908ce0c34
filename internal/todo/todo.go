package todo

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DueDateLayout is the date-time format Shortcuts uses for reminder due dates.
const DueDateLayout = "Jan 2, 2006 15:04"

// DetailItemCount is the number of rows in the detail pane: five label/value pairs.
const DetailItemCount = 10

type Completion bool

const (
	Uncompleted Completion = false
	Completed   Completion = true
)

// ParseCompletion maps "Yes" to Completed. Anything else, including
// malformed input, is Uncompleted.
func ParseCompletion(text string) Completion {
	return Completion(text == "Yes")
}

func (c Completion) Icon() string {
	if c {
		return "[x]"
	}
	return "[ ]"
}

func (c Completion) String() string {
	if c {
		return "Completed"
	}
	return "Uncompleted"
}

func (c *Completion) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*c = ParseCompletion(s)
	return nil
}

type DueDate struct {
	Time time.Time
	Set  bool
}

// ParseError reports a due date that does not match DueDateLayout.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid due date %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseDueDate returns an unset DueDate for empty text.
func ParseDueDate(text string) (DueDate, error) {
	if text == "" {
		return DueDate{}, nil
	}
	t, err := time.Parse(DueDateLayout, text)
	if err != nil {
		return DueDate{}, &ParseError{Text: text, Err: err}
	}
	return DueDate{Time: t, Set: true}, nil
}

func (d DueDate) String() string {
	if !d.Set {
		return ""
	}
	return d.Time.Format(DueDateLayout)
}

func (d *DueDate) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDueDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Todo struct {
	Title     string     `yaml:"title"`
	Completed Completion `yaml:"is_completed"`
	Due       DueDate    `yaml:"due_date"`
	List      string     `yaml:"list"`
	Tags      []string   `yaml:"tags"`
	Note      string     `yaml:"note"`
}

// FormatTags renders tags as "#a, #b".
func FormatTags(tags []string) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, ", ")
}

// Row is the main list representation: icon, list, title, tags.
func (t Todo) Row() []string {
	return []string{t.Completed.Icon(), t.List, t.Title, FormatTags(t.Tags)}
}

// NoteHeight is the number of terminal rows the note occupies.
func (t Todo) NoteHeight() int {
	return strings.Count(t.Note, "\n") + 1
}

// Headers are the main list column titles, matching Row.
func Headers() []string {
	return []string{"", "list", "description", "tags"}
}

type payload struct {
	Todos []Todo `yaml:"todos"`
}

// Decode parses the GetTodos document. A bad due date anywhere fails the
// whole load.
func Decode(data []byte) ([]Todo, error) {
	var p payload
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Todos == nil {
		return []Todo{}, nil
	}
	return p.Todos, nil
}
