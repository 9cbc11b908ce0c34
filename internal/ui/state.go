package ui

import (
	"reminders/internal/todo"
)

// Pane is the cursor-bearing region that receives navigation keys.
type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

func (p Pane) String() string {
	if p == PaneDetail {
		return "detail"
	}
	return "list"
}

type Mode int

const (
	ModeNavigate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "navigate"
}

// Cursor is an optional index into a pane's rows.
type Cursor struct {
	index int
	set   bool
}

func cursorAt(i int) Cursor {
	return Cursor{index: i, set: true}
}

func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// State is everything the UI knows about the session. It is owned by the
// update loop and never shared.
type State struct {
	todos  []todo.Todo
	list   Cursor
	detail Cursor
	focus  Pane
	mode   Mode
	buffer []rune
}

func NewState(todos []todo.Todo) *State {
	s := &State{
		todos:  todos,
		detail: cursorAt(0),
		focus:  PaneList,
		mode:   ModeNavigate,
	}
	if len(todos) > 0 {
		s.list = cursorAt(0)
	}
	return s
}

// pane resolves the focused pane to its cursor, row bound and step. Detail
// rows come in label/value pairs, so the detail cursor moves two at a time.
func (s *State) pane() (c *Cursor, bound, step int) {
	if s.focus == PaneDetail {
		return &s.detail, todo.DetailItemCount, 2
	}
	return &s.list, len(s.todos), 1
}

// Advance moves the focused cursor forward, wrapping to the first row.
func (s *State) Advance() {
	c, n, step := s.pane()
	if n == 0 {
		return
	}
	i, ok := c.Index()
	switch {
	case !ok:
		i = 0
	case i >= n-step:
		i = 0
	default:
		i += step
	}
	*c = cursorAt(i)
}

// Retreat moves the focused cursor back, wrapping to the last row.
func (s *State) Retreat() {
	c, n, step := s.pane()
	if n == 0 {
		return
	}
	i, ok := c.Index()
	switch {
	case !ok:
		i = 0
	case i == 0:
		i = n - step
	default:
		i -= step
	}
	*c = cursorAt(i)
}

// SetFocus moves focus to p. The detail cursor always restarts at the top.
func (s *State) SetFocus(p Pane) {
	s.detail = cursorAt(0)
	s.focus = p
}

// EnterEdit switches to edit mode with an empty buffer. Only the detail pane
// can be edited.
func (s *State) EnterEdit() bool {
	if s.focus != PaneDetail || s.mode == ModeEdit {
		return false
	}
	s.buffer = s.buffer[:0]
	s.mode = ModeEdit
	return true
}

// CancelEdit returns to navigation. Nothing is written back to the todo.
func (s *State) CancelEdit() {
	s.mode = ModeNavigate
}

func (s *State) Type(r ...rune) {
	if s.mode != ModeEdit {
		return
	}
	s.buffer = append(s.buffer, r...)
}

func (s *State) Backspace() {
	if s.mode != ModeEdit || len(s.buffer) == 0 {
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
}

func (s *State) Todos() []todo.Todo { return s.todos }
func (s *State) Focus() Pane        { return s.focus }
func (s *State) Mode() Mode         { return s.mode }
func (s *State) Buffer() string     { return string(s.buffer) }
func (s *State) ListCursor() Cursor { return s.list }

func (s *State) DetailCursor() Cursor { return s.detail }

// Selected returns the todo under the list cursor.
func (s *State) Selected() (todo.Todo, bool) {
	i, ok := s.list.Index()
	if !ok || i >= len(s.todos) {
		return todo.Todo{}, false
	}
	return s.todos[i], true
}
