package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminders/internal/todo"
)

func sampleTodos(n int) []todo.Todo {
	todos := make([]todo.Todo, n)
	for i := range todos {
		todos[i] = todo.Todo{
			Title: string(rune('A' + i)),
			List:  "Inbox",
		}
	}
	return todos
}

func listIndex(t *testing.T, s *State) int {
	t.Helper()
	i, ok := s.ListCursor().Index()
	require.True(t, ok, "list cursor should be set")
	return i
}

func detailIndex(t *testing.T, s *State) int {
	t.Helper()
	i, ok := s.DetailCursor().Index()
	require.True(t, ok, "detail cursor should be set")
	return i
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(sampleTodos(3))
	assert.Equal(t, 0, listIndex(t, s))
	assert.Equal(t, 0, detailIndex(t, s))
	assert.Equal(t, PaneList, s.Focus())
	assert.Equal(t, ModeNavigate, s.Mode())
	assert.Equal(t, "", s.Buffer())

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "A", sel.Title)
}

func TestAdvanceWrapsAfterFullCycle(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s := NewState(sampleTodos(n))
		for start := 0; start < n; start++ {
			s.list = cursorAt(start)
			for k := 0; k < n; k++ {
				s.Advance()
			}
			assert.Equal(t, start, listIndex(t, s), "n=%d start=%d", n, start)
		}
	}

	s := NewState(sampleTodos(1))
	s.SetFocus(PaneDetail)
	for start := 0; start < todo.DetailItemCount; start += 2 {
		s.detail = cursorAt(start)
		for k := 0; k < todo.DetailItemCount/2; k++ {
			s.Advance()
		}
		assert.Equal(t, start, detailIndex(t, s), "detail start=%d", start)
	}
}

func TestAdvanceAndRetreatBoundaries(t *testing.T) {
	s := NewState(sampleTodos(3))
	s.Retreat()
	assert.Equal(t, 2, listIndex(t, s), "retreat from the first row jumps to the last")
	s.Advance()
	assert.Equal(t, 0, listIndex(t, s), "advance from the last row wraps to the first")

	s.SetFocus(PaneDetail)
	s.Retreat()
	assert.Equal(t, 8, detailIndex(t, s))
	s.Advance()
	assert.Equal(t, 0, detailIndex(t, s))
	s.Advance()
	assert.Equal(t, 2, detailIndex(t, s))
}

func TestRetreatInvertsAdvance(t *testing.T) {
	s := NewState(sampleTodos(5))
	for i := 0; i < 5; i++ {
		s.list = cursorAt(i)
		s.Advance()
		s.Retreat()
		assert.Equal(t, i, listIndex(t, s))
		s.Retreat()
		s.Advance()
		assert.Equal(t, i, listIndex(t, s))
	}

	s.SetFocus(PaneDetail)
	for i := 0; i < todo.DetailItemCount; i += 2 {
		s.detail = cursorAt(i)
		s.Advance()
		s.Retreat()
		assert.Equal(t, i, detailIndex(t, s))
		s.Retreat()
		s.Advance()
		assert.Equal(t, i, detailIndex(t, s))
	}
}

func TestNavigationOnlyMovesFocusedCursor(t *testing.T) {
	s := NewState(sampleTodos(3))
	s.Advance()
	assert.Equal(t, 1, listIndex(t, s))
	assert.Equal(t, 0, detailIndex(t, s))

	s.SetFocus(PaneDetail)
	s.Advance()
	s.Advance()
	assert.Equal(t, 4, detailIndex(t, s))
	assert.Equal(t, 1, listIndex(t, s))
}

func TestSetFocusResetsDetailCursor(t *testing.T) {
	s := NewState(sampleTodos(3))
	s.SetFocus(PaneDetail)
	s.Advance()
	s.Advance()
	require.Equal(t, 4, detailIndex(t, s))

	s.SetFocus(PaneList)
	assert.Equal(t, 0, detailIndex(t, s))
	assert.Equal(t, PaneList, s.Focus())

	s.detail = cursorAt(6)
	s.SetFocus(PaneList)
	assert.Equal(t, 0, detailIndex(t, s), "reset applies even when focus does not change")
}

func TestEnterEditOnlyFromDetail(t *testing.T) {
	s := NewState(sampleTodos(2))
	assert.False(t, s.EnterEdit())
	assert.Equal(t, ModeNavigate, s.Mode())

	s.SetFocus(PaneDetail)
	assert.True(t, s.EnterEdit())
	assert.Equal(t, ModeEdit, s.Mode())
	assert.False(t, s.EnterEdit(), "already editing")

	s.CancelEdit()
	assert.Equal(t, ModeNavigate, s.Mode())
	assert.Equal(t, PaneDetail, s.Focus())
}

func TestEditBuffer(t *testing.T) {
	s := NewState(sampleTodos(1))
	s.SetFocus(PaneDetail)
	require.True(t, s.EnterEdit())

	s.Backspace()
	assert.Equal(t, "", s.Buffer(), "backspace on empty buffer is a no-op")

	s.Type('a', 'b')
	s.Backspace()
	s.Type('c')
	assert.Equal(t, "ac", s.Buffer())

	s.Type('é')
	s.Backspace()
	assert.Equal(t, "ac", s.Buffer(), "backspace removes a whole rune")

	s.CancelEdit()
	s.Type('z')
	assert.Equal(t, "ac", s.Buffer(), "typing outside edit mode is ignored")

	require.True(t, s.EnterEdit())
	assert.Equal(t, "", s.Buffer(), "re-entering edit mode starts with an empty buffer")
}

func TestEmptyCollectionNavigationIsSafe(t *testing.T) {
	s := NewState(nil)
	_, ok := s.ListCursor().Index()
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		s.Advance()
		s.Retreat()
	})
	_, ok = s.ListCursor().Index()
	assert.False(t, ok, "empty list keeps an unset cursor")

	_, ok = s.Selected()
	assert.False(t, ok)

	s.SetFocus(PaneDetail)
	assert.NotPanics(t, func() {
		s.Advance()
		s.Retreat()
	})
	assert.Equal(t, 0, detailIndex(t, s))
}

func TestAdvanceFromUnsetCursorStartsAtTop(t *testing.T) {
	s := NewState(sampleTodos(3))
	s.list = Cursor{}
	s.Advance()
	assert.Equal(t, 0, listIndex(t, s))

	s.list = Cursor{}
	s.Retreat()
	assert.Equal(t, 0, listIndex(t, s))
}
