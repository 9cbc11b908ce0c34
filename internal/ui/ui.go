package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reminders/internal/config"
	"reminders/internal/todo"
)

// Source provides the todo collection for the session.
type Source interface {
	FetchTodos(ctx context.Context) ([]todo.Todo, error)
}

type todosLoadedMsg struct {
	todos []todo.Todo
}

type loadFailedMsg struct {
	err error
}

type Model struct {
	ctx    context.Context
	src    Source
	keys   keyMap
	logger *slog.Logger

	state *State
	err   error

	input  textinput.Model
	help   help.Model
	width  int
	height int
}

func New(ctx context.Context, src Source, cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return Model{
		ctx:    ctx,
		src:    src,
		keys:   newKeyMap(cfg.Keys),
		logger: logger,
		input:  newInput(),
		help:   help.New(),
	}
}

// newInput is the edit box field. It only draws the buffer, so it has no
// prompt and no blinking cursor.
func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// LoadError is a failure to fetch the todo collection at startup.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load todos: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Run fetches the todos and drives the interactive session until the user
// quits. The terminal is in alt-screen raw mode only inside program.Run,
// which restores it on every return path, so callers can print errors
// afterwards. A fetch failure ends the program before any todo is drawn and
// is returned here as a *LoadError.
func Run(ctx context.Context, src Source, cfg config.Config, logger *slog.Logger) error {
	m := New(ctx, src, cfg, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	return sessionError(final)
}

// sessionError reports the load failure that ended the program, if any.
func sessionError(final tea.Model) error {
	if fm, ok := final.(Model); ok && fm.err != nil {
		return &LoadError{Err: fm.err}
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		todos, err := src.FetchTodos(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return todosLoadedMsg{todos: todos}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todosLoadedMsg:
		m.state = NewState(msg.todos)
		m.logger.Info("session started", "todos", len(msg.todos))
		return m, nil
	case loadFailedMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.state == nil {
			// The fetch may hang; quit must still work before the todos arrive.
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		m.logger.Debug("key", "key", msg.String(), "focus", m.state.Focus().String(), "mode", m.state.Mode().String())
		if quit := m.dispatch(msg); quit {
			return m, tea.Quit
		}
	}
	return m, nil
}

// dispatch applies one key press to the state and reports whether the
// session should end.
func (m Model) dispatch(msg tea.KeyMsg) bool {
	s := m.state
	if s.Mode() == ModeEdit {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			s.CancelEdit()
		case key.Matches(msg, m.keys.Backspace):
			s.Backspace()
		case msg.Type == tea.KeySpace:
			s.Type(' ')
		case msg.Type == tea.KeyRunes && !msg.Alt:
			s.Type(msg.Runes...)
		}
		return false
	}

	switch s.Focus() {
	case PaneList:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return true
		case key.Matches(msg, m.keys.Down):
			s.Advance()
		case key.Matches(msg, m.keys.Up):
			s.Retreat()
		case key.Matches(msg, m.keys.Confirm):
			if _, ok := s.Selected(); ok {
				s.SetFocus(PaneDetail)
			}
		}
	case PaneDetail:
		switch {
		case key.Matches(msg, m.keys.Down):
			s.Advance()
		case key.Matches(msg, m.keys.Up):
			s.Retreat()
		case key.Matches(msg, m.keys.Back):
			s.SetFocus(PaneList)
		case key.Matches(msg, m.keys.Confirm):
			s.EnterEdit()
		}
	}
	return false
}

func (m Model) View() string {
	if m.state == nil {
		if m.err != nil {
			return ""
		}
		return loadingView()
	}
	return render(m.state, m.width, m.height, m.input, m.helpLine())
}

// helpLine is shown in the edit box while it has nothing else to show.
func (m Model) helpLine() string {
	bindings := []key.Binding{m.keys.Down, m.keys.Up, m.keys.Confirm, m.keys.Quit}
	if m.state.Focus() == PaneDetail {
		edit := m.keys.Confirm
		edit.SetHelp(edit.Help().Key, "edit")
		bindings = []key.Binding{m.keys.Down, m.keys.Up, edit, m.keys.Back}
	}
	return m.help.ShortHelpView(bindings)
}
