// Package tui is the interactive terminal front end of the task view. It
// renders controller snapshots and turns key presses into controller
// operations; it holds no task state of its own.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasksync/internal/app/viewsync"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// Controller is the part of [viewsync.Controller] the terminal UI drives.
type Controller interface {
	Snapshot() viewsync.Snapshot
	Query() query.State
	Start(ctx context.Context)
	Refresh(ctx context.Context)
	ChangeFilter(ctx context.Context, f task.Filter)
	NextPage(ctx context.Context)
	PrevPage(ctx context.Context)
	SetDraft(d task.Draft)
	SubmitNewTask(ctx context.Context, d task.Draft)
	ToggleStatus(ctx context.Context, id int64)
	RemoveTask(ctx context.Context, id int64)
}

// Theme is the theme preference the UI reads and flips.
type Theme interface {
	DarkMode() bool
	ToggleDarkMode() bool
}

// SnapshotMsg delivers a controller snapshot to the program.
type SnapshotMsg viewsync.Snapshot

// Listener returns a [viewsync.Listener] that forwards snapshots to p.
// Send blocks until the event loop takes the message, so the model never
// calls a notifying controller method from Update; see [Model.run].
func Listener(p *tea.Program) viewsync.Listener {
	return func(s viewsync.Snapshot) {
		p.Send(SnapshotMsg(s))
	}
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeCategory
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldCount
)

// Model is the bubbletea model of the task view.
type Model struct {
	ctx      context.Context
	ctrl     Controller
	theme    Theme
	username string

	snap   viewsync.Snapshot
	cursor int

	mode       mode
	form       [fieldCount]textinput.Model
	focus      int
	submitting bool
	category   textinput.Model

	keys keyMap
	help help.Model
}

// New creates the model. ctx bounds every controller call made from the UI.
func New(ctx context.Context, ctrl Controller, theme Theme, username string) Model {
	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		theme:    theme,
		username: username,
		snap:     ctrl.Snapshot(),
		keys:     newKeyMap(),
		help:     help.New(),
	}

	placeholders := [fieldCount]string{"Title", "Description", "Category"}
	limits := [fieldCount]int{task.MaxTitleLength, task.MaxDescriptionLength, 50}
	for i := range m.form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.form[i] = ti
	}

	m.category = textinput.New()
	m.category.Placeholder = "category (empty for all)"
	m.category.Cursor.SetMode(cursor.CursorStatic)
	return m
}

// Init loads the first page.
func (m Model) Init() tea.Cmd {
	return m.run(m.ctrl.Start)
}

// Update handles snapshots and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		return m.applySnapshot(viewsync.Snapshot(msg)), nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeCategory:
			return m.updateCategory(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) applySnapshot(s viewsync.Snapshot) Model {
	if s.Version <= m.snap.Version && m.snap.Version != 0 {
		return m
	}
	m.snap = s
	m.cursor = min(m.cursor, max(len(s.Tasks)-1, 0))

	if m.submitting && !s.Loading {
		m.submitting = false
		if s.Status.State != viewsync.StateError {
			m.mode = modeList
			for i := range m.form {
				m.form[i].SetValue("")
			}
		}
	}
	return m
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.down):
		m.cursor = min(m.cursor+1, max(len(m.snap.Tasks)-1, 0))
	case key.Matches(msg, m.keys.next):
		return m, m.run(m.ctrl.NextPage)
	case key.Matches(msg, m.keys.prev):
		return m, m.run(m.ctrl.PrevPage)
	case key.Matches(msg, m.keys.refresh):
		return m, m.run(m.ctrl.Refresh)
	case key.Matches(msg, m.keys.status):
		f := m.ctrl.Query().Filter
		f.Status = nextStatus(f.Status)
		return m, m.run(func(ctx context.Context) { m.ctrl.ChangeFilter(ctx, f) })
	case key.Matches(msg, m.keys.category):
		m.mode = modeCategory
		m.category.SetValue(m.ctrl.Query().Filter.Category)
		return m, m.category.Focus()
	case key.Matches(msg, m.keys.add):
		return m.openForm()
	case key.Matches(msg, m.keys.toggle):
		if t, ok := m.selected(); ok {
			return m, m.run(func(ctx context.Context) { m.ctrl.ToggleStatus(ctx, t.ID) })
		}
	case key.Matches(msg, m.keys.remove):
		if t, ok := m.selected(); ok {
			return m, m.run(func(ctx context.Context) { m.ctrl.RemoveTask(ctx, t.ID) })
		}
	case key.Matches(msg, m.keys.theme):
		m.theme.ToggleDarkMode()
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = modeForm
	d := m.snap.Draft
	m.form[fieldTitle].SetValue(d.Title)
	m.form[fieldDescription].SetValue(d.Description)
	m.form[fieldCategory].SetValue(d.Category)
	m.focus = fieldTitle
	return m, m.focusField()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		d := m.draft()
		return m, m.run(func(context.Context) { m.ctrl.SetDraft(d) })
	case tea.KeyTab, tea.KeyShiftTab:
		step := 1
		if msg.Type == tea.KeyShiftTab {
			step = fieldCount - 1
		}
		m.focus = (m.focus + step) % fieldCount
		return m, m.focusField()
	case tea.KeyEnter:
		if m.submitting {
			return m, nil
		}
		d := m.draft()
		m.submitting = true
		return m, m.run(func(ctx context.Context) { m.ctrl.SubmitNewTask(ctx, d) })
	}

	var cmd tea.Cmd
	m.form[m.focus], cmd = m.form[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.category.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeList
		m.category.Blur()
		f := m.ctrl.Query().Filter
		f.Category = strings.TrimSpace(m.category.Value())
		return m, m.run(func(ctx context.Context) { m.ctrl.ChangeFilter(ctx, f) })
	}

	var cmd tea.Cmd
	m.category, cmd = m.category.Update(msg)
	return m, cmd
}

func (m *Model) focusField() tea.Cmd {
	for i := range m.form {
		m.form[i].Blur()
	}
	return m.form[m.focus].Focus()
}

func (m Model) draft() task.Draft {
	return task.Draft{
		Title:       m.form[fieldTitle].Value(),
		Description: m.form[fieldDescription].Value(),
		Category:    m.form[fieldCategory].Value(),
	}
}

func (m Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Tasks) {
		return task.Task{}, false
	}
	return m.snap.Tasks[m.cursor], true
}

// run performs op off the UI goroutine. Every controller call that
// notifies listeners goes through here. Each key press gets its own
// correlation ID so a write and the refresh it triggers share one.
// Results arrive as snapshots through the listener.
func (m Model) run(op func(context.Context)) tea.Cmd {
	ctx := httpclient.WithCorrelationID(m.ctx, uuid.NewString())
	return func() tea.Msg {
		op(ctx)
		return nil
	}
}

// nextStatus cycles all -> PENDING -> DONE -> all.
func nextStatus(s task.Status) task.Status {
	switch s {
	case "":
		return task.StatusPending
	case task.StatusPending:
		return task.StatusDone
	default:
		return ""
	}
}

// View renders the current snapshot.
func (m Model) View() string {
	p := paletteFor(m.theme.DarkMode())
	var b strings.Builder

	title := "Tasks"
	if m.username != "" {
		title += " for " + m.username
	}
	b.WriteString(p.title.Render(title))
	b.WriteString("\n")
	b.WriteString(p.muted.Render(filterLine(m.snap.Filter)))
	b.WriteString("\n\n")

	if len(m.snap.Tasks) == 0 {
		b.WriteString(p.muted.Render("No tasks."))
		b.WriteString("\n")
	}
	for i, t := range m.snap.Tasks {
		b.WriteString(m.renderTask(p, i, t))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.muted.Render(pageLine(m.snap)))
	b.WriteString("\n")

	switch {
	case m.snap.Loading:
		b.WriteString(p.muted.Render("Loading..."))
		b.WriteString("\n")
	case m.snap.Error != "":
		b.WriteString(p.err.Render(m.snap.Error))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeForm:
		b.WriteString("\n")
		b.WriteString(p.selected.Render("New task"))
		b.WriteString("\n")
		for i := range m.form {
			b.WriteString(m.form[i].View())
			b.WriteString("\n")
		}
		b.WriteString(p.muted.Render("tab next field, enter save, esc close"))
		b.WriteString("\n")
	case modeCategory:
		b.WriteString("\n")
		b.WriteString(m.category.View())
		b.WriteString("\n")
	default:
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	return p.frame.Render(b.String())
}

func (m Model) renderTask(p palette, i int, t task.Task) string {
	box := "[ ]"
	if t.Status == task.StatusDone {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s", box, t.Title)
	if t.Category != "" {
		line += " (" + t.Category + ")"
	}

	switch {
	case i == m.cursor:
		return p.selected.Render("> " + line)
	case t.Status == task.StatusDone:
		return "  " + p.done.Render(line)
	default:
		return "  " + line
	}
}

func filterLine(f task.Filter) string {
	status := "all"
	if f.Status != "" {
		status = f.Status.String()
	}
	category := "all"
	if f.Category != "" {
		category = f.Category
	}
	return fmt.Sprintf("status: %s  category: %s", status, category)
}

func pageLine(s viewsync.Snapshot) string {
	if s.TotalPages == 0 {
		return "Page 1 of 1"
	}
	return fmt.Sprintf("Page %d of %d", s.Page+1, s.TotalPages)
}
