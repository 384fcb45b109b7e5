package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tasksync/internal/app/viewsync"
	"github.com/jsamuelsen11/tasksync/internal/domain/query"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// fakeController records the operations the UI asks for.
type fakeController struct {
	snap    viewsync.Snapshot
	query   query.State
	calls   []string
	filters []task.Filter
	drafts  []task.Draft
	ids     []int64
	ctxs    []context.Context
}

func (f *fakeController) record(ctx context.Context, call string) {
	f.calls = append(f.calls, call)
	f.ctxs = append(f.ctxs, ctx)
}

func (f *fakeController) Snapshot() viewsync.Snapshot { return f.snap }
func (f *fakeController) Query() query.State { return f.query }
func (f *fakeController) Start(ctx context.Context) { f.record(ctx, "Start") }
func (f *fakeController) Refresh(ctx context.Context) { f.record(ctx, "Refresh") }
func (f *fakeController) NextPage(ctx context.Context) { f.record(ctx, "NextPage") }
func (f *fakeController) PrevPage(ctx context.Context) { f.record(ctx, "PrevPage") }
func (f *fakeController) SetDraft(d task.Draft) { f.drafts = append(f.drafts, d) }
func (f *fakeController) ToggleStatus(ctx context.Context, id int64) {
	f.record(ctx, "ToggleStatus")
	f.ids = append(f.ids, id)
}

func (f *fakeController) RemoveTask(ctx context.Context, id int64) {
	f.record(ctx, "RemoveTask")
	f.ids = append(f.ids, id)
}

func (f *fakeController) ChangeFilter(ctx context.Context, flt task.Filter) {
	f.record(ctx, "ChangeFilter")
	f.filters = append(f.filters, flt)
}

func (f *fakeController) SubmitNewTask(ctx context.Context, d task.Draft) {
	f.record(ctx, "SubmitNewTask")
	f.drafts = append(f.drafts, d)
}

type fakeTheme struct{ dark bool }

func (t *fakeTheme) DarkMode() bool { return t.dark }
func (t *fakeTheme) ToggleDarkMode() bool {
	t.dark = !t.dark
	return t.dark
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to m and runs the returned command synchronously.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd != nil {
		cmd()
	}
	return next.(Model)
}

func sampleSnapshot(version uint64) viewsync.Snapshot {
	return viewsync.Snapshot{
		Version: version,
		Tasks: []task.Task{
			{ID: 9, Title: "Write report", Category: "work", Status: task.StatusPending},
			{ID: 8, Title: "Buy milk", Category: "home", Status: task.StatusDone},
		},
		Page:       0,
		TotalPages: 2,
		PageSize:   5,
	}
}

// pageClient serves one fixed page and accepts every write.
type pageClient struct{ page query.Page }

func (c pageClient) List(context.Context, task.Filter, int, int) (query.Page, error) {
	return c.page, nil
}

func (c pageClient) Create(_ context.Context, d task.Draft) (task.Task, error) {
	return task.Task{ID: 1, Title: d.Title, Status: task.StatusPending}, nil
}

func (c pageClient) Update(_ context.Context, t task.Task) (task.Task, error) { return t, nil }
func (c pageClient) Delete(context.Context, int64) error { return nil }

func newTestModel() (Model, *fakeController, *fakeTheme) {
	ctrl := &fakeController{query: query.New(5)}
	theme := &fakeTheme{}
	m := New(context.Background(), ctrl, theme, "ada")
	return m, ctrl, theme
}

func TestModel_InitStartsController(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	cmd := m.Init()
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []string{"Start"}, ctrl.calls)
}

func TestModel_RendersSnapshot(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()

	m = press(t, m, SnapshotMsg(sampleSnapshot(1)))
	view := m.View()

	assert.Contains(t, view, "Tasks for ada")
	assert.Contains(t, view, "[ ] Write report (work)")
	assert.Contains(t, view, "[x] Buy milk (home)")
	assert.Contains(t, view, "Page 1 of 2")
}

func TestModel_DropsStaleSnapshots(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()

	m = press(t, m, SnapshotMsg(sampleSnapshot(5)))
	stale := sampleSnapshot(3)
	stale.Tasks = nil
	m = press(t, m, SnapshotMsg(stale))

	assert.Len(t, m.snap.Tasks, 2)
}

func TestModel_ShowsErrorAndLoading(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()

	s := sampleSnapshot(1)
	s.Loading = true
	m = press(t, m, SnapshotMsg(s))
	assert.Contains(t, m.View(), "Loading...")

	s = sampleSnapshot(2)
	s.Error = "Cannot reach the task server."
	m = press(t, m, SnapshotMsg(s))
	assert.Contains(t, m.View(), "Cannot reach the task server.")
}

func TestModel_ToggleAndRemoveUseSelectedTask(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()
	m = press(t, m, SnapshotMsg(sampleSnapshot(1)))

	m = press(t, m, runes("j"))
	m = press(t, m, runes("t"))
	m = press(t, m, runes("k"))
	press(t, m, runes("d"))

	assert.Equal(t, []string{"ToggleStatus", "RemoveTask"}, ctrl.calls)
	assert.Equal(t, []int64{8, 9}, ctrl.ids)
}

func TestModel_ToggleOnEmptyPageDoesNothing(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	press(t, m, runes("t"))

	assert.Empty(t, ctrl.calls)
}

func TestModel_StatusFilterCycles(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	press(t, m, runes("s"))
	ctrl.query = ctrl.query.WithFilter(ctrl.filters[0])
	press(t, m, runes("s"))
	ctrl.query = ctrl.query.WithFilter(ctrl.filters[1])
	press(t, m, runes("s"))

	assert.Equal(t, []task.Filter{
		{Status: task.StatusPending},
		{Status: task.StatusDone},
		{},
	}, ctrl.filters)
}

func TestModel_CategoryFilterKeepsStatus(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()
	ctrl.query = ctrl.query.WithFilter(task.Filter{Status: task.StatusDone})

	m = press(t, m, runes("c"))
	require.Equal(t, modeCategory, m.mode)
	for _, r := range "work" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []task.Filter{{Status: task.StatusDone, Category: "work"}}, ctrl.filters)
}

func TestModel_PagingAndRefresh(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	m = press(t, m, runes("n"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	press(t, m, runes("r"))

	assert.Equal(t, []string{"NextPage", "PrevPage", "Refresh"}, ctrl.calls)
}

func TestModel_EachActionGetsItsOwnCorrelationID(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	m = press(t, m, runes("r"))
	press(t, m, runes("r"))

	require.Len(t, ctrl.ctxs, 2)
	first := httpclient.CorrelationIDFromContext(ctrl.ctxs[0])
	second := httpclient.CorrelationIDFromContext(ctrl.ctxs[1])
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestModel_NewTaskFormSubmits(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	m = press(t, m, runes("a"))
	require.Equal(t, modeForm, m.mode)
	for _, r := range "Call mom" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "home" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, []string{"SubmitNewTask"}, ctrl.calls)
	assert.Equal(t, task.Draft{Title: "Call mom", Category: "home"}, ctrl.drafts[0])
	assert.True(t, m.submitting)

	// A successful round trip closes the form.
	m = press(t, m, SnapshotMsg(sampleSnapshot(1)))
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.form[fieldTitle].Value())
}

func TestModel_NewTaskFormStaysOpenOnError(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()

	m = press(t, m, runes("a"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	failed := sampleSnapshot(1)
	failed.Status = viewsync.Status{State: viewsync.StateError, Message: "Title is required"}
	failed.Error = "Title is required"
	m = press(t, m, SnapshotMsg(failed))

	assert.Equal(t, modeForm, m.mode)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Title is required")
}

func TestModel_EscKeepsDraft(t *testing.T) {
	t.Parallel()
	m, ctrl, _ := newTestModel()

	m = press(t, m, runes("a"))
	for _, r := range "Half" {
		m = press(t, m, runes(string(r)))
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, []task.Draft{{Title: "Half"}}, ctrl.drafts)
}

func TestModel_ThemeToggle(t *testing.T) {
	t.Parallel()
	m, _, theme := newTestModel()

	m = press(t, m, runes("D"))
	assert.True(t, theme.dark)
	assert.Contains(t, m.View(), "Tasks for ada")

	press(t, m, runes("D"))
	assert.False(t, theme.dark)
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()
	m, _, _ := newTestModel()

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProgram_EscWithLiveControllerKeepsEventLoopRunning(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := viewsync.New(pageClient{page: query.Page{
		Tasks:      []task.Task{{ID: 1, Title: "Buy milk", Status: task.StatusPending}},
		TotalPages: 1,
	}}, 5)

	p := tea.NewProgram(New(ctx, ctrl, &fakeTheme{}, "ada"),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	ctrl.OnChange(Listener(p))

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()
	go func() {
		p.Send(runes("a"))
		p.Send(runes("x"))
		p.Send(tea.KeyMsg{Type: tea.KeyEsc})
		p.Quit()
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		p.Kill()
		t.Fatal("event loop stopped after leaving the form")
	}

	assert.Eventually(t, func() bool {
		return ctrl.Snapshot().Draft == task.Draft{Title: "x"}
	}, time.Second, 10*time.Millisecond)
}
