package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen11/tasksync/internal/adapters/tui"
	"github.com/jsamuelsen11/tasksync/internal/app/viewsync"
	"github.com/jsamuelsen11/tasksync/internal/domain"
	"github.com/jsamuelsen11/tasksync/internal/domain/task"
	"github.com/jsamuelsen11/tasksync/internal/platform/fanout"
	"github.com/jsamuelsen11/tasksync/internal/platform/httpclient"
)

// maxParallelDeletes bounds the rm command's concurrent requests.
const maxParallelDeletes = 4

func commands() []*cli.Command {
	credentials := []cli.Flag{
		&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Usage: "Account name", Required: true},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Account password",
			Sources:  cli.EnvVars("TASKSYNC_PASSWORD"),
			Required: true,
		},
	}
	view := []cli.Flag{
		&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Usage: "Only PENDING or DONE tasks"},
		&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Only tasks in this category"},
		&cli.IntFlag{Name: "page", Usage: "Zero-based page index"},
	}

	return []*cli.Command{
		{Name: "register", Usage: "Create an account", Flags: credentials, Action: register},
		{Name: "login", Usage: "Sign in and print a bearer token", Flags: credentials, Action: login},
		{Name: "list", Aliases: []string{"ls"}, Usage: "Show one page of tasks", Flags: view, Action: list},
		{
			Name:  "add",
			Usage: "Create a task",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Task title", Required: true},
				&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Task description"},
				&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Task category"},
			},
			Action: add,
		},
		{
			Name:      "toggle",
			Usage:     "Flip tasks between PENDING and DONE",
			ArgsUsage: "ID...",
			Flags:     view,
			Action:    toggle,
		},
		{Name: "rm", Usage: "Delete tasks", ArgsUsage: "ID...", Action: remove},
		{Name: "status", Usage: "Check that the task API is reachable and ready", Action: checkStatus},
		{Name: "tui", Usage: "Open the interactive task view", Action: runTUI},
	}
}

func register(ctx context.Context, cmd *cli.Command) error {
	r := runnerFrom(ctx)
	if err := r.auth().Register(ctx, cmd.String("username"), cmd.String("password")); err != nil {
		return describe(err)
	}
	_, err := fmt.Fprintln(r.out, "User registered successfully!")
	return err
}

func login(ctx context.Context, cmd *cli.Command) error {
	r := runnerFrom(ctx)
	token, err := r.auth().Login(ctx, cmd.String("username"), cmd.String("password"))
	if err != nil {
		return describe(err)
	}
	_, err = fmt.Fprintln(r.out, token)
	return err
}

// errNotReady is returned by the status command when any check fails.
var errNotReady = errors.New("task API is not ready")

func checkStatus(ctx context.Context, cmd *cli.Command) error {
	r := runnerFrom(ctx)
	results := r.health().CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	slices.Sort(names)

	t := table.New().Border(lipgloss.NormalBorder()).Headers("CHECK", "STATE")
	failed := false
	for _, name := range names {
		state := "ok"
		if err := results[name]; err != nil {
			state, failed = err.Error(), true
		}
		t.Row(name, state)
	}

	signedIn := "no"
	if strings.TrimSpace(cmd.String("token")) != "" {
		signedIn = "yes"
	}
	if _, err := fmt.Fprintf(r.out, "server:    %s\nsigned in: %s\n%s\n", r.config().Client.BaseURL, signedIn, t.Render()); err != nil {
		return err
	}

	if failed {
		return errNotReady
	}
	return nil
}

// openView loads the page the view flags select.
func openView(ctx context.Context, cmd *cli.Command) (*viewsync.Controller, error) {
	r := runnerFrom(ctx)
	sess, err := r.session(cmd)
	if err != nil {
		return nil, err
	}

	filter := task.Filter{Category: strings.TrimSpace(cmd.String("category"))}
	if raw := cmd.String("status"); raw != "" {
		s, ok := task.ParseStatus(raw)
		if !ok {
			return nil, fmt.Errorf("unknown status %q: use PENDING or DONE", raw)
		}
		filter.Status = s
	}

	c := r.controller(sess, r.logger())
	c.ChangeFilter(ctx, filter)
	if err := failure(c); err != nil {
		return nil, err
	}
	if page := cmd.Int("page"); page != 0 {
		c.ChangePage(ctx, page)
		if err := failure(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func list(ctx context.Context, cmd *cli.Command) error {
	c, err := openView(ctx, cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(runnerFrom(ctx).out, renderPage(c.Snapshot()))
	return err
}

func add(ctx context.Context, cmd *cli.Command) error {
	r := runnerFrom(ctx)
	sess, err := r.session(cmd)
	if err != nil {
		return err
	}

	c := r.controller(sess, r.logger())
	c.SubmitNewTask(ctx, task.Draft{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		Category:    cmd.String("category"),
	})
	if err := failure(c); err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, renderPage(c.Snapshot()))
	return err
}

func toggle(ctx context.Context, cmd *cli.Command) error {
	ids, err := parseIDs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	c, err := openView(ctx, cmd)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if !onPage(c.Snapshot(), id) {
			return fmt.Errorf("task %d is not on this page; narrow it down with --status, --category or --page", id)
		}
		c.ToggleStatus(ctx, id)
		if err := failure(c); err != nil {
			return fmt.Errorf("task %d: %w", id, err)
		}
	}
	_, err = fmt.Fprintln(runnerFrom(ctx).out, renderPage(c.Snapshot()))
	return err
}

// remove deletes every ID in parallel. All requests share one correlation ID.
func remove(ctx context.Context, cmd *cli.Command) error {
	ids, err := parseIDs(cmd.Args().Slice())
	if err != nil {
		return err
	}
	r := runnerFrom(ctx)
	sess, err := r.session(cmd)
	if err != nil {
		return err
	}

	client := r.taskClient(sess)
	ctx = httpclient.WithCorrelationID(ctx, uuid.NewString())
	results := fanout.Run(ctx, maxParallelDeletes, ids, func(ctx context.Context, id int64) (int64, error) {
		if err := client.Delete(ctx, id); err != nil {
			return id, fmt.Errorf("task %d: %w", id, describe(err))
		}
		return id, nil
	})

	for _, res := range results {
		if res.Err == nil {
			fmt.Fprintf(r.out, "deleted %d\n", res.Value)
		}
	}
	return fanout.Join(results)
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	r := runnerFrom(ctx)
	sess, err := r.session(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := r.screenLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	c := r.controller(sess, logger)
	p := tea.NewProgram(tui.New(ctx, c, sess, sess.Username()), tea.WithAltScreen(), tea.WithContext(ctx))
	c.OnChange(tui.Listener(p))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running task view: %w", err)
	}
	return nil
}

// failure returns the controller's last error, if the last operation failed.
func failure(c *viewsync.Controller) error {
	st := c.Status()
	if st.State != viewsync.StateError {
		return nil
	}
	return fmt.Errorf("%s: %w", st.Message, st.Err)
}

// describe adds a hint for errors a user can act on.
func describe(err error) error {
	if errors.Is(err, domain.ErrUnauthenticated) {
		return fmt.Errorf("%w (sign in again with the login command)", err)
	}
	return err
}

func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one task ID is required")
	}
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid task ID %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func onPage(s viewsync.Snapshot, id int64) bool {
	for _, t := range s.Tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// renderPage formats a snapshot as a bordered table with a page footer.
func renderPage(s viewsync.Snapshot) string {
	if len(s.Tasks) == 0 {
		return "No tasks."
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "STATUS", "TITLE", "CATEGORY")
	for _, tk := range s.Tasks {
		t.Row(strconv.FormatInt(tk.ID, 10), tk.Status.String(), tk.Title, tk.Category)
	}

	pages := max(s.TotalPages, 1)
	return fmt.Sprintf("%s\npage %d of %d", t.Render(), s.Page+1, pages)
}
