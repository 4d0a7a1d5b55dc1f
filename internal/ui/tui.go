// Package ui provides an optional terminal task board.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskman/internal/config"
	"taskman/internal/query"
	"taskman/internal/store"
	"taskman/internal/task"
)

// Run starts the task board against the given store and blocks until the
// user quits.
func Run(ctx context.Context, cfg *config.Config, st store.TaskStore) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newBoardModel(cfg, st)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*boardModel); ok && m.loadErr != nil {
		return m.loadErr
	}
	return nil
}

type boardModel struct {
	cfg          *config.Config
	store        store.TaskStore
	tasks        []task.Task
	counts       map[task.Status]int
	filter       task.Status
	loadErr      error
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

type tasksMsg struct {
	tasks []task.Task
	err   error
}

func newBoardModel(cfg *config.Config, st store.TaskStore) *boardModel {
	return &boardModel{
		cfg:          cfg,
		store:        st,
		counts:       map[task.Status]int{},
		tickInterval: 2 * time.Second,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd(m.tickInterval))
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			return m, m.loadCmd()
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			m.filter = task.StatusPending
			return m, m.loadCmd()
		case "2":
			m.filter = task.StatusInProgress
			return m, m.loadCmd()
		case "3":
			m.filter = task.StatusCompleted
			return m, m.loadCmd()
		case "0":
			m.filter = ""
			return m, m.loadCmd()
		}
	case tickMsg:
		return m, tea.Batch(m.loadCmd(), tickCmd(m.tickInterval))
	case tasksMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.loadErr = nil
		m.tasks = msg.tasks
		m.recount()
	}

	return m, nil
}

func (m *boardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Board") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", statusBadge(m.filter)))
	}

	if m.loadErr != nil {
		b.WriteString("Error loading tasks:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	writeCounts(&b, m.counts)
	writeTasks(&b, m.tasks)
	writeFooter(&b, m.tickInterval)
	return b.String()
}

// loadCmd fetches the task list off the update loop.
func (m *boardModel) loadCmd() tea.Cmd {
	st := m.store
	filter := m.filter
	timeout := m.cfg.OpTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		q := &query.Query{SortOrder: query.OrderDesc}
		if filter != "" {
			f := filter
			q.Status = &f
		}
		tasks, err := st.Find(ctx, q)
		return tasksMsg{tasks: tasks, err: err}
	}
}

func (m *boardModel) recount() {
	counts := map[task.Status]int{}
	for _, t := range m.tasks {
		counts[t.Status]++
	}
	m.counts = counts
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func writeCounts(b *strings.Builder, counts map[task.Status]int) {
	b.WriteString(sectionStyle.Render("Overview") + "\n\n")
	parts := make([]string, 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		parts = append(parts, fmt.Sprintf("%s: %d", statusBadge(s), counts[s]))
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n\n")
}

func writeTasks(b *strings.Builder, tasks []task.Task) {
	b.WriteString(sectionStyle.Render("Tasks") + "\n\n")
	if len(tasks) == 0 {
		b.WriteString("  No tasks.\n\n")
		return
	}
	for _, t := range tasks {
		b.WriteString("  " + formatBoardLine(&t) + "\n")
	}
	b.WriteString("\n")
}

func formatBoardLine(t *task.Task) string {
	due := ""
	if t.DueDate != "" {
		due = " due " + t.DueDate
	}
	return fmt.Sprintf("%s %s %s%s",
		statusBadge(t.Status), priorityBadge(t.Priority), t.Title, dimStyle.Render(due))
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Refresh now\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by Pending\n")
	b.WriteString("  2            Filter by In Progress\n")
	b.WriteString("  3            Filter by Completed\n")
	b.WriteString("  0            Clear filter\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(dimStyle.Render(
		fmt.Sprintf("Press h for help | q to quit | Refreshing every %s", interval)) + "\n")
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
