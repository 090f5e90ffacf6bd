package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "semreg.dev/pkg/semreg/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	passedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	mode   StartMode
	mu     sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start records the mode the TUI renders for.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	t.mode = newStartConfig(options).mode
	return ctx.Err()
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// Wait returns once the pager, if any, was closed. Pagers run synchronously
// so there is nothing left to wait for.
func (t *TUI) Wait(_ context.Context) {}

// DisplayScenarios shows the loaded scenarios.
func (t *TUI) DisplayScenarios(ctx context.Context, specs []m.ScenarioSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(specs))
	pairs := 0

	for _, spec := range specs {
		pairs += len(spec.Functions)
		lines = append(lines, fmt.Sprintf("  %s %s",
			spec.ID,
			faintStyle.Render(fmt.Sprintf("(%s -> %s, %d pair(s))", spec.OldKernel, spec.NewKernel, len(spec.Functions)))))
	}

	footer := fmt.Sprintf("  Total: %d scenario(s), %d pair(s)", len(specs), pairs)

	return t.show("Scenarios", lines, footer)
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, count int) {
	if ctx.Err() != nil {
		return
	}

	t.println(titleStyle.Render(fmt.Sprintf("Running %d scenario(s) with %d worker(s)", count, threads)))
}

// DisplayStartingScenarioInfo shows info about a scenario starting.
func (t *TUI) DisplayStartingScenarioInfo(ctx context.Context, spec m.ScenarioSpec, threadID int) {
	if ctx.Err() != nil {
		return
	}

	t.println(faintStyle.Render(fmt.Sprintf("  [%d] %s ...", threadID, spec.ID)))
}

// DisplayCompletedScenarioInfo shows whether a finished scenario passed.
func (t *TUI) DisplayCompletedScenarioInfo(ctx context.Context, report m.ScenarioReport) {
	if ctx.Err() != nil {
		return
	}

	t.println("  " + reportMark(report) + " " + report.ID)
}

// DisplaySummary shows every scenario with its check statuses, followed by
// the failure details.
func (t *TUI) DisplaySummary(ctx context.Context, reports []m.ScenarioReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		lines   []string
		details []string
		passed  int
	)

	for _, report := range reports {
		if report.Passed() {
			passed++
		}

		statuses := make([]string, 0, len(report.Checks))

		for _, c := range report.Checks {
			statuses = append(statuses, string(c.Name)+"="+statusStyle(c.Status).Render(c.Status.String()))

			if c.Status == m.Passed {
				continue
			}

			details = append(details, failedStyle.Render(fmt.Sprintf("  %s %s:", report.ID, c.Name)))
			details = append(details, indent(c.Message)...)
			details = append(details, indent(c.Details)...)
		}

		lines = append(lines, fmt.Sprintf("  %s %s  %s", reportMark(report), report.ID, strings.Join(statuses, " ")))
	}

	if len(details) > 0 {
		lines = append(lines, "")
		lines = append(lines, details...)
	}

	footer := fmt.Sprintf("  Passed: %d/%d scenario(s)", passed, len(reports))

	title := "Scenario results"
	if t.mode == ModeView {
		title = "Saved scenario reports"
	}

	return t.show(title, lines, footer)
}

// DisplayBenchmarkReport shows the benchmark comparison as markdown.
func (t *TUI) DisplayBenchmarkReport(ctx context.Context, report m.BenchmarkReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(RenderBenchmarkMarkdown(report), "\n"), "\n")

	return t.show("Benchmark", lines, "")
}

func (t *TUI) show(title string, lines []string, footer string) error {
	model := newPagerModel(title, lines, footer)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.resize(width, height)
		}
	}

	// If the content fits, just print and exit
	if !model.needsPagination() {
		t.mu.Lock()
		defer t.mu.Unlock()

		_, err := fmt.Fprint(t.output, model.View())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.output, line)
}

func reportMark(report m.ScenarioReport) string {
	if report.Passed() {
		return passedStyle.Render("✔")
	}

	return failedStyle.Render("✘")
}

func statusStyle(status m.CheckStatus) lipgloss.Style {
	if status == m.Passed {
		return passedStyle
	}

	return failedStyle
}

func indent(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}

	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = "    " + p
	}

	return parts
}

// pagerModel is the Bubble Tea model paging through pre-rendered lines.
type pagerModel struct {
	title     string
	lines     []string
	footer    string
	height    int
	width     int
	paginator paginator.Model
	quitting  bool
}

func newPagerModel(title string, lines []string, footer string) pagerModel {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = max(len(lines), 1)
	p.SetTotalPages(len(lines))

	return pagerModel{
		title:     title,
		lines:     lines,
		footer:    footer,
		paginator: p,
	}
}

func (pm pagerModel) resize(width, height int) pagerModel {
	pm.width = width
	pm.height = height
	pm.paginator.PerPage = pm.itemsPerPage()
	pm.paginator.SetTotalPages(len(pm.lines))

	if pm.paginator.Page >= pm.paginator.TotalPages {
		pm.paginator.Page = max(pm.paginator.TotalPages-1, 0)
	}

	return pm
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit

		case "g", "home":
			pm.paginator.Page = 0
			return pm, nil

		case "G", "end":
			pm.paginator.Page = max(pm.paginator.TotalPages-1, 0)
			return pm, nil

		case "down", "j", "d":
			pm.paginator.NextPage()
			return pm, nil

		case "up", "k", "u":
			pm.paginator.PrevPage()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.paginator, cmd = pm.paginator.Update(msg)

	return pm, cmd
}

// itemsPerPage calculates how many lines fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return max(len(pm.lines), 1)
	}
	// Title, blank, footer, blank, page indicator and help.
	reserved := 6

	return max(pm.height-reserved, 1)
}

// needsPagination returns true if the content is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString(faintStyle.Render("  nothing to show"))
		b.WriteString("\n")
	}

	visible := pm.lines
	if pm.needsPagination() {
		start, end := pm.paginator.GetSliceBounds(len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if pm.footer != "" {
		b.WriteString("\n")
		b.WriteString(pm.footer)
		b.WriteString("\n")
	}

	if pm.needsPagination() {
		fmt.Fprintf(&b, "\n  Page %s\n", pm.paginator.View())
		b.WriteString(faintStyle.Render("  ←/h ↑/k: previous | →/l ↓/j: next | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}
