// Package controller provides output adapters for displaying regression and
// benchmark results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "semreg.dev/pkg/semreg/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeRun
	ModeView
	ModeBench
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithListMode sets the UI to scenario listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRunMode sets the UI to scenario execution mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to saved report viewing mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithBenchMode sets the UI to benchmark reporting mode.
func WithBenchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBench
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying scenario and benchmark results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayScenarios(ctx context.Context, specs []m.ScenarioSpec) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, count int)
	DisplayStartingScenarioInfo(ctx context.Context, spec m.ScenarioSpec, threadID int)
	DisplayCompletedScenarioInfo(ctx context.Context, report m.ScenarioReport)
	DisplaySummary(ctx context.Context, reports []m.ScenarioReport) error
	DisplayBenchmarkReport(ctx context.Context, report m.BenchmarkReport) error
}

// NewUI returns the interactive TUI when useTTY is set and the plain text UI
// otherwise. Both write to the command's output.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
