package progress

import (
	"context"
	"io"
	"sync"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/fatih/color"
)

// PlainProgressReporter writes one line per stage instead of animating a
// spinner. Used for non-interactive runs where output ends up in logs.
type PlainProgressReporter struct {
	out          io.Writer
	currentStage usecase.ExecutionStage
	mu           sync.Mutex
}

// NewPlainProgressReporter creates a reporter writing to out
func NewPlainProgressReporter(out io.Writer) *PlainProgressReporter {
	return &PlainProgressReporter{out: out}
}

// OnProgress prints the first event of each stage
func (r *PlainProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage == r.currentStage || event.Stage == usecase.StageCompleted {
		r.currentStage = event.Stage
		return
	}
	r.currentStage = event.Stage

	label := stageLabel(event.Stage)
	if label == "" && event.Message == "" {
		return
	}
	color.New(color.Reset).Fprintln(r.out, label+event.Message)
}

// Info prints an info message
func (r *PlainProgressReporter) Info(message string) {
	r.print(color.New(color.Reset), message)
}

// Warn prints a warning message
func (r *PlainProgressReporter) Warn(message string) {
	r.print(color.New(color.FgYellow), "⚠️  "+message)
}

// Error prints an error message
func (r *PlainProgressReporter) Error(message string) {
	r.print(color.New(color.FgRed), "❌ "+message)
}

func (r *PlainProgressReporter) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.Fprintln(r.out, message)
}

// Ensure PlainProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*PlainProgressReporter)(nil)
