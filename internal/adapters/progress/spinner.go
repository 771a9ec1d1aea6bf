package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/usecase"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// SpinnerProgressReporter implements progress reporting with a spinner.
// Messages go to out, the spinner writes to stderr.
type SpinnerProgressReporter struct {
	spinner        *spinner.Spinner
	out            io.Writer
	currentStage   usecase.ExecutionStage
	stageStartTime time.Time
	mu             sync.Mutex
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     color.Output,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Stage != r.currentStage {
		r.currentStage = event.Stage
		r.stageStartTime = time.Now()
	}

	if event.Stage == usecase.StageCompleted {
		r.spinner.Stop()
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + stageLabel(event.Stage) + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.print(color.New(color.Reset), message)
}

// Warn prints a warning message
func (r *SpinnerProgressReporter) Warn(message string) {
	r.print(color.New(color.FgYellow), "⚠️  "+message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.print(color.New(color.FgRed), "❌ "+message)
}

// print stops the spinner around the message so lines don't interleave
func (r *SpinnerProgressReporter) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// stageLabel renders the stage prefix shown next to the spinner
func stageLabel(stage usecase.ExecutionStage) string {
	var name string
	switch stage {
	case usecase.StageConnecting:
		name = "Connecting"
	case usecase.StageSubmitting:
		name = "Submitting"
	case usecase.StageConfirming:
		name = "Confirming"
	case usecase.StageVerifying:
		name = "Verifying"
	default:
		return ""
	}
	return fmt.Sprintf("%s ", color.New(color.FgYellow).Sprint("●", " ", name))
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
