package report

import (
	"fmt"
	"io"

	"dirdiff/internal/model"

	"github.com/fatih/color"
)

//Sink receives the differences in the order they are found.
type Sink interface {
	Report(event model.DiffEvent) error
}

//Writer prints every event as a "<KIND>: <path>" line as soon as it is reported, nothing is buffered.
type Writer struct {
	w      io.Writer
	labels map[model.DiffKind]*color.Color
	counts map[model.DiffKind]int
}

//NewWriter creates a Writer. If colored is set, the labels (never the paths) are colored
//regardless of whether w is a terminal.
func NewWriter(w io.Writer, colored bool) *Writer {
	r := &Writer{w: w, counts: make(map[model.DiffKind]int, 2)}
	if colored {
		r.labels = map[model.DiffKind]*color.Color{
			model.Differs: color.New(color.FgYellow),
			model.Missing: color.New(color.FgRed),
		}
		for _, c := range r.labels {
			c.EnableColor()
		}
	}
	return r
}

func (r *Writer) Report(event model.DiffEvent) error {
	label := string(event.Kind)
	if c, ok := r.labels[event.Kind]; ok {
		label = c.Sprint(label)
	}
	if _, err := fmt.Fprintf(r.w, "%s: %s\n", label, event.Path); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	r.counts[event.Kind]++
	return nil
}

//Count returns how many events of the kind have been written.
func (r *Writer) Count(kind model.DiffKind) int {
	return r.counts[kind]
}
