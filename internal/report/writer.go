package report

import (
	"io"

	"github.com/pcblab/pcbrepair/internal/model"
)

// Writer renders a board report to some destination.
type Writer interface {
	// Write outputs the report. Returns the number of bytes written
	// and any error encountered.
	Write(report *model.BoardReport) (int, error)
}

// MultiWriter writes to multiple Writers, e.g. terminal and file at
// the same time. It stops on the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers and returns the
// total bytes written.
func (m *MultiWriter) Write(report *model.BoardReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
