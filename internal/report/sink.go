package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rcliao/lexcount/internal/model"
)

// Output formats accepted by NewSink.
const (
	FormatCSV     = "csv"
	FormatSummary = "summary"
)

// NewSink returns the sink for a format name.
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case "", FormatCSV:
		return NewCSVSink(w), nil
	case FormatSummary:
		return NewSummarySink(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// CSVSink writes the header and records as comma-separated rows, flushing
// after every row so each segment is visible as soon as it is emitted.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink returns a CSV sink writing to w.
func NewCSVSink(w io.Writer) *CSVSink {
	return &CSVSink{w: csv.NewWriter(w)}
}

func (s *CSVSink) WriteHeader(categories []string) error {
	row := make([]string, 0, len(model.StatFields)+len(categories))
	row = append(row, model.StatFields...)
	row = append(row, categories...)
	return s.write(row)
}

func (s *CSVSink) WriteRecord(rec model.Record, categories []string) error {
	row := make([]string, 0, len(model.StatFields)+len(rec.Counts))
	for _, v := range rec.Stats.Values() {
		row = append(row, strconv.Itoa(v))
	}
	for _, n := range rec.Counts {
		row = append(row, strconv.Itoa(n))
	}
	return s.write(row)
}

func (s *CSVSink) write(row []string) error {
	if err := s.w.Write(row); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

// SummarySink writes one "<category> --- <count>" line per category for
// every record. It has no header.
type SummarySink struct {
	w io.Writer
}

// NewSummarySink returns a summary sink writing to w.
func NewSummarySink(w io.Writer) *SummarySink {
	return &SummarySink{w: w}
}

func (s *SummarySink) WriteHeader([]string) error { return nil }

func (s *SummarySink) WriteRecord(rec model.Record, categories []string) error {
	for i, name := range categories {
		n := 0
		if i < len(rec.Counts) {
			n = rec.Counts[i]
		}
		if _, err := fmt.Fprintf(s.w, "%s --- %d\n", name, n); err != nil {
			return err
		}
	}
	return nil
}
