// Package report emits segment records and drives the flush/reset cycle.
package report

import (
	"fmt"

	"github.com/rcliao/lexcount/internal/model"
)

// State is the reporter's position in the flush protocol.
type State int

const (
	// AwaitingFirstFlush is the initial state; the header is still owed.
	AwaitingFirstFlush State = iota
	// Flushed means at least one record has been emitted.
	Flushed
)

func (s State) String() string {
	switch s {
	case AwaitingFirstFlush:
		return "awaiting_first_flush"
	case Flushed:
		return "flushed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Source is the accumulated per-segment state being reported on.
type Source interface {
	Categories() []string
	Snapshot() model.Record
	Reset()
}

// Sink renders headers and records.
type Sink interface {
	WriteHeader(categories []string) error
	WriteRecord(rec model.Record, categories []string) error
}

// Reporter writes one record per flush and resets the source afterwards.
type Reporter struct {
	sink   Sink
	header bool
	state  State
	seq    int
}

// New returns a Reporter. When header is true the first flush is preceded
// by a header row.
func New(sink Sink, header bool) *Reporter {
	return &Reporter{sink: sink, header: header}
}

// State returns the current protocol state.
func (r *Reporter) State() State {
	return r.state
}

// Flush emits the source's current record and zeroes it. The source is
// reset even when writing fails.
func (r *Reporter) Flush(src Source) (model.Record, error) {
	cats := src.Categories()
	if r.state == AwaitingFirstFlush {
		r.state = Flushed
		if r.header {
			if err := r.sink.WriteHeader(cats); err != nil {
				src.Reset()
				return model.Record{}, fmt.Errorf("write header: %w", err)
			}
		}
	}

	rec := src.Snapshot()
	rec.Seq = r.seq
	r.seq++
	src.Reset()

	if err := r.sink.WriteRecord(rec, cats); err != nil {
		return rec, fmt.Errorf("write record %d: %w", rec.Seq, err)
	}
	return rec, nil
}
