package classify

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rcliao/lexcount/internal/metrics"
	"github.com/rcliao/lexcount/internal/report"
	"github.com/rcliao/lexcount/internal/tokenizer"
)

// Summary counts what a Run saw.
type Summary struct {
	Scanned  int `json:"scanned"`
	Matched  int `json:"matched"`
	Segments int `json:"segments"`
}

// Run classifies every token read from in. A token carrying the boundary
// byte is classified and then flushed through rep. End of input flushes
// once more, unless no token was read at all, in which case nothing is
// emitted. m may be nil.
func Run(ctx context.Context, in io.Reader, c *Classifier, rep *report.Reporter, m *metrics.Metrics) (Summary, error) {
	var sum Summary
	flush := func() error {
		rec, err := rep.Flush(c)
		if err != nil {
			return err
		}
		sum.Segments++
		m.ObserveSegment(rec)
		return nil
	}

	tok := tokenizer.New(in)
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		t, err := tok.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("read input: %w", err)
		}

		sum.Scanned++
		_, matched := c.Observe(t.Text)
		if matched {
			sum.Matched++
		}
		m.ObserveToken(matched)

		if t.Boundary {
			if err := flush(); err != nil {
				return sum, err
			}
		}
	}

	if sum.Scanned == 0 {
		return sum, nil
	}
	return sum, flush()
}
