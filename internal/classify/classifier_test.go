package classify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/lexcount/internal/lexicon"
	"github.com/rcliao/lexcount/internal/metrics"
	"github.com/rcliao/lexcount/internal/model"
	"github.com/rcliao/lexcount/internal/report"
)

func newTestClassifier(t *testing.T, dict string) *Classifier {
	t.Helper()
	cats, err := lexicon.Load(strings.NewReader(dict), lexicon.DefaultLoadOptions())
	require.NoError(t, err)
	return New(lexicon.Build(cats))
}

func run(t *testing.T, c *Classifier, input string, header bool) (string, Summary) {
	t.Helper()
	var out bytes.Buffer
	sum, err := Run(context.Background(), strings.NewReader(input), c, report.New(report.NewCSVSink(&out), header), nil)
	require.NoError(t, err)
	return out.String(), sum
}

func TestRun_SadRoundTrip(t *testing.T) {
	c := newTestClassifier(t, "sad\tunhappy\tgrief\n")

	out, sum := run(t, c, "I feel so Unhappy, truly!", true)
	assert.Equal(t,
		"words,periods,question_marks,exclamations,sad\n"+
			"5,0,0,1,1\n",
		out)
	assert.Equal(t, Summary{Scanned: 5, Matched: 1, Segments: 1}, sum)
}

func TestClassify_DedupedEntryIncrementsEachCategoryOnce(t *testing.T) {
	c := newTestClassifier(t, "joy\tlove\nromance\tlove\n")

	e, ok := c.Observe("love")
	require.True(t, ok)
	assert.Equal(t, 1, c.Hits(e))
	assert.Equal(t, 1, c.Count(0))
	assert.Equal(t, 1, c.Count(1))
}

func TestClassify_DuplicateMembershipCountsTwice(t *testing.T) {
	c := newTestClassifier(t, "joy\tlove\tlove\n")

	e, ok := c.Observe("Love!")
	require.True(t, ok)
	assert.Equal(t, 1, c.Hits(e))
	assert.Equal(t, 2, c.Count(0))
}

func TestClassify_CategoryCountsMatchHitInvariant(t *testing.T) {
	c := newTestClassifier(t, "a\tx\ty*\nb\tx\nc\ty*\tz\n")
	for _, tok := range strings.Fields("x y yes yo z nope x X.") {
		c.Observe(tok)
	}

	want := make([]int, len(c.Categories()))
	for _, e := range c.Index().Entries() {
		for _, ci := range e.Categories {
			want[ci] += c.Hits(e)
		}
	}
	assert.Equal(t, want, c.Snapshot().Counts)
	assert.Equal(t, []int{6, 3, 4}, want)
}

func TestClassify_Wildcard(t *testing.T) {
	c := newTestClassifier(t, "sad\tgriev*\n")
	for _, tok := range []string{"grieving", "Grieved.", "griev", "grief", "grie"} {
		c.Observe(tok)
	}
	assert.Equal(t, 3, c.Count(0))
}

func TestClassify_EmptyKeyIsNoMatch(t *testing.T) {
	c := newTestClassifier(t, "a\tx\n")
	_, ok := c.Observe("...")
	assert.False(t, ok)
	assert.Equal(t, model.RunStats{Periods: 3}, c.Stats())
}

func TestReset_ZeroesEverything(t *testing.T) {
	c := newTestClassifier(t, "a\tx\ty\n")
	ex, _ := c.Observe("x!")
	ey, _ := c.Observe("y?")
	c.Reset()

	assert.Equal(t, 0, c.Hits(ex))
	assert.Equal(t, 0, c.Hits(ey))
	assert.Equal(t, model.Record{Counts: []int{0}}, c.Snapshot())
}

func TestRun_BoundaryFlushesAfterClassifying(t *testing.T) {
	c := newTestClassifier(t, "greet\thello\tworld\n")

	out, sum := run(t, c, "hello hello\x1cworld world world\n", true)
	assert.Equal(t,
		"words,periods,question_marks,exclamations,greet\n"+
			"2,0,0,0,1\n"+
			"2,0,0,0,2\n",
		out)
	assert.Equal(t, Summary{Scanned: 4, Matched: 3, Segments: 2}, sum)
}

func TestRun_BoundaryTokenMatches(t *testing.T) {
	c := newTestClassifier(t, "greet\thello\n")

	out, _ := run(t, c, "hello\x1c", false)
	assert.Equal(t, "1,0,0,0,1\n0,0,0,0,0\n", out)
}

func TestRun_EmptyStreamEmitsNothing(t *testing.T) {
	c := newTestClassifier(t, "a\tx\n")
	for _, in := range []string{"", "   \n\t\n"} {
		out, sum := run(t, c, in, true)
		assert.Empty(t, out)
		assert.Equal(t, Summary{}, sum)
	}
}

func TestRun_Segments(t *testing.T) {
	c := newTestClassifier(t, "sad\tunhappy\tgriev*\njoy\tlove\thappy\n")
	in := "I am happy. Are you?\x1c\nSo unhappy and grieving! Love\x1c\nnothing"

	out, sum := run(t, c, in, true)
	assert.Equal(t,
		"words,periods,question_marks,exclamations,sad,joy\n"+
			"5,1,1,0,0,1\n"+
			"5,0,0,1,2,1\n"+
			"1,0,0,0,0,0\n",
		out)
	assert.Equal(t, 3, sum.Segments)
}

func TestRun_Metrics(t *testing.T) {
	c := newTestClassifier(t, "a\tx\n")
	m := metrics.New()
	m.SetDictionary(c.Categories(), c.Index().Len())

	var out bytes.Buffer
	_, err := Run(context.Background(), strings.NewReader("x y\x1c x"), c, report.New(report.NewCSVSink(&out), true), m)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.TokensScanned))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TokensMatched))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SegmentsFlushed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CategoryHits.WithLabelValues("a")))
}

func TestRun_Cancelled(t *testing.T) {
	c := newTestClassifier(t, "a\tx\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Run(ctx, strings.NewReader("x"), c, report.New(report.NewCSVSink(&out), true), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
