package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/lexcount/internal/classify"
	"github.com/rcliao/lexcount/internal/logger"
	"github.com/rcliao/lexcount/internal/metrics"
	"github.com/rcliao/lexcount/internal/report"
)

func runClassify(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	idx, err := loadIndex(cmd.Context(), cfg)
	if err != nil {
		exitErr("load dictionary", err)
	}

	sink, err := report.NewSink(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		exitErr("output", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
		m.SetDictionary(idx.Categories(), idx.Len())
	}

	sum, err := classify.Run(cmd.Context(), cmd.InOrStdin(), classify.New(idx), report.New(sink, !cfg.SuppressHeader), m)
	if err != nil {
		exitErr("classify", err)
	}

	logger.WithComponent("classify").Info("stream complete",
		"scanned", sum.Scanned,
		"matched", sum.Matched,
		"segments", sum.Segments,
	)

	if err := m.WriteFile(cfg.MetricsFile); err != nil {
		exitErr("write metrics", err)
	}
}
