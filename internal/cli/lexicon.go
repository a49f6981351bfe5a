package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage lexicons in the SQLite store",
}

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show lexicon store statistics",
		Args:  cobra.NoArgs,
		Run:   runLexiconStats,
	}

	lexiconCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(lexiconCmd)
}

func runLexiconStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), cfg.ResolveDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
