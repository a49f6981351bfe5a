package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary index statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	idx, err := loadIndex(cmd.Context(), cfg)
	if err != nil {
		exitErr("load dictionary", err)
	}

	b, _ := json.MarshalIndent(idx.Stats(), "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
