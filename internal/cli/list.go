package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored lexicons",
		Args:  cobra.NoArgs,
		Run:   runList,
	}

	cmd.Flags().Bool("names-only", false, "Only output lexicon names")

	lexiconCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	namesOnly, _ := cmd.Flags().GetBool("names-only")
	cfg := loadConfig(cmd)

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	lexicons, err := s.List(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}

	out := cmd.OutOrStdout()
	if namesOnly {
		for _, l := range lexicons {
			fmt.Fprintln(out, l.Name)
		}
		return
	}

	if len(lexicons) == 0 {
		fmt.Fprintln(out, "[]")
		return
	}

	b, _ := json.MarshalIndent(lexicons, "", "  ")
	fmt.Fprintln(out, string(b))
}
