package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a stored lexicon",
		Args:  cobra.ExactArgs(1),
		Run:   runRm,
	}

	lexiconCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Remove(cmd.Context(), args[0]); err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"name":%q}`+"\n", args[0])
}
