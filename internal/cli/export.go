package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/lexcount/internal/lexicon"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a stored lexicon",
		Long:  "Export a stored lexicon as dictionary lines (tsv), YAML or JSON.",
		Args:  cobra.ExactArgs(1),
		Run:   runExport,
	}

	cmd.Flags().StringP("output", "o", "tsv", "Output format: tsv, yaml or json")

	lexiconCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("output")
	cfg := loadConfig(cmd)

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	cats, err := s.Load(cmd.Context(), args[0])
	if err != nil {
		exitErr("export", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tsv":
		err = lexicon.EncodeTSV(out, cats)
	case "yaml", "yml":
		err = lexicon.EncodeYAML(out, cats)
	case "json":
		b, _ := json.MarshalIndent(cats, "", "  ")
		_, err = fmt.Fprintln(out, string(b))
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		exitErr("export", err)
	}
}
