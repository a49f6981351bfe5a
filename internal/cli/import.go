package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/lexcount/internal/lexicon"
	"github.com/rcliao/lexcount/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <name> [path]",
		Short: "Import a dictionary file into the store",
		Long: "Import a dictionary file (tsv, yaml; optionally .gz/.zst/.lz4 compressed) under a name. " +
			"Without a path the configured dictionary is used. An existing lexicon with the same name is replaced.",
		Args: cobra.RangeArgs(1, 2),
		Run:  runImport,
	}

	lexiconCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	path := cfg.DictionaryPath
	if len(args) > 1 {
		path = args[1]
	}

	cats, err := lexicon.LoadFile(path, lexicon.LoadOptions{MaxLineLength: cfg.MaxLineLength})
	if err != nil {
		exitErr("load dictionary", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	info, err := s.Import(cmd.Context(), store.ImportParams{
		Name:       args[0],
		Source:     path,
		Categories: cats,
	})
	if err != nil {
		exitErr("import", err)
	}

	b, _ := json.Marshal(info)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
