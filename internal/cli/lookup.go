package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/lexcount/internal/tokenizer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "lookup <token>...",
		Short: "Show how tokens normalize and which entries they match",
		Args:  cobra.MinimumNArgs(1),
		Run:   runLookup,
	}

	RootCmd.AddCommand(cmd)
}

type lookupResult struct {
	Token      string   `json:"token"`
	Key        string   `json:"key"`
	Match      string   `json:"match,omitempty"`
	Wildcard   bool     `json:"wildcard,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

func runLookup(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)

	idx, err := loadIndex(cmd.Context(), cfg)
	if err != nil {
		exitErr("load dictionary", err)
	}

	results := make([]lookupResult, 0, len(args))
	for _, tok := range args {
		r := lookupResult{Token: tok, Key: tokenizer.Normalize(tok, nil)}
		if e, ok := idx.Find(r.Key); ok {
			r.Match = e.Word
			r.Wildcard = e.Wildcard
			r.Categories = idx.CategoryNames(e)
		}
		results = append(results, r)
	}

	b, _ := json.MarshalIndent(results, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
