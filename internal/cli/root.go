// Package cli implements the lexcount CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/lexcount/internal/config"
	"github.com/rcliao/lexcount/internal/lexicon"
	"github.com/rcliao/lexcount/internal/logger"
	"github.com/rcliao/lexcount/internal/model"
	"github.com/rcliao/lexcount/internal/store"
)

var (
	configPath  string
	dbPath      string
	dictPath    string
	lexiconName string
	verbose     bool
)

// RootCmd is the top-level command. Run on its own it classifies stdin.
var RootCmd = &cobra.Command{
	Use:   "lexcount",
	Short: "Count lexicon category hits in a text stream",
	Long: "Reads whitespace-delimited text from stdin, matches every token against a category dictionary " +
		"and writes one CSV record per segment. A token containing the byte 0x1C ends a segment.",
	Args: cobra.NoArgs,
	Run:  runClassify,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Config file (default: $LEXCOUNT_CONFIG)")
	pf.StringVar(&dbPath, "db", "", "Lexicon store path (default: $LEXCOUNT_DB or ~/.lexcount/lexicons.db)")
	pf.StringVarP(&dictPath, "dictionary", "d", "", "Dictionary file (default: empath/empath/data/categories.tsv)")
	pf.StringVarP(&lexiconName, "lexicon", "l", "", "Use a stored lexicon instead of a dictionary file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Write diagnostics to stderr")

	f := RootCmd.Flags()
	f.BoolP("no-header", "H", false, "Omit the header row")
	f.String("format", "csv", "Output format: csv or summary")
	f.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
}

// loadConfig reads the config file and environment, then applies any
// flags given on the command line.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		exitErr("load config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = dbPath
	}
	if flags.Changed("dictionary") {
		cfg.DictionaryPath = dictPath
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = lexiconName
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if f := flags.Lookup("no-header"); f != nil && f.Changed {
		cfg.SuppressHeader, _ = flags.GetBool("no-header")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}
	if f := flags.Lookup("metrics-file"); f != nil && f.Changed {
		cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}

	if err := cfg.Validate(); err != nil {
		exitErr("config", err)
	}
	logger.Setup(os.Stderr, cfg.LogLevel(), cfg.Log.Format)
	return cfg
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.ResolveDBPath())
}

// loadCategories reads the configured lexicon: a stored one when
// cfg.Lexicon is set, otherwise the dictionary file.
func loadCategories(ctx context.Context, cfg *config.Config) ([]model.CategoryWords, string, error) {
	if cfg.Lexicon != "" {
		s, err := openStore(cfg)
		if err != nil {
			return nil, "", fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		cats, err := s.Load(ctx, cfg.Lexicon)
		return cats, "lexicon:" + cfg.Lexicon, err
	}

	cats, err := lexicon.LoadFile(cfg.DictionaryPath, lexicon.LoadOptions{MaxLineLength: cfg.MaxLineLength})
	return cats, cfg.DictionaryPath, err
}

// loadIndex loads the configured lexicon and builds its index.
func loadIndex(ctx context.Context, cfg *config.Config) (*lexicon.Index, error) {
	cats, source, err := loadCategories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	idx := lexicon.Build(cats)

	st := idx.Stats()
	logger.WithComponent("lexicon").Info("dictionary loaded",
		"source", source,
		"categories", st.Categories,
		"entries", st.Entries,
		"wildcards", st.WildcardEntries,
	)
	return idx, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
