package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/config"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/logging"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
)

var (
	cfgFile  string
	verbose  bool
	dataFile string
	noCache  bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sentimen",
	Short: "Browse sentiment-scored tweets about split bill",
	Long: `sentimen reads a CSV of tweets with polarity scores and lets you filter,
page through and locate them by sentiment.

Run without arguments to open the interactive viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFile(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if dataFile != "" {
			cfg.Dataset.Path = config.ExpandHome(dataFile)
		}
		if noCache {
			cfg.Dataset.Cache = false
		}

		// The TUI owns the terminal, so it only logs to the file.
		logger, err = logging.New(logging.Options{
			Level:   cfg.Log.Level,
			File:    cfg.Log.File,
			Verbose: verbose,
			Stderr:  !isInteractive(cmd),
		})
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("dataset", cfg.Dataset.Path), zap.Bool("cache", cfg.Dataset.Cache))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the viewer
		return runTUI()
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/sentimen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "dataset CSV (overrides dataset.path)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "always read the CSV, skipping the sqlite cache")

	// Add commands; other files define these vars
	rootCmd.AddCommand(tuiCmd, showCmd, locateCmd, statsCmd, importCmd, versionCmd)
}

// isInteractive reports whether cmd opens the TUI: the bare root or tui.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "tui"
}

func datasetOptions() dataset.Options {
	return dataset.Options{
		Path: cfg.Dataset.Path,
		Columns: dataset.Columns{
			Text:  cfg.Dataset.TextColumn,
			Score: cfg.Dataset.ScoreColumn,
		},
		UseCache:  cfg.Dataset.Cache,
		CachePath: cfg.Dataset.CachePath,
		Logger:    logger,
	}
}

func loadStore() (*dataset.Store, error) {
	return dataset.Load(datasetOptions())
}

// keywordFlags are shared by every command that evaluates a query.
type keywordFlags struct {
	include string
	exclude string
	limit   int
}

func (k *keywordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&k.include, "filter", "k", "", "only tweets containing this word")
	cmd.Flags().StringVarP(&k.exclude, "exclude", "e", "", "drop tweets containing this word")
	cmd.Flags().IntVarP(&k.limit, "limit", "n", 0, "rows per page: 10, 20, 50 or 100 (default view.page_size)")
}

func (k *keywordFlags) query(cmd *cobra.Command) (session.Query, error) {
	size, err := k.pageSize(cmd)
	if err != nil {
		return session.Query{}, err
	}
	return session.Query{Include: k.include, Exclude: k.exclude, PageSize: size}, nil
}

func (k *keywordFlags) pageSize(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("limit") {
		return cfg.View.PageSize, nil
	}
	if !session.ValidPageSize(k.limit) {
		return 0, fmt.Errorf("--limit must be one of %v, got %d", session.PageSizes, k.limit)
	}
	return k.limit, nil
}
