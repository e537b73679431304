package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
	"github.com/samboofficeota-hue/finance-analysis/pkg/config"
	"github.com/samboofficeota-hue/finance-analysis/pkg/httputil"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

var (
	// Global flags
	apiKey  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "edinet",
	Short: "EDINET財務分析ツール",
	Long: `EDINET財務分析CLI

EDINET DB APIから上場企業の財務データを取得し、
検索・比較・レーティング分析を行います。

Usage:
  go run ./cmd/edinet [command]

Examples:
  go run ./cmd/edinet search トヨタ
  go run ./cmd/edinet financials E02144 --years 3
  go run ./cmd/edinet ranking roe --limit 10
  go run ./cmd/edinet compare E02144 E02367
  go run ./cmd/edinet serve`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "EDINET APIキー (default: EDINET_API_KEY環境変数)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// deps bundles the wired CLI dependencies.
type deps struct {
	cfg      *config.Config
	log      *logger.Logger
	client   *edinet.Client
	analyzer *analyzer.Analyzer
}

// newDeps loads the config and wires the upstream client and analyzer.
// --api-key は環境変数より優先する。
func newDeps() (*deps, error) {
	if apiKey != "" {
		os.Setenv("EDINET_API_KEY", apiKey)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI出力を汚さないようログは警告以上に絞る
	if verbose {
		cfg.LogLevel = "debug"
	} else if cfg.LogLevel == "info" {
		cfg.LogLevel = "warn"
	}

	log := logger.New(cfg)
	client := edinet.NewClient(cfg.EDINET, httputil.New(cfg, log), log)

	return &deps{
		cfg:      cfg,
		log:      log,
		client:   client,
		analyzer: analyzer.New(client, log),
	}, nil
}
