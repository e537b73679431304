package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/api"
	"github.com/samboofficeota-hue/finance-analysis/internal/api/handlers"
	"github.com/samboofficeota-hue/finance-analysis/internal/status"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "API サーバー起動",
	Long: `REST API サーバーを起動します。

Endpoints:
  GET /health                      - ヘルスチェック
  GET /api-status                  - 上流APIの状態
  GET /companies                   - 企業検索・一覧
  GET /companies/{code}            - 企業詳細
  GET /companies/{code}/financials - 財務データ
  GET /companies/{code}/analysis   - 財務分析レポート
  GET /rankings/{metric}           - ランキング
  GET /compare                     - 複数企業の比較

Example:
  go run ./cmd/edinet serve
  go run ./cmd/edinet serve --port 8080`,
	RunE: runServe,
}

var servePort string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "APIサーバーのポート (default: PORT環境変数)")
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EDINET財務分析API Server ===")

	d, err := newDeps()
	if err != nil {
		return err
	}
	if servePort != "" {
		d.cfg.Port = servePort
	}

	d.log.WithFields(map[string]interface{}{
		"port": d.cfg.Port,
		"env":  d.cfg.Env,
	}).Info("Initializing API server")

	// 上流状態の定期プローブ
	monitor := status.New(d.client, d.log, d.cfg.EDINET.StatusEvery)
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("start status monitor: %w", err)
	}
	defer monitor.Stop()

	router := api.NewRouter(handlers.New(d.analyzer, monitor, d.log), d.log)
	server := api.New(d.cfg, d.log, router)

	go func() {
		if err := server.Start(); err != nil {
			d.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("\n✅ Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET /health")
	fmt.Println("  GET /api-status")
	fmt.Println("  GET /companies")
	fmt.Println("  GET /companies/{code}")
	fmt.Println("  GET /companies/{code}/financials")
	fmt.Println("  GET /companies/{code}/analysis")
	fmt.Println("  GET /rankings/{metric}")
	fmt.Println("  GET /compare")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	d.log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	d.log.Info("Server stopped")
	return nil
}
