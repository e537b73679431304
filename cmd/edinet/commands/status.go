package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/status"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "上流APIの状態を確認",
	Long: `EDINET DB APIの到達性とAPIキーの有効性を確認します。

Example:
  go run ./cmd/edinet status`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	fmt.Println("上流APIの状態を確認しています...")
	snap := status.New(d.client, d.log, time.Hour).Check(context.Background())

	PrintHeader("EDINET DB API Status")
	PrintRow("状態", snap.Status)
	switch {
	case snap.APIKeyOK == nil:
		PrintRow("APIキー", "未確認")
	case *snap.APIKeyOK:
		PrintRow("APIキー", "有効")
	default:
		PrintRow("APIキー", "無効")
	}
	if snap.Detail != "" {
		PrintRow("詳細", snap.Detail)
	}
	PrintRow("確認時刻", snap.CheckedAt.Format(time.RFC3339))
	fmt.Println()

	if snap.Status == "ok" && snap.APIKeyOK != nil && *snap.APIKeyOK {
		PrintSuccess("EDINET DB APIは正常に利用できます")
	} else {
		PrintError("EDINET DB APIの利用に問題があります")
	}

	return nil
}
