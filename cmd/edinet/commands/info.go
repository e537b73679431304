package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <EDINETコード>",
	Short: "企業の詳細情報を表示",
	Long: `EDINETコードで指定した企業の詳細情報を表示します。

Example:
  go run ./cmd/edinet info E02144`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	detail, err := d.analyzer.CompanyInfo(context.Background(), args[0])
	if err != nil {
		return err
	}

	PrintHeader(detail.Name())
	PrintRow("EDINETコード", args[0])
	PrintRow("証券コード", detail.SecuritiesCode())
	PrintRow("業種", detail.Industry())

	// 上流が返す任意属性は存在するものだけ表示する
	optional := []struct{ label, key string }{
		{"所在地", "address"},
		{"代表者", "representative"},
		{"決算日", "fiscal_year_end"},
	}
	for _, f := range optional {
		if v := detail.StringField(f.key); v != "" {
			PrintRow(f.label, v)
		}
	}
	fmt.Println()

	return nil
}
