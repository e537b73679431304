package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <EDINETコード>...",
	Short: "複数企業を比較",
	Long: `2〜10社の財務データを並列取得して比較します。
一部の企業で取得に失敗しても残りの企業は表示されます。

Example:
  go run ./cmd/edinet compare E02144 E02367
  go run ./cmd/edinet compare E02144,E02367,E01825 --years 1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

var compareYears int

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVar(&compareYears, "years", 0, "直近N期に絞る (0=全期間)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	// 空白区切りとカンマ区切りの両方を受け付ける
	var codes []string
	for _, arg := range args {
		for _, c := range strings.Split(arg, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
	}

	result, err := d.analyzer.Compare(context.Background(), codes, compareYears)
	if err != nil {
		return err
	}

	if len(result.Success) > 0 {
		PrintHeader(fmt.Sprintf("企業比較 (%d社)", len(result.Success)))
		fmt.Printf("  %-10s  %-20s  %-12s  %-8s  %-8s  %s\n",
			"コード", "企業名", "売上高", "ROE", "ROA", "自己資本比率")
		PrintSeparator()
		for _, s := range result.Success {
			printCompareRow(s)
		}
		PrintSeparator()
	}

	if len(result.Errors) > 0 {
		fmt.Println()
		PrintError(fmt.Sprintf("%d社の取得に失敗しました", len(result.Errors)))
		for _, e := range result.Errors {
			fmt.Printf("   • %s: %s\n", e.Code, e.Error)
		}
	}

	return nil
}

// printCompareRow prints one company's latest-period figures.
func printCompareRow(s analyzer.CompareSuccess) {
	sales, roe, roa, equity := "N/A", "N/A", "N/A", "N/A"
	if s.Financials != nil && len(s.Financials.Financials) > 0 {
		latest := s.Financials.Financials[0]
		sales = FormatAmount(latest.NetSales)
		roe = FormatPercent(latest.ROE)
		roa = FormatPercent(latest.ROA)
		equity = FormatPercent(latest.EquityRatio)
	}
	fmt.Printf("  %-10s  %-20s  %-12s  %-8s  %-8s  %s\n",
		s.Code, s.Name, sales, roe, roa, equity)
}
