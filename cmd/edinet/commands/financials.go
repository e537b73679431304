package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
)

// financialsCmd represents the financials command
var financialsCmd = &cobra.Command{
	Use:   "financials <EDINETコード>",
	Short: "財務データを表示",
	Long: `企業の財務データ時系列を表示します。

Example:
  go run ./cmd/edinet financials E02144
  go run ./cmd/edinet financials E02144 --years 3
  go run ./cmd/edinet financials E02144 --export toyota.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runFinancials,
}

var (
	financialsYears  int
	financialsExport string
)

func init() {
	rootCmd.AddCommand(financialsCmd)

	financialsCmd.Flags().IntVar(&financialsYears, "years", 0, "直近N期に絞る (0=全期間)")
	financialsCmd.Flags().StringVar(&financialsExport, "export", "", "結果をCSVファイルに保存")
}

func runFinancials(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	result, err := d.analyzer.Financials(context.Background(), args[0], financialsYears)
	if err != nil {
		return err
	}

	if len(result.Financials) == 0 {
		PrintWarning(fmt.Sprintf("%s の財務データが見つかりませんでした", args[0]))
		return nil
	}

	PrintHeader(fmt.Sprintf("財務データ: %s (%d期)", args[0], len(result.Financials)))
	for _, p := range result.Financials {
		printPeriod(p)
	}

	if financialsExport != "" {
		header := []string{
			"fiscal_period", "net_sales", "operating_income", "ordinary_income",
			"net_income", "total_assets", "net_assets", "roe", "roa", "equity_ratio",
		}
		rows := make([][]string, 0, len(result.Financials))
		for _, p := range result.Financials {
			rows = append(rows, []string{
				p.FiscalPeriod,
				FormatValue(p.NetSales),
				FormatValue(p.OperatingIncome),
				FormatValue(p.OrdinaryIncome),
				FormatValue(p.NetIncome),
				FormatValue(p.TotalAssets),
				FormatValue(p.NetAssets),
				FormatValue(p.ROE),
				FormatValue(p.ROA),
				FormatValue(p.EquityRatio),
			})
		}
		if err := ExportCSV(financialsExport, header, rows); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("%s に保存しました", financialsExport))
	}

	return nil
}

// printPeriod prints one fiscal period as P/L, B/S and indicator sections.
func printPeriod(p edinet.FinancialPeriod) {
	fmt.Println()
	fmt.Printf("■ %s", p.FiscalPeriod)
	if p.FiscalYearEndDate != "" {
		fmt.Printf(" (決算日: %s)", p.FiscalYearEndDate)
	}
	fmt.Println()
	PrintSeparator()

	fmt.Println("  [損益計算書]")
	PrintRow("売上高", FormatAmount(p.NetSales))
	PrintRow("営業利益", FormatAmount(p.OperatingIncome))
	PrintRow("経常利益", FormatAmount(p.OrdinaryIncome))
	PrintRow("当期純利益", FormatAmount(p.NetIncome))

	fmt.Println("  [貸借対照表]")
	PrintRow("総資産", FormatAmount(p.TotalAssets))
	PrintRow("純資産", FormatAmount(p.NetAssets))
	PrintRow("自己資本", FormatAmount(p.Equity))

	fmt.Println("  [財務指標]")
	PrintRow("ROE", FormatPercent(p.ROE))
	PrintRow("ROA", FormatPercent(p.ROA))
	PrintRow("自己資本比率", FormatPercent(p.EquityRatio))
	PrintRow("営業利益率", FormatPercent(p.OperatingMargin))
}
