package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// analysisCmd represents the analysis command
var analysisCmd = &cobra.Command{
	Use:   "analysis <EDINETコード>",
	Short: "財務分析レポートを表示",
	Long: `直近期の財務データからレーティング付きの分析レポートを表示します。

レーティング基準:
  収益性 (ROE)        : 15%以上=優秀 / 10%以上=良好 / 5%以上=普通 / 未満=要改善
  効率性 (ROA)        : 10%以上=優秀 /  5%以上=良好 / 2%以上=普通 / 未満=要改善
  安全性 (自己資本比率): 50%以上=優秀 / 30%以上=良好 / 20%以上=普通 / 未満=要改善

Example:
  go run ./cmd/edinet analysis E02367
  go run ./cmd/edinet analysis E02367 --years 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalysis,
}

var analysisYears int

func init() {
	rootCmd.AddCommand(analysisCmd)

	analysisCmd.Flags().IntVar(&analysisYears, "years", 0, "直近N期の範囲で分析 (0=全期間)")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	report, err := d.analyzer.Analyze(context.Background(), args[0], analysisYears)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("財務分析: %s", report.Company.Name))
	PrintRow("EDINETコード", report.Company.Code)
	PrintRow("証券コード", report.Company.SecuritiesCode)
	PrintRow("業種", report.Company.Industry)
	PrintRow("対象期", report.LatestPeriod.FiscalPeriod)

	fmt.Println()
	fmt.Println("  [業績]")
	PrintRow("売上高", FormatAmount(report.Performance.NetSales))
	PrintRow("営業利益", FormatAmount(report.Performance.OperatingIncome))
	PrintRow("経常利益", FormatAmount(report.Performance.OrdinaryIncome))
	PrintRow("当期純利益", FormatAmount(report.Performance.NetIncome))

	fmt.Println()
	fmt.Println("  [財政状態]")
	PrintRow("総資産", FormatAmount(report.Balance.TotalAssets))
	PrintRow("純資産", FormatAmount(report.Balance.NetAssets))
	PrintRow("自己資本", FormatAmount(report.Balance.Equity))

	fmt.Println()
	fmt.Println("  [レーティング]")
	PrintRow("収益性 (ROE)", fmt.Sprintf("%s (%s)", report.Ratings.Profitability, FormatPercent(report.Indicators.ROE)))
	PrintRow("効率性 (ROA)", fmt.Sprintf("%s (%s)", report.Ratings.Efficiency, FormatPercent(report.Indicators.ROA)))
	PrintRow("安全性 (自己資本比率)", fmt.Sprintf("%s (%s)", report.Ratings.Stability, FormatPercent(report.Indicators.EquityRatio)))
	fmt.Println()

	return nil
}
