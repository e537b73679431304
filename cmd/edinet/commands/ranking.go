package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/analyzer"
	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
)

// rankingCmd represents the ranking command
var rankingCmd = &cobra.Command{
	Use:   "ranking <指標>",
	Short: "指標ランキングを表示",
	Long: fmt.Sprintf(`財務指標のランキングを表示します。

指標: %s

Example:
  go run ./cmd/edinet ranking roe
  go run ./cmd/edinet ranking sales --limit 10
  go run ./cmd/edinet ranking roa --order asc --export roa.csv`,
		strings.Join(analyzer.ValidMetricNames(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runRanking,
}

var (
	rankingLimit  int
	rankingOrder  string
	rankingExport string
)

func init() {
	rootCmd.AddCommand(rankingCmd)

	rankingCmd.Flags().IntVar(&rankingLimit, "limit", 20, "表示件数 (1-100)")
	rankingCmd.Flags().StringVar(&rankingOrder, "order", "desc", "並び順 (asc|desc)")
	rankingCmd.Flags().StringVar(&rankingExport, "export", "", "結果をCSVファイルに保存")
}

func runRanking(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	metric := args[0]
	doc, err := d.analyzer.Ranking(context.Background(), metric, rankingLimit, rankingOrder)
	if err != nil {
		return err
	}

	entries := edinet.ParseRankingEntries(doc)
	if len(entries) == 0 {
		PrintWarning(fmt.Sprintf("%s のランキングデータがありません", metric))
		return nil
	}

	PrintHeader(fmt.Sprintf("%s ランキング (%s)", strings.ToUpper(metric), rankingOrder))
	fmt.Printf("  %4s  %-10s  %-24s  %s\n", "順位", "EDINETコード", "企業名", "値")
	PrintSeparator()
	for i, e := range entries {
		fmt.Printf("  %4d  %-10s  %-24s  %s\n", i+1, e.EDINETCode, e.Name, FormatValue(e.Value))
	}
	PrintSeparator()

	if rankingExport != "" {
		rows := make([][]string, 0, len(entries))
		for i, e := range entries {
			rows = append(rows, []string{fmt.Sprint(i + 1), e.EDINETCode, e.Name, FormatValue(e.Value)})
		}
		if err := ExportCSV(rankingExport, []string{"rank", "edinet_code", "name", "value"}, rows); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("%s に保存しました", rankingExport))
	}

	return nil
}
