package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [キーワード]",
	Short: "企業をキーワード検索",
	Long: `企業名のキーワードで上場企業を検索します。
キーワードを省略すると企業一覧を表示します。

Example:
  go run ./cmd/edinet search トヨタ
  go run ./cmd/edinet search 任天堂 --per-page 5
  go run ./cmd/edinet search --page 2
  go run ./cmd/edinet search 銀行 --export banks.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchPerPage int
	searchPage    int
	searchExport  string
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchPerPage, "per-page", 20, "1ページあたりの件数 (1-100)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "ページ番号")
	searchCmd.Flags().StringVar(&searchExport, "export", "", "結果をCSVファイルに保存")
}

func runSearch(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	doc, err := d.analyzer.Search(context.Background(), query, searchPerPage, searchPage)
	if err != nil {
		return err
	}

	companies := companiesFrom(doc)
	if len(companies) == 0 {
		if query == "" {
			PrintWarning("企業が見つかりませんでした")
		} else {
			PrintWarning(fmt.Sprintf("「%s」に該当する企業が見つかりませんでした", query))
		}
		return nil
	}

	title := fmt.Sprintf("企業一覧 (%d件)", len(companies))
	if query != "" {
		title = fmt.Sprintf("検索結果: %s (%d件)", query, len(companies))
	}
	PrintHeader(title)
	fmt.Printf("  %-10s  %-8s  %-24s  %s\n", "EDINETコード", "証券コード", "企業名", "業種")
	PrintSeparator()
	for _, c := range companies {
		fmt.Printf("  %-10s  %-8s  %-24s  %s\n", c.EDINETCode, c.SecuritiesCode, c.Name, c.Industry)
	}
	PrintSeparator()

	if searchExport != "" {
		rows := make([][]string, 0, len(companies))
		for _, c := range companies {
			rows = append(rows, []string{c.EDINETCode, c.SecuritiesCode, c.Name, c.Industry})
		}
		if err := ExportCSV(searchExport, []string{"edinet_code", "securities_code", "name", "industry"}, rows); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("%s に保存しました", searchExport))
	}

	return nil
}

// companiesFrom extracts summaries from a search or listing document.
// 検索は正規化済みのスライス、一覧は上流ドキュメントのままなので両対応する。
func companiesFrom(doc edinet.Document) []edinet.CompanySummary {
	if companies, ok := doc["companies"].([]edinet.CompanySummary); ok {
		return companies
	}
	return edinet.NormalizeSearchResults(doc)
}
