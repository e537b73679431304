package commands

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 全コマンドで出力フォーマットを統一する
// ═══════════════════════════════════════════════════════════

// FormatAmount formats a yen amount with 兆/億/万 units.
// 欠損値 (nil) は "N/A" になる。
func FormatAmount(v *float64) string {
	if v == nil {
		return "N/A"
	}

	n := *v
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	switch {
	case n >= 1e12:
		return fmt.Sprintf("%s%.2f兆円", sign, n/1e12)
	case n >= 1e8:
		return fmt.Sprintf("%s%.1f億円", sign, n/1e8)
	case n >= 1e4:
		return fmt.Sprintf("%s%.0f万円", sign, n/1e4)
	default:
		return fmt.Sprintf("%s%.0f円", sign, n)
	}
}

// FormatPercent formats a ratio already expressed in percent.
func FormatPercent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatValue formats a bare metric value for ranking tables.
func FormatValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Println("───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator() {
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintHeader prints a section header between double separators.
func PrintHeader(title string) {
	fmt.Println()
	PrintDoubleSeparator()
	fmt.Printf("  %s\n", title)
	PrintDoubleSeparator()
}

// PrintRow prints a labeled value row.
func PrintRow(label, value string) {
	fmt.Printf("  %-14s: %s\n", label, value)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("❌ %s\n", message)
}

// ExportCSV writes a table to a CSV file.
// Excelで開けるようBOM付きUTF-8で出力する。
func ExportCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}
