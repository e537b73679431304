package commands

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fptr(f float64) *float64 { return &f }

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		value *float64
		want  string
	}{
		{"missing", nil, "N/A"},
		{"trillions", fptr(1671865000000), "1.67兆円"},
		{"hundred millions", fptr(25600000000), "256.0億円"},
		{"ten thousands", fptr(12340000), "1234万円"},
		{"small", fptr(980), "980円"},
		{"zero", fptr(0), "0円"},
		{"negative", fptr(-530000000000), "-5300.0億円"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.value); got != tt.want {
				t.Errorf("FormatAmount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(nil); got != "N/A" {
		t.Errorf("FormatPercent(nil) = %q, want N/A", got)
	}
	if got := FormatPercent(fptr(15.8)); got != "15.80%" {
		t.Errorf("FormatPercent(15.8) = %q, want 15.80%%", got)
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(nil); got != "N/A" {
		t.Errorf("FormatValue(nil) = %q, want N/A", got)
	}
	if got := FormatValue(fptr(9.215)); got != "9.22" {
		t.Errorf("FormatValue(9.215) = %q, want 9.22", got)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := ExportCSV(path,
		[]string{"edinet_code", "name"},
		[][]string{{"E02144", "トヨタ自動車株式会社"}, {"E02367", "任天堂株式会社"}})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	content := string(raw)
	if !strings.HasPrefix(content, "\xEF\xBB\xBF") {
		t.Error("output must start with a UTF-8 BOM")
	}

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\xEF\xBB\xBF"))).ReadAll()
	if err != nil {
		t.Fatalf("csv parse error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[1][1] != "トヨタ自動車株式会社" {
		t.Errorf("records[1][1] = %q", records[1][1])
	}
}
