package services

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"datavista/internal/errors"
)

const csvHeader = "Invoice ID,Branch,City,Customer_type,Gender,Product line,Unit price,Quantity,Tax 5%,Total,Date,Time,Payment,cogs,gross margin percentage,gross income,Rating"

func csvRow(invoiceID, city, date, timeOfDay string, total float64) string {
	return fmt.Sprintf("%s,A,%s,Member,Male,Food and beverages,10.00,2,0.95,%.2f,%s,%s,Cash,19.05,4.761904762,0.95,7.0",
		invoiceID, city, total, date, timeOfDay)
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func appErrCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestLoadCSV_ValidData(t *testing.T) {
	content := strings.Join([]string{
		csvHeader,
		csvRow("750-67-8428", "Yangon", "2024-01-05", "13:08:00", 20.95),
		csvRow("226-31-3081", "Mandalay", "2024-03-08", "10:29:00", 80.22),
	}, "\n")

	sales, err := LoadCSV(writeTempCSV(t, content), 1000)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("got %d sales, want 2", len(sales))
	}

	s := sales[0]
	if s.InvoiceID != "750-67-8428" || s.City != "Yangon" {
		t.Errorf("unexpected first record: %+v", s)
	}
	if s.Hour != 13 {
		t.Errorf("Hour = %d, want 13", s.Hour)
	}
	if s.Month != "2024-01" {
		t.Errorf("Month = %q, want 2024-01", s.Month)
	}
	// 2024-01-05 is a Friday; the week bucket is Monday the 1st.
	if got := s.Week.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("Week = %s, want 2024-01-01", got)
	}
}

func TestLoadCSV_ColumnOrderIndependent(t *testing.T) {
	content := "Total,Invoice ID,Branch,City,Customer_type,Gender,Product line,Unit price,Quantity,Tax 5%,Date,Time,Payment,cogs,gross margin percentage,gross income,Rating\n" +
		"20.95,750-67-8428,A,Yangon,Member,Male,Food and beverages,10.00,2,0.95,2024-01-05,13:08:00,Cash,19.05,4.761904762,0.95,7.0"

	sales, err := LoadCSV(writeTempCSV(t, content), 1000)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(sales) != 1 || sales[0].Total != 20.95 {
		t.Errorf("header-mapped parse failed: %+v", sales)
	}
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	// Header without the Rating column.
	header := strings.TrimSuffix(csvHeader, ",Rating")
	content := header + "\n" +
		"750-67-8428,A,Yangon,Member,Male,Food and beverages,10.00,2,0.95,20.95,2024-01-05,13:08:00,Cash,19.05,4.761904762,0.95"

	_, err := LoadCSV(writeTempCSV(t, content), 1000)
	if err == nil {
		t.Fatal("LoadCSV() should reject a dataset missing a required column")
	}
	if code := appErrCode(t, err); code != errors.CodeSchema {
		t.Errorf("error code = %s, want %s", code, errors.CodeSchema)
	}
}

func TestLoadCSV_MalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"bad time", csvRow("I1", "Yangon", "2024-01-05", "25:99:00", 20.95)},
		{"bad date", csvRow("I1", "Yangon", "05/01/2024", "13:08:00", 20.95)},
		{"bad total", "I1,A,Yangon,Member,Male,Food,10.00,2,0.95,abc,2024-01-05,13:08:00,Cash,19.05,4.76,0.95,7.0"},
		{"bad quantity", "I1,A,Yangon,Member,Male,Food,10.00,two,0.95,20.95,2024-01-05,13:08:00,Cash,19.05,4.76,0.95,7.0"},
		{"negative total", csvRow("I1", "Yangon", "2024-01-05", "13:08:00", -5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := csvHeader + "\n" +
				csvRow("OK-1", "Yangon", "2024-01-01", "09:00:00", 10) + "\n" +
				tt.row

			sales, err := LoadCSV(writeTempCSV(t, content), 1000)
			if err == nil {
				t.Fatal("LoadCSV() should abort the whole load on a malformed row")
			}
			if code := appErrCode(t, err); code != errors.CodeParse {
				t.Errorf("error code = %s, want %s", code, errors.CodeParse)
			}
			if sales != nil {
				t.Error("no partial dataset on failed load")
			}
		})
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), 1000)
	if err == nil {
		t.Fatal("LoadCSV() should fail for a missing file")
	}
	if code := appErrCode(t, err); code != errors.CodeSourceUnavail {
		t.Errorf("error code = %s, want %s", code, errors.CodeSourceUnavail)
	}
}

func TestLoadCSV_RowCap(t *testing.T) {
	var b strings.Builder
	b.WriteString(csvHeader)
	for i := 0; i < 1500; i++ {
		b.WriteString("\n")
		b.WriteString(csvRow(fmt.Sprintf("I%d", i), "Yangon", "2024-01-05", "13:08:00", 20.95))
	}

	sales, err := LoadCSV(writeTempCSV(t, b.String()), 1000)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if len(sales) != 1000 {
		t.Errorf("got %d sales, want exactly the 1000-row cap", len(sales))
	}

	r := ComputeKPIs(sales)
	if r.TotalTransactions > 1000 {
		t.Errorf("TotalTransactions = %d, want <= 1000", r.TotalTransactions)
	}
}
