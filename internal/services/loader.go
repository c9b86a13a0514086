package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"datavista/internal/errors"
	"datavista/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// requiredColumns is the full 17-column schema of the sales export. If any
// is absent the whole dataset is rejected; there is no partial load.
var requiredColumns = []string{
	"Invoice ID", "Branch", "City", "Customer_type", "Gender", "Product line",
	"Unit price", "Quantity", "Tax 5%", "Total", "Date", "Time", "Payment",
	"cogs", "gross margin percentage", "gross income", "Rating",
}

// LoadCSV reads the sales export at path. Columns may appear in any order;
// the header is matched by name. At most rowCap data rows are read, the
// rest are silently excluded. Any malformed row aborts the whole load.
func LoadCSV(path string, rowCap int) ([]models.Sale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.SourceUnavailable(err, path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, errors.Parse(err, "reading header row")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, errors.Schema(col)
		}
	}

	sales := make([]models.Sale, 0, rowCap)
	row := 1
	for len(sales) < rowCap {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.Parse(err, fmt.Sprintf("reading row %d", row))
		}

		sale, err := parseSale(record, idx, row)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, nil
}

func parseSale(record []string, idx map[string]int, row int) (models.Sale, error) {
	field := func(col string) string {
		return strings.TrimSpace(record[idx[col]])
	}

	var s models.Sale
	s.InvoiceID = field("Invoice ID")
	s.Branch = field("Branch")
	s.City = field("City")
	s.CustomerType = field("Customer_type")
	s.Gender = field("Gender")
	s.ProductLine = field("Product line")
	s.Payment = field("Payment")

	var err error
	for _, f := range []struct {
		col string
		dst *float64
	}{
		{"Unit price", &s.UnitPrice},
		{"Tax 5%", &s.TaxAmount},
		{"Total", &s.Total},
		{"cogs", &s.COGS},
		{"gross margin percentage", &s.GrossMarginPct},
		{"gross income", &s.GrossIncome},
		{"Rating", &s.Rating},
	} {
		*f.dst, err = strconv.ParseFloat(field(f.col), 64)
		if err != nil {
			return models.Sale{}, errors.Parse(err, fmt.Sprintf("row %d: bad %q value", row, f.col))
		}
	}

	s.Quantity, err = strconv.Atoi(field("Quantity"))
	if err != nil {
		return models.Sale{}, errors.Parse(err, fmt.Sprintf("row %d: bad \"Quantity\" value", row))
	}

	s.Date, err = time.Parse(dateLayout, field("Date"))
	if err != nil {
		return models.Sale{}, errors.Parse(err, fmt.Sprintf("row %d: bad \"Date\" value", row))
	}

	timeOfDay, err := time.Parse(timeLayout, field("Time"))
	if err != nil {
		return models.Sale{}, errors.Parse(err, fmt.Sprintf("row %d: bad \"Time\" value", row))
	}

	if s.Total < 0 {
		return models.Sale{}, errors.Parse(nil, fmt.Sprintf("row %d: negative total %.2f", row, s.Total))
	}
	if s.Quantity < 0 {
		return models.Sale{}, errors.Parse(nil, fmt.Sprintf("row %d: negative quantity %d", row, s.Quantity))
	}

	s.DeriveCalendar(timeOfDay)
	return s, nil
}
