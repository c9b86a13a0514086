package services

import (
	"math"

	"datavista/internal/models"
)

// assumedLifespanYears is the fixed customer lifespan used by the CLV
// estimate. It is a documented modeling assumption, not derived from data.
const assumedLifespanYears = 5

// ComputeKPIs derives the full KPI set from a record collection. The empty
// collection is valid input: every ratio is pre-guarded to zero and
// AvgRating stays nil. Grouped maps carry only observed keys.
//
// RepeatCustomers counts rows whose invoice id already occurred earlier in
// iteration order, so occurrences 2..n of each repeated id count and the
// first does not. It is a row-duplication count, not the number of
// customers with two or more invoices.
func ComputeKPIs(sales []models.Sale) models.Report {
	r := models.Report{
		TotalTransactions: len(sales),
		ProductSales:      make(map[string]float64),
		HourSales:         make(map[int]float64),
		MonthlySales:      make(map[string]float64),
		CustomerTypeSales: make(map[string]float64),
		GenderSales:       make(map[string]float64),
		CitySales:         make(map[string]float64),
	}

	seen := make(map[string]struct{}, len(sales))
	var totalSales, ratingSum float64

	for _, s := range sales {
		totalSales += s.Total
		ratingSum += s.Rating

		r.ProductSales[s.ProductLine] += s.Total
		r.HourSales[s.Hour] += s.Total
		r.MonthlySales[s.Month] += s.Total
		r.CustomerTypeSales[s.CustomerType] += s.Total
		r.GenderSales[s.Gender] += s.Total
		r.CitySales[s.City] += s.Total

		if _, ok := seen[s.InvoiceID]; ok {
			r.RepeatCustomers++
		} else {
			seen[s.InvoiceID] = struct{}{}
		}
	}

	r.TotalCustomers = len(seen)
	r.TotalSales = round2(totalSales)

	roundMap(r.ProductSales)
	roundMap(r.MonthlySales)
	roundMap(r.CustomerTypeSales)
	roundMap(r.GenderSales)
	roundMap(r.CitySales)
	for k, v := range r.HourSales {
		r.HourSales[k] = round2(v)
	}

	if r.TotalTransactions > 0 {
		r.AvgSalePerTransaction = round2(r.TotalSales / float64(r.TotalTransactions))
		avg := round1(ratingSum / float64(r.TotalTransactions))
		r.AvgRating = &avg
	}

	if r.TotalCustomers > 0 {
		r.RepeatCustomerRate = round2(float64(r.RepeatCustomers) / float64(r.TotalCustomers) * 100)

		avgPurchaseValue := r.TotalSales / float64(r.TotalCustomers)
		purchaseFrequency := float64(r.TotalTransactions) / float64(r.TotalCustomers)
		r.CLV = round2(avgPurchaseValue * purchaseFrequency * assumedLifespanYears)
	}

	return r
}

func roundMap(m map[string]float64) {
	for k, v := range m {
		m[k] = round2(v)
	}
}

// Rounding is half away from zero throughout, two decimals for currency
// and one for ratings.
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
