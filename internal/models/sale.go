package models

import "time"

// Sale is one row of the sales export. Hour, Week and Month are derived
// from Date/Time on load and never persisted.
type Sale struct {
	InvoiceID      string
	Branch         string
	City           string
	CustomerType   string
	Gender         string
	ProductLine    string
	Payment        string
	UnitPrice      float64
	Quantity       int
	TaxAmount      float64
	Total          float64
	COGS           float64
	GrossMarginPct float64
	GrossIncome    float64
	Rating         float64
	Date           time.Time
	Hour           int
	Week           time.Time
	Month          string
}

// DeriveCalendar fills Hour, Week and Month from Date and the given
// time-of-day. Week is the Monday at or before Date, Month the "YYYY-MM"
// bucket key.
func (s *Sale) DeriveCalendar(timeOfDay time.Time) {
	s.Hour = timeOfDay.Hour()
	s.Week = WeekStart(s.Date)
	s.Month = s.Date.Format("2006-01")
}

// WeekStart returns the Monday at or before d, at midnight UTC.
func WeekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Selection is one dashboard session's filter state. A nil bound means
// unbounded on that side. A nil slice means the filter is untouched and
// resolves to all observed values; an empty non-nil slice is an explicit
// deselect-all and matches nothing.
type Selection struct {
	From          *time.Time `json:"from"`
	To            *time.Time `json:"to"`
	Cities        []string   `json:"cities"`
	CustomerTypes []string   `json:"customer_types"`
	Genders       []string   `json:"genders"`
}

// Report is the full KPI set for one render pass. Grouped maps carry only
// the keys observed in the filtered records; absent categories are absent,
// not zero-filled. AvgRating is nil when there are no records, since a mean
// over zero rows has no meaningful value.
type Report struct {
	TotalSales            float64            `json:"total_sales"`
	TotalTransactions     int                `json:"total_transactions"`
	AvgSalePerTransaction float64            `json:"avg_sale_per_transaction"`
	AvgRating             *float64           `json:"avg_rating"`
	TotalCustomers        int                `json:"total_customers"`
	ProductSales          map[string]float64 `json:"product_sales"`
	HourSales             map[int]float64    `json:"hour_sales"`
	MonthlySales          map[string]float64 `json:"monthly_sales"`
	CustomerTypeSales     map[string]float64 `json:"customer_type_sales"`
	GenderSales           map[string]float64 `json:"gender_sales"`
	CitySales             map[string]float64 `json:"city_sales"`
	RepeatCustomers       int                `json:"repeat_customers"`
	RepeatCustomerRate    float64            `json:"repeat_customer_rate"`
	CLV                   float64            `json:"clv"`
}
