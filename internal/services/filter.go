package services

import (
	"datavista/internal/models"
)

// DefaultSelection is the untouched-sidebar state: unbounded dates and
// every distinct observed value per dimension, in first-seen order.
func DefaultSelection(sales []models.Sale) models.Selection {
	return models.Selection{
		Cities:        distinct(sales, func(s models.Sale) string { return s.City }),
		CustomerTypes: distinct(sales, func(s models.Sale) string { return s.CustomerType }),
		Genders:       distinct(sales, func(s models.Sale) string { return s.Gender }),
	}
}

func distinct(sales []models.Sale, key func(models.Sale) string) []string {
	seen := make(map[string]struct{}, len(sales))
	values := make([]string, 0)
	for _, s := range sales {
		k := key(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}

// ApplyFilter keeps the records matching every predicate of sel: the
// inclusive date range plus set membership on city, customer type and
// gender. An empty selection set excludes all rows; "nothing selected
// means nothing shown" is deliberate, not defaulted back to all. The
// input is never mutated.
func ApplyFilter(sales []models.Sale, sel models.Selection) []models.Sale {
	cities := toSet(sel.Cities)
	customerTypes := toSet(sel.CustomerTypes)
	genders := toSet(sel.Genders)

	filtered := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if sel.From != nil && s.Date.Before(*sel.From) {
			continue
		}
		if sel.To != nil && s.Date.After(*sel.To) {
			continue
		}
		if _, ok := cities[s.City]; !ok {
			continue
		}
		if _, ok := customerTypes[s.CustomerType]; !ok {
			continue
		}
		if _, ok := genders[s.Gender]; !ok {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
