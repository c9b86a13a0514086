package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"datavista/internal/errors"
	"datavista/internal/models"
	"datavista/internal/observability"
	"datavista/internal/services"
)

const dateParamLayout = "2006-01-02"

type APIHandlers struct {
	dashboard *services.Dashboard
	logger    *slog.Logger
}

func NewAPIHandlers(dashboard *services.Dashboard, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		dashboard: dashboard,
		logger:    logger,
	}
}

// HandleKPIs recomputes the full KPI set for the selection given in the
// query string. Dimension params repeat (`city=A&city=B`); an absent param
// means untouched (all observed values), a single empty value is an
// explicit deselect-all.
func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		errors.WriteError(w, h.logger, err, observability.GetRequestID(r.Context()))
		return
	}

	report := h.dashboard.Snapshot(r.Context(), sel)

	errors.WriteSuccess(w, report)
}

// HandleFilters returns the default selection so the sidebar can populate
// its multiselects with the observed values, in dataset order.
func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.dashboard.Defaults())
}

func (h *APIHandlers) HandleBaseline(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, h.dashboard.Baseline(), headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.dashboard.Stats())
}

func selectionFromQuery(q url.Values) (models.Selection, error) {
	var sel models.Selection

	if v := q.Get("from"); v != "" {
		from, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return sel, errors.BadRequestWrap(err, "invalid 'from' date, want YYYY-MM-DD")
		}
		sel.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse(dateParamLayout, v)
		if err != nil {
			return sel, errors.BadRequestWrap(err, "invalid 'to' date, want YYYY-MM-DD")
		}
		sel.To = &to
	}

	sel.Cities = multiParam(q, "city")
	sel.CustomerTypes = multiParam(q, "customer_type")
	sel.Genders = multiParam(q, "gender")

	return sel, nil
}

func multiParam(q url.Values, key string) []string {
	values, ok := q[key]
	if !ok {
		return nil
	}
	if len(values) == 1 && values[0] == "" {
		return []string{}
	}
	return values
}
