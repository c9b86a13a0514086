package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/starfederation/datastar-go/datastar"

	"datavista/internal/models"
	"datavista/internal/services"
)

var kpiTilesTemplate = template.Must(template.New("kpiTiles").Parse(`
<div id="kpi-tiles">
<div class="metric-card"><span class="metric-label">Total Sales</span><span class="metric-value">$ {{.TotalSales}}</span></div>
<div class="metric-card"><span class="metric-label">Transactions</span><span class="metric-value">{{.TotalTransactions}}</span></div>
<div class="metric-card"><span class="metric-label">Avg Sale/Transaction</span><span class="metric-value">$ {{.AvgSale}}</span></div>
<div class="metric-card"><span class="metric-label">Avg Rating</span><span class="metric-value">{{.AvgRating}}</span></div>
<div class="metric-card"><span class="metric-label">Customers</span><span class="metric-value">{{.TotalCustomers}}</span></div>
<div class="metric-card"><span class="metric-label">Repeat Customer Rate</span><span class="metric-value">{{.RepeatRate}}%</span></div>
<div class="metric-card"><span class="metric-label">Customer Lifetime Value</span><span class="metric-value">$ {{.CLV}}</span></div>
</div>`))

type tilesView struct {
	TotalSales        string
	TotalTransactions int
	AvgSale           string
	AvgRating         string
	TotalCustomers    int
	RepeatRate        string
	CLV               string
}

// filterSignals mirrors the sidebar's datastar signals. Dimension slices
// stay nil while the sidebar is untouched; an empty array is an explicit
// deselect-all.
type filterSignals struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Cities        []string `json:"cities"`
	CustomerTypes []string `json:"customerTypes"`
	Genders       []string `json:"genders"`
}

type SSEHandlers struct {
	dashboard *services.Dashboard
	logger    *slog.Logger
}

func NewSSEHandlers(dashboard *services.Dashboard, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		dashboard: dashboard,
		logger:    logger,
	}
}

func (h *SSEHandlers) renderKPITiles(report models.Report) (string, error) {
	view := tilesView{
		TotalSales:        fmt.Sprintf("%.2f", report.TotalSales),
		TotalTransactions: report.TotalTransactions,
		AvgSale:           fmt.Sprintf("%.2f", report.AvgSalePerTransaction),
		AvgRating:         "no data",
		TotalCustomers:    report.TotalCustomers,
		RepeatRate:        fmt.Sprintf("%.2f", report.RepeatCustomerRate),
		CLV:               fmt.Sprintf("%.2f", report.CLV),
	}
	if report.AvgRating != nil {
		view.AvgRating = fmt.Sprintf("%.1f", *report.AvgRating)
	}

	var buf strings.Builder
	err := kpiTilesTemplate.Execute(&buf, view)
	return buf.String(), err
}

func (h *SSEHandlers) selectionFromSignals(r *http.Request) (models.Selection, error) {
	var signals filterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		// No signals at all means an untouched sidebar.
		h.logger.Debug("no filter signals in request", "error", err)
	}

	var sel models.Selection
	if signals.From != "" {
		from, err := time.Parse(dateParamLayout, signals.From)
		if err != nil {
			return sel, err
		}
		sel.From = &from
	}
	if signals.To != "" {
		to, err := time.Parse(dateParamLayout, signals.To)
		if err != nil {
			return sel, err
		}
		sel.To = &to
	}
	sel.Cities = signals.Cities
	sel.CustomerTypes = signals.CustomerTypes
	sel.Genders = signals.Genders
	return sel, nil
}

// HandleKPIs runs one full recompute pass for the current sidebar signals
// and pushes the refreshed tiles plus the chart data signals.
func (h *SSEHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	sel, err := h.selectionFromSignals(r)
	if err != nil {
		h.logger.Warn("bad filter signals", "error", err)
		return
	}

	report := h.dashboard.Snapshot(r.Context(), sel)

	html, err := h.renderKPITiles(report)
	if err != nil {
		h.logger.Error("render kpi tiles", "error", err)
		return
	}
	sse.PatchElements(html)

	jsonData, err := json.Marshal(map[string]any{
		"report": report,
	})
	if err != nil {
		h.logger.Error("marshal kpi report", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleRefreshAll reloads everything the page shows: tiles, chart data,
// the sidebar's observed filter values and the baseline mapping.
func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	sel, err := h.selectionFromSignals(r)
	if err != nil {
		h.logger.Warn("bad filter signals", "error", err)
		return
	}

	report := h.dashboard.Snapshot(r.Context(), sel)

	html, err := h.renderKPITiles(report)
	if err != nil {
		h.logger.Error("render kpi tiles", "error", err)
		return
	}
	sse.PatchElements(html)

	allSignals, err := json.Marshal(map[string]any{
		"report":   report,
		"options":  h.dashboard.Defaults(),
		"baseline": h.dashboard.Baseline(),
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
