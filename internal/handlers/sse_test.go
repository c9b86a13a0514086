package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"datavista/internal/models"
)

func TestNewSSEHandlers(t *testing.T) {
	dashboard := createTestDashboard()
	logger := testLogger()

	handlers := NewSSEHandlers(dashboard, logger)

	if handlers == nil {
		t.Fatal("NewSSEHandlers() returned nil")
	}
	if handlers.dashboard != dashboard {
		t.Error("NewSSEHandlers() should set dashboard field")
	}
	if handlers.logger != logger {
		t.Error("NewSSEHandlers() should set logger field")
	}
}

func TestSSEHandlers_renderKPITiles(t *testing.T) {
	handlers := NewSSEHandlers(createTestDashboard(), testLogger())

	rating := 6.8
	report := models.Report{
		TotalSales:            60.00,
		TotalTransactions:     3,
		AvgSalePerTransaction: 20.00,
		AvgRating:             &rating,
		TotalCustomers:        2,
		RepeatCustomerRate:    50.00,
		CLV:                   225.00,
	}

	html, err := handlers.renderKPITiles(report)
	if err != nil {
		t.Fatalf("renderKPITiles() failed: %v", err)
	}

	expectedContent := []string{
		`<div id="kpi-tiles">`,
		"Total Sales",
		"$ 60.00",
		"Avg Sale/Transaction",
		"$ 20.00",
		"6.8",
		"Repeat Customer Rate",
		"50.00%",
		"Customer Lifetime Value",
		"$ 225.00",
	}
	for _, content := range expectedContent {
		if !strings.Contains(html, content) {
			t.Errorf("expected HTML to contain %q", content)
		}
	}
}

func TestSSEHandlers_renderKPITiles_NoRatingSentinel(t *testing.T) {
	handlers := NewSSEHandlers(createTestDashboard(), testLogger())

	html, err := handlers.renderKPITiles(models.Report{})
	if err != nil {
		t.Fatalf("renderKPITiles() failed: %v", err)
	}

	if !strings.Contains(html, "no data") {
		t.Error("zero-row rating should render the 'no data' sentinel, not a fake zero")
	}
}

func TestSSEHandlers_HandleKPIs(t *testing.T) {
	handlers := NewSSEHandlers(createTestDashboard(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/kpis", nil)
	w := httptest.NewRecorder()

	handlers.HandleKPIs(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
		t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, "kpi-tiles") {
		t.Error("SSE body should patch the KPI tiles")
	}
	if !strings.Contains(body, "total_sales") {
		t.Error("SSE body should patch the report signals")
	}
}

func TestSSEHandlers_HandleKPIs_FilterSignals(t *testing.T) {
	handlers := NewSSEHandlers(createTestDashboard(), testLogger())

	// Datastar GET requests carry signals in the datastar query param.
	req := httptest.NewRequest(http.MethodGet, "/sse/kpis?datastar="+url.QueryEscape(`{"cities":["Yangon"]}`), nil)
	w := httptest.NewRecorder()

	handlers.HandleKPIs(w, req)

	body := w.Body.String()
	if !strings.Contains(body, `\"total_transactions\":1`) && !strings.Contains(body, `"total_transactions":1`) {
		t.Errorf("expected filtered report with 1 transaction, body: %s", body)
	}
}

func TestSSEHandlers_HandleRefreshAll(t *testing.T) {
	handlers := NewSSEHandlers(createTestDashboard(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/sse/refresh-all", nil)
	w := httptest.NewRecorder()

	handlers.HandleRefreshAll(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, content := range []string{"kpi-tiles", "report", "options", "baseline"} {
		if !strings.Contains(body, content) {
			t.Errorf("refresh-all body should contain %q", content)
		}
	}
}
