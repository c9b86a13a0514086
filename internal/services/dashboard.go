package services

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	stderrors "errors"

	"datavista/internal/errors"
	"datavista/internal/models"
	"datavista/internal/observability"
)

// Dashboard holds one immutable loaded dataset plus its filter defaults
// and the baseline product-sales mapping. Every filter change runs the
// full pipeline again: resolve defaults, filter, aggregate. There is no
// incremental update.
type Dashboard struct {
	mu       sync.RWMutex
	sales    []models.Sale
	defaults models.Selection
	baseline map[string]float64
	loadErr  *errors.AppError
	loadedAt time.Time

	store   *DatasetStore
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewDashboard(store *DatasetStore, logger *slog.Logger, metrics *observability.Metrics) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{
		baseline: make(map[string]float64),
		store:    store,
		logger:   logger,
		metrics:  metrics,
	}
}

// Load pulls the dataset for path through the memoizing store. A failed
// load is reported once and degrades to an empty, well-formed dataset so
// every downstream stage still runs.
func (d *Dashboard) Load(ctx context.Context, path string) error {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "dataset.load")
	defer span.Finish()
	span.SetTag("path", path)

	sales, err := d.store.Get(path)

	d.mu.Lock()
	if err != nil {
		var appErr *errors.AppError
		if !stderrors.As(err, &appErr) {
			appErr = errors.InternalWrap(err, "dataset load failed")
		}
		d.sales = nil
		d.defaults = models.Selection{}
		d.loadErr = appErr
	} else {
		d.sales = sales
		d.defaults = DefaultSelection(sales)
		d.loadErr = nil
	}
	d.loadedAt = time.Now()
	rows := len(d.sales)
	d.mu.Unlock()

	result := "success"
	if err != nil {
		result = "error"
		span.SetError(err)
		d.logger.Warn("dataset load failed, continuing with empty dataset",
			"path", path,
			"error", err,
		)
	} else {
		d.logger.Info("dataset loaded",
			"path", path,
			"rows", rows,
			"duration", time.Since(start),
		)
	}
	if d.metrics != nil {
		d.metrics.ObserveLoad(result, rows, time.Since(start))
	}

	return err
}

// SetData installs an already-validated dataset directly. Used by tests
// and by any supplier other than the CSV loader.
func (d *Dashboard) SetData(sales []models.Sale) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sales = sales
	d.defaults = DefaultSelection(sales)
	d.loadErr = nil
	d.loadedAt = time.Now()
}

// LoadBaseline reads the auxiliary product-sales file. A missing file is
// tolerated with an empty mapping; a malformed file is not.
func (d *Dashboard) LoadBaseline(path string) error {
	baseline, err := LoadBaseline(path)
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Code == errors.CodeSourceUnavail {
			d.logger.Warn("baseline product sales file missing, using empty baseline", "path", path)
			d.mu.Lock()
			d.baseline = make(map[string]float64)
			d.mu.Unlock()
			return nil
		}
		return err
	}

	d.mu.Lock()
	d.baseline = baseline
	d.mu.Unlock()
	d.logger.Info("baseline product sales loaded", "path", path, "product_lines", len(baseline))
	return nil
}

// Defaults returns the untouched-sidebar selection for the loaded dataset.
func (d *Dashboard) Defaults() models.Selection {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.defaults
}

// Baseline returns the auxiliary per-product-line sales mapping.
func (d *Dashboard) Baseline() map[string]float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.baseline
}

// Snapshot resolves sel against the defaults, filters the dataset and
// aggregates the result. A nil dimension slice means the filter was never
// touched and falls back to all observed values; an empty non-nil slice is
// honored as an explicit deselect-all.
func (d *Dashboard) Snapshot(ctx context.Context, sel models.Selection) models.Report {
	start := time.Now()
	_, span := observability.StartSpan(ctx, "kpi.snapshot")
	defer span.Finish()

	d.mu.RLock()
	sales := d.sales
	defaults := d.defaults
	d.mu.RUnlock()

	if sel.Cities == nil {
		sel.Cities = defaults.Cities
	}
	if sel.CustomerTypes == nil {
		sel.CustomerTypes = defaults.CustomerTypes
	}
	if sel.Genders == nil {
		sel.Genders = defaults.Genders
	}

	filtered := ApplyFilter(sales, sel)
	report := ComputeKPIs(filtered)

	span.SetTag("rows_in", strconv.Itoa(len(sales)))
	span.SetTag("rows_out", strconv.Itoa(len(filtered)))
	if d.metrics != nil {
		d.metrics.ObserveRecompute(time.Since(start))
	}
	return report
}

// Stats describes the loaded dataset for the admin endpoint.
func (d *Dashboard) Stats() map[string]any {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := map[string]any{
		"record_count":   len(d.sales),
		"loaded_at":      d.loadedAt,
		"cities":         len(d.defaults.Cities),
		"customer_types": len(d.defaults.CustomerTypes),
		"genders":        len(d.defaults.Genders),
		"baseline_lines": len(d.baseline),
	}
	if d.loadErr != nil {
		stats["load_error"] = d.loadErr.Code
	}
	return stats
}
