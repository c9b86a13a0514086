package services

import (
	"sync"

	"datavista/internal/models"
	"datavista/internal/observability"
)

// DatasetStore memoizes loaded datasets per source path for the process
// lifetime. The source file is assumed static; Invalidate is the manual
// hook for the rare case it is not. The store is passed explicitly to the
// pipeline entry point rather than hiding behind a package global.
type DatasetStore struct {
	mu      sync.RWMutex
	entries map[string][]models.Sale
	rowCap  int
	metrics *observability.Metrics
	loader  func(path string, rowCap int) ([]models.Sale, error)
}

func NewDatasetStore(rowCap int, metrics *observability.Metrics) *DatasetStore {
	return &DatasetStore{
		entries: make(map[string][]models.Sale),
		rowCap:  rowCap,
		metrics: metrics,
		loader:  LoadCSV,
	}
}

// Get returns the memoized dataset for path, loading it on first access.
// The returned slice is shared; callers must treat it as immutable.
func (ds *DatasetStore) Get(path string) ([]models.Sale, error) {
	ds.mu.RLock()
	sales, ok := ds.entries[path]
	ds.mu.RUnlock()
	if ok {
		if ds.metrics != nil {
			ds.metrics.CacheHit()
		}
		return sales, nil
	}

	if ds.metrics != nil {
		ds.metrics.CacheMiss()
	}

	sales, err := ds.loader(path, ds.rowCap)
	if err != nil {
		return nil, err
	}

	ds.mu.Lock()
	ds.entries[path] = sales
	ds.mu.Unlock()
	return sales, nil
}

// Invalidate drops the memoized dataset for path so the next Get re-reads
// the source.
func (ds *DatasetStore) Invalidate(path string) {
	ds.mu.Lock()
	delete(ds.entries, path)
	ds.mu.Unlock()
}
