package services

import (
	"strings"
	"testing"

	"datavista/internal/models"
)

func TestDatasetStore_MemoizesPerPath(t *testing.T) {
	store := NewDatasetStore(1000, nil)

	loads := 0
	store.loader = func(path string, rowCap int) ([]models.Sale, error) {
		loads++
		return fixtureSales(), nil
	}

	for i := 0; i < 3; i++ {
		sales, err := store.Get("sales.csv")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if len(sales) != 4 {
			t.Fatalf("got %d sales, want 4", len(sales))
		}
	}

	if loads != 1 {
		t.Errorf("loader ran %d times, want 1 (memoized)", loads)
	}
}

func TestDatasetStore_Invalidate(t *testing.T) {
	store := NewDatasetStore(1000, nil)

	loads := 0
	store.loader = func(path string, rowCap int) ([]models.Sale, error) {
		loads++
		return fixtureSales(), nil
	}

	if _, err := store.Get("sales.csv"); err != nil {
		t.Fatal(err)
	}
	store.Invalidate("sales.csv")
	if _, err := store.Get("sales.csv"); err != nil {
		t.Fatal(err)
	}

	if loads != 2 {
		t.Errorf("loader ran %d times, want 2 after Invalidate", loads)
	}
}

func TestDatasetStore_FailedLoadNotCached(t *testing.T) {
	store := NewDatasetStore(1000, nil)

	content := strings.Join([]string{
		csvHeader,
		csvRow("I1", "Yangon", "2024-01-05", "13:08:00", 20.95),
	}, "\n")
	path := writeTempCSV(t, content)

	if _, err := store.Get(path + ".missing"); err == nil {
		t.Fatal("Get() should fail for a missing source")
	}
	sales, err := store.Get(path)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("got %d sales, want 1", len(sales))
	}
}
