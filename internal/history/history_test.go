package history

import (
	"path/filepath"
	"testing"
	"time"

	"quickcompare/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(query string) *models.ComparisonResult {
	return &models.ComparisonResult{
		Success:      true,
		Query:        query,
		TotalScraped: 2,
		SucceededPlatforms: []models.Platform{
			models.PlatformZepto,
			models.PlatformBlinkit,
		},
		ScrapedAt: time.Now(),
	}
}

func TestRecordAndList(t *testing.T) {
	store := newTestStore(t)

	loc := &models.Location{City: "Bengaluru", Pincode: "560001"}
	if err := store.Record("milk", loc, sampleResult("milk")); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	entries, err := store.List(10, 0, "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Query != "milk" || e.City != "Bengaluru" || e.Pincode != "560001" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if !e.Success || e.TotalScraped != 2 {
		t.Fatalf("unexpected summary columns: %+v", e)
	}
	if e.Result == nil || e.Result.Query != "milk" {
		t.Fatalf("result JSON did not round-trip: %+v", e.Result)
	}
	if e.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestRecordNilResult(t *testing.T) {
	store := newTestStore(t)
	if err := store.Record("milk", nil, nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestListFilters(t *testing.T) {
	store := newTestStore(t)

	store.Record("milk", &models.Location{City: "Bengaluru"}, sampleResult("milk"))
	store.Record("bread", &models.Location{City: "Mumbai"}, sampleResult("bread"))
	store.Record("eggs", &models.Location{Pincode: "560001"}, sampleResult("eggs"))

	entries, err := store.List(10, 0, "Mumbai", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "bread" {
		t.Fatalf("city filter failed: %+v", entries)
	}

	entries, err = store.List(10, 0, "", "560001")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "eggs" {
		t.Fatalf("pincode filter failed: %+v", entries)
	}

	count, err := store.Count("", "")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 total, got %d", count)
	}
}

func TestListPagination(t *testing.T) {
	store := newTestStore(t)

	for _, q := range []string{"a1", "a2", "a3", "a4", "a5"} {
		if err := store.Record(q, nil, sampleResult(q)); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	page1, err := store.List(2, 0, "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	page2, err := store.List(2, 2, "", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("expected 2 entries per page, got %d and %d", len(page1), len(page2))
	}
	if page1[0].ID == page2[0].ID {
		t.Fatal("pages should not overlap")
	}
}

func TestListClampsLimit(t *testing.T) {
	store := newTestStore(t)
	store.Record("milk", nil, sampleResult("milk"))

	// Nonsense paging inputs fall back to sane defaults.
	if _, err := store.List(-5, -10, "", ""); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := store.List(1000, 0, "", ""); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}
