package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"quickcompare/internal/models"
)

func TestKeyIsolation(t *testing.T) {
	loc := &models.Location{Pincode: "560001"}

	cases := []struct {
		name string
		a    string
		b    string
	}{
		{
			"differentPlatforms",
			Key(models.PlatformZepto, "milk", loc),
			Key(models.PlatformBlinkit, "milk", loc),
		},
		{
			"differentQueries",
			Key(models.PlatformZepto, "milk", loc),
			Key(models.PlatformZepto, "bread", loc),
		},
		{
			"differentLocations",
			Key(models.PlatformZepto, "milk", loc),
			Key(models.PlatformZepto, "milk", &models.Location{Pincode: "400001"}),
		},
		{
			"locationVsNone",
			Key(models.PlatformZepto, "milk", loc),
			Key(models.PlatformZepto, "milk", nil),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.a == tc.b {
				t.Fatalf("keys should differ: %q", tc.a)
			}
		})
	}
}

func TestKeyNormalization(t *testing.T) {
	a := Key(models.PlatformZepto, "  Amul Milk  ", nil)
	b := Key(models.PlatformZepto, "amul milk", nil)
	if a != b {
		t.Fatalf("equivalent queries should share a key: %q vs %q", a, b)
	}

	// Pincode wins over city in the location discriminator.
	c := Key(models.PlatformZepto, "milk", &models.Location{City: "Mumbai", Pincode: "400001"})
	d := Key(models.PlatformZepto, "milk", &models.Location{City: "Delhi", Pincode: "400001"})
	if c != d {
		t.Fatalf("pincode should dominate city: %q vs %q", c, d)
	}
}

func TestProductsRoundTrip(t *testing.T) {
	store := New(time.Minute)

	if _, ok := store.GetProducts(models.PlatformZepto, "milk", nil); ok {
		t.Fatal("expected miss on empty cache")
	}

	products := []models.RawProduct{{Name: "Milk 1L", Price: 60, Platform: models.PlatformZepto}}
	store.SetProducts(models.PlatformZepto, "milk", nil, products)

	got, ok := store.GetProducts(models.PlatformZepto, "milk", nil)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if len(got) != 1 || got[0].Name != "Milk 1L" {
		t.Fatalf("unexpected cached products: %+v", got)
	}

	// Other platform holds no entry for the same query.
	if _, ok := store.GetProducts(models.PlatformBlinkit, "milk", nil); ok {
		t.Fatal("expected miss for other platform")
	}
}

func TestComparisonRoundTrip(t *testing.T) {
	store := New(time.Minute)

	result := &models.ComparisonResult{Success: true, Query: "milk", TotalScraped: 3}
	store.SetComparison("milk", nil, result)

	got, ok := store.GetComparison("milk", nil)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got.TotalScraped != 3 {
		t.Fatalf("unexpected cached result: %+v", got)
	}
}

func TestExpiry(t *testing.T) {
	store := New(50 * time.Millisecond)

	store.SetProducts(models.PlatformZepto, "milk", nil, []models.RawProduct{{Name: "Milk 1L"}})
	time.Sleep(80 * time.Millisecond)

	if _, ok := store.GetProducts(models.PlatformZepto, "milk", nil); ok {
		t.Fatal("expected entry to expire after TTL")
	}
}

func TestHitRate(t *testing.T) {
	store := New(time.Minute)

	if rate := store.HitRate(models.PlatformZepto); rate != 0 {
		t.Fatalf("expected 0 hit rate before lookups, got %f", rate)
	}

	store.GetProducts(models.PlatformZepto, "milk", nil) // miss
	store.SetProducts(models.PlatformZepto, "milk", nil, []models.RawProduct{{Name: "Milk 1L"}})
	store.GetProducts(models.PlatformZepto, "milk", nil) // hit
	store.GetProducts(models.PlatformZepto, "milk", nil) // hit

	if rate := store.HitRate(models.PlatformZepto); rate < 0.66 || rate > 0.67 {
		t.Fatalf("expected ~2/3 hit rate, got %f", rate)
	}

	// Untouched platform stays at 0.
	if rate := store.HitRate(models.PlatformBlinkit); rate != 0 {
		t.Fatalf("expected 0 hit rate for untouched platform, got %f", rate)
	}
}

func TestFlush(t *testing.T) {
	store := New(time.Minute)

	store.SetProducts(models.PlatformZepto, "milk", nil, []models.RawProduct{{Name: "Milk 1L"}})
	store.GetProducts(models.PlatformZepto, "milk", nil)
	store.Flush()

	if _, ok := store.GetProducts(models.PlatformZepto, "milk", nil); ok {
		t.Fatal("expected miss after flush")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := New(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			query := fmt.Sprintf("item-%d", i%5)
			store.SetProducts(models.PlatformZepto, query, nil, []models.RawProduct{{Name: query}})
			store.GetProducts(models.PlatformZepto, query, nil)
			store.HitRate(models.PlatformZepto)
		}(i)
	}
	wg.Wait()
}
