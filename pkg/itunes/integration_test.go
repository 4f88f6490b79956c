// +build integration

package itunes

import (
	"context"
	"testing"
	"time"
)

// TestIntegration_LivePaging pages through the real API.
// Run with: go test -tags=integration -v ./pkg/itunes/
func TestIntegration_LivePaging(t *testing.T) {
	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	first, err := client.Search().Tracks(ctx, "Yoasobi", 36, 0)
	if err != nil {
		t.Fatalf("Failed to fetch first page: %v", err)
	}
	if first.ResultCount == 0 || len(first.Results) == 0 {
		t.Fatal("Expected results for Yoasobi")
	}
	for _, tr := range first.Results {
		if tr.ID == 0 || tr.Name == "" {
			t.Errorf("Incomplete track: %+v", tr)
		}
	}

	second, err := client.Search().Tracks(ctx, "Yoasobi", 36, 36)
	if err != nil {
		t.Fatalf("Failed to fetch second page: %v", err)
	}
	t.Logf("First page: %d tracks, second page: %d tracks", len(first.Results), len(second.Results))

	albums, err := client.Search().Collections(ctx, "Yoasobi", 10, 0)
	if err != nil {
		t.Fatalf("Failed to fetch albums: %v", err)
	}
	for _, c := range albums.Results {
		if c.ID == 0 || c.Name == "" {
			t.Errorf("Incomplete collection: %+v", c)
		}
	}
}
