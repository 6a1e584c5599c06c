package photos

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestAlbumImagesFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/album/abc123!images" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("APIKey") != "secret" {
			t.Errorf("missing api key, query = %v", r.URL.Query())
		}
		json.NewEncoder(w).Encode(map[string]any{
			"Code": 200,
			"Response": map[string]any{
				"AlbumImage": []map[string]any{
					{"ImageKey": "img-1", "FileName": "a.jpg"},
					{"ImageKey": "img-2", "FileName": "b.jpg", "IsVideo": true},
				},
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret")
	images, err := client.AlbumImages(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("AlbumImages: %v", err)
	}
	if len(images) != 2 || images[0].ImageKey != "img-1" || !images[1].IsVideo {
		t.Errorf("images = %+v", images)
	}
}

func TestAlbumImagesErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such album", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret")
	if _, err := client.AlbumImages(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for 404")
	}
}

type countingClient struct {
	calls  int
	images []Image
}

func (c *countingClient) AlbumImages(ctx context.Context, albumKey string) ([]Image, error) {
	c.calls++
	return c.images, nil
}

func TestCachedClientHitsDiskOnSecondCall(t *testing.T) {
	dir := t.TempDir()
	inner := &countingClient{images: []Image{{ImageKey: "img-1"}}}
	cached := NewCachedClient(inner, dir, nil)

	for i := 0; i < 2; i++ {
		images, err := cached.AlbumImages(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("AlbumImages: %v", err)
		}
		if len(images) != 1 || images[0].ImageKey != "img-1" {
			t.Fatalf("images = %+v", images)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	if _, err := os.Stat(filepath.Join(dir, "abc123.json")); err != nil {
		t.Errorf("cache file missing: %v", err)
	}
}

func TestCachedClientIgnoresCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "abc123.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	inner := &countingClient{images: []Image{{ImageKey: "img-1"}}}
	cached := NewCachedClient(inner, dir, nil)

	images, err := cached.AlbumImages(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("AlbumImages: %v", err)
	}
	if inner.calls != 1 || len(images) != 1 {
		t.Errorf("calls = %d images = %+v", inner.calls, images)
	}
}
