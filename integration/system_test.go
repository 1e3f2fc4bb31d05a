//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://127.0.0.1:8000")

type product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestSystem_E2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	var products []product
	body := fetch(t, "/api", http.StatusOK)
	if err := json.Unmarshal([]byte(body), &products); err != nil {
		t.Fatalf("decode /api: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected non-empty catalog")
	}

	overview := fetch(t, "/overview", http.StatusOK)
	for _, p := range products {
		if !strings.Contains(overview, p.Name) {
			t.Fatalf("overview misses %q", p.Name)
		}
	}

	for i, p := range products {
		if p.ID != i {
			t.Fatalf("product %d has id=%d", i, p.ID)
		}
		detail := fetch(t, "/product?id="+strconv.Itoa(i), http.StatusOK)
		if !strings.Contains(detail, p.Name) {
			t.Fatalf("detail %d misses %q", i, p.Name)
		}
	}

	fetch(t, "/product?id="+strconv.Itoa(len(products)), http.StatusNotFound)
	fetch(t, "/product?id=abc", http.StatusNotFound)

	if got := fetch(t, "/images/does-not-exist.png", http.StatusNotFound); got != "404 - Image not found" {
		t.Fatalf("image miss body=%q", got)
	}
	if got := fetch(t, "/public/does-not-exist.css", http.StatusNotFound); got != "404 - File not found" {
		t.Fatalf("public miss body=%q", got)
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	for ctx.Err() == nil {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil && resp.StatusCode == http.StatusOK {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func fetch(t *testing.T, path string, want int) string {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if resp.StatusCode != want {
		t.Fatalf("GET %s: status=%d want=%d", path, resp.StatusCode, want)
	}
	return string(raw)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
