package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

func testServer(t *testing.T, materialize bool) *httptest.Server {
	t.Helper()
	fontsDir := t.TempDir()
	if materialize {
		if err := fontset.Materialize(fontsDir); err != nil {
			t.Fatal(err)
		}
	}
	s := New(&fontset.Resolver{FontsDir: fontsDir}, fontsDir, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleResolve_Defaults(t *testing.T) {
	ts := testServer(t, true)

	resp, err := http.Get(ts.URL + "/v1/resolve")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" {
		t.Error("expected a request ID header")
	}

	var set fontset.Set
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if set.Light == "" || set.Regular == "" || set.Bold == "" {
		t.Errorf("partial set in response: %+v", set)
	}
}

func TestHandleResolve_Failure(t *testing.T) {
	// Empty fonts dir and no inputs: every stage fails.
	ts := testServer(t, false)

	resp, err := http.Get(ts.URL + "/v1/resolve")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Code != errors.ErrCodeDefaultAssetMissing {
		t.Errorf("error code = %s, want DEFAULT_ASSET_MISSING", body.Code)
	}
}

func TestHandleResolve_LocalPath(t *testing.T) {
	ts := testServer(t, true)

	fontDir := t.TempDir()
	if err := writeStub(fontDir + "/Custom-Regular.ttf"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(ts.URL + "/v1/resolve?path=" + fontDir)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var set fontset.Set
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		t.Fatal(err)
	}
	if set.Regular == "" {
		t.Error("expected the local font in the response")
	}
}

func TestHandleHealth(t *testing.T) {
	ts := testServer(t, false)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestFontsFileServer(t *testing.T) {
	ts := testServer(t, true)

	resp, err := http.Get(ts.URL + "/fonts/Go-Regular.ttf")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 for a materialized default", resp.StatusCode)
	}
}

func writeStub(path string) error {
	return os.WriteFile(path, []byte("stub"), 0644)
}
