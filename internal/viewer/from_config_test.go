package viewer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ytget/map-viewer/internal/config"
	"github.com/ytget/map-viewer/internal/model"
)

func TestNewServiceFromConfig_FetchesAndStores(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	t.Setenv("MAPVIEWER_SERVICE_BASE_URL", srv.URL)
	t.Setenv("MAPVIEWER_IMAGE_DIR", dir)
	t.Setenv("MAPVIEWER_SERVICE_API_KEY", "")
	t.Setenv("API_KEY", "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	svc := NewServiceFromConfig(cfg, nil)
	snap := svc.Apply(context.Background(), model.ActionZoomIn)
	if !snap.OK() {
		t.Fatalf("snapshot error = %v", snap.Err)
	}

	want := "ll=37.618423,55.751244&z=11&size=600,400&l=map&apikey=secret"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}

	data, err := os.ReadFile(snap.ImagePath)
	if err != nil {
		t.Fatalf("read stored image: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored image = %q", data)
	}
}
