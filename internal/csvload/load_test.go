package csvload

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/ballfreq/internal/model"
)

const sampleCSV = "number,count,date\n7,120,2024-01-05\n13,200,2024-02-10\n"

func TestLoadOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	t.Cleanup(srv.Close)

	ds, err := Load(context.Background(), NewSourceFetcher(0), model.Main, srv.URL+"/main_ball_cleaned.csv")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ds.Records))
	}
}

func TestLoadReportsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := Load(context.Background(), NewSourceFetcher(0), model.Powerball, srv.URL)
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if terr.BallType != model.Powerball {
		t.Fatalf("unexpected ball type: %s", terr.BallType)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "powerball_cleaned.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	for _, source := range []string{path, "file://" + path} {
		ds, err := Load(context.Background(), NewSourceFetcher(0), model.Powerball, source)
		if err != nil {
			t.Fatalf("load %s: %v", source, err)
		}
		if len(ds.Records) != 2 || ds.BallType != model.Powerball {
			t.Fatalf("unexpected dataset from %s: %+v", source, ds)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), FileFetcher{}, model.Main, filepath.Join(t.TempDir(), "nope.csv"))
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadEmptySource(t *testing.T) {
	if _, err := Load(context.Background(), FileFetcher{}, model.Main, ""); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
