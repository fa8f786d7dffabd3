package docservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cvforge/go-cvexport/cv"
	"github.com/cvforge/go-cvexport/export"
)

func TestGenerate(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte("docx-bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/")
	model := cv.Model{Personal: cv.Personal{FullName: "Jane Doe", Email: "jane@example.com"}}

	data, err := client.Generate(context.Background(), model, "classic")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(data) != "docx-bytes" {
		t.Fatalf("unexpected document %q", data)
	}
	if gotPath != "/documents" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
	if gotBody.StyleID != "classic" || gotBody.Model.Personal.FullName != "Jane Doe" {
		t.Fatalf("unexpected request body %+v", gotBody)
	}
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "style not found", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Generate(context.Background(), cv.Model{}, "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if export.KindFromError(err) != export.KindInternal {
		t.Fatalf("expected internal kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "style not found") {
		t.Fatalf("expected status and body in message, got %q", err.Error())
	}
}

func TestGenerate_EmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Generate(context.Background(), cv.Model{}, "classic"); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestGenerate_RequiresBaseURL(t *testing.T) {
	client := &Client{}
	_, err := client.Generate(context.Background(), cv.Model{}, "classic")
	if export.KindFromError(err) != export.KindPrecondition {
		t.Fatalf("expected precondition error, got %v", err)
	}
}
