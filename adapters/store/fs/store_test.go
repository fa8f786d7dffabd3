package storefs

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/cvforge/go-cvexport/export"
)

func TestStore_PutOpenDelete(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	ref, err := store.Put(context.Background(), "job-1/Jane_Doe_CV.txt", bytes.NewBufferString("hello"), export.ArtifactMeta{
		ContentType: "text/plain; charset=utf-8",
		Filename:    "Jane_Doe_CV.txt",
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if ref.Meta.Size != 5 {
		t.Fatalf("expected size 5, got %d", ref.Meta.Size)
	}
	if ref.Meta.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}

	reader, meta, err := store.Open(context.Background(), "job-1/Jane_Doe_CV.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	data, err := io.ReadAll(reader)
	_ = reader.Close()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("expected payload, got %q", string(data))
	}
	if meta.Filename != "Jane_Doe_CV.txt" {
		t.Fatalf("expected filename, got %q", meta.Filename)
	}

	if err := store.Delete(context.Background(), "job-1/Jane_Doe_CV.txt"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := store.Open(context.Background(), "job-1/Jane_Doe_CV.txt"); err == nil {
		t.Fatalf("expected not found after delete")
	}
}

func TestStore_EmptyKeyRejected(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Put(context.Background(), "", bytes.NewBufferString("x"), export.ArtifactMeta{})
	if err == nil {
		t.Fatalf("expected error for empty key")
	}
	if export.KindFromError(err) != export.KindValidation {
		t.Fatalf("expected validation kind, got %v", export.KindFromError(err))
	}
}

func TestStore_OpenMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	_, _, err := store.Open(context.Background(), "missing/file.pdf")
	if err == nil {
		t.Fatalf("expected not found")
	}
	if export.KindFromError(err) != export.KindNotFound {
		t.Fatalf("expected not_found kind, got %v", export.KindFromError(err))
	}
}
