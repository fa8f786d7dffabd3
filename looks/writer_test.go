package looks

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cvforge/go-cvexport/cv"
)

func TestRender_ProducesPDF(t *testing.T) {
	doc, err := NewClean().Build(buildModel(), cv.DesignSettings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header, got %q", data[:8])
	}
}

func TestRender_NilDocument(t *testing.T) {
	if _, err := Render(nil); err == nil {
		t.Fatalf("expected error for nil document")
	}
}

func TestRender_OverflowPaginates(t *testing.T) {
	m := buildModel()
	for i := 0; i < 40; i++ {
		m.Experience = append(m.Experience, cv.Experience{
			Company:     fmt.Sprintf("Company %d", i),
			Position:    "Engineer",
			StartDate:   "2015-01",
			EndDate:     "2019-12",
			Description: "Owned services end to end, including on-call, capacity planning and cost reviews.",
			Achievements: []string{
				"Reduced error rates by 45%",
				"Migrated the fleet to containerized builds",
			},
		})
	}

	doc, err := NewClean().Build(m, cv.DesignSettings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header")
	}
	// A 40-entry history cannot fit one page; the file must hold several.
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	if pages < 2 {
		t.Fatalf("expected multi-page output, got %d pages", pages)
	}
}

func TestRender_BannerSidebar(t *testing.T) {
	doc, err := NewBannerSidebar().Build(buildModel(), cv.DesignSettings{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := Render(doc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF header")
	}
}

func TestCoreFamily(t *testing.T) {
	cases := map[string]string{
		"Helvetica": "Helvetica",
		"Arial":     "Helvetica",
		"serif":     "Times",
		"Georgia":   "Times",
		"mono":      "Courier",
		"":          "Helvetica",
	}
	for in, want := range cases {
		if got := coreFamily(in); got != want {
			t.Fatalf("coreFamily(%q) = %q, want %q", in, got, want)
		}
	}
}
