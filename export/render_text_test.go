package export

import (
	"strings"
	"testing"

	"github.com/cvforge/go-cvexport/cv"
)

func textModel() cv.Model {
	return cv.Model{
		Personal: cv.Personal{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 415 555 0100",
			Summary:  "Platform engineer focused on delivery tooling.",
		},
		Experience: []cv.Experience{{
			Company:      "Acme",
			Position:     "Senior Engineer",
			StartDate:    "2020-01",
			Current:      true,
			Achievements: []string{"Cut deploy time by 35%"},
		}},
		Skills: []cv.Skill{
			{Name: "Go", Category: "Backend"},
			{Name: "Postgres", Category: "Backend"},
		},
	}
}

func TestRenderText_HeaderLines(t *testing.T) {
	lines := strings.Split(string(renderText(textModel())), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least three lines, got %d", len(lines))
	}
	if lines[0] != "Jane Doe" {
		t.Fatalf("expected name first, got %q", lines[0])
	}
	if lines[1] != "jane@example.com" {
		t.Fatalf("expected email second, got %q", lines[1])
	}
	if lines[2] != "+1 415 555 0100" {
		t.Fatalf("expected phone third, got %q", lines[2])
	}
}

func TestRenderText_Sections(t *testing.T) {
	out := string(renderText(textModel()))

	if !strings.Contains(out, "SUMMARY\n-------\n") {
		t.Fatalf("expected summary heading, got:\n%s", out)
	}
	if !strings.Contains(out, "Senior Engineer, Acme (Jan 2020 – Present)") {
		t.Fatalf("expected experience head line, got:\n%s", out)
	}
	if !strings.Contains(out, "- Cut deploy time by 35%") {
		t.Fatalf("expected achievement bullet, got:\n%s", out)
	}
	if !strings.Contains(out, "Backend: Go, Postgres") {
		t.Fatalf("expected grouped skills, got:\n%s", out)
	}
}

func TestRenderText_Deterministic(t *testing.T) {
	m := textModel()
	if string(renderText(m)) != string(renderText(m)) {
		t.Fatalf("expected deterministic output")
	}
}

func TestRenderText_ReferencesPlaceholder(t *testing.T) {
	m := textModel()
	m.ReferencesDisplay = cv.ReferencesOnRequest
	m.References = []cv.Reference{{Name: "Sam Mentor"}}

	out := string(renderText(m))
	if !strings.Contains(out, cv.ReferencesPlaceholder) {
		t.Fatalf("expected placeholder, got:\n%s", out)
	}
	if strings.Contains(out, "Sam Mentor") {
		t.Fatalf("expected records suppressed in on-request mode")
	}
}
