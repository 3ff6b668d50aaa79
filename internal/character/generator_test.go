package character

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateProducesValidProfile(t *testing.T) {
	g, err := NewGenerator("", WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := g.Generate("South Korea", 20, 35, "tech")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("generated profile invalid: %v", err)
	}
	if c.Age < 20 || c.Age > 35 {
		t.Fatalf("age %d outside range", c.Age)
	}
	if !strings.HasSuffix(c.Location, ", South Korea") {
		t.Fatalf("unexpected location %q", c.Location)
	}
	if len(c.Interests) != 5 {
		t.Fatalf("expected 5 interests, got %d", len(c.Interests))
	}
	if len(c.PersonalityTraits) != 4 {
		t.Fatalf("expected 4 traits, got %d", len(c.PersonalityTraits))
	}
	if len(c.DailyRoutine.Morning) == 0 || len(c.DailyRoutine.Evening) == 0 {
		t.Fatal("routine segments must not be empty")
	}
}

func TestGenerateUnsupportedRegion(t *testing.T) {
	g, err := NewGenerator("", WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Generate("Atlantis", 20, 35, ""); err == nil {
		t.Fatal("expected error for unsupported region")
	}
}

func TestGenerateInvalidAgeRange(t *testing.T) {
	g, err := NewGenerator("", WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Generate("India", 35, 20, ""); err == nil {
		t.Fatal("expected error for inverted age range")
	}
}

func TestGenerateCachesByParameters(t *testing.T) {
	g, err := NewGenerator("", WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := g.Generate("India", 20, 35, "creative")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.Generate("India", 20, 35, "creative")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatal("expected cached profile on repeated parameters")
	}

	g.ClearCache()
	third, err := g.Generate("India", 20, 35, "creative")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == third {
		t.Fatal("expected a fresh profile after ClearCache")
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, _ := NewGenerator("", WithSeed(5))
	b, _ := NewGenerator("", WithSeed(5))

	ca, err := a.Generate("South Korea", 20, 35, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cb, err := b.Generate("South Korea", 20, 35, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ca.Name != cb.Name || ca.Occupation != cb.Occupation || ca.Age != cb.Age {
		t.Fatalf("same seed diverged: %#v vs %#v", ca, cb)
	}
}

func TestLoadDataOverridesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	payload := map[string]any{
		"locations": map[string][]string{
			"Japan": {"Tokyo", "Osaka"},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := LoadData(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Locations["Japan"]) != 2 {
		t.Fatalf("expected loaded locations, got %#v", data.Locations)
	}
	// Untouched tables keep their defaults.
	if len(data.Occupations) == 0 {
		t.Fatal("expected default occupations to remain")
	}
}

func TestLoadDataRejectsMalformedTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(`{"locations": {"India": "not a list"}}`), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := LoadData(path); err == nil {
		t.Fatal("expected schema validation error")
	}
}
