package prompt

import (
	"strings"
	"testing"

	"github.com/easegen/influencer-sim/internal/behavior"
	"github.com/easegen/influencer-sim/internal/types"
)

func TestCaptionPromptIncludesPersonaAndIdea(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &types.Character{
		Name:              "Aanya Sharma",
		Age:               26,
		Location:          "Mumbai, India",
		Occupation:        "Food Blogger",
		PersonalityTraits: []string{"Creative", "Social"},
	}
	idea := behavior.ContentIdea{
		Topic:   "street food tips",
		Format:  "Quick tips",
		Mood:    "inspired",
		Context: "Evening hobby time",
	}

	got, err := b.Caption(c, idea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Aanya Sharma", "Food Blogger", "street food tips", "Quick tips", "inspired", "Evening hobby time", "Creative, Social"} {
		if !strings.Contains(got, want) {
			t.Fatalf("caption prompt missing %q:\n%s", want, got)
		}
	}
}

func TestImagePromptUsesLocationCountry(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &types.Character{Name: "Min-ji Kim", Location: "Seoul, South Korea"}
	got, err := b.Image(c, "Late night coding session with coffee.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "South Korea") {
		t.Fatalf("image prompt missing country:\n%s", got)
	}
	if !strings.Contains(got, "Late night coding session") {
		t.Fatalf("image prompt missing caption:\n%s", got)
	}
}

func TestCaptionRequiresCharacter(t *testing.T) {
	b, err := NewBuilder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Caption(nil, behavior.ContentIdea{}); err == nil {
		t.Fatal("expected error for nil character")
	}
}
