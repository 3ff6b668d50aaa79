// Package prompt assembles the prompts handed to the content renderers.
package prompt

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/easegen/influencer-sim/internal/behavior"
	"github.com/easegen/influencer-sim/internal/types"
)

const captionTemplate = `You are {{.Character.Name}}, a {{.Character.Age}}-year-old {{.Character.Occupation}} from {{.Character.Location}}.
Personality: {{join .Character.PersonalityTraits ", "}}.
Right now you are {{.Idea.Context}} and feeling {{.Idea.Mood}}.

Write a short social media caption about "{{.Idea.Topic}}" in the style of {{.Idea.Format}}.
Keep it personal, in first person, under 60 words, no hashtags.`

const imageTemplate = `A social media photo for this post: {{.Caption}}
Setting: {{.Culture}}. Style: candid, natural lighting, no text overlays.`

// Builder renders prompts for the caption and image generators.
type Builder struct {
	caption *template.Template
	image   *template.Template
}

// NewBuilder parses the prompt templates.
func NewBuilder() (*Builder, error) {
	funcs := template.FuncMap{"join": strings.Join}

	caption, err := template.New("caption").Funcs(funcs).Parse(captionTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse caption template: %w", err)
	}
	image, err := template.New("image").Parse(imageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse image template: %w", err)
	}
	return &Builder{caption: caption, image: image}, nil
}

// Caption renders the text-generation prompt for a content idea.
func (b *Builder) Caption(c *types.Character, idea behavior.ContentIdea) (string, error) {
	if c == nil {
		return "", fmt.Errorf("character is required")
	}

	data := struct {
		Character *types.Character
		Idea      behavior.ContentIdea
	}{Character: c, Idea: idea}

	var buf bytes.Buffer
	if err := b.caption.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute caption template: %w", err)
	}
	return buf.String(), nil
}

// Image renders the image-generation prompt for a finished caption. The
// cultural setting comes from the character's location country.
func (b *Builder) Image(c *types.Character, caption string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("character is required")
	}

	data := struct {
		Caption string
		Culture string
	}{Caption: caption, Culture: locationCountry(c.Location)}

	var buf bytes.Buffer
	if err := b.image.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute image template: %w", err)
	}
	return buf.String(), nil
}

func locationCountry(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
