// Package simulation drives characters through their posting loops: each
// tick turns the character's current context into a persisted post.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/easegen/influencer-sim/internal/behavior"
	"github.com/easegen/influencer-sim/internal/prompt"
	"github.com/easegen/influencer-sim/internal/types"
)

// ErrRepetitiveCaption marks a generated caption too similar to one of the
// character's recent posts; the tick is skipped instead of persisted.
var ErrRepetitiveCaption = errors.New("caption too similar to a recent post")

// CaptionRenderer produces the post text for a prompt.
type CaptionRenderer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageRenderer produces the post image for a prompt.
type ImageRenderer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RepetitionChecker embeds a caption and flags near-duplicates.
type RepetitionChecker interface {
	Check(ctx context.Context, characterName, caption string) ([]float32, bool, error)
}

// PostStore persists finished posts.
type PostStore interface {
	AddPost(ctx context.Context, post types.Post) error
}

// Simulator owns the character set and the generation pipeline. Each
// character gets its own behavior engine, so separate characters may be
// simulated from separate goroutines; a single character's loop must stay
// on one goroutine.
type Simulator struct {
	characters map[string]*types.Character
	engines    map[string]*behavior.Engine
	prompts    *prompt.Builder
	captions   CaptionRenderer
	images     ImageRenderer
	archive    RepetitionChecker
	store      PostStore
	nowFunc    func() time.Time
}

// New creates a Simulator. images, archive, and store may be nil: the
// simulator then produces text-only posts, skips the repetition check, or
// skips persistence respectively.
func New(prompts *prompt.Builder, captions CaptionRenderer, images ImageRenderer, archive RepetitionChecker, store PostStore) *Simulator {
	return &Simulator{
		characters: make(map[string]*types.Character),
		engines:    make(map[string]*behavior.Engine),
		prompts:    prompts,
		captions:   captions,
		images:     images,
		archive:    archive,
		store:      store,
		nowFunc:    time.Now,
	}
}

// AddCharacter registers a profile under an ID and gives it a dedicated
// behavior engine.
func (s *Simulator) AddCharacter(id string, c *types.Character) error {
	if id == "" {
		return fmt.Errorf("character id cannot be empty")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	s.characters[id] = c
	s.engines[id] = behavior.NewEngine()
	return nil
}

// Character returns a registered profile.
func (s *Simulator) Character(id string) (*types.Character, bool) {
	c, ok := s.characters[id]
	return c, ok
}

// CharacterIDs returns the registered IDs in stable order.
func (s *Simulator) CharacterIDs() []string {
	ids := make([]string, 0, len(s.characters))
	for id := range s.characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SimulateActivity posts for one character at the given interval until the
// duration elapses or the context is cancelled. A failed tick is logged
// and the loop keeps going; only cancellation stops it early.
func (s *Simulator) SimulateActivity(ctx context.Context, id string, duration, interval time.Duration) error {
	if _, ok := s.characters[id]; !ok {
		return fmt.Errorf("unknown character: %s", id)
	}
	if interval <= 0 {
		return fmt.Errorf("post interval must be positive")
	}

	deadline := s.nowFunc().Add(duration)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		post, err := s.GeneratePost(ctx, id)
		switch {
		case errors.Is(err, ErrRepetitiveCaption):
			slog.Info("skipped repetitive post", "character", id)
		case err != nil:
			slog.Error("failed to generate post", "character", id, "error", err.Error())
		default:
			slog.Info("post published",
				"character", post.CharacterName,
				"topic", post.Topic,
				"format", post.Format,
				"mood", post.Mood,
				"context", post.Context)
		}

		if !s.nowFunc().Add(interval).Before(deadline) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// GeneratePost runs the full pipeline once for a character: content idea,
// caption, repetition check, image, hashtags, persistence.
func (s *Simulator) GeneratePost(ctx context.Context, id string) (*types.Post, error) {
	c, ok := s.characters[id]
	if !ok {
		return nil, fmt.Errorf("unknown character: %s", id)
	}
	now := s.nowFunc()

	idea, err := s.engines[id].GenerateIdea(now, c)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content idea: %w", err)
	}

	captionPrompt, err := s.prompts.Caption(c, idea)
	if err != nil {
		return nil, err
	}
	caption, err := s.captions.Generate(ctx, captionPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate caption: %w", err)
	}

	var embedding []float32
	if s.archive != nil {
		vec, repetitive, err := s.archive.Check(ctx, c.Name, caption)
		if err != nil {
			return nil, err
		}
		if repetitive {
			return nil, fmt.Errorf("%w: %s", ErrRepetitiveCaption, idea.Topic)
		}
		embedding = vec
	}

	post := &types.Post{
		CharacterName: c.Name,
		Timestamp:     now,
		ContentType:   "text",
		Caption:       caption,
		Topic:         idea.Topic,
		Format:        idea.Format,
		Mood:          idea.Mood,
		Context:       idea.Context,
		Hashtags:      types.BuildHashtags(idea.Topic, idea.Format, idea.Mood, idea.Context, c.Location, now),
		Embedding:     embedding,
	}

	if s.images != nil {
		imagePrompt, err := s.prompts.Image(c, caption)
		if err != nil {
			return nil, err
		}
		imageURL, err := s.images.Generate(ctx, imagePrompt)
		if err != nil {
			// Degrade to a text-only post when the image fails.
			slog.Error("failed to generate image", "character", id, "error", err.Error())
		} else {
			post.ImageURL = imageURL
			post.ContentType = "multimodal"
		}
	}

	if s.store != nil {
		if err := s.store.AddPost(ctx, *post); err != nil {
			return nil, fmt.Errorf("failed to persist post: %w", err)
		}
	}
	return post, nil
}
