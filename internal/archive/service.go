package archive

import (
	"context"
	"fmt"

	"github.com/easegen/influencer-sim/internal/types"
)

// PostSearcher finds stored posts close to an embedding.
type PostSearcher interface {
	SimilarPosts(ctx context.Context, characterName string, embedding []float32, limit int) ([]types.SimilarPost, error)
}

// Service embeds fresh captions and checks them against a character's
// recent posts so the simulation can skip near-duplicates.
type Service struct {
	embedder  Embedder
	posts     PostSearcher
	threshold float64
	topK      int
}

// NewService creates an archive Service. threshold is the cosine
// similarity above which a caption counts as repetitive.
func NewService(embedder Embedder, posts PostSearcher, threshold float64, topK int) *Service {
	if threshold <= 0 {
		threshold = 0.9
	}
	if topK <= 0 {
		topK = 3
	}
	return &Service{
		embedder:  embedder,
		posts:     posts,
		threshold: threshold,
		topK:      topK,
	}
}

// Check embeds the caption and reports whether the character already
// posted something too similar. The returned embedding is reused when the
// post is stored, so the caption is embedded only once.
func (s *Service) Check(ctx context.Context, characterName, caption string) ([]float32, bool, error) {
	if s == nil || s.embedder == nil {
		return nil, false, fmt.Errorf("archive service not configured")
	}
	if caption == "" {
		return nil, false, nil
	}

	vec, err := s.embedder.EmbedDocument(ctx, caption)
	if err != nil {
		return nil, false, fmt.Errorf("failed to embed caption: %w", err)
	}
	if s.posts == nil || len(vec) == 0 {
		return vec, false, nil
	}

	similar, err := s.posts.SimilarPosts(ctx, characterName, vec, s.topK)
	if err != nil {
		return nil, false, fmt.Errorf("failed to search similar posts: %w", err)
	}
	for _, post := range similar {
		if post.Similarity >= s.threshold {
			return vec, true, nil
		}
	}
	return vec, false, nil
}
