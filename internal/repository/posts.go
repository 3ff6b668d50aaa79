package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/easegen/influencer-sim/internal/types"
)

// postModel maps to the posts table.
type postModel struct {
	ID            int
	CharacterName string
	ContentType   string
	Caption       string
	Topic         string
	Format        string
	Mood          string
	Context       string
	ImageURL      string `gorm:"column:image_url"`
	// Hashtags are stored as JSONB.
	Hashtags json.RawMessage `gorm:"type:jsonb"`
	// Embedding stores the caption vector for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time
}

func (postModel) TableName() string {
	return "posts"
}

// PostRepo accesses post data.
type PostRepo struct {
	db *gorm.DB
}

// NewPostRepo returns a PostRepo.
func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db: db}
}

// AddPost inserts a generated post.
func (r *PostRepo) AddPost(ctx context.Context, post types.Post) error {
	var vector *pgvector.Vector
	if len(post.Embedding) > 0 {
		v := pgvector.NewVector(post.Embedding)
		vector = &v
	}
	hashtags, err := json.Marshal(post.Hashtags)
	if err != nil {
		return fmt.Errorf("failed to encode hashtags: %w", err)
	}

	record := postModel{
		CharacterName: post.CharacterName,
		ContentType:   post.ContentType,
		Caption:       post.Caption,
		Topic:         post.Topic,
		Format:        post.Format,
		Mood:          post.Mood,
		Context:       post.Context,
		ImageURL:      post.ImageURL,
		Hashtags:      hashtags,
		Embedding:     vector,
		CreatedAt:     post.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

// RecentPosts returns the newest posts for a character, oldest first.
func (r *PostRepo) RecentPosts(ctx context.Context, characterName string, limit int) ([]types.Post, error) {
	if limit <= 0 {
		limit = 10
	}

	var records []postModel
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if characterName != "" {
		query = query.Where("character_name = ?", characterName)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent posts: %w", err)
	}

	posts := make([]types.Post, 0, len(records))
	for _, record := range records {
		posts = append(posts, postFromModel(record))
	}
	// Oldest -> newest
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
	return posts, nil
}

// SimilarPosts returns stored posts ranked by cosine similarity to the
// embedding.
func (r *PostRepo) SimilarPosts(ctx context.Context, characterName string, embedding []float32, limit int) ([]types.SimilarPost, error) {
	if len(embedding) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 3
	}

	query := `
		SELECT caption, topic, created_at,
		       1 - (embedding <=> $1) AS similarity
		FROM posts
		WHERE embedding IS NOT NULL AND character_name = $2
		ORDER BY embedding <=> $1
		LIMIT $3`

	var results []types.SimilarPost
	if err := r.db.WithContext(ctx).
		Raw(query, pgvector.NewVector(embedding), characterName, limit).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar posts: %w", err)
	}
	return results, nil
}

func postFromModel(model postModel) types.Post {
	var hashtags []string
	if len(model.Hashtags) > 0 {
		_ = json.Unmarshal(model.Hashtags, &hashtags)
	}
	return types.Post{
		ID:            model.ID,
		CharacterName: model.CharacterName,
		Timestamp:     model.CreatedAt,
		ContentType:   model.ContentType,
		Caption:       model.Caption,
		Topic:         model.Topic,
		Format:        model.Format,
		Mood:          model.Mood,
		Context:       model.Context,
		ImageURL:      model.ImageURL,
		Hashtags:      hashtags,
	}
}
