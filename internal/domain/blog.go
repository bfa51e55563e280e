package domain

import (
	"context"
	"time"
)

// BlogPost is a bilingual article. Slug is the identity used in URLs.
type BlogPost struct {
	ID        int64     `json:"id"`
	TitleFR   string    `json:"title_fr"`
	TitleEN   string    `json:"title_en"`
	Slug      string    `json:"slug"`
	ExcerptFR string    `json:"excerpt_fr"`
	ExcerptEN string    `json:"excerpt_en"`
	ContentFR string    `json:"content_fr"`
	ContentEN string    `json:"content_en"`
	Category  string    `json:"category"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertBlogPost is the creation payload for a BlogPost.
type InsertBlogPost struct {
	TitleFR   string  `json:"title_fr" yaml:"title_fr"`
	TitleEN   string  `json:"title_en" yaml:"title_en"`
	Slug      string  `json:"slug" yaml:"slug"`
	ExcerptFR string  `json:"excerpt_fr" yaml:"excerpt_fr"`
	ExcerptEN string  `json:"excerpt_en" yaml:"excerpt_en"`
	ContentFR string  `json:"content_fr" yaml:"content_fr"`
	ContentEN string  `json:"content_en" yaml:"content_en"`
	Category  string  `json:"category" yaml:"category"`
	Image     *string `json:"image,omitempty" yaml:"image"`
}

// BlogPostRepository defines persistence operations for blog posts.
type BlogPostRepository interface {
	Create(ctx context.Context, in InsertBlogPost) (*BlogPost, error)
	List(ctx context.Context) ([]BlogPost, error)
	GetByID(ctx context.Context, id int64) (*BlogPost, error)
	// GetBySlug returns the first post in insertion order whose slug matches.
	// Slugs are not checked for uniqueness on insert, so a later duplicate
	// is never returned.
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
}
