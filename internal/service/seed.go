package service

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/boisserenc/atelier/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the initial content of a fresh store.
type SeedData struct {
	BlogPosts     []domain.InsertBlogPost     `yaml:"blog_posts"`
	StoveProjects []domain.InsertStoveProject `yaml:"stove_projects"`
	Testimonials  []domain.InsertTestimonial  `yaml:"testimonials"`
}

// DefaultSeed returns the embedded dataset.
func DefaultSeed() (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return SeedData{}, fmt.Errorf("parse seed data: %w", err)
	}
	return data, nil
}

// Seeder loads SeedData into the content repositories.
type Seeder struct {
	posts        domain.BlogPostRepository
	stoves       domain.StoveProjectRepository
	testimonials domain.TestimonialRepository
}

// NewSeeder creates a new Seeder.
func NewSeeder(posts domain.BlogPostRepository, stoves domain.StoveProjectRepository, testimonials domain.TestimonialRepository) *Seeder {
	return &Seeder{posts: posts, stoves: stoves, testimonials: testimonials}
}

// Seed inserts data in order and returns how many records it created.
// Users and contact messages are never seeded. A store that already holds
// content is left untouched and Seed returns 0, so a persistent backend is
// not seeded twice across restarts.
func (s *Seeder) Seed(ctx context.Context, data SeedData) (int, error) {
	empty, err := s.isEmpty(ctx)
	if err != nil {
		return 0, err
	}
	if !empty {
		return 0, nil
	}

	count := 0
	for _, p := range data.BlogPosts {
		if _, err := s.posts.Create(ctx, p); err != nil {
			return count, fmt.Errorf("seed blog post %s: %w", p.Slug, err)
		}
		count++
	}
	for _, p := range data.StoveProjects {
		if _, err := s.stoves.Create(ctx, p); err != nil {
			return count, fmt.Errorf("seed stove project %s: %w", p.NameFR, err)
		}
		count++
	}
	for _, t := range data.Testimonials {
		if _, err := s.testimonials.Create(ctx, t); err != nil {
			return count, fmt.Errorf("seed testimonial %s: %w", t.Name, err)
		}
		count++
	}
	return count, nil
}

func (s *Seeder) isEmpty(ctx context.Context) (bool, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return false, fmt.Errorf("check blog posts: %w", err)
	}
	stoves, err := s.stoves.List(ctx)
	if err != nil {
		return false, fmt.Errorf("check stove projects: %w", err)
	}
	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		return false, fmt.Errorf("check testimonials: %w", err)
	}
	return len(posts) == 0 && len(stoves) == 0 && len(testimonials) == 0, nil
}
