package domain

import "context"

// DefaultRating is applied to testimonials created without a rating.
const DefaultRating = 5

type Testimonial struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PositionFR string `json:"position_fr"`
	PositionEN string `json:"position_en"`
	ContentFR  string `json:"content_fr"`
	ContentEN  string `json:"content_en"`
	Rating     int    `json:"rating"`
}

type InsertTestimonial struct {
	Name       string `json:"name" yaml:"name"`
	PositionFR string `json:"position_fr" yaml:"position_fr"`
	PositionEN string `json:"position_en" yaml:"position_en"`
	ContentFR  string `json:"content_fr" yaml:"content_fr"`
	ContentEN  string `json:"content_en" yaml:"content_en"`
	Rating     *int   `json:"rating,omitempty" yaml:"rating"`
}

type TestimonialRepository interface {
	Create(ctx context.Context, in InsertTestimonial) (*Testimonial, error)
	List(ctx context.Context) ([]Testimonial, error)
	GetByID(ctx context.Context, id int64) (*Testimonial, error)
}
