package domain

import (
	"context"
)

// StoveProject is a restored or custom-built stove shown in the creations gallery.
// Featured is 0 when the project is not featured; a positive value is both the
// flag and the ascending display rank.
type StoveProject struct {
	ID            int64   `json:"id"`
	NameFR        string  `json:"name_fr"`
	NameEN        string  `json:"name_en"`
	DescriptionFR string  `json:"description_fr"`
	DescriptionEN string  `json:"description_en"`
	Category      string  `json:"category"`
	Year          *string `json:"year"`
	Image         string  `json:"image"`
	Featured      int     `json:"featured"`
}

// IsFeatured reports whether the project belongs in the featured view.
func (p StoveProject) IsFeatured() bool {
	return p.Featured > 0
}

// InsertStoveProject is the creation payload for a StoveProject.
type InsertStoveProject struct {
	NameFR        string  `json:"name_fr" yaml:"name_fr"`
	NameEN        string  `json:"name_en" yaml:"name_en"`
	DescriptionFR string  `json:"description_fr" yaml:"description_fr"`
	DescriptionEN string  `json:"description_en" yaml:"description_en"`
	Category      string  `json:"category" yaml:"category"`
	Year          *string `json:"year,omitempty" yaml:"year"`
	Image         string  `json:"image" yaml:"image"`
	Featured      *int    `json:"featured,omitempty" yaml:"featured"`
}

// StoveProjectRepository defines persistence operations for stove projects.
type StoveProjectRepository interface {
	Create(ctx context.Context, in InsertStoveProject) (*StoveProject, error)
	List(ctx context.Context) ([]StoveProject, error)
	GetByID(ctx context.Context, id int64) (*StoveProject, error)
	// ListFeatured returns featured projects ordered by rank, ties in
	// insertion order.
	ListFeatured(ctx context.Context) ([]StoveProject, error)
}
