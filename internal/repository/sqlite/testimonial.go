package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boisserenc/atelier/internal/domain"
)

type testimonialRepo struct {
	db *sql.DB
}

func (r *testimonialRepo) Create(ctx context.Context, in domain.InsertTestimonial) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		Name:       in.Name,
		PositionFR: in.PositionFR,
		PositionEN: in.PositionEN,
		ContentFR:  in.ContentFR,
		ContentEN:  in.ContentEN,
		Rating:     in.RatingOrDefault(),
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO testimonials (name, position_fr, position_en, content_fr, content_en, rating)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Name, t.PositionFR, t.PositionEN, t.ContentFR, t.ContentEN, t.Rating,
	)
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	t.ID = id
	return t, nil
}

func (r *testimonialRepo) List(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, position_fr, position_en, content_fr, content_en, rating
		 FROM testimonials ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Testimonial, 0)
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.PositionFR, &t.PositionEN, &t.ContentFR, &t.ContentEN, &t.Rating); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *testimonialRepo) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	t := &domain.Testimonial{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, position_fr, position_en, content_fr, content_en, rating
		 FROM testimonials WHERE id = ?`, id,
	).Scan(&t.ID, &t.Name, &t.PositionFR, &t.PositionEN, &t.ContentFR, &t.ContentEN, &t.Rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get testimonial by id: %w", err)
	}
	return t, nil
}
