package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boisserenc/atelier/internal/domain"
)

const stoveColumns = `id, name_fr, name_en, description_fr, description_en, category, year, image, featured`

type stoveRepo struct {
	db *sql.DB
}

func (r *stoveRepo) Create(ctx context.Context, in domain.InsertStoveProject) (*domain.StoveProject, error) {
	p := &domain.StoveProject{
		NameFR:        in.NameFR,
		NameEN:        in.NameEN,
		DescriptionFR: in.DescriptionFR,
		DescriptionEN: in.DescriptionEN,
		Category:      in.Category,
		Year:          domain.Optional(in.Year),
		Image:         in.Image,
		Featured:      in.FeaturedRank(),
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO stove_projects (name_fr, name_en, description_fr, description_en, category, year, image, featured)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.NameFR, p.NameEN, p.DescriptionFR, p.DescriptionEN, p.Category, p.Year, p.Image, p.Featured,
	)
	if err != nil {
		return nil, fmt.Errorf("insert stove project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	p.ID = id
	return p, nil
}

func (r *stoveRepo) List(ctx context.Context) ([]domain.StoveProject, error) {
	return r.list(ctx, `SELECT `+stoveColumns+` FROM stove_projects ORDER BY id`)
}

func (r *stoveRepo) ListFeatured(ctx context.Context) ([]domain.StoveProject, error) {
	return r.list(ctx, `SELECT `+stoveColumns+` FROM stove_projects WHERE featured > 0 ORDER BY featured, id`)
}

func (r *stoveRepo) GetByID(ctx context.Context, id int64) (*domain.StoveProject, error) {
	var p domain.StoveProject
	err := scanStove(r.db.QueryRowContext(ctx, `SELECT `+stoveColumns+` FROM stove_projects WHERE id = ?`, id), &p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get stove project by id: %w", err)
	}
	return &p, nil
}

func (r *stoveRepo) list(ctx context.Context, query string) ([]domain.StoveProject, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stove projects: %w", err)
	}
	defer rows.Close()

	projects := make([]domain.StoveProject, 0)
	for rows.Next() {
		var p domain.StoveProject
		if err := scanStove(rows, &p); err != nil {
			return nil, fmt.Errorf("scan stove project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanStove(row scanner, p *domain.StoveProject) error {
	return row.Scan(&p.ID, &p.NameFR, &p.NameEN, &p.DescriptionFR, &p.DescriptionEN,
		&p.Category, &p.Year, &p.Image, &p.Featured)
}
