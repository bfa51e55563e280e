package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
)

const blogPostColumns = `id, title_fr, title_en, slug, excerpt_fr, excerpt_en,
	content_fr, content_en, category, image, created_at`

type blogPostRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *blogPostRepo) Create(ctx context.Context, in domain.InsertBlogPost) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		TitleFR:   in.TitleFR,
		TitleEN:   in.TitleEN,
		Slug:      in.Slug,
		ExcerptFR: in.ExcerptFR,
		ExcerptEN: in.ExcerptEN,
		ContentFR: in.ContentFR,
		ContentEN: in.ContentEN,
		Category:  in.Category,
		Image:     domain.Optional(in.Image),
		CreatedAt: r.now(),
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (title_fr, title_en, slug, excerpt_fr, excerpt_en,
			content_fr, content_en, category, image, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.TitleFR, post.TitleEN, post.Slug, post.ExcerptFR, post.ExcerptEN,
		post.ContentFR, post.ContentEN, post.Category, post.Image, post.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert blog post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}
	post.ID = id
	return post, nil
}

func (r *blogPostRepo) List(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.BlogPost, 0)
	for rows.Next() {
		var p domain.BlogPost
		if err := scanBlogPost(rows, &p); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *blogPostRepo) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	return r.getOne(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = ?`, id)
}

func (r *blogPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	// Lowest id wins when slugs collide, matching the in-memory store.
	return r.getOne(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = ? ORDER BY id LIMIT 1`, slug)
}

func (r *blogPostRepo) getOne(ctx context.Context, query string, arg any) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if err := scanBlogPost(r.db.QueryRowContext(ctx, query, arg), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlogPost(row scanner, p *domain.BlogPost) error {
	return row.Scan(&p.ID, &p.TitleFR, &p.TitleEN, &p.Slug, &p.ExcerptFR, &p.ExcerptEN,
		&p.ContentFR, &p.ContentEN, &p.Category, &p.Image, &p.CreatedAt)
}
