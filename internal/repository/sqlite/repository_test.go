package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/boisserenc/atelier/internal/domain"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestContactMessages_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := db.ContactMessages()
	ctx := context.Background()

	msg, err := repo.Create(ctx, domain.InsertContactMessage{
		Name:    "Marie",
		Email:   "marie@example.com",
		Service: strPtr("restoration"),
		Phone:   strPtr(""),
		Message: "Bonjour",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg.ID != 1 {
		t.Fatalf("expected id 1, got %d", msg.ID)
	}
	if msg.Phone != nil {
		t.Fatalf("expected null phone, got %q", *msg.Phone)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 message, got %d", len(all))
	}
	got := all[0]
	if got.Service == nil || *got.Service != "restoration" {
		t.Fatalf("expected service restoration, got %v", got.Service)
	}
	if got.Phone != nil {
		t.Fatalf("expected null phone after reload, got %q", *got.Phone)
	}
	if !got.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected createdAt %v, got %v", fixedNow, got.CreatedAt)
	}
}

func TestBlogPosts_SlugLookupAndShadowing(t *testing.T) {
	db := newTestDB(t)
	repo := db.BlogPosts()
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.InsertBlogPost{TitleFR: "Premier", Slug: "dup", Category: "histoire"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(ctx, domain.InsertBlogPost{TitleFR: "Second", Slug: "dup", Category: "histoire"}); err != nil {
		t.Fatalf("duplicate slug should be accepted: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "dup")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != first.ID || got.TitleFR != "Premier" {
		t.Fatalf("expected first post, got id %d %q", got.ID, got.TitleFR)
	}
	if got.Image != nil {
		t.Fatalf("expected null image, got %q", *got.Image)
	}

	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Fatalf("expected two posts in id order, got %+v", all)
	}
}

func TestStoveProjects_FeaturedOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := db.StoveProjects()
	ctx := context.Background()

	for _, rank := range []int{1, 2, 0, 4, 0, 3} {
		if _, err := repo.Create(ctx, domain.InsertStoveProject{NameFR: "p", Image: "img.jpg", Featured: intPtr(rank)}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	featured, err := repo.ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured, got %d", len(featured))
	}
	wantIDs := []int64{1, 2, 6, 4}
	for i, p := range featured {
		if p.Featured != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, p.Featured)
		}
		if p.ID != wantIDs[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, wantIDs[i], p.ID)
		}
	}

	all, _ := repo.List(ctx)
	if len(all) != 6 {
		t.Fatalf("expected 6 projects, got %d", len(all))
	}

	got, err := repo.GetByID(ctx, 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Featured != 0 || got.Year != nil {
		t.Fatalf("expected defaults on project 3, got featured=%d year=%v", got.Featured, got.Year)
	}
}

func TestTestimonials_DefaultRating(t *testing.T) {
	db := newTestDB(t)
	repo := db.Testimonials()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.InsertTestimonial{Name: "Sophie D.", PositionFR: "Chef", PositionEN: "Chef"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", got.Rating)
	}
}

func TestUsers_UniqueUsername(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user, err := repo.Create(ctx, domain.InsertUser{Username: "atelier", Password: "hash"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = repo.Create(ctx, domain.InsertUser{Username: "atelier", Password: "other"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	got, err := repo.GetByUsername(ctx, "atelier")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, got.ID)
	}

	if _, err := repo.GetByID(ctx, 77); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
