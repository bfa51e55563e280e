package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/repository/memory"
)

// Verify that *memory.Store implements domain.Database at compile time.
var _ domain.Database = (*memory.Store)(nil)

var fixedNow = time.Date(2024, time.June, 12, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New(memory.WithClock(func() time.Time { return fixedNow }))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestStore_IDsIncreasePerCollection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p1, err := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "a"})
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}
	s1, err := s.StoveProjects().Create(ctx, domain.InsertStoveProject{NameFR: "A"})
	if err != nil {
		t.Fatalf("Create stove: %v", err)
	}
	p2, _ := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "b"})
	m1, _ := s.ContactMessages().Create(ctx, domain.InsertContactMessage{Name: "x"})
	s2, _ := s.StoveProjects().Create(ctx, domain.InsertStoveProject{NameFR: "B"})
	p3, _ := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "c"})

	if p1.ID != 1 || p2.ID != 2 || p3.ID != 3 {
		t.Fatalf("expected post ids 1,2,3, got %d,%d,%d", p1.ID, p2.ID, p3.ID)
	}
	if s1.ID != 1 || s2.ID != 2 {
		t.Fatalf("expected stove ids 1,2, got %d,%d", s1.ID, s2.ID)
	}
	if m1.ID != 1 {
		t.Fatalf("expected contact id 1, got %d", m1.ID)
	}
}

func TestStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := s.ContactMessages().Create(ctx, domain.InsertContactMessage{Name: "n", Email: "e@example.com", Message: "m"})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- msg.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
	for id := int64(1); id <= n; id++ {
		if !seen[id] {
			t.Fatalf("expected id %d to be assigned", id)
		}
	}
}

func TestContactMessages_DefaultsAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg, err := s.ContactMessages().Create(ctx, domain.InsertContactMessage{
		Name:    "Marie",
		Email:   "marie@example.com",
		Phone:   strPtr(""),
		Message: "Bonjour",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg.Phone != nil {
		t.Fatalf("expected empty phone to become null, got %q", *msg.Phone)
	}
	if msg.Service != nil {
		t.Fatalf("expected missing service to be null, got %q", *msg.Service)
	}
	if !msg.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected createdAt %v, got %v", fixedNow, msg.CreatedAt)
	}

	all, err := s.ContactMessages().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].ID != msg.ID {
		t.Fatalf("expected the created message in the list, got %+v", all)
	}
}

func TestStoveProjects_Defaults(t *testing.T) {
	s := newTestStore(t)

	p, err := s.StoveProjects().Create(context.Background(), domain.InsertStoveProject{NameFR: "Sans rang", Image: "img.jpg"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Featured != 0 {
		t.Fatalf("expected featured 0, got %d", p.Featured)
	}
	if p.Year != nil {
		t.Fatalf("expected null year, got %q", *p.Year)
	}
}

func TestTestimonials_DefaultRating(t *testing.T) {
	s := newTestStore(t)

	tm, err := s.Testimonials().Create(context.Background(), domain.InsertTestimonial{Name: "Michel F."})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tm.Rating != 5 {
		t.Fatalf("expected default rating 5, got %d", tm.Rating)
	}
}

func TestStoveProjects_ListFeatured(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, rank := range []int{1, 2, 0, 4, 0, 3} {
		_, err := s.StoveProjects().Create(ctx, domain.InsertStoveProject{
			NameFR:   string(rune('A' + i)),
			Featured: intPtr(rank),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	featured, err := s.StoveProjects().ListFeatured(ctx)
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured projects, got %d", len(featured))
	}
	for i, p := range featured {
		if p.Featured != i+1 {
			t.Fatalf("position %d: expected rank %d, got %d", i, i+1, p.Featured)
		}
	}
	if featured[2].NameFR != "F" {
		t.Fatalf("expected rank 3 to be the sixth insert, got %q", featured[2].NameFR)
	}
}

func TestStoveProjects_ListFeaturedStableOnTies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	ranks := []int{2, 1, 2}
	for i := range names {
		if _, err := s.StoveProjects().Create(ctx, domain.InsertStoveProject{NameFR: names[i], Featured: intPtr(ranks[i])}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	featured, _ := s.StoveProjects().ListFeatured(ctx)
	got := []string{featured[0].NameFR, featured[1].NameFR, featured[2].NameFR}
	want := []string{"second", "first", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestStoveProjects_GetByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, _ := s.StoveProjects().Create(ctx, domain.InsertStoveProject{NameFR: "Le Grand Palais"})

	got, err := s.StoveProjects().GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NameFR != "Le Grand Palais" {
		t.Fatalf("expected Le Grand Palais, got %q", got.NameFR)
	}

	_, err = s.StoveProjects().GetByID(ctx, 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogPosts_GetBySlug(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "histoire", TitleFR: "Histoire", Image: strPtr("")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Image != nil {
		t.Fatalf("expected null image, got %q", *created.Image)
	}
	if !created.CreatedAt.Equal(fixedNow) {
		t.Fatalf("expected createdAt %v, got %v", fixedNow, created.CreatedAt)
	}

	got, err := s.BlogPosts().GetBySlug(ctx, "histoire")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	_, err = s.BlogPosts().GetBySlug(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBlogPosts_DuplicateSlugFirstMatchWins(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, _ := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "dup", TitleFR: "premier"})
	if _, err := s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: "dup", TitleFR: "second"}); err != nil {
		t.Fatalf("duplicate slug insert should not fail: %v", err)
	}

	got, err := s.BlogPosts().GetBySlug(ctx, "dup")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("expected first inserted post %d, got %d", first.ID, got.ID)
	}

	all, _ := s.BlogPosts().List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected both posts to be stored, got %d", len(all))
	}
}

func TestBlogPosts_ListInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, slug := range []string{"c", "a", "b"} {
		s.BlogPosts().Create(ctx, domain.InsertBlogPost{Slug: slug})
	}
	all, err := s.BlogPosts().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if all[0].Slug != "c" || all[1].Slug != "a" || all[2].Slug != "b" {
		t.Fatalf("expected insertion order c,a,b, got %s,%s,%s", all[0].Slug, all[1].Slug, all[2].Slug)
	}
}

func TestStore_EmptyListsAreNotNil(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	posts, _ := s.BlogPosts().List(ctx)
	featured, _ := s.StoveProjects().ListFeatured(ctx)
	if posts == nil || featured == nil {
		t.Fatal("expected empty, non-nil slices")
	}
}

func TestUsers_CreateAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.Users().Create(ctx, domain.InsertUser{Username: "atelier", Password: "hash"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}

	byName, err := s.Users().GetByUsername(ctx, "atelier")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, byName.ID)
	}

	if _, err := s.Users().GetByID(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = s.Users().Create(ctx, domain.InsertUser{Username: "atelier", Password: "other"})
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}
