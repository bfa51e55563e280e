package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/a-h/templ"

	"github.com/boisserenc/atelier/internal/catalog"
	"github.com/boisserenc/atelier/internal/domain"
	"github.com/boisserenc/atelier/internal/i18n"
	"github.com/boisserenc/atelier/internal/view"
)

const (
	homePostCount   = 3
	relatedPostsMax = 2
)

// PageHandler renders the public HTML pages from the catalog.
type PageHandler struct {
	catalog catalog.Catalog
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(c catalog.Catalog) *PageHandler {
	return &PageHandler{catalog: c}
}

func pageFor(r *http.Request) view.Page {
	return view.Page{
		Lang:  LangFromContext(r.Context()),
		Path:  r.URL.Path,
		Query: r.URL.RawQuery,
	}
}

// render writes c as an HTML document with the given status.
func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		LoggerFromContext(r.Context()).Error("render page", "path", r.URL.Path, "error", err)
	}
}

func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	LoggerFromContext(r.Context()).Error(op, "error", err)
	render(w, r, http.StatusInternalServerError, view.ErrorPage(pageFor(r)))
}

// HandleHome renders the home page.
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	ctx := r.Context()

	featured, err := h.catalog.ListFeaturedStoveProjects(ctx)
	if err != nil {
		h.renderError(w, r, "home featured stoves", err)
		return
	}
	testimonials, err := h.catalog.ListTestimonials(ctx)
	if err != nil {
		h.renderError(w, r, "home testimonials", err)
		return
	}
	posts, err := h.catalog.ListBlogPosts(ctx)
	if err != nil {
		h.renderError(w, r, "home blog posts", err)
		return
	}
	if len(posts) > homePostCount {
		posts = posts[:homePostCount]
	}

	render(w, r, http.StatusOK, view.HomePage(p, view.HomeData{
		Featured:     i18n.LocalizeStoveProjects(featured, p.Lang),
		Testimonials: i18n.LocalizeTestimonials(testimonials, p.Lang),
		Posts:        i18n.LocalizeBlogPosts(posts, p.Lang),
	}))
}

// HandleAbout renders the about page.
func (h *PageHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.AboutPage(pageFor(r)))
}

// HandleServices renders the services page.
func (h *PageHandler) HandleServices(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.ServicesPage(pageFor(r)))
}

// HandleProcess renders the restoration process page.
func (h *PageHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.ProcessPage(pageFor(r)))
}

// HandleContact renders the contact form.
func (h *PageHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, view.ContactPage(pageFor(r)))
}

// HandleCreations renders the stove gallery, optionally filtered by the
// category query parameter.
func (h *PageHandler) HandleCreations(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	stoves, err := h.catalog.ListStoveProjects(r.Context())
	if err != nil {
		h.renderError(w, r, "list stove projects", err)
		return
	}

	active := categoryFilter(r)
	stoves = stovesInCategory(stoves, active)
	render(w, r, http.StatusOK, view.CreationsPage(p, i18n.LocalizeStoveProjects(stoves, p.Lang), active))
}

// HandleCreation renders one stove project with previous/next links that
// wrap around the gallery, filtered like the gallery it was opened from.
// Ids that are malformed or unknown both get the not-found page.
func (h *PageHandler) HandleCreation(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	ctx := r.Context()

	stove, err := h.catalog.GetStoveProjectByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			render(w, r, http.StatusNotFound, view.CreationNotFoundPage(p))
			return
		}
		h.renderError(w, r, "get stove project", err)
		return
	}

	all, err := h.catalog.ListStoveProjects(ctx)
	if err != nil {
		h.renderError(w, r, "list stove projects", err)
		return
	}
	active := categoryFilter(r)
	if active != "" && stove.Category != active {
		active = ""
	}
	gallery := stovesInCategory(all, active)

	v := view.CreationView{
		Stove:    i18n.LocalizeStoveProject(*stove, p.Lang),
		Category: active,
		Total:    len(gallery),
	}
	if i := slices.IndexFunc(gallery, func(s domain.StoveProject) bool { return s.ID == stove.ID }); i >= 0 {
		n := len(gallery)
		v.Position = i + 1
		v.Prev = i18n.LocalizeStoveProject(gallery[(i-1+n)%n], p.Lang)
		v.Next = i18n.LocalizeStoveProject(gallery[(i+1)%n], p.Lang)
	} else {
		v.Total = 0
	}
	render(w, r, http.StatusOK, view.CreationPage(p, v))
}

// HandleBlog renders the blog index, optionally filtered by category.
func (h *PageHandler) HandleBlog(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	posts, err := h.catalog.ListBlogPosts(r.Context())
	if err != nil {
		h.renderError(w, r, "list blog posts", err)
		return
	}

	active := categoryFilter(r)
	if active != "" {
		posts = postsInCategory(posts, active, "")
	}
	render(w, r, http.StatusOK, view.BlogPage(p, i18n.LocalizeBlogPosts(posts, p.Lang), active))
}

// HandleBlogPost renders a single post with related posts of the same
// category.
func (h *PageHandler) HandleBlogPost(w http.ResponseWriter, r *http.Request) {
	p := pageFor(r)
	ctx := r.Context()

	post, err := h.catalog.GetBlogPostBySlug(ctx, r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			render(w, r, http.StatusNotFound, view.BlogPostNotFoundPage(p))
			return
		}
		h.renderError(w, r, "get blog post", err)
		return
	}

	all, err := h.catalog.ListBlogPosts(ctx)
	if err != nil {
		h.renderError(w, r, "list related posts", err)
		return
	}
	related := postsInCategory(all, post.Category, post.Slug)
	if len(related) > relatedPostsMax {
		related = related[:relatedPostsMax]
	}

	render(w, r, http.StatusOK, view.BlogPostPage(p,
		i18n.LocalizeBlogPost(*post, p.Lang),
		i18n.LocalizeBlogPosts(related, p.Lang),
	))
}

// HandleNotFound renders the 404 page.
func (h *PageHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, view.NotFoundPage(pageFor(r)))
}

// categoryFilter returns the requested category, or "" for all.
func categoryFilter(r *http.Request) string {
	c := r.URL.Query().Get("category")
	if c == "all" {
		return ""
	}
	return c
}

// stovesInCategory keeps stoves of the given category, or all when category
// is empty.
func stovesInCategory(stoves []domain.StoveProject, category string) []domain.StoveProject {
	if category == "" {
		return stoves
	}
	out := make([]domain.StoveProject, 0, len(stoves))
	for _, s := range stoves {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// postsInCategory keeps posts of the given category, skipping excludeSlug.
func postsInCategory(posts []domain.BlogPost, category, excludeSlug string) []domain.BlogPost {
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.Category != category || (excludeSlug != "" && p.Slug == excludeSlug) {
			continue
		}
		out = append(out, p)
	}
	return out
}
