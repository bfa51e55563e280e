package handler

import (
	"errors"
	"net/http"

	"github.com/boisserenc/atelier/internal/catalog"
	"github.com/boisserenc/atelier/internal/domain"
)

// APIHandler serves the JSON content API under /api.
type APIHandler struct {
	catalog catalog.Catalog
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(c catalog.Catalog) *APIHandler {
	return &APIHandler{catalog: c}
}

// HandleListBlogPosts returns every blog post.
func (h *APIHandler) HandleListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.ListBlogPosts(r.Context())
	if err != nil {
		h.fail(w, r, "list blog posts", err, "Failed to fetch blog posts")
		return
	}
	writeJSON(w, r, http.StatusOK, nonNil(posts))
}

// HandleGetBlogPost returns the post whose slug matches the path.
func (h *APIHandler) HandleGetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.catalog.GetBlogPostBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "Blog post not found")
			return
		}
		h.fail(w, r, "get blog post", err, "Failed to fetch blog post")
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// HandleListStoves returns every stove project.
func (h *APIHandler) HandleListStoves(w http.ResponseWriter, r *http.Request) {
	stoves, err := h.catalog.ListStoveProjects(r.Context())
	if err != nil {
		h.fail(w, r, "list stove projects", err, "Failed to fetch stove projects")
		return
	}
	writeJSON(w, r, http.StatusOK, nonNil(stoves))
}

// HandleListFeaturedStoves returns featured stove projects by rank.
func (h *APIHandler) HandleListFeaturedStoves(w http.ResponseWriter, r *http.Request) {
	stoves, err := h.catalog.ListFeaturedStoveProjects(r.Context())
	if err != nil {
		h.fail(w, r, "list featured stove projects", err, "Failed to fetch featured stove projects")
		return
	}
	writeJSON(w, r, http.StatusOK, nonNil(stoves))
}

// HandleGetStove returns a single stove project by numeric id.
func (h *APIHandler) HandleGetStove(w http.ResponseWriter, r *http.Request) {
	stove, err := h.catalog.GetStoveProjectByID(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, r, http.StatusBadRequest, inputMessage(err, "Invalid ID format"))
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "Stove project not found")
		default:
			h.fail(w, r, "get stove project", err, "Failed to fetch stove project")
		}
		return
	}
	writeJSON(w, r, http.StatusOK, stove)
}

// HandleListTestimonials returns every testimonial.
func (h *APIHandler) HandleListTestimonials(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListTestimonials(r.Context())
	if err != nil {
		h.fail(w, r, "list testimonials", err, "Failed to fetch testimonials")
		return
	}
	writeJSON(w, r, http.StatusOK, nonNil(list))
}

// HandleCreateContact stores a contact form submission.
func (h *APIHandler) HandleCreateContact(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertContactMessage
	if err := readJSON(w, r, &in); err != nil {
		writeError(w, r, http.StatusBadRequest, inputMessage(err, "Validation error: invalid JSON body"))
		return
	}

	msg, err := h.catalog.CreateContactMessage(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, inputMessage(err, "Validation error"))
			return
		}
		h.fail(w, r, "create contact message", err, "Failed to submit contact form")
		return
	}
	writeJSON(w, r, http.StatusCreated, msg)
}

// HandleNotFound answers unknown API paths with a JSON 404.
func (h *APIHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "Not found")
}

// fail logs the underlying error and answers 500 with a generic message.
func (h *APIHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error, message string) {
	LoggerFromContext(r.Context()).Error(op, "error", err)
	writeError(w, r, http.StatusInternalServerError, message)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
