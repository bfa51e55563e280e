package handler

import (
	"net/http"

	"github.com/boisserenc/atelier/internal/catalog"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, c catalog.Catalog) {
	api := NewAPIHandler(c)
	pages := NewPageHandler(c)
	contact := NewContactFormHandler(c)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/blog", api.HandleListBlogPosts)
	mux.HandleFunc("GET /api/blog/{slug}", api.HandleGetBlogPost)
	mux.HandleFunc("GET /api/stoves", api.HandleListStoves)
	mux.HandleFunc("GET /api/stoves/featured", api.HandleListFeaturedStoves)
	mux.HandleFunc("GET /api/stoves/{id}", api.HandleGetStove)
	mux.HandleFunc("GET /api/testimonials", api.HandleListTestimonials)
	mux.HandleFunc("POST /api/contact", api.HandleCreateContact)
	mux.HandleFunc("/api/", api.HandleNotFound)

	mux.HandleFunc("GET /{$}", pages.HandleHome)
	mux.HandleFunc("GET /about", pages.HandleAbout)
	mux.HandleFunc("GET /services", pages.HandleServices)
	mux.HandleFunc("GET /process", pages.HandleProcess)
	mux.HandleFunc("GET /creations", pages.HandleCreations)
	mux.HandleFunc("GET /creations/{id}", pages.HandleCreation)
	mux.HandleFunc("GET /blog", pages.HandleBlog)
	mux.HandleFunc("GET /blog/{slug}", pages.HandleBlogPost)
	mux.HandleFunc("GET /contact", pages.HandleContact)
	mux.HandleFunc("POST /contact", contact.HandleSubmit)
	mux.HandleFunc("/", pages.HandleNotFound)
}

// Wrap applies the standard middleware stack to the mux.
func Wrap(mux http.Handler, cookieSecure bool) http.Handler {
	return Chain(mux, RequestID, RequestLog, SecurityHeaders, Language(cookieSecure))
}
