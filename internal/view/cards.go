package view

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/boisserenc/atelier/internal/i18n"
)

// CreationURL links to a stove's detail view. A non-empty category keeps the
// gallery filter while browsing.
func CreationURL(id int64, category string) string {
	u := "/creations/" + strconv.FormatInt(id, 10)
	if category != "" {
		u += "?category=" + url.QueryEscape(category)
	}
	return u
}

func stoveCard(h *htmlWriter, s i18n.LocalizedStoveProject, category string) {
	h.raw(`<article class="card" id="stove-`, strconv.FormatInt(s.ID, 10), `">`)
	if s.Image != "" {
		h.raw(`<img src="`, href(s.Image), `" alt="`, attr(s.Name), `" loading="lazy">`)
	}
	h.raw(`<div class="body"><span class="subtitle">`)
	h.text(s.CategoryLabel)
	if s.Year != "" {
		h.raw(` &middot; `)
		h.text(s.Year)
	}
	h.raw(`</span><h3><a href="`, href(CreationURL(s.ID, category)), `">`)
	h.text(s.Name)
	h.raw(`</a></h3><p>`)
	h.text(s.Description)
	h.raw(`</p></div></article>`)
}

func postCard(h *htmlWriter, p Page, post i18n.LocalizedBlogPost) {
	url := "/blog/" + post.Slug
	h.raw(`<article class="card">`)
	if post.Image != "" {
		h.raw(`<a href="`, href(url), `"><img src="`, href(post.Image), `" alt="`, attr(post.Title), `" loading="lazy"></a>`)
	}
	h.raw(`<div class="body"><span class="subtitle">`)
	h.text(post.CategoryLabel)
	h.raw(`</span> <time>`)
	h.text(post.Date)
	h.raw(`</time><h3>`)
	link(h, url, post.Title)
	h.raw(`</h3><p>`)
	h.text(post.Excerpt)
	h.raw(`</p>`)
	link(h, url, p.T("home.blog.readMore"))
	h.raw(`</div></article>`)
}

func testimonialCard(h *htmlWriter, t i18n.LocalizedTestimonial) {
	h.raw(`<blockquote class="card"><div class="body"><div class="rating" aria-label="`, strconv.Itoa(t.Rating), `/5">`)
	h.raw(strings.Repeat("&#9733;", max(0, min(t.Rating, 5))))
	h.raw(`</div><p>`)
	h.text(t.Content)
	h.raw(`</p><footer><strong>`)
	h.text(t.Name)
	h.raw(`</strong><br>`)
	h.text(t.Position)
	h.raw(`</footer></div></blockquote>`)
}

// filterBar renders category links; the empty id means no filter.
func filterBar(h *htmlWriter, base, allLabel, active string, lang i18n.Lang, categories []i18n.Category) {
	h.raw(`<nav class="filters">`)
	filterLink(h, base, "", allLabel, active == "")
	for _, c := range categories {
		filterLink(h, base+"?category="+c.ID, c.ID, c.Label(lang), active == c.ID)
	}
	h.raw(`</nav>`)
}

func filterLink(h *htmlWriter, url, id, label string, active bool) {
	class := ""
	if active {
		class = ` class="active"`
	}
	h.raw(`<a href="`, href(url), `" data-category="`, attr(id), `"`, class, `>`)
	h.text(label)
	h.raw(`</a>`)
}

func emptyNotice(h *htmlWriter, p Page, prefix string) {
	h.raw(`<div class="notice"><p>`)
	h.text(p.T(prefix + ".empty"))
	h.raw(`</p><p>`)
	h.text(p.T(prefix + ".emptyHint"))
	h.raw(`</p></div>`)
}

// paragraphs splits text on blank lines.
func paragraphs(h *htmlWriter, text string) {
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if para = strings.TrimSpace(para); para == "" {
			continue
		}
		h.raw(`<p>`)
		h.text(para)
		h.raw(`</p>`)
	}
}
