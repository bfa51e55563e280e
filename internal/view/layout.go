package view

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/boisserenc/atelier/internal/i18n"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type navItem struct {
	path string
	key  string
}

var navItems = []navItem{
	{"/", "nav.home"},
	{"/about", "nav.workshop"},
	{"/creations", "nav.creations"},
	{"/process", "nav.process"},
	{"/services", "nav.services"},
	{"/blog", "nav.blog"},
	{"/contact", "nav.contact"},
}

const styles = `body{margin:0;font-family:Georgia,serif;color:#333;background:#F8F5F1}
header,footer{background:#1f1a17;color:#E5E5E5;padding:1rem 2rem}
header nav a,footer a{color:#E5E5E5;margin-right:1rem;text-decoration:none}
header nav a.active{color:#B87333}
main{max-width:72rem;margin:0 auto;padding:2rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(18rem,1fr));gap:1.5rem}
.card{background:#fff;border-radius:2px;overflow:hidden}
.card img{width:100%;height:14rem;object-fit:cover}
.card .body{padding:1rem}
.filters a{margin-right:.75rem}
.filters a.active{color:#7D2027;font-weight:bold}
.subtitle{color:#B87333}
.notice{padding:1rem;border-left:4px solid #7D2027;background:#fff}`

// Layout wraps body in the site chrome: head, navigation with the language
// toggle, and footer.
func Layout(p Page, title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="`, attr(p.Lang.String()), `"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		if title != "" {
			h.text(title)
			h.raw(` | `)
		}
		h.text(p.T("site.name"))
		h.raw(`</title><meta name="description" content="`, attr(p.T("site.tagline")), `">`)
		h.raw(`<style>`, styles, `</style>`)
		h.raw(`<script type="module" src="`, href(datastarScript), `"></script></head><body>`)

		h.raw(`<header><a href="/" class="brand">`)
		h.text(p.T("site.name"))
		h.raw(`</a><nav>`)
		for _, item := range navItems {
			class := ""
			if item.path == p.Path {
				class = ` class="active"`
			}
			h.raw(`<a href="`, href(item.path), `"`, class, `>`)
			h.text(p.T(item.key))
			h.raw(`</a>`)
		}
		h.raw(`</nav><nav class="languages">`)
		for _, lang := range i18n.Supported() {
			current := ""
			if lang == p.Lang {
				current = ` class="active" aria-current="true"`
			}
			h.raw(`<a href="`, href(i18n.LanguageURL(p.Path, p.Query, lang)), `" hreflang="`, attr(lang.String()), `"`, current, `>`)
			h.text(p.T("language." + lang.String()))
			h.raw(`</a>`)
		}
		h.raw(`</nav></header><main>`)

		h.render(ctx, body)

		h.raw(`</main><footer><p>&copy; `, strconv.Itoa(time.Now().Year()), ` `)
		h.text(p.T("site.name"))
		h.raw(`. `)
		h.text(p.T("footer.rights"))
		h.raw(`.</p><p><a href="/contact">`)
		h.text(p.T("footer.legal"))
		h.raw(`</a><a href="/contact">`)
		h.text(p.T("footer.privacy"))
		h.raw(`</a></p></footer></body></html>`)
	})
}

// sectionHeading renders the subtitle, title and description triple used by
// most page sections.
func sectionHeading(h *htmlWriter, p Page, prefix string) {
	h.raw(`<span class="subtitle">`)
	h.text(p.T(prefix + ".subtitle"))
	h.raw(`</span><h2>`)
	h.text(p.T(prefix + ".title"))
	h.raw(`</h2><p>`)
	h.text(p.T(prefix + ".description"))
	h.raw(`</p>`)
}

func link(h *htmlWriter, url, label string) {
	h.raw(`<a href="`, href(url), `">`)
	h.text(label)
	h.raw(`</a>`)
}
