package view

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/boisserenc/atelier/internal/i18n"
)

var processSteps = []string{"diagnostic", "dismantling", "restoration", "assembly"}

type serviceOffer struct {
	id       string
	features []string
}

var serviceOffers = []serviceOffer{
	{"restoration", []string{"diagnostic", "dismantling", "adaptation", "installation"}},
	{"custom", []string{"design", "materials", "techniques", "integration"}},
	{"expertise", []string{"authentication", "valuation", "maintenance", "sourcing"}},
}

// HomeData is the content shown on the home page.
type HomeData struct {
	Featured     []i18n.LocalizedStoveProject
	Testimonials []i18n.LocalizedTestimonial
	Posts        []i18n.LocalizedBlogPost
}

func HomePage(p Page, data HomeData) templ.Component {
	return Layout(p, "", component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="hero"><span class="subtitle">`)
		h.text(p.T("home.hero.subtitle"))
		h.raw(`</span><h1>`)
		h.text(p.T("home.hero.title"))
		h.raw(`</h1><p>`)
		h.text(p.T("home.hero.description"))
		h.raw(`</p>`)
		link(h, "/creations", p.T("cta.discover"))
		h.raw(` `)
		link(h, "/about", p.T("cta.workshop"))
		h.raw(`</section>`)

		h.raw(`<section id="about"><span class="subtitle">`)
		h.text(p.T("home.about.subtitle"))
		h.raw(`</span><h2>`)
		h.text(p.T("home.about.title"))
		h.raw(`</h2><p>`)
		h.text(p.T("home.about.p1"))
		h.raw(`</p>`)
		link(h, "/about", p.T("home.about.linkText"))
		h.raw(`</section>`)

		h.raw(`<section id="featured">`)
		sectionHeading(h, p, "home.gallery")
		h.raw(`<div class="grid">`)
		for _, s := range data.Featured {
			stoveCard(h, s, "")
		}
		h.raw(`</div>`)
		link(h, "/creations", p.T("cta.allCreations"))
		h.raw(`</section>`)

		h.raw(`<section id="process">`)
		sectionHeading(h, p, "home.process")
		processList(h, p)
		h.raw(`</section>`)

		h.raw(`<section id="services">`)
		sectionHeading(h, p, "home.services")
		serviceList(h, p, false)
		h.raw(`</section>`)

		h.raw(`<section id="testimonials">`)
		sectionHeading(h, p, "home.testimonials")
		h.raw(`<div class="grid">`)
		for _, t := range data.Testimonials {
			testimonialCard(h, t)
		}
		h.raw(`</div></section>`)

		h.raw(`<section id="journal">`)
		sectionHeading(h, p, "home.blog")
		h.raw(`<div class="grid">`)
		for _, post := range data.Posts {
			postCard(h, p, post)
		}
		h.raw(`</div>`)
		link(h, "/blog", p.T("home.blog.seeAll"))
		h.raw(`</section>`)

		finalCTA(h, p)
	}))
}

func AboutPage(p Page) templ.Component {
	return Layout(p, p.T("nav.workshop"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section><span class="subtitle">`)
		h.text(p.T("home.about.subtitle"))
		h.raw(`</span><h1>`)
		h.text(p.T("home.about.title"))
		h.raw(`</h1><p>`)
		h.text(p.T("home.about.p1"))
		h.raw(`</p><p>`)
		h.text(p.T("home.about.p2"))
		h.raw(`</p><blockquote>`)
		h.text(p.T("home.about.quote"))
		h.raw(`</blockquote></section><section id="stats"><dl>`)
		for _, stat := range []struct{ value, key string }{
			{"35+", "home.stats.experience"},
			{"500+", "home.stats.restorations"},
			{"150+", "home.stats.custom"},
			{"12", "home.stats.artisans"},
		} {
			h.raw(`<dt>`, stat.value, `</dt><dd>`)
			h.text(p.T(stat.key))
			h.raw(`</dd>`)
		}
		h.raw(`</dl></section>`)
		finalCTA(h, p)
	}))
}

func ServicesPage(p Page) templ.Component {
	return Layout(p, p.T("nav.services"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section>`)
		sectionHeading(h, p, "home.services")
		serviceList(h, p, true)
		h.raw(`</section>`)
		finalCTA(h, p)
	}))
}

func ProcessPage(p Page) templ.Component {
	return Layout(p, p.T("nav.process"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section>`)
		sectionHeading(h, p, "home.process")
		processList(h, p)
		h.raw(`</section>`)
		finalCTA(h, p)
	}))
}

func processList(h *htmlWriter, p Page) {
	h.raw(`<ol class="steps">`)
	for _, step := range processSteps {
		h.raw(`<li><h3>`)
		h.text(p.T("home.steps." + step + ".title"))
		h.raw(`</h3><p>`)
		h.text(p.T("home.steps." + step + ".description"))
		h.raw(`</p></li>`)
	}
	h.raw(`</ol>`)
}

func serviceList(h *htmlWriter, p Page, withFeatures bool) {
	h.raw(`<div class="grid">`)
	for _, s := range serviceOffers {
		prefix := "services." + s.id
		h.raw(`<article class="card" id="service-`, attr(s.id), `"><div class="body"><h3>`)
		h.text(p.T(prefix + ".title"))
		h.raw(`</h3><p>`)
		h.text(p.T(prefix + ".description"))
		h.raw(`</p>`)
		if withFeatures {
			h.raw(`<ul>`)
			for _, f := range s.features {
				h.raw(`<li>`)
				h.text(p.T(prefix + ".features." + f))
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		link(h, "/contact", p.T("services.cta"))
		h.raw(`</div></article>`)
	}
	h.raw(`</div>`)
}

func finalCTA(h *htmlWriter, p Page) {
	h.raw(`<section id="cta"><h2>`)
	h.text(p.T("home.final.title"))
	h.raw(`</h2><p>`)
	h.text(p.T("home.final.description"))
	h.raw(`</p>`)
	link(h, "/contact", p.T("cta.appointment"))
	h.raw(`</section>`)
}

// CreationsPage lists stove projects, filtered by category when active is set.
func CreationsPage(p Page, stoves []i18n.LocalizedStoveProject, active string) templ.Component {
	return Layout(p, p.T("nav.creations"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section>`)
		sectionHeading(h, p, "home.gallery")
		filterBar(h, "/creations", p.T("home.filters.all"), active, p.Lang, i18n.StoveCategories())
		if len(stoves) == 0 {
			emptyNotice(h, p, "creations")
		} else {
			h.raw(`<div class="grid">`)
			for _, s := range stoves {
				stoveCard(h, s, active)
			}
			h.raw(`</div>`)
		}
		h.raw(`</section><section id="heritage"><span class="subtitle">`)
		h.text(p.T("creations.heritage.subtitle"))
		h.raw(`</span><h2>`)
		h.text(p.T("creations.heritage.title"))
		h.raw(`</h2><p>`)
		h.text(p.T("creations.heritage.body"))
		h.raw(`</p></section>`)
		finalCTA(h, p)
	}))
}

// CreationView is one stove shown on its own, with wrap-around neighbours
// from the gallery it was opened from.
type CreationView struct {
	Stove    i18n.LocalizedStoveProject
	Prev     i18n.LocalizedStoveProject
	Next     i18n.LocalizedStoveProject
	Position int
	Total    int
	Category string
}

// CreationPage renders a single stove project.
func CreationPage(p Page, v CreationView) templ.Component {
	back := "/creations"
	if v.Category != "" {
		back += "?category=" + url.QueryEscape(v.Category)
	}
	s := v.Stove
	return Layout(p, s.Name, component(func(ctx context.Context, h *htmlWriter) {
		link(h, back, "← "+p.T("creations.back"))
		h.raw(`<article id="creation"><span class="subtitle">`)
		h.text(s.CategoryLabel)
		if s.Year != "" {
			h.raw(` &middot; `)
			h.text(s.Year)
		}
		h.raw(`</span><h1>`)
		h.text(s.Name)
		h.raw(`</h1>`)
		if s.Image != "" {
			h.raw(`<img src="`, href(s.Image), `" alt="`, attr(s.Name), `">`)
		}
		paragraphs(h, s.Description)
		h.raw(`</article>`)
		if v.Total > 1 {
			h.raw(`<nav class="pager"><a rel="prev" href="`, href(CreationURL(v.Prev.ID, v.Category)), `">`)
			h.text("← " + p.T("creations.previous"))
			h.raw(`</a> <span>`, strconv.Itoa(v.Position), ` / `, strconv.Itoa(v.Total), `</span> <a rel="next" href="`,
				href(CreationURL(v.Next.ID, v.Category)), `">`)
			h.text(p.T("creations.next") + " →")
			h.raw(`</a></nav>`)
		}
		finalCTA(h, p)
	}))
}

func CreationNotFoundPage(p Page) templ.Component {
	return messagePage(p, p.T("creations.notFound.title"), p.T("creations.notFound.body"), "/creations", p.T("creations.back"))
}

// BlogPage lists posts, filtered by category when active is set.
func BlogPage(p Page, posts []i18n.LocalizedBlogPost, active string) templ.Component {
	return Layout(p, p.T("nav.blog"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section>`)
		sectionHeading(h, p, "home.blog")
		filterBar(h, "/blog", p.T("blog.all"), active, p.Lang, i18n.Categories())
		if len(posts) == 0 {
			emptyNotice(h, p, "blog")
		} else {
			h.raw(`<div class="grid">`)
			for _, post := range posts {
				postCard(h, p, post)
			}
			h.raw(`</div>`)
		}
		h.raw(`</section>`)
	}))
}

// BlogPostPage renders one post with up to two related posts.
func BlogPostPage(p Page, post i18n.LocalizedBlogPost, related []i18n.LocalizedBlogPost) templ.Component {
	return Layout(p, post.Title, component(func(ctx context.Context, h *htmlWriter) {
		link(h, "/blog", "← "+p.T("blog.back"))
		h.raw(`<article id="post"><span class="subtitle">`)
		h.text(post.CategoryLabel)
		h.raw(`</span> <time>`)
		h.text(post.Date)
		h.raw(`</time><h1>`)
		h.text(post.Title)
		h.raw(`</h1>`)
		if post.Image != "" {
			h.raw(`<img src="`, href(post.Image), `" alt="`, attr(post.Title), `">`)
		}
		paragraphs(h, post.Content)
		h.raw(`</article><aside><h2>`)
		h.text(p.T("blog.related"))
		h.raw(`</h2>`)
		if len(related) == 0 {
			h.raw(`<p>`)
			h.text(p.T("blog.noRelated"))
			h.raw(`</p>`)
		} else {
			h.raw(`<div class="grid">`)
			for _, r := range related {
				postCard(h, p, r)
			}
			h.raw(`</div>`)
		}
		h.raw(`<h2>`)
		h.text(p.T("blog.aboutUs"))
		h.raw(`</h2><p>`)
		h.text(p.T("blog.aboutUs.body"))
		h.raw(`</p>`)
		link(h, "/about", p.T("cta.seeMore"))
		h.raw(`</aside><section id="cta"><h2>`)
		h.text(p.T("blog.interested"))
		h.raw(`</h2><p>`)
		h.text(p.T("blog.interested.body"))
		h.raw(`</p>`)
		link(h, "/contact", p.T("cta.contactUs"))
		h.raw(` `)
		link(h, "/services", p.T("cta.viewServices"))
		h.raw(`</section>`)
	}))
}

func BlogPostNotFoundPage(p Page) templ.Component {
	return messagePage(p, p.T("blog.notFound.title"), p.T("blog.notFound.body"), "/blog", p.T("blog.back"))
}

func NotFoundPage(p Page) templ.Component {
	return messagePage(p, p.T("notFound.title"), p.T("notFound.body"), "/", p.T("notFound.back"))
}

func ErrorPage(p Page) templ.Component {
	return messagePage(p, p.T("error.title"), p.T("error.body"), "/", p.T("notFound.back"))
}

func messagePage(p Page, title, body, backURL, backLabel string) templ.Component {
	return Layout(p, title, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="notice"><h1>`)
		h.text(title)
		h.raw(`</h1><p>`)
		h.text(body)
		h.raw(`</p>`)
		link(h, backURL, backLabel)
		h.raw(`</section>`)
	}))
}
