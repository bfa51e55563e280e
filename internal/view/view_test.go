package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/boisserenc/atelier/internal/i18n"
	"github.com/boisserenc/atelier/internal/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestLayout_LanguageToggle(t *testing.T) {
	fr := render(t, view.AboutPage(view.Page{Lang: i18n.FR, Path: "/about"}))
	if !strings.Contains(fr, `<html lang="fr">`) {
		t.Fatal("expected french document")
	}
	if !strings.Contains(fr, `href="/about?lang=en"`) {
		t.Fatalf("expected toggle to english, got %s", fr)
	}
	if !strings.Contains(fr, "L&#39;Atelier") {
		t.Fatal("expected french navigation")
	}

	en := render(t, view.AboutPage(view.Page{Lang: i18n.EN, Path: "/about"}))
	if !strings.Contains(en, `href="/about?lang=fr"`) {
		t.Fatal("expected toggle to french")
	}
	if !strings.Contains(en, "Workshop") {
		t.Fatal("expected english navigation")
	}
}

func TestLayout_LanguageSwitcherListsSupported(t *testing.T) {
	out := render(t, view.ServicesPage(view.Page{Lang: i18n.EN, Path: "/services", Query: "x=1"}))
	for _, lang := range i18n.Supported() {
		link := `href="/services?lang=` + lang.String() + `&amp;x=1"`
		if !strings.Contains(out, link) {
			t.Fatalf("expected switcher link %s, got %s", link, out)
		}
	}
	if !strings.Contains(out, `hreflang="en" class="active" aria-current="true"`) {
		t.Fatal("expected current language to be marked active")
	}
	if strings.Contains(out, `hreflang="fr" class="active"`) {
		t.Fatal("expected other language not to be marked active")
	}
}

func TestBlogPostPage_EscapesContent(t *testing.T) {
	post := i18n.LocalizedBlogPost{Slug: "a", Title: "<script>x</script>", Content: "one\n\ntwo"}
	out := render(t, view.BlogPostPage(view.Page{Lang: i18n.EN, Path: "/blog/a"}, post, nil))
	if strings.Contains(out, "<script>x</script>") {
		t.Fatal("expected title to be escaped")
	}
	if !strings.Contains(out, "<p>one</p><p>two</p>") {
		t.Fatal("expected content split into paragraphs")
	}
	if !strings.Contains(out, "No similar articles found.") {
		t.Fatal("expected empty related notice")
	}
}

func TestCreationsPage_EmptyAndActiveFilter(t *testing.T) {
	out := render(t, view.CreationsPage(view.Page{Lang: i18n.FR, Path: "/creations"}, nil, "kitchen"))
	if !strings.Contains(out, "Aucun fourneau trouvé pour cette catégorie.") {
		t.Fatal("expected empty notice")
	}
	if !strings.Contains(out, `data-category="kitchen" class="active"`) {
		t.Fatal("expected kitchen filter to be active")
	}
}

func TestContactResult(t *testing.T) {
	p := view.Page{Lang: i18n.EN}
	ok := render(t, view.ContactResult(p, true, ""))
	if !strings.Contains(ok, "Message sent!") {
		t.Fatalf("expected success title, got %s", ok)
	}
	bad := render(t, view.ContactResult(p, false, "Validation error: email is required"))
	if !strings.Contains(bad, "Validation error: email is required") {
		t.Fatalf("expected validation detail, got %s", bad)
	}
}

func TestCreationPage_SingleStoveHasNoPager(t *testing.T) {
	stove := i18n.LocalizedStoveProject{ID: 7, Name: "L'Impérial", Description: "Fonte émaillée"}
	out := render(t, view.CreationPage(view.Page{Lang: i18n.FR, Path: "/creations/7"}, view.CreationView{
		Stove: stove, Prev: stove, Next: stove, Position: 1, Total: 1,
	}))
	if !strings.Contains(out, "L&#39;Impérial") {
		t.Fatal("expected escaped stove name")
	}
	if strings.Contains(out, `rel="next"`) {
		t.Fatal("expected no pager for a single stove")
	}
	if got := view.CreationURL(7, "custom"); got != "/creations/7?category=custom" {
		t.Fatalf("expected /creations/7?category=custom, got %s", got)
	}
}
