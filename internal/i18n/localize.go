package i18n

import (
	"strconv"
	"time"

	"github.com/boisserenc/atelier/internal/domain"
)

// LocalizedBlogPost is a blog post reduced to one language.
type LocalizedBlogPost struct {
	ID            int64
	Slug          string
	Title         string
	Excerpt       string
	Content       string
	Category      string
	CategoryLabel string
	Image         string
	Date          string
}

// LocalizedStoveProject is a stove project reduced to one language.
type LocalizedStoveProject struct {
	ID            int64
	Name          string
	Description   string
	Category      string
	CategoryLabel string
	Year          string
	Image         string
	Featured      int
}

// LocalizedTestimonial is a testimonial reduced to one language.
type LocalizedTestimonial struct {
	ID       int64
	Name     string
	Position string
	Content  string
	Rating   int
}

// pick selects the English value for EN and the French one otherwise.
func pick(lang Lang, fr, en string) string {
	if lang == EN {
		return en
	}
	return fr
}

func LocalizeBlogPost(p domain.BlogPost, lang Lang) LocalizedBlogPost {
	return LocalizedBlogPost{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         pick(lang, p.TitleFR, p.TitleEN),
		Excerpt:       pick(lang, p.ExcerptFR, p.ExcerptEN),
		Content:       pick(lang, p.ContentFR, p.ContentEN),
		Category:      p.Category,
		CategoryLabel: CategoryLabel(p.Category, lang),
		Image:         valueOf(p.Image),
		Date:          FormatTime(p.CreatedAt, lang),
	}
}

func LocalizeBlogPosts(posts []domain.BlogPost, lang Lang) []LocalizedBlogPost {
	out := make([]LocalizedBlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, LocalizeBlogPost(p, lang))
	}
	return out
}

func LocalizeStoveProject(p domain.StoveProject, lang Lang) LocalizedStoveProject {
	return LocalizedStoveProject{
		ID:            p.ID,
		Name:          pick(lang, p.NameFR, p.NameEN),
		Description:   pick(lang, p.DescriptionFR, p.DescriptionEN),
		Category:      p.Category,
		CategoryLabel: StoveCategoryLabel(p.Category, lang),
		Year:          valueOf(p.Year),
		Image:         p.Image,
		Featured:      p.Featured,
	}
}

func LocalizeStoveProjects(projects []domain.StoveProject, lang Lang) []LocalizedStoveProject {
	out := make([]LocalizedStoveProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, LocalizeStoveProject(p, lang))
	}
	return out
}

func LocalizeTestimonial(t domain.Testimonial, lang Lang) LocalizedTestimonial {
	return LocalizedTestimonial{
		ID:       t.ID,
		Name:     t.Name,
		Position: pick(lang, t.PositionFR, t.PositionEN),
		Content:  pick(lang, t.ContentFR, t.ContentEN),
		Rating:   t.Rating,
	}
}

func LocalizeTestimonials(list []domain.Testimonial, lang Lang) []LocalizedTestimonial {
	out := make([]LocalizedTestimonial, 0, len(list))
	for _, t := range list {
		out = append(out, LocalizeTestimonial(t, lang))
	}
	return out
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Category is one entry of a fixed category vocabulary.
type Category struct {
	ID string
	FR string
	EN string
}

// Label returns the category's display label in lang.
func (c Category) Label(lang Lang) string {
	return pick(lang, c.FR, c.EN)
}

var blogCategories = []Category{
	{ID: "histoire", FR: "Histoire", EN: "History"},
	{ID: "conseils", FR: "Conseils", EN: "Tips"},
	{ID: "projets", FR: "Projets", EN: "Projects"},
	{ID: "techniques", FR: "Techniques", EN: "Techniques"},
}

var stoveCategories = []Category{
	{ID: "restoration", FR: "Restaurations", EN: "Restorations"},
	{ID: "custom", FR: "Créations sur-mesure", EN: "Custom creations"},
	{ID: "stephanois", FR: "Fourneaux Stéphanois", EN: "Stéphanois stoves"},
	{ID: "kitchen", FR: "Cuisinières", EN: "Kitchen stoves"},
}

// Categories returns the blog category vocabulary in display order.
func Categories() []Category {
	return append([]Category(nil), blogCategories...)
}

// StoveCategories returns the creations filter vocabulary in display order.
func StoveCategories() []Category {
	return append([]Category(nil), stoveCategories...)
}

// CategoryLabel localizes a blog category id. Unknown ids are returned as is.
func CategoryLabel(id string, lang Lang) string {
	return labelFor(blogCategories, id, lang)
}

// StoveCategoryLabel localizes a stove project category id. Unknown ids are
// returned as is.
func StoveCategoryLabel(id string, lang Lang) string {
	return labelFor(stoveCategories, id, lang)
}

func labelFor(vocab []Category, id string, lang Lang) string {
	for _, c := range vocab {
		if c.ID == id {
			return c.Label(lang)
		}
	}
	return id
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// dateLayouts are tried in order by FormatDate.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// DateUnavailable returns the placeholder shown for a missing or bad date.
func DateUnavailable(lang Lang) string {
	return pick(lang, "Date non disponible", "Date unavailable")
}

// FormatDate formats a timestamp string as a long-form date: "12 juin 2024"
// or "June 12, 2024". Input that does not parse yields DateUnavailable.
func FormatDate(raw string, lang Lang) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatTime(t, lang)
		}
	}
	return DateUnavailable(lang)
}

// FormatTime is FormatDate for an already parsed time. The zero time yields
// DateUnavailable.
func FormatTime(t time.Time, lang Lang) string {
	if t.IsZero() {
		return DateUnavailable(lang)
	}
	if lang == EN {
		return t.Format("January 2, 2006")
	}
	return strconv.Itoa(t.Day()) + " " + frenchMonths[t.Month()-1] + " " + strconv.Itoa(t.Year())
}
