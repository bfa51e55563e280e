// Package i18n turns bilingual records into single-language views and holds
// the UI string catalogs for the two supported languages.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	FR Lang = "fr"
	EN Lang = "en"

	// Default is used whenever a request expresses no usable preference.
	Default = FR
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

// Order matches supportedTags so a matcher index maps back to a Lang.
var supported = []Lang{FR, EN}

var supportedTags = []language.Tag{language.French, language.English}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the supported languages, default first.
func Supported() []Lang {
	return append([]Lang(nil), supported...)
}

func (l Lang) String() string { return string(l) }

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.French
}

// ParseLang maps a tag such as "en-US" or "fr" to a supported language.
// Anything unrecognized yields Default.
func ParseLang(value string) Lang {
	lang, ok := parseLang(value)
	if !ok {
		return Default
	}
	return lang
}

func parseLang(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	return match(tag)
}

func match(tags ...language.Tag) (Lang, bool) {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(supported) {
		return "", false
	}
	return supported[idx], true
}

// ResolveRequest picks the display language for r: the lang query parameter,
// then the lang cookie, then Accept-Language, then Default. The bool reports
// whether the choice came from the query parameter and should be persisted.
func ResolveRequest(r *http.Request) (Lang, bool) {
	if r == nil {
		return Default, false
	}

	if lang, ok := parseLang(r.URL.Query().Get(LangParam)); ok {
		return lang, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := parseLang(cookie.Value); ok {
			return lang, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			if lang, ok := match(tags...); ok {
				return lang, false
			}
		}
	}

	return Default, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, lang Lang, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns path with the lang parameter set, keeping the rest of
// the query intact.
func LanguageURL(path, rawQuery string, lang Lang) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, lang.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
