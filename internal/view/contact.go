package view

import (
	"context"

	"github.com/a-h/templ"
)

// ContactResultID is the element the contact form's outcome is patched into.
const ContactResultID = "contact-result"

var contactServices = []string{"restoration", "custom", "advice", "other"}

func ContactPage(p Page) templ.Component {
	return Layout(p, p.T("nav.contact"), component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section id="contact-info"><span class="subtitle">`)
		h.text(p.T("contact.subtitle"))
		h.raw(`</span><h1>`)
		h.text(p.T("contact.title"))
		h.raw(`</h1><p>`)
		h.text(p.T("contact.description"))
		h.raw(`</p><dl><dt>`)
		h.text(p.T("contact.workshop"))
		h.raw(`</dt><dd>Saint-Étienne, France</dd><dt>`)
		h.text(p.T("contact.hours"))
		h.raw(`</dt><dd>`)
		h.text(p.T("contact.hoursDetails"))
		h.raw(`</dd><dt>`)
		h.text(p.T("contact.email"))
		h.raw(`</dt><dd><a href="mailto:contact@boisserenc.com">contact@boisserenc.com</a></dd></dl></section>`)

		h.raw(`<section id="contact-form-section"><h2>`)
		h.text(p.T("contact.form.title"))
		h.raw(`</h2><form id="contact-form" data-on:submit="@post('/contact')">`)
		contactInput(h, p, "name", "text", true)
		contactInput(h, p, "email", "email", true)
		contactInput(h, p, "phone", "tel", false)

		h.raw(`<label for="service">`)
		h.text(p.T("contact.form.service"))
		h.raw(`</label><select id="service" name="service" data-bind:service><option value="">`)
		h.text(p.T("contact.form.servicePlaceholder"))
		h.raw(`</option>`)
		for _, s := range contactServices {
			h.raw(`<option value="`, attr(s), `">`)
			h.text(p.T("contact.form.services." + s))
			h.raw(`</option>`)
		}
		h.raw(`</select>`)

		h.raw(`<label for="message">`)
		h.text(p.T("contact.form.message"))
		h.raw(`</label><textarea id="message" name="message" rows="6" required maxlength="5000" data-bind:message placeholder="`,
			attr(p.T("contact.form.messagePlaceholder")), `"></textarea>`)
		h.raw(`<button type="submit">`)
		h.text(p.T("contact.form.submit"))
		h.raw(`</button></form><div id="`, ContactResultID, `" aria-live="polite"></div></section>`)
	}))
}

func contactInput(h *htmlWriter, p Page, name, kind string, required bool) {
	h.raw(`<label for="`, name, `">`)
	h.text(p.T("contact.form." + name))
	h.raw(`</label><input id="`, name, `" name="`, name, `" type="`, kind, `" data-bind:`, name)
	if required {
		h.raw(` required`)
	}
	h.raw(` placeholder="`, attr(p.T("contact.form."+name+"Placeholder")), `">`)
}

// ContactResult is the fragment shown after a submission. detail replaces
// the generic error text when set.
func ContactResult(p Page, ok bool, detail string) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		title, body, class := "contact.result.successTitle", "contact.result.successBody", "notice success"
		if !ok {
			title, body, class = "contact.result.errorTitle", "contact.result.errorBody", "notice error"
		}
		h.raw(`<div class="`, class, `" role="status"><strong>`)
		h.text(p.T(title))
		h.raw(`</strong><p>`)
		if !ok && detail != "" {
			h.text(detail)
		} else {
			h.text(p.T(body))
		}
		h.raw(`</p></div>`)
	})
}
