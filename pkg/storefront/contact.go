package storefront

import (
	"github.com/teavault/storefront-analytics/pkg/analytics"
)

// ContactForm mirrors the contact page behavior: form_start fires once on
// the first non-empty field touch, form_submit carries the filled-field
// count, and a submit resets the form for the next visitor.
type ContactForm struct {
	emitter  *analytics.Emitter
	formName string
	fields   map[string]string
	started  bool
}

func NewContactForm(emitter *analytics.Emitter) *ContactForm {
	return &ContactForm{
		emitter:  emitter,
		formName: "contact_form",
		fields:   map[string]string{},
	}
}

// SetField records a field value. The first non-empty value emits
// form_start; later edits do not.
func (f *ContactForm) SetField(field, value string) {
	if !f.started && value != "" {
		f.started = true
		f.emitter.TrackFormStart(f.formName)
	}

	f.fields[field] = value
}

// Submit emits form_submit with the number of fields the visitor touched,
// then resets the form.
func (f *ContactForm) Submit() {
	f.emitter.TrackFormSubmit(f.formName, len(f.fields))

	f.fields = map[string]string{}
	f.started = false
}

// Started reports whether form_start has fired for the current fill.
func (f *ContactForm) Started() bool {
	return f.started
}
