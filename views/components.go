package views

// callout renders a notice. variant is one of error, success, warning.
func callout(h *html, variant, title, body string) {
	h.raw(`<div class="callout callout-`)
	h.text(variant)
	h.raw(`" role="alert"><strong>`)
	h.text(title)
	h.raw(`</strong>`)
	if body != "" {
		h.raw(`<p>`)
		h.text(body)
		h.raw(`</p>`)
	}
	h.raw(`</div>`)
}

// input renders a labelled input with its first validation message.
func input(h *html, name, label, kind, value, errMsg string) {
	h.raw(`<label for="`)
	h.text(name)
	h.raw(`">`)
	h.text(label)
	h.raw(` <span class="field-error">*</span></label><input id="`)
	h.text(name)
	h.raw(`" name="`)
	h.text(name)
	h.raw(`" type="`)
	h.text(kind)
	h.raw(`" placeholder="`)
	h.text(label)
	h.raw(`" required`)
	if value != "" {
		h.raw(` value="`)
		h.text(value)
		h.raw(`"`)
	}
	h.raw(`>`)
	if errMsg != "" {
		h.raw(`<p class="field-error">`)
		h.text(errMsg)
		h.raw(`</p>`)
	}
}

// postForm opens a form that posts natively and, with DataStar loaded,
// submits over fetch so errors patch in place.
func postForm(h *html, id, action string) {
	h.raw(`<form id="`)
	h.text(id)
	h.raw(`" method="post" action="`)
	h.text(action)
	h.raw(`" data-on-submit="@post('`)
	h.text(action)
	h.raw(`', {contentType: 'form'})">`)
}
