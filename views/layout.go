package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/starterkit/pkg/environment"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

const styles = `
body{margin:0;font-family:system-ui,sans-serif;background:#fafafa;color:#18181b}
main{min-height:100vh;display:flex;align-items:center;justify-content:center}
.card{width:100%;max-width:28rem;padding:3rem}
h1{margin:0 0 .25rem;font-size:1.875rem}
.muted{color:#71717a}
label{display:block;margin:1rem 0 .25rem;font-weight:500}
input{width:100%;box-sizing:border-box;padding:.5rem;border:1px solid #d4d4d8;border-radius:.375rem}
.field-error{color:#dc2626;font-size:.875rem}
button,.button{display:block;width:100%;margin-top:1.5rem;padding:.6rem;border-radius:.375rem;border:1px solid #18181b;background:#18181b;color:#fff;text-align:center;text-decoration:none}
.button.outline{background:transparent;color:#18181b}
.callout{margin-top:1rem;padding:1rem;border-radius:.5rem;font-size:.875rem}
.callout-error{background:#fecaca;color:#dc2626}
.callout-success{background:#a7f3d0;color:#059669}
.callout-warning{background:#fef08a;color:#ca8a04}
#toast-container{position:fixed;top:1rem;right:1rem}
.env-badge{position:fixed;bottom:1rem;left:1rem;padding:.25rem .5rem;border-radius:.25rem;background:#fef08a;color:#854d0e;font-size:.75rem;text-transform:uppercase}
.toast{margin-bottom:.5rem;padding:.75rem 1rem;border-radius:.5rem;background:#18181b;color:#fff}
`

// Layout wraps body in the HTML document shell. The toast container is the
// default target for error toasts patched in over SSE. Outside production a
// badge names the environment.
func Layout(title string, body templ.Component) templ.Component {
	return render(func(h *html) {
		h.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><style>` + styles + `</style>`)
		h.raw(`<script type="module" src="` + datastarScript + `"></script>`)
		h.raw(`</head><body><div id="toast-container"></div><main>`)
		h.component(body)
		h.raw(`</main>`)
		if env := environment.FromContext(h.ctx); env != "" && !env.IsProduction() {
			h.raw(`<div class="env-badge">`)
			h.text(env.String())
			h.raw(`</div>`)
		}
		h.raw(`</body></html>`)
	})
}
