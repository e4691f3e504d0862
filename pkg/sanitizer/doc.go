// Package sanitizer normalises user input before it is validated or stored.
//
// Helpers are plain string functions that can be chained with Apply or
// turned into reusable pipelines with Compose:
//
//	email := sanitizer.NormalizeEmail(form.Email)
//	name := sanitizer.NormalizeName(form.Name)
//
// MaskEmail hides the local part of an address before it is logged.
package sanitizer
