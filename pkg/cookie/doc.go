// Package cookie wraps net/http cookies with shared defaults, AES-GCM
// encrypted values and one-shot flash messages.
//
// A Manager is created from one or more secrets of at least 32 characters,
// each hashed with SHA-256 into an AES-256 key.
// The first secret encrypts; all of them are tried when decrypting, so a new
// secret can be prepended without invalidating cookies already issued.
//
//	cookies, err := cookie.New([]string{secret}, cookie.WithSecure(true))
//
//	cookies.Set(w, "theme", "dark", cookie.WithExpires(time.Now().Add(24*time.Hour)))
//	cookies.Delete(w, "theme")
//
//	cookies.SetFlash(w, "notice", "Account created successfully.")
//	var notice string
//	err = cookies.GetFlash(w, r, "notice", &notice) // deletes the flash
//
// Defaults are Path=/, HttpOnly and SameSite=Lax; per-call Options override them.
package cookie
