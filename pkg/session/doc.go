// Package session implements server-side sessions backed by opaque bearer tokens.
//
// A token is 64 random bytes encoded as lowercase base32. The client holds the
// token in an HttpOnly cookie; the server stores only its SHA-256 digest
// (SessionID), so a leaked store cannot be replayed.
//
// # Lifecycle
//
// Manager.CreateSession persists a record that expires after Config.Lifetime
// (30 days by default). Manager.ValidateSessionToken looks the record up and:
//
//   - deletes it and reports no session once now >= ExpiresAt (lazy expiry,
//     there is no background sweep);
//   - pushes ExpiresAt to now + Lifetime when now falls inside the last
//     Config.RenewalWindow (15 days by default) of its life;
//   - otherwise returns it unchanged together with the owner's identity.
//
// Manager.InvalidateSession deletes unconditionally and is idempotent.
//
// # Requests
//
// Middleware puts an Accessor into the request context. Handlers call
// Current(ctx); the first call validates, later calls in the same request
// return the memoised result.
//
//	cookies, _ := cookie.New([]string{secret})
//	manager := session.New(
//	    session.WithStore(session.NewPostgresStore(pool)),
//	    session.WithCookieManager(cookies),
//	)
//	r.Use(manager.Middleware)
//
//	func home(w http.ResponseWriter, r *http.Request) {
//	    if user, ok := session.UserFromContext(r.Context()); ok {
//	        fmt.Fprintf(w, "hello %s", user.Name)
//	    }
//	}
//
// # Stores
//
// MemoryStore, PostgresStore, RedisStore and MongoStore implement Store.
// Stores that cannot join sessions to users in the backend take a UserFinder.
package session
