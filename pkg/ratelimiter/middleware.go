package ratelimiter

import (
	"hash/fnv"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxKeyLength is the maximum allowed length for a rate limit key.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByRemoteIP keys requests by client address. Run chi's RealIP middleware
// first when the app sits behind a proxy.
func ByRemoteIP(prefix string) KeyFunc {
	return func(r *http.Request) string {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		return compact(prefix + strings.TrimSpace(host))
	}
}

// compact hashes keys longer than maxKeyLength with FNV-1a.
func compact(key string) string {
	if len(key) <= maxKeyLength {
		return key
	}
	h := fnv.New64a()
	h.Write([]byte(key))
	return strconv.FormatUint(h.Sum64(), 36)
}

// SetHeaders writes the X-RateLimit-* headers, plus Retry-After on denial.
func SetHeaders(w http.ResponseWriter, result *Result, now time.Time) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if retry := result.RetryAfter(now); retry > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(retry.Round(time.Second).Seconds())))
	}
}
