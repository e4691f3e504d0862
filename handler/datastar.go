package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarRequestHeader is sent by the DataStar client on every fetch.
const DataStarRequestHeader = "Datastar-Request"

// Patch modes accepted by WithPatchMode.
const (
	PatchOuter   = datastar.ElementPatchModeOuter // morph, the default
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend // toasts
)

// IsDataStar reports whether r was issued by the DataStar client and expects
// an SSE response rather than a full page. The client marks its requests
// with a header, an event-stream Accept or a "datastar" signals parameter.
func IsDataStar(r *http.Request) bool {
	switch {
	case r.Header.Get(DataStarRequestHeader) == "true":
		return true
	case strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return true
	default:
		return r.URL.Query().Has("datastar")
	}
}
