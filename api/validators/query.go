package validators

import (
	"net/http"

	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
)

// ViewState reads the browse controls (q, category, sort) from the request.
// FormValue covers both query parameters on GET and form bodies on the POST
// fallbacks, so the view state survives a mutation round-trip. Unrecognized
// values fall back to the documented defaults rather than erroring.
func ViewState(r *http.Request) catalog.ViewState {
	return catalog.NormalizedViewState(
		r.FormValue("q"),
		r.FormValue("category"),
		r.FormValue("sort"),
	)
}
