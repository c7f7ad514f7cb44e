package controllers

import (
	"net/http"

	"github.com/mokoena-ai/shopfront-backend/api/responses"
	"github.com/mokoena-ai/shopfront-backend/internal/share"
)

// ShareLinks exposes the fixed outbound link, message and platform share
// URLs for the clipboard/share integrations.
func ShareLinks(links share.Links) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, links)
	}
}
