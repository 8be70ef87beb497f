package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"gradrecruit/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return common.NewError(common.CodeValidation, "request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath pulls the path segment at index (counting from the end: 1 is
// the last segment, 2 the one before it) and parses it as an entity id.
func idFromPath(r *http.Request, fromEnd int) (int64, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) < fromEnd {
		return 0, common.NewValidationError("invalid path", map[string]string{"id": "id segment missing"})
	}
	return common.ParseID(segments[len(segments)-fromEnd])
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
