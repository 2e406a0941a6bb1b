package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodySize caps request bodies accepted by the JSON endpoints.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst. Any decoding failure is
// reported as ErrMalformedBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}
