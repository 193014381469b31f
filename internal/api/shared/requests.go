package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/domain"
)

// MaxBodyBytes bounds the size of a request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched, as if "{}" had been sent. Any decoding failure is returned
// wrapped in domain.ErrInvalidFormat.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", domain.ErrInvalidFormat, err)
	}

	// Reject trailing values such as `{"a":1}{"b":2}`.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON body", domain.ErrInvalidFormat)
	}
	return nil
}
