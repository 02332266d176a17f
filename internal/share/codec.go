// Package share encodes invoice snapshots into a URL-safe form so the
// standalone preview page can reconstruct state from a single query
// parameter without any backend lookup.
package share

import (
	"encoding/json"
	"fmt"
	"net/url"

	"billforge/internal/domain"
)

// Encode serializes an invoice snapshot to JSON and percent-escapes it
// for use as a query parameter value.
func Encode(inv *domain.Invoice) (string, error) {
	raw, err := json.Marshal(inv)
	if err != nil {
		return "", fmt.Errorf("encoding invoice snapshot: %w", err)
	}
	return url.QueryEscape(string(raw)), nil
}

// Decode reverses Encode. Any malformed input, whether the escaping or
// the JSON, yields domain.ErrDecodeFailed so callers can degrade to the
// placeholder view instead of crashing.
func Decode(payload string) (*domain.Invoice, error) {
	raw, err := url.QueryUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}
	var inv domain.Invoice
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}
	return &inv, nil
}
