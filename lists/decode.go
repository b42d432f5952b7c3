package lists

import (
	"encoding/json"
	"errors"

	"github.com/aksecuretech/portal-go/client"
)

// pageEnvelope covers the keyed page shapes the backend has been seen to
// return. Exactly one of the collection keys is populated.
type pageEnvelope[T any] struct {
	Items    []T   `json:"items"`
	Tickets  []T   `json:"tickets"`
	Requests []T   `json:"requests"`
	HasMore  *bool `json:"hasMore"`
}

// decodePage accepts either a bare array (one full page; more is assumed iff
// the page is exactly full) or an envelope with an explicit hasMore flag.
// Anything else reports ok=false and is treated as an empty collection.
func decodePage[T any](raw json.RawMessage) (items []T, hasMore bool, ok bool) {
	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, len(list) == PageSize, true
	}

	var envelope pageEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false, false
	}
	if envelope.HasMore == nil {
		return nil, false, false
	}
	switch {
	case envelope.Items != nil:
		items = envelope.Items
	case envelope.Tickets != nil:
		items = envelope.Tickets
	case envelope.Requests != nil:
		items = envelope.Requests
	default:
		return nil, false, false
	}
	return items, *envelope.HasMore, true
}

func asAPIError(err error, target **client.APIError) bool {
	return errors.As(err, target)
}
