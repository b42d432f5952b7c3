package lists

// Owned is an item carrying an owner reference.
type Owned interface {
	Item
	OwnerID() string
}

// FilterOwnedBy keeps only the viewer's own items. The user-facing service
// request endpoint is supposed to scope by the caller already; this is the
// client-side safeguard for backends that return everything.
func FilterOwnedBy[T Owned](items []T, userID string) []T {
	if userID == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.OwnerID() == userID {
			out = append(out, item)
		}
	}
	return out
}
