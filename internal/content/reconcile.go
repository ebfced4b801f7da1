package content

// Item is anything with a stable identity key. Project ids are UUID strings,
// blog post ids are decimal-encoded integers; both compare as plain strings.
type Item interface {
	ItemID() string
}

// RemoveByID returns the list without the item whose id matches.
// Removing an id that is not present leaves the list unchanged; at most one
// item is ever dropped, matching a delete-by-primary-key at the store.
func RemoveByID[T Item](items []T, id string) []T {
	out := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if !removed && item.ItemID() == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out
}

// ReplaceByID patches the single item with the same id as updated, so a list
// view reflects an edit without a full reload. If no item matches, the list
// is returned unchanged.
func ReplaceByID[T Item](items []T, updated T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i, item := range out {
		if item.ItemID() == updated.ItemID() {
			out[i] = updated
			break
		}
	}
	return out
}
