// Package content implements the policy that decides whether a page renders
// records from the store or the compiled-in seed set, and the helpers that
// keep in-memory lists consistent after admin mutations.
package content

// Source tags where a resolved list came from, so consumers never have to
// inspect ambient state to know which path was taken.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Resolution is the result of picking between store records and seed data.
type Resolution[T any] struct {
	Source Source `json:"source"`
	Items  []T    `json:"items"`
}

// Resolve chooses what a list view renders. A non-empty remote result wins
// outright; an empty one falls back to the seed set. Remote and seed records
// are never mixed.
func Resolve[T any](remote, seed []T) Resolution[T] {
	if len(remote) > 0 {
		return Resolution[T]{Source: SourceRemote, Items: remote}
	}
	return Resolution[T]{Source: SourceFallback, Items: seed}
}

// Filter returns the items for which keep is true, preserving order.
// Filtering happens after resolution so it behaves identically for both
// sources.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
