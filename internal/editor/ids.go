package editor

import "github.com/google/uuid"

// NewID returns a fresh item id not reported as taken.
// Ids are random UUIDs, so the retry only matters for hand-written documents.
func NewID(taken func(id string) bool) string {
	for {
		id := uuid.NewString()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

func idSet[T any](items []T, id func(T) string) func(string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[id(it)] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := seen[candidate]
		return ok
	}
}
