package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	seed := []string{"s1", "s2", "s3"}

	t.Run("remote wins when non-empty", func(t *testing.T) {
		remote := []string{"r1", "r2"}

		res := Resolve(remote, seed)

		assert.Equal(t, SourceRemote, res.Source)
		assert.Equal(t, remote, res.Items)
	})

	t.Run("empty remote falls back to seed", func(t *testing.T) {
		res := Resolve(nil, seed)

		assert.Equal(t, SourceFallback, res.Source)
		assert.Len(t, res.Items, len(seed))
		assert.Equal(t, seed, res.Items)
	})

	t.Run("remote and seed never mix", func(t *testing.T) {
		remote := []string{"r1"}

		res := Resolve(remote, seed)

		assert.Len(t, res.Items, 1)
		assert.NotContains(t, res.Items, "s1")
	})

	t.Run("both empty yields empty fallback", func(t *testing.T) {
		res := Resolve[string](nil, nil)

		assert.Equal(t, SourceFallback, res.Source)
		assert.Empty(t, res.Items)
	})
}

func TestFilter(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	even := Filter(items, func(n int) bool { return n%2 == 0 })

	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items, "input must not be mutated")
}
