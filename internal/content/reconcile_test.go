package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeItem struct {
	ID    string
	Title string
}

func (f fakeItem) ItemID() string { return f.ID }

func TestRemoveByID(t *testing.T) {
	list := []fakeItem{
		{ID: "x", Title: "A"},
		{ID: "y", Title: "B"},
		{ID: "z", Title: "C"},
	}

	t.Run("removes exactly the matching item", func(t *testing.T) {
		out := RemoveByID(list, "x")

		assert.Len(t, out, 2)
		assert.Equal(t, "y", out[0].ID)
		assert.Equal(t, "z", out[1].ID)
	})

	t.Run("non-existent id leaves list unchanged", func(t *testing.T) {
		out := RemoveByID(list, "nope")

		assert.Equal(t, list, out)
	})

	t.Run("empty list stays empty", func(t *testing.T) {
		out := RemoveByID([]fakeItem{}, "x")

		assert.Empty(t, out)
	})
}

func TestReplaceByID(t *testing.T) {
	list := []fakeItem{
		{ID: "x", Title: "A"},
		{ID: "y", Title: "B"},
	}

	t.Run("patches the matching item in place", func(t *testing.T) {
		out := ReplaceByID(list, fakeItem{ID: "y", Title: "B edited"})

		assert.Len(t, out, 2)
		assert.Equal(t, "A", out[0].Title)
		assert.Equal(t, "B edited", out[1].Title)
		assert.Equal(t, "B", list[1].Title, "input must not be mutated")
	})

	t.Run("unknown id leaves list unchanged", func(t *testing.T) {
		out := ReplaceByID(list, fakeItem{ID: "nope", Title: "ghost"})

		assert.Equal(t, list, out)
	})
}
