package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordNormalizeLegacy(t *testing.T) {
	r := Record{
		ID:                7,
		Title:             "Legacy Post",
		Excerpt:           "Written before the schema",
		Content:           "Body",
		LegacyAuthor:      "Someone Else",
		LegacyPublishDate: "2024-01-15",
		LegacyReadTime:    "8 min read",
		Category:          "Technical",
		Tags:              []string{"networking"},
		LegacyImage:       "https://example.com/cover.png",
	}

	p := r.Normalize()

	assert.Equal(t, "Someone Else", p.AuthorName)
	assert.Equal(t, "https://example.com/cover.png", p.FeaturedImage)
	assert.Equal(t, 8, p.ReadTime)
	assert.Equal(t, StatusPublished, p.Status, "seed posts shipped live, so blank status is published")
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *p.PublishedAt)
}

func TestRecordNormalizeIdempotent(t *testing.T) {
	canonical := Record{
		ID:              1,
		Title:           "Canonical",
		Excerpt:         "Already snake_case",
		Content:         "Body",
		Status:          StatusDraft,
		AuthorName:      "A. Uthor",
		Slug:            "canonical",
		MetaTitle:       "Canonical",
		MetaDescription: "Already snake_case",
		FeaturedImage:   "https://example.com/a.png",
		ReadTime:        3,
		Category:        "Projects",
		Tags:            []string{"go"},
	}

	first := canonical.Normalize()
	second := canonical.Normalize()

	assert.Equal(t, first, second)
	assert.Equal(t, StatusDraft, first.Status)
	assert.Equal(t, 3, first.ReadTime)
	assert.Nil(t, first.PublishedAt)
}

func TestRecordNormalizeCanonicalWins(t *testing.T) {
	r := Record{
		ID:             2,
		Title:          "Both shapes",
		Excerpt:        "x",
		AuthorName:     "Canonical Author",
		LegacyAuthor:   "Legacy Author",
		FeaturedImage:  "https://example.com/canonical.png",
		LegacyImage:    "https://example.com/legacy.png",
		ReadTime:       4,
		LegacyReadTime: "9 min read",
	}

	p := r.Normalize()

	assert.Equal(t, "Canonical Author", p.AuthorName)
	assert.Equal(t, "https://example.com/canonical.png", p.FeaturedImage)
	assert.Equal(t, 4, p.ReadTime)
}

func TestRecordNormalizeDefaults(t *testing.T) {
	p := Record{ID: 3, Title: "Bare", Excerpt: "Short summary"}.Normalize()

	assert.Equal(t, DefaultAuthorName, p.AuthorName)
	assert.Equal(t, DefaultReadTime, p.ReadTime)
	assert.Equal(t, PlaceholderImageURL, p.FeaturedImage)
	assert.Equal(t, []string{}, p.Tags)
	assert.Equal(t, "Bare", p.MetaTitle)
	assert.Equal(t, "Short summary", p.MetaDescription)
}

func TestBlogPostMatches(t *testing.T) {
	post := BlogPost{
		Title:    "Understanding Network Security Basics",
		Excerpt:  "Firewalls and monitoring",
		Category: "Technical",
		Tags:     []string{"networking", "security"},
	}

	assert.True(t, post.MatchesCategory(""))
	assert.True(t, post.MatchesCategory("all"))
	assert.True(t, post.MatchesCategory("Technical"))
	assert.False(t, post.MatchesCategory("Career"))

	assert.True(t, post.MatchesSearch("NETWORK"))
	assert.True(t, post.MatchesSearch("firewall"))
	assert.True(t, post.MatchesSearch("security"), "matches tags")
	assert.False(t, post.MatchesSearch("python"))
}

func TestSeed(t *testing.T) {
	posts := Seed()

	require.Len(t, posts, 4)
	for _, p := range posts {
		assert.True(t, p.IsPublished())
		assert.NotNil(t, p.PublishedAt)
		assert.NotEmpty(t, p.AuthorName)
		assert.NotZero(t, p.ReadTime)
	}

	// Callers get a copy; mutating it never touches the seed set.
	posts[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Seed()[0].Title)

	post, ok := SeedByID(2)
	require.True(t, ok)
	assert.Equal(t, "Understanding Network Security Basics", post.Title)

	_, ok = SeedByID(99)
	assert.False(t, ok)
}

func TestParseLegacyReadTime(t *testing.T) {
	assert.Equal(t, 5, parseLegacyReadTime("5 min read"))
	assert.Equal(t, 12, parseLegacyReadTime("12 min read"))
	assert.Equal(t, 0, parseLegacyReadTime(""))
	assert.Equal(t, 0, parseLegacyReadTime("quick read"))
}
