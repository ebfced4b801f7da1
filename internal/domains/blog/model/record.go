package model

import (
	"strconv"
	"strings"
	"time"
)

// PlaceholderImageURL is rendered when a post has no featured image of its
// own, so a missing image never produces an empty visual slot.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1518770660439-4636190af475"

// Record is the loose wire shape of a blog post. Persisted rows carry
// snake_case columns; the compiled-in seed set predates the schema and still
// uses the legacy camelCase names (author, publishDate, readTime, image).
// This is the only type where both conventions are visible - Normalize
// resolves every field to its canonical name and nothing downstream ever
// branches on the record's origin.
type Record struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Status  string `json:"status"`

	AuthorName   string `json:"author_name"`
	LegacyAuthor string `json:"author"`

	Slug            string `json:"slug"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	FeaturedImage string `json:"featured_image"`
	LegacyImage   string `json:"image"`

	ReadTime       int    `json:"read_time"`
	LegacyReadTime string `json:"readTime"`

	Category string   `json:"category"`
	Tags     []string `json:"tags"`

	PublishedAt       string `json:"published_at"`
	LegacyPublishDate string `json:"publishDate"`

	CreatedAt string `json:"created_at"`
}

// Normalize maps a record to the canonical BlogPost. Legacy names win only
// when the canonical field is unset, so normalizing an already-canonical
// record returns it unchanged.
func (r Record) Normalize() BlogPost {
	p := BlogPost{
		ID:              r.ID,
		Title:           r.Title,
		Excerpt:         r.Excerpt,
		Content:         r.Content,
		Status:          r.Status,
		AuthorName:      r.AuthorName,
		Slug:            r.Slug,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		FeaturedImage:   r.FeaturedImage,
		ReadTime:        r.ReadTime,
		Category:        r.Category,
		Tags:            r.Tags,
		CreatedAt:       parseSeedTime(r.CreatedAt),
	}

	if p.AuthorName == "" {
		p.AuthorName = r.LegacyAuthor
	}
	if p.FeaturedImage == "" {
		p.FeaturedImage = r.LegacyImage
	}
	if p.ReadTime == 0 {
		p.ReadTime = parseLegacyReadTime(r.LegacyReadTime)
	}

	published := r.PublishedAt
	if published == "" {
		published = r.LegacyPublishDate
	}
	if t := parseSeedTime(published); !t.IsZero() {
		p.PublishedAt = &t
		if p.CreatedAt.IsZero() {
			p.CreatedAt = t
		}
	}

	// Explicit defaults: seed posts shipped on the live site, so an unset
	// status means published. Missing display fields get named defaults.
	if p.Status == "" {
		p.Status = StatusPublished
	}
	if p.AuthorName == "" {
		p.AuthorName = DefaultAuthorName
	}
	if p.ReadTime == 0 {
		p.ReadTime = DefaultReadTime
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.FeaturedImage == "" {
		p.FeaturedImage = PlaceholderImageURL
	}
	if p.MetaTitle == "" {
		p.MetaTitle = p.Title
	}
	if p.MetaDescription == "" {
		p.MetaDescription = p.Excerpt
	}

	return p
}

// parseLegacyReadTime extracts the minute count from the legacy display
// string, e.g. "5 min read" -> 5.
func parseLegacyReadTime(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseSeedTime accepts the date-only format the seed set was authored with,
// falling back to RFC3339 for store records serialized through Record.
func parseSeedTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
