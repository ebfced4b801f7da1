package model

import (
	"strconv"
	"strings"
	"time"
)

// Post lifecycle states. Only published posts reach the public blog.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Display defaults applied when a record leaves the optional fields blank.
const (
	DefaultAuthorName = "Prashant Khatri"
	DefaultReadTime   = 5
)

// BlogPost is the canonical shape of a blog post. Every consumer works
// with this struct regardless of whether the record came from the store
// or the seed set.
type BlogPost struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	AuthorName      string     `json:"author_name"`
	Slug            string     `json:"slug"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	FeaturedImage   string     `json:"featured_image"`
	ReadTime        int        `json:"read_time"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	PublishedAt     *time.Time `json:"published_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ItemID implements content.Item.
func (p BlogPost) ItemID() string { return strconv.FormatInt(p.ID, 10) }

// IsPublished reports whether the post is visible on the public blog.
func (p BlogPost) IsPublished() bool { return p.Status == StatusPublished }

// MatchesCategory reports whether the post belongs to the given category
// filter. Empty and "all" match everything.
func (p BlogPost) MatchesCategory(category string) bool {
	return category == "" || category == "all" || p.Category == category
}

// MatchesSearch does a case-insensitive substring match against title,
// excerpt and tags.
func (p BlogPost) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
