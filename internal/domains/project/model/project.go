package model

import (
	"strings"
	"time"
)

// Project categories shown on the portfolio.
const (
	CategoryTools    = "tools"
	CategoryCTF      = "ctf"
	CategoryResearch = "research"
)

// Project is the canonical shape of a portfolio project. Every consumer
// works with this struct regardless of whether the record came from the
// store or the seed set.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	TechStack       []string  `json:"tech_stack"`
	GithubURL       *string   `json:"github_url"`
	LiveURL         *string   `json:"live_url"`
	Level           string    `json:"level"`
	Impact          string    `json:"impact"`
	LearningOutcome string    `json:"learning_outcome"`
	ImageURL        string    `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ItemID implements content.Item.
func (p Project) ItemID() string { return p.ID }

// MatchesCategory reports whether the project belongs to the given category
// filter. Empty and "all" match everything.
func (p Project) MatchesCategory(category string) bool {
	return category == "" || category == "all" || p.Category == category
}

// MatchesSearch does a case-insensitive substring match against title,
// description and the tech stack.
func (p Project) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tech := range p.TechStack {
		if strings.Contains(strings.ToLower(tech), term) {
			return true
		}
	}
	return false
}
