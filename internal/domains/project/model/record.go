package model

// PlaceholderImageURL is rendered when a project has no image of its own,
// so a missing image never produces an empty visual slot.
const PlaceholderImageURL = "https://images.unsplash.com/photo-1518770660439-4636190af475"

// Record is the loose wire shape of a project. Persisted rows carry
// snake_case columns; the compiled-in seed set predates the schema and still
// uses the legacy camelCase names (techStack, githubUrl, image). This is the
// only type where both conventions are visible - Normalize resolves every
// field to its canonical name and nothing downstream ever branches on the
// record's origin.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	TechStack       []string `json:"tech_stack"`
	LegacyTechStack []string `json:"techStack"`

	GithubURL       *string `json:"github_url"`
	LegacyGithubURL *string `json:"githubUrl"`

	LiveURL       *string `json:"live_url"`
	LegacyLiveURL *string `json:"liveUrl"`

	Level           string `json:"level"`
	Impact          string `json:"impact"`
	LearningOutcome string `json:"learning_outcome"`

	ImageURL    string `json:"image_url"`
	LegacyImage string `json:"image"`

	CreatedAt string `json:"created_at"`
}

// Normalize maps a record to the canonical Project. Legacy names win only
// when the canonical field is unset, so normalizing an already-canonical
// record returns it unchanged.
func (r Record) Normalize() Project {
	p := Project{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		TechStack:       r.TechStack,
		GithubURL:       r.GithubURL,
		LiveURL:         r.LiveURL,
		Level:           r.Level,
		Impact:          r.Impact,
		LearningOutcome: r.LearningOutcome,
		ImageURL:        r.ImageURL,
		CreatedAt:       parseSeedTime(r.CreatedAt),
	}

	if p.TechStack == nil {
		p.TechStack = r.LegacyTechStack
	}
	if p.GithubURL == nil {
		p.GithubURL = r.LegacyGithubURL
	}
	if p.LiveURL == nil {
		p.LiveURL = r.LegacyLiveURL
	}
	if p.ImageURL == "" {
		p.ImageURL = r.LegacyImage
	}

	// Explicit defaults: a missing tag list is an empty sequence, a missing
	// image is the named placeholder.
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImageURL
	}

	return p
}
