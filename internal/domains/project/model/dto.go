package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateProjectRequest is the admin payload for a new project.
type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	TechStack       []string `json:"tech_stack"`
	GithubURL       *string  `json:"github_url"`
	LiveURL         *string  `json:"live_url"`
	Level           string   `json:"level"`
	Impact          string   `json:"impact"`
	LearningOutcome string   `json:"learning_outcome"`
	ImageURL        string   `json:"image_url"`
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(CategoryTools, CategoryCTF, CategoryResearch).
				Error("category must be one of: tools, ctf, research"),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL.Error("image_url must be a valid URL")),
		),
	)
}

// UpdateProjectRequest uses the same field set and rules as create;
// the target is identified by the path id.
type UpdateProjectRequest = CreateProjectRequest

// ListProjectsQuery carries the public list filters.
type ListProjectsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ProjectListResponse is a resolved, filtered project list. Source reports
// whether the items came from the store or the compiled-in fallback set.
type ProjectListResponse struct {
	Source   string    `json:"source"`
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
