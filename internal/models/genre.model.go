package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Genre struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultImagePath derives the fallback image location for a genre created
// without an explicit image, e.g. "Sci-Fi" -> "/images/sci-fi.jpg".
func DefaultImagePath(name string) string {
	return "/images/" + strings.ReplaceAll(strings.ToLower(name), " ", "") + ".jpg"
}

type CreateGenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Trim normalizes the request in place. Validation always runs against the
// trimmed values.
func (r *CreateGenreRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Image = strings.TrimSpace(r.Image)
}

// Validate counts characters, not bytes, so multibyte names are measured the
// way a user would count them. Min and max bounds report distinct messages.
func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(2, 0).Error("name must be at least 2 characters"),
			validation.RuneLength(0, 100).Error("name must be at most 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.RuneLength(5, 0).Error("description must be at least 5 characters"),
			validation.RuneLength(0, 500).Error("description must be at most 500 characters"),
		),
	)
}

// ReplaceGenreRequest is the PUT payload. It carries the same rules as
// create; a missing image falls back to the stored value.
type ReplaceGenreRequest = CreateGenreRequest

// PatchGenreRequest is the PATCH payload. Pointer fields distinguish
// "absent" from "set to empty" so only fields present in the request body
// are touched.
type PatchGenreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r *PatchGenreRequest) Trim() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

func (r BulkDeleteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDs,
			validation.Required.Error("ids must be a non-empty array"),
		),
	)
}

// BulkDeleteResult reports hits and misses separately; partial misses never
// fail the request.
type BulkDeleteResult struct {
	Deleted      []*Genre `json:"deleted"`
	DeletedCount int      `json:"deletedCount"`
	NotFound     []int    `json:"notFound"`
}
