package models

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultImagePath(t *testing.T) {
	tests := []struct {
		name     string
		genre    string
		expected string
	}{
		{name: "Single word", genre: "Comedy", expected: "/images/comedy.jpg"},
		{name: "Spaces removed", genre: "Film Noir", expected: "/images/filmnoir.jpg"},
		{name: "Punctuation kept", genre: "Sci-Fi", expected: "/images/sci-fi.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultImagePath(tt.genre))
		})
	}
}

func TestCreateGenreRequestTrim(t *testing.T) {
	req := CreateGenreRequest{
		Name:        "  Horror  ",
		Description: "\tFilms engineered to frighten\n",
		Image:       " /images/horror.jpg ",
	}
	req.Trim()

	assert.Equal(t, "Horror", req.Name)
	assert.Equal(t, "Films engineered to frighten", req.Description)
	assert.Equal(t, "/images/horror.jpg", req.Image)
}

func TestCreateGenreRequestValidate(t *testing.T) {
	valid := CreateGenreRequest{Name: "Horror", Description: "Films engineered to frighten"}
	assert.NoError(t, valid.Validate())

	invalid := CreateGenreRequest{Name: "H", Description: "abc"}
	err := invalid.Validate()
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "description")
}

func TestCreateGenreRequestLengthBounds(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateGenreRequest
		field       string
		expectedMsg string
	}{
		{
			name:        "Single multibyte character is below the minimum",
			req:         CreateGenreRequest{Name: "Ж", Description: "A valid description"},
			field:       "name",
			expectedMsg: "name must be at least 2 characters",
		},
		{
			name:        "Name over the maximum reports the upper bound",
			req:         CreateGenreRequest{Name: strings.Repeat("a", 101), Description: "A valid description"},
			field:       "name",
			expectedMsg: "name must be at most 100 characters",
		},
		{
			name:        "Description over the maximum reports the upper bound",
			req:         CreateGenreRequest{Name: "Horror", Description: strings.Repeat("b", 501)},
			field:       "description",
			expectedMsg: "description must be at most 500 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			require.Contains(t, errs, tt.field)
			assert.Equal(t, tt.expectedMsg, errs[tt.field].Error())
		})
	}

	// Two multibyte characters clear the minimum even though the byte count
	// would suggest far more.
	twoRunes := CreateGenreRequest{Name: "Жж", Description: "Фильмы, созданные пугать"}
	assert.NoError(t, twoRunes.Validate())
}

func TestPatchGenreRequestTrim(t *testing.T) {
	name := "  Horror  "
	req := PatchGenreRequest{Name: &name}
	req.Trim()

	require.NotNil(t, req.Name)
	assert.Equal(t, "Horror", *req.Name)
	assert.Nil(t, req.Description, "absent fields stay absent")
	assert.Nil(t, req.Image)
}

func TestBulkDeleteRequestValidate(t *testing.T) {
	assert.NoError(t, BulkDeleteRequest{IDs: []int{1}}.Validate())
	assert.Error(t, BulkDeleteRequest{}.Validate())
	assert.Error(t, BulkDeleteRequest{IDs: []int{}}.Validate())
}
