package genreController

import (
	"errors"
	"net/http"

	"genrebox/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HTTPStatus maps controller errors onto response codes so handlers stay a
// thin translation layer.
func HTTPStatus(err error) int {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrDuplicateGenreName):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ValidationDetails returns the per-field violation map when err is a
// validation error, or nil otherwise. Every violated rule is reported, not
// just the first.
func ValidationDetails(err error) map[string]string {
	var validationErrs validation.Errors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for field, fieldErr := range validationErrs {
		details[field] = fieldErr.Error()
	}
	return details
}
