package genreController

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	. "genrebox/internal/models"
	"genrebox/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortableFields is the closed set of fields List accepts. Unknown fields
// are rejected rather than silently compared.
var sortableFields = map[string]bool{
	"id":          true,
	"name":        true,
	"description": true,
	"image":       true,
	"createdAt":   true,
	"updatedAt":   true,
}

type ListParams struct {
	Search string
	Sort   string
	Order  string
}

func (p ListParams) Validate() error {
	errs := validation.Errors{}
	if p.Sort != "" && !sortableFields[p.Sort] {
		errs["sort"] = errors.New(
			"sort must be one of: id, name, description, image, createdAt, updatedAt",
		)
	}
	if p.Order != "" && p.Order != OrderAsc && p.Order != OrderDesc {
		errs["order"] = errors.New("order must be asc or desc")
	}
	return errs.Filter()
}

type GenreController struct {
	genreRepo repositories.GenreRepository
	log       logger.Logger
}

type GenreControllerInterface interface {
	List(ctx context.Context, params ListParams) ([]*Genre, error)
	Get(ctx context.Context, id int) (*Genre, error)
	Create(ctx context.Context, req CreateGenreRequest) (*Genre, error)
	Replace(ctx context.Context, id int, req ReplaceGenreRequest) (*Genre, error)
	Patch(ctx context.Context, id int, req PatchGenreRequest) (*Genre, error)
	Delete(ctx context.Context, id int) (*Genre, error)
	BulkDelete(ctx context.Context, req BulkDeleteRequest) (*BulkDeleteResult, error)
}

func New(genreRepo repositories.GenreRepository) GenreControllerInterface {
	return &GenreController{
		genreRepo: genreRepo,
		log:       logger.New("genreController"),
	}
}

func (gc *GenreController) List(ctx context.Context, params ListParams) ([]*Genre, error) {
	log := gc.log.Function("List")

	if err := params.Validate(); err != nil {
		return nil, err
	}

	genres, err := gc.genreRepo.GetAll(ctx)
	if err != nil {
		return nil, log.Err("failed to list genres", err)
	}

	if params.Search != "" {
		genres = filterGenres(genres, params.Search)
	}

	if params.Sort != "" {
		sortGenres(genres, params.Sort, params.Order == OrderDesc)
	}

	return genres, nil
}

func (gc *GenreController) Get(ctx context.Context, id int) (*Genre, error) {
	return gc.genreRepo.GetByID(ctx, id)
}

func (gc *GenreController) Create(ctx context.Context, req CreateGenreRequest) (*Genre, error) {
	log := gc.log.Function("Create")

	req.Trim()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	image := req.Image
	if image == "" {
		image = DefaultImagePath(req.Name)
	}

	now := time.Now().UTC()
	genre, err := gc.genreRepo.Create(ctx, &Genre{
		Name:        req.Name,
		Description: req.Description,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		// Name uniqueness is enforced by the repository inside its write
		// lock, so duplicates surface here even under concurrent requests.
		if errors.Is(err, repositories.ErrDuplicateGenreName) {
			return nil, err
		}
		return nil, log.Err("failed to create genre", err, "name", req.Name)
	}

	log.Info("Genre created", "id", genre.ID, "name", genre.Name)
	return genre, nil
}

func (gc *GenreController) Replace(
	ctx context.Context,
	id int,
	req ReplaceGenreRequest,
) (*Genre, error) {
	log := gc.log.Function("Replace")

	existing, err := gc.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Trim()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if req.Image != "" {
		existing.Image = req.Image
	}
	existing.UpdatedAt = time.Now().UTC()

	genre, err := gc.genreRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateGenreName) {
			return nil, err
		}
		return nil, log.Err("failed to replace genre", err, "id", id)
	}

	return genre, nil
}

func (gc *GenreController) Patch(
	ctx context.Context,
	id int,
	req PatchGenreRequest,
) (*Genre, error) {
	log := gc.log.Function("Patch")

	existing, err := gc.genreRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Trim()

	// Re-validate the combined record when name or description change,
	// using stored values for fields not present in the request.
	if req.Name != nil || req.Description != nil {
		merged := CreateGenreRequest{
			Name:        existing.Name,
			Description: existing.Description,
		}
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.Description != nil {
			merged.Description = *req.Description
		}
		if err := merged.Validate(); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}
	existing.UpdatedAt = time.Now().UTC()

	genre, err := gc.genreRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateGenreName) {
			return nil, err
		}
		return nil, log.Err("failed to patch genre", err, "id", id)
	}

	return genre, nil
}

func (gc *GenreController) Delete(ctx context.Context, id int) (*Genre, error) {
	log := gc.log.Function("Delete")

	genre, err := gc.genreRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info("Genre deleted", "id", id, "name", genre.Name)
	return genre, nil
}

func (gc *GenreController) BulkDelete(
	ctx context.Context,
	req BulkDeleteRequest,
) (*BulkDeleteResult, error) {
	log := gc.log.Function("BulkDelete")

	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &BulkDeleteResult{
		Deleted:  []*Genre{},
		NotFound: []int{},
	}

	for _, id := range req.IDs {
		genre, err := gc.genreRepo.Delete(ctx, id)
		if err != nil {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		result.Deleted = append(result.Deleted, genre)
	}
	result.DeletedCount = len(result.Deleted)

	log.Info("Bulk delete completed",
		"deleted", result.DeletedCount,
		"notFound", len(result.NotFound),
	)

	return result, nil
}

func filterGenres(genres []*Genre, search string) []*Genre {
	needle := strings.ToLower(search)

	filtered := make([]*Genre, 0, len(genres))
	for _, genre := range genres {
		if strings.Contains(strings.ToLower(genre.Name), needle) ||
			strings.Contains(strings.ToLower(genre.Description), needle) {
			filtered = append(filtered, genre)
		}
	}

	return filtered
}

func sortGenres(genres []*Genre, field string, desc bool) {
	less := func(a, b *Genre) bool {
		switch field {
		case "id":
			return a.ID < b.ID
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "description":
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		case "image":
			return strings.ToLower(a.Image) < strings.ToLower(b.Image)
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default: // updatedAt
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}

	sort.SliceStable(genres, func(i, j int) bool {
		if desc {
			return less(genres[j], genres[i])
		}
		return less(genres[i], genres[j])
	})
}
