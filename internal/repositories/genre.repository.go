package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"

	. "genrebox/internal/models"

	logger "github.com/Bparsons0904/goLogger"
)

var (
	ErrGenreNotFound      = errors.New("genre not found")
	ErrDuplicateGenreName = errors.New("a genre with this name already exists")
)

type GenreRepository interface {
	GetAll(ctx context.Context) ([]*Genre, error)
	GetByID(ctx context.Context, id int) (*Genre, error)
	GetByName(ctx context.Context, name string) (*Genre, error)
	Create(ctx context.Context, genre *Genre) (*Genre, error)
	Update(ctx context.Context, genre *Genre) (*Genre, error)
	Delete(ctx context.Context, id int) (*Genre, error)
	Count(ctx context.Context) (int, error)
}

// genreRepository holds the authoritative collection in process memory.
// Insertion order is preserved; ids come from a monotonic counter seeded
// above the seed set and are never reused. State is volatile: restarting
// the process resets the collection to the seed set.
type genreRepository struct {
	mu     sync.RWMutex
	genres []*Genre
	nextID int
	log    logger.Logger
}

func NewGenreRepository() GenreRepository {
	repo := &genreRepository{
		nextID: 1,
		log:    logger.New("genreRepository"),
	}

	for _, genre := range seedGenres() {
		seeded := *genre
		seeded.ID = repo.nextID
		repo.nextID++
		repo.genres = append(repo.genres, &seeded)
	}

	repo.log.Info("Seeded genre collection", "count", len(repo.genres))
	return repo
}

func (r *genreRepository) GetAll(ctx context.Context) ([]*Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genres := make([]*Genre, len(r.genres))
	for i, genre := range r.genres {
		genreCopy := *genre
		genres[i] = &genreCopy
	}

	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int) (*Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genre := r.findByID(id)
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	genreCopy := *genre
	return &genreCopy, nil
}

// GetByName matches case-insensitively; name uniqueness is defined that way
// across the whole collection.
func (r *genreRepository) GetByName(ctx context.Context, name string) (*Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	genre := r.findByName(name)
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	genreCopy := *genre
	return &genreCopy, nil
}

// Create enforces case-insensitive name uniqueness inside the write lock:
// the check and the insert are a single critical section, so concurrent
// requests racing on the same name cannot both commit.
func (r *genreRepository) Create(ctx context.Context, genre *Genre) (*Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByName(genre.Name) != nil {
		return nil, ErrDuplicateGenreName
	}

	stored := *genre
	stored.ID = r.nextID
	r.nextID++
	r.genres = append(r.genres, &stored)

	r.log.Debug("Created genre", "id", stored.ID, "name", stored.Name)

	genreCopy := stored
	return &genreCopy, nil
}

func (r *genreRepository) Update(ctx context.Context, genre *Genre) (*Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.log.Function("Update")

	// Uniqueness is checked in the same critical section as the write,
	// excluding the record being updated so renames to the same name
	// (including casing changes) stay legal.
	if conflict := r.findByName(genre.Name); conflict != nil && conflict.ID != genre.ID {
		return nil, ErrDuplicateGenreName
	}

	for i, existing := range r.genres {
		if existing.ID == genre.ID {
			stored := *genre
			r.genres[i] = &stored

			genreCopy := stored
			return &genreCopy, nil
		}
	}

	return nil, log.ErrorWithType(ErrGenreNotFound, "failed to update genre", "id", genre.ID)
}

func (r *genreRepository) Delete(ctx context.Context, id int) (*Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.genres {
		if existing.ID == id {
			removed := *existing
			r.genres = append(r.genres[:i], r.genres[i+1:]...)
			r.log.Debug("Deleted genre", "id", id, "name", removed.Name)
			return &removed, nil
		}
	}

	return nil, ErrGenreNotFound
}

func (r *genreRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.genres), nil
}

// findByID assumes the caller holds the lock.
func (r *genreRepository) findByID(id int) *Genre {
	for _, genre := range r.genres {
		if genre.ID == id {
			return genre
		}
	}
	return nil
}

// findByName matches case-insensitively and assumes the caller holds the lock.
func (r *genreRepository) findByName(name string) *Genre {
	for _, genre := range r.genres {
		if strings.EqualFold(genre.Name, name) {
			return genre
		}
	}
	return nil
}
