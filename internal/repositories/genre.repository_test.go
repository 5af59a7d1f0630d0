package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	. "genrebox/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenre(name, description string) *Genre {
	now := time.Now().UTC()
	return &Genre{
		Name:        name,
		Description: description,
		Image:       DefaultImagePath(name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSeedCollection(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	genres, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 4)

	names := make([]string, len(genres))
	for i, genre := range genres {
		names[i] = genre.Name
	}
	assert.Equal(t, []string{"Action", "Comedy", "Drama", "Sci-Fi"}, names)

	// ids are assigned in insertion order starting at 1
	for i, genre := range genres {
		assert.Equal(t, i+1, genre.ID)
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newGenre("Horror", "Films engineered to frighten"))
	require.NoError(t, err)

	second, err := repo.Create(ctx, newGenre("Western", "Frontier tales and gunslingers"))
	require.NoError(t, err)

	assert.Equal(t, 5, first.ID)
	assert.Equal(t, 6, second.ID)

	// deleting must not free the id for reuse
	_, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := repo.Create(ctx, newGenre("Film Noir", "Shadowy crime dramas"))
	require.NoError(t, err)
	assert.Equal(t, 7, third.ID)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newGenre("Comedy", "Already seeded"))
	assert.ErrorIs(t, err, ErrDuplicateGenreName)

	_, err = repo.Create(ctx, newGenre("COMEDY", "Casing does not make it new"))
	assert.ErrorIs(t, err, ErrDuplicateGenreName)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestCreateConcurrentDuplicates(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	const attempts = 16
	results := make(chan error, attempts)

	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < attempts; i++ {
		go func() {
			start.Wait()
			_, err := repo.Create(ctx, newGenre("Horror", "Films engineered to frighten"))
			results <- err
		}()
	}
	start.Done()

	created := 0
	for i := 0; i < attempts; i++ {
		if err := <-results; err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateGenreName)
		}
	}
	assert.Equal(t, 1, created, "the check and the insert share one critical section")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestUpdateRejectsDuplicateName(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	renamed, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	renamed.Name = "drama"

	_, err = repo.Update(ctx, renamed)
	assert.ErrorIs(t, err, ErrDuplicateGenreName)

	// keeping your own name under different casing stays legal
	renamed.Name = "ACTION"
	updated, err := repo.Update(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, "ACTION", updated.Name)
}

func TestGetByName(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	tests := []struct {
		name        string
		lookup      string
		expectFound bool
	}{
		{name: "Exact match", lookup: "Comedy", expectFound: true},
		{name: "Different case", lookup: "cOmEdY", expectFound: true},
		{name: "Unknown name", lookup: "Romance", expectFound: false},
		{name: "Substring is not a match", lookup: "Com", expectFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genre, err := repo.GetByName(ctx, tt.lookup)

			if tt.expectFound {
				require.NoError(t, err)
				assert.Equal(t, "Comedy", genre.Name)
			} else {
				assert.ErrorIs(t, err, ErrGenreNotFound)
			}
		})
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	removed, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Comedy", removed.Name)

	_, err = repo.GetByID(ctx, 2)
	assert.ErrorIs(t, err, ErrGenreNotFound)

	genres, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 3)

	_, err = repo.Delete(ctx, 2)
	assert.ErrorIs(t, err, ErrGenreNotFound)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewGenreRepository()

	missing := newGenre("Ghost", "Record that was never stored")
	missing.ID = 99

	_, err := repo.Update(context.Background(), missing)
	assert.ErrorIs(t, err, ErrGenreNotFound)
}

func TestReadsReturnCopies(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	genre, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	genre.Name = "Mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Action", stored.Name)
}

func TestCount(t *testing.T) {
	repo := NewGenreRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	_, err = repo.Delete(ctx, 1)
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
