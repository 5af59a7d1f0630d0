package repositories

import (
	"time"

	. "genrebox/internal/models"
)

// seedGenres returns the fixed collection loaded on every process start.
// IDs are assigned by the repository so the counter always starts above the
// seed set.
func seedGenres() []*Genre {
	seededAt := time.Now().UTC()

	newGenre := func(name, description string) *Genre {
		return &Genre{
			Name:        name,
			Description: description,
			Image:       DefaultImagePath(name),
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		}
	}

	return []*Genre{
		newGenre("Action", "High-energy films built around stunts, chases, and combat"),
		newGenre("Comedy", "Films written to amuse, from slapstick to dry satire"),
		newGenre("Drama", "Character-driven stories with serious emotional stakes"),
		newGenre("Sci-Fi", "Speculative futures, technology, and life beyond Earth"),
	}
}
