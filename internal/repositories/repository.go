package repositories

type Repository struct {
	Genre GenreRepository
}

func New() Repository {
	return Repository{
		Genre: NewGenreRepository(),
	}
}
