package database

// Repository exposes the read/write operations. Each method is one unit
// of work against the Store: acquire, execute, release.
type Repository struct {
	store *Store
}

func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}
