package mysql

import (
	"gorm.io/gorm"
)

// Repositories aggregates all repository instances. The service layer
// receives this aggregate through constructor injection.
type Repositories struct {
	db       *gorm.DB
	User     UserRepository
	Pet      PetRepository
	Adoption AdoptionRequestRepository
}

// NewRepositories wires every repository to the given GORM instance.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:       db,
		User:     NewUserRepository(db),
		Pet:      NewPetRepository(db),
		Adoption: NewAdoptionRequestRepository(db),
	}
}

// Transaction runs fn inside a database transaction. fn receives a
// Repositories bound to the transaction; any error rolls it back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
