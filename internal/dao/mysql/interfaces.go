// Package mysql implements the data access layer on GORM.
// Repository interfaces are defined here; each entity has its
// implementation in its own file.
package mysql

import (
	"petlify_server/internal/model"
)

// UserRepository stores marketplace accounts.
type UserRepository interface {
	// Create persists a new account. A duplicate email surfaces as a
	// conflict error.
	Create(user *model.UserInfo) error
	// FindByEmail looks an account up by login email.
	FindByEmail(email string) (*model.UserInfo, error)
	// FindByUuid looks an account up by business uuid.
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByUuids batch-loads accounts, used for identity enrichment.
	FindByUuids(uuids []string) ([]model.UserInfo, error)
}

// PetListFilter narrows a pet listing query. Zero values are ignored.
type PetListFilter struct {
	Search    string // LIKE match on name/species/breed/description
	Species   string // LIKE match on species
	AgeBucket string // "young" (<=2y), "adult" (2-7y), "senior" (>7y)
	Status    string // moderation status, defaults to approved at the service layer
}

// PetRepository stores pet listings.
type PetRepository interface {
	Create(pet *model.Pet) error
	FindByUuid(uuid string) (*model.Pet, error)
	// FindByUuids batch-loads listings, used for read-side joins.
	FindByUuids(uuids []string) ([]model.Pet, error)
	// List returns one page of listings matching the filter plus the
	// total match count. Ordered by creation time descending, uuid
	// ascending on ties.
	List(filter PetListFilter, page, pageSize int) ([]model.Pet, int64, error)
	// Featured returns the most recently approved listings.
	Featured(limit int) ([]model.Pet, error)
	// UpdateStatus overwrites the moderation status and returns the
	// updated record, or a not-found error for an unknown uuid.
	UpdateStatus(uuid, status string) (*model.Pet, error)
}

// AdoptionRequestRepository stores adoption applications.
//
// The duplicate invariant (at most one non-terminal request per
// (pet, user) pair) is enforced by the idx_pet_user_active unique
// index; Create reports a violation as a conflict error.
type AdoptionRequestRepository interface {
	Create(req *model.AdoptionRequest) error
	FindByUuid(uuid string) (*model.AdoptionRequest, error)
	// FindActiveByPetAndUser returns the outstanding (pending or
	// approved) request for the pair, or a not-found error. Indexed
	// point lookup, never a scan.
	FindActiveByPetAndUser(petUuid, userUuid string) (*model.AdoptionRequest, error)
	ListByUser(userUuid string, page, pageSize int) ([]model.AdoptionRequest, int64, error)
	ListByStatus(status string, page, pageSize int) ([]model.AdoptionRequest, int64, error)
	ListAll(page, pageSize int) ([]model.AdoptionRequest, int64, error)
	// UpdateStatus overwrites the lifecycle status, maintains the
	// duplicate guard column, refreshes updated_at and returns the
	// updated record.
	UpdateStatus(uuid, status string) (*model.AdoptionRequest, error)
}
