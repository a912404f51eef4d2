// Package service defines the business layer interfaces consumed by
// the handler layer. Implementations live in the per-domain
// subpackages and are aggregated by provider.go.
package service

import (
	"petlify_server/internal/dto/request"
	"petlify_server/internal/dto/respond"
	"petlify_server/internal/model"
)

// AuthService issues identities. Tokens carry the user id and admin
// flag; everything downstream treats the decoded principal as given.
type AuthService interface {
	// Register creates an account and returns a token pair.
	Register(req request.RegisterRequest) (*respond.LoginRespond, error)
	// Login verifies credentials and returns a token pair.
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
}

// PetService manages the pet catalog.
type PetService interface {
	// SubmitPet stores a rehoming listing with status pending.
	// imageURLs are the public URLs of the already-saved uploads.
	SubmitPet(principal model.Principal, req request.SubmitPetRequest, imageURLs []string) (*respond.PetRespond, error)
	// ListPets returns the public catalog page for the given filters.
	ListPets(req request.ListPetsRequest) (*respond.PetListRespond, error)
	// GetPetByID returns one listing (cache-aside).
	GetPetByID(petId string) (*respond.PetRespond, error)
	// FeaturedPets returns the most recent approved listings.
	FeaturedPets() ([]respond.PetRespond, error)
	// PendingSubmissions returns unmoderated listings with submitter
	// identity. Admin only.
	PendingSubmissions(principal model.Principal, page, pageSize int) (*respond.PetListRespond, error)
	// UpdatePetStatus moderates a listing. Admin only.
	UpdatePetStatus(principal model.Principal, req request.UpdatePetStatusRequest) (*respond.PetRespond, error)
}

// AdoptionService enforces the adoption request lifecycle: submission
// with duplicate prevention, role-shaped retrieval and admin status
// transitions.
type AdoptionService interface {
	// SubmitRequest validates the payload, resolves the pet, rejects
	// duplicates and persists a pending request.
	SubmitRequest(principal model.Principal, req request.SubmitAdoptionRequest) (*respond.AdoptionRequestRespond, error)
	// GetRequestsForUser returns the caller's requests enriched with
	// pet data.
	GetRequestsForUser(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error)
	// GetAllRequests returns every request enriched with pet and
	// applicant identity. Admin only.
	GetAllRequests(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error)
	// GetPendingRequests is GetAllRequests filtered to status pending.
	// Admin only.
	GetPendingRequests(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error)
	// UpdateStatus overwrites a request's lifecycle status. Admin only.
	UpdateStatus(principal model.Principal, req request.UpdateAdoptionStatusRequest) (*respond.AdoptionRequestRespond, error)
}
