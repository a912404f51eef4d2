package handler

import (
	"petlify_server/internal/service"
)

// Handlers aggregates all handler instances for the router.
type Handlers struct {
	Auth     *AuthHandler
	Pet      *PetHandler
	Adoption *AdoptionHandler
}

// NewHandlers wires every handler to its service.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc.Auth),
		Pet:      NewPetHandler(svc.Pet),
		Adoption: NewAdoptionHandler(svc.Adoption),
	}
}
