package service

import (
	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dao/redis"
	"petlify_server/internal/service/adoption"
	"petlify_server/internal/service/auth"
	"petlify_server/internal/service/pet"
)

// Services aggregates all service instances. The handler layer
// receives this aggregate through constructor injection.
type Services struct {
	Auth     AuthService
	Pet      PetService
	Adoption AdoptionService
}

// NewServices wires every service to the repository aggregate and the
// cache.
func NewServices(repos *mysql.Repositories, cache redis.CacheService) *Services {
	return &Services{
		Auth:     auth.NewAuthService(repos),
		Pet:      pet.NewPetService(repos, cache),
		Adoption: adoption.NewAdoptionService(repos),
	}
}
