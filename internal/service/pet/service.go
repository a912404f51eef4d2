// Package pet implements the pet catalog: rehoming submissions, the
// public listing, and administrator moderation.
package pet

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dao/redis"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/dto/respond"
	"petlify_server/internal/model"
	"petlify_server/pkg/constants"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/random"
)

// Cache keys. Detail entries are keyed per pet, the featured list is a
// single entry; both are dropped whenever a status changes.
const (
	cacheKeyPetDetail = "pet:detail:"
	cacheKeyFeatured  = "pet:featured"
)

// petService implements service.PetService.
type petService struct {
	repos *mysql.Repositories
	cache redis.CacheService
}

// NewPetService creates the pet service.
func NewPetService(repos *mysql.Repositories, cache redis.CacheService) *petService {
	return &petService{repos: repos, cache: cache}
}

// SubmitPet stores a new listing with status pending so it never
// appears in the public catalog before moderation.
func (s *petService) SubmitPet(principal model.Principal, req request.SubmitPetRequest, imageURLs []string) (*respond.PetRespond, error) {
	if principal.UserID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "authentication required")
	}

	imagesJSON, err := json.Marshal(imageURLs)
	if err != nil {
		zap.L().Error("encode image urls failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	petRecord := &model.Pet{
		Uuid:              random.NewPetID(),
		Name:              req.Name,
		Species:           req.Species,
		Breed:             req.Breed,
		Age:               req.Age,
		Description:       req.Description,
		Gender:            req.Gender,
		Size:              req.Size,
		Color:             req.Color,
		Weight:            req.Weight,
		IsVaccinated:      req.IsVaccinated,
		IsNeutered:        req.IsNeutered,
		IsHouseTrained:    req.IsHouseTrained,
		HealthIssues:      req.HealthIssues,
		SpecialNeeds:      req.SpecialNeeds,
		Temperament:       req.Temperament,
		EnergyLevel:       req.EnergyLevel,
		OwnerMobile:       req.OwnerMobile,
		OwnerAddress:      req.OwnerAddress,
		OwnerCity:         req.OwnerCity,
		OwnerState:        req.OwnerState,
		OwnerZipCode:      req.OwnerZipCode,
		ReasonForRehoming: req.ReasonForRehoming,
		RehomingUrgency:   req.RehomingUrgency,
		Images:            string(imagesJSON),
		Status:            model.PetStatusPending,
		SubmittedBy:       principal.UserID,
	}

	if err := s.repos.Pet.Create(petRecord); err != nil {
		zap.L().Error("create pet failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := respond.NewPetRespond(petRecord)
	return &rsp, nil
}

// ListPets serves the public catalog. Without an explicit status
// filter only approved listings are returned.
func (s *petService) ListPets(req request.ListPetsRequest) (*respond.PetListRespond, error) {
	status := req.Status
	if status == "" {
		status = model.PetStatusApproved
	}

	filter := mysql.PetListFilter{
		Search:    req.Search,
		Species:   req.Species,
		AgeBucket: req.Age,
		Status:    status,
	}
	pets, total, err := s.repos.Pet.List(filter, req.Page, req.Limit)
	if err != nil {
		zap.L().Error("list pets failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return s.listRespond(pets, total, req.Page, req.Limit, nil), nil
}

// GetPetByID returns one listing, cache-aside with a short TTL.
func (s *petService) GetPetByID(petId string) (*respond.PetRespond, error) {
	ctx := context.Background()
	cacheKey := cacheKeyPetDetail + petId

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rsp respond.PetRespond
		if json.Unmarshal([]byte(cached), &rsp) == nil {
			return &rsp, nil
		}
	}

	petRecord, err := s.repos.Pet.FindByUuid(petId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "pet not found")
		}
		zap.L().Error("find pet failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := respond.NewPetRespond(petRecord)
	s.setCache(cacheKey, rsp)
	return &rsp, nil
}

// FeaturedPets returns the landing-page listings, cached as one entry.
func (s *petService) FeaturedPets() ([]respond.PetRespond, error) {
	ctx := context.Background()

	if cached, err := s.cache.Get(ctx, cacheKeyFeatured); err == nil && cached != "" {
		var rsp []respond.PetRespond
		if json.Unmarshal([]byte(cached), &rsp) == nil {
			return rsp, nil
		}
	}

	pets, err := s.repos.Pet.Featured(constants.FEATURED_PETS)
	if err != nil {
		zap.L().Error("featured pets failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.PetRespond, 0, len(pets))
	for i := range pets {
		rsp = append(rsp, respond.NewPetRespond(&pets[i]))
	}
	s.setCache(cacheKeyFeatured, rsp)
	return rsp, nil
}

// PendingSubmissions lists unmoderated listings with the submitter's
// identity joined in. Admin only.
func (s *petService) PendingSubmissions(principal model.Principal, page, pageSize int) (*respond.PetListRespond, error) {
	if !principal.IsAdmin {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}

	pets, total, err := s.repos.Pet.List(mysql.PetListFilter{Status: model.PetStatusPending}, page, pageSize)
	if err != nil {
		zap.L().Error("list pending pets failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	submitters, err := s.submitterIndex(pets)
	if err != nil {
		return nil, err
	}
	return s.listRespond(pets, total, page, pageSize, submitters), nil
}

// UpdatePetStatus moderates a listing and invalidates its cache
// entries. Admin only.
func (s *petService) UpdatePetStatus(principal model.Principal, req request.UpdatePetStatusRequest) (*respond.PetRespond, error) {
	if !principal.IsAdmin {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if !model.ValidPetStatus(req.Status) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "invalid status %q", req.Status)
	}

	petRecord, err := s.repos.Pet.UpdateStatus(req.PetId, req.Status)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "pet not found")
		}
		zap.L().Error("update pet status failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	ctx := context.Background()
	_ = s.cache.Delete(ctx, cacheKeyPetDetail+req.PetId)
	_ = s.cache.Delete(ctx, cacheKeyFeatured)

	rsp := respond.NewPetRespond(petRecord)
	return &rsp, nil
}

// submitterIndex batch-loads the submitting users keyed by uuid.
func (s *petService) submitterIndex(pets []model.Pet) (map[string]respond.UserSummary, error) {
	uuids := make([]string, 0, len(pets))
	seen := make(map[string]bool, len(pets))
	for i := range pets {
		if !seen[pets[i].SubmittedBy] {
			seen[pets[i].SubmittedBy] = true
			uuids = append(uuids, pets[i].SubmittedBy)
		}
	}

	users, err := s.repos.User.FindByUuids(uuids)
	if err != nil {
		zap.L().Error("batch find submitters failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	index := make(map[string]respond.UserSummary, len(users))
	for _, u := range users {
		index[u.Uuid] = respond.UserSummary{
			UserId: u.Uuid,
			Name:   u.Name,
			Email:  u.Email,
		}
	}
	return index, nil
}

func (s *petService) listRespond(pets []model.Pet, total int64, page, pageSize int, submitters map[string]respond.UserSummary) *respond.PetListRespond {
	items := make([]respond.PetRespond, 0, len(pets))
	for i := range pets {
		item := respond.NewPetRespond(&pets[i])
		if submitters != nil {
			if summary, ok := submitters[pets[i].SubmittedBy]; ok {
				item.SubmittedBy = &summary
			}
		}
		items = append(items, item)
	}

	_, limit := mysql.NormalizePage(page, pageSize)
	return &respond.PetListRespond{
		Pets:       items,
		Pagination: respond.NewPagination(page, limit, total),
	}
}

// setCache stores a JSON-encoded value, logging failures instead of
// propagating them since the cache is best effort.
func (s *petService) setCache(key string, data interface{}) {
	encoded, err := json.Marshal(data)
	if err != nil {
		zap.L().Error("encode cache value failed", zap.Error(err), zap.String("key", key))
		return
	}
	ttl := time.Minute * constants.CACHE_TTL_MINUTES
	if err := s.cache.Set(context.Background(), key, string(encoded), ttl); err != nil {
		zap.L().Warn("cache set failed", zap.Error(err), zap.String("key", key))
	}
}
