// Package adoption implements the adoption request lifecycle: intake
// with duplicate prevention, role-shaped retrieval, and administrator
// status transitions.
package adoption

import (
	"go.uber.org/zap"

	"petlify_server/internal/dao/mysql"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/dto/respond"
	"petlify_server/internal/model"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/random"
)

// adoptionService implements service.AdoptionService.
type adoptionService struct {
	repos *mysql.Repositories
}

// NewAdoptionService creates the adoption workflow service.
func NewAdoptionService(repos *mysql.Repositories) *adoptionService {
	return &adoptionService{repos: repos}
}

// SubmitRequest files an adoption request for the authenticated
// applicant.
//
// Order of checks: pet existence, then outstanding-request pre-check,
// then create. The pre-check gives a friendly conflict message on the
// common path; a racing duplicate that slips past it is caught by the
// store's unique index and reported identically.
func (s *adoptionService) SubmitRequest(principal model.Principal, req request.SubmitAdoptionRequest) (*respond.AdoptionRequestRespond, error) {
	if principal.UserID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "authentication required")
	}

	petRecord, err := s.repos.Pet.FindByUuid(req.PetId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "pet not found")
		}
		zap.L().Error("resolve pet failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if _, err := s.repos.Adoption.FindActiveByPetAndUser(req.PetId, principal.UserID); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "you have already submitted a request for this pet")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("duplicate pre-check failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	record := &model.AdoptionRequest{
		Uuid:                random.NewAdoptionRequestID(),
		PetUuid:             req.PetId,
		UserUuid:            principal.UserID,
		Active:              model.ActiveGuard(model.AdoptionStatusPending),
		ApplicantName:       req.ApplicantName,
		ApplicantEmail:      req.ApplicantEmail,
		ApplicantPhone:      req.ApplicantPhone,
		ApplicantAge:        req.ApplicantAge,
		ApplicantOccupation: req.ApplicantOccupation,
		ApplicantAddress:    req.ApplicantAddress,
		ApplicantCity:       req.ApplicantCity,
		ApplicantState:      req.ApplicantState,
		ApplicantZipCode:    req.ApplicantZipCode,
		LivingSituation:     req.LivingSituation,
		HousingType:         req.HousingType,
		LandlordApproval:    req.LandlordApproval,
		LandlordContact:     req.LandlordContact,
		HouseholdMembers:    req.HouseholdMembers,
		ChildrenAges:        req.ChildrenAges,
		OtherPets:           req.OtherPets,
		OtherPetsDetails:    req.OtherPetsDetails,
		PetExperience:       req.PetExperience,
		PetAloneHours:       req.PetAloneHours,
		PetExercisePlan:     req.PetExercisePlan,
		PetTrainingPlan:     req.PetTrainingPlan,
		FinancialCommitment: req.FinancialCommitment,
		TimeCommitment:      req.TimeCommitment,
		AdoptionMotivation:  req.AdoptionMotivation,
		PetExpectations:     req.PetExpectations,
		AdditionalInfo:      req.AdditionalInfo,
		Status:              model.AdoptionStatusPending,
	}

	if err := s.repos.Adoption.Create(record); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "you have already submitted a request for this pet")
		}
		zap.L().Error("create adoption request failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := respond.NewAdoptionRequestRespond(record)
	petRsp := respond.NewPetRespond(petRecord)
	rsp.Pet = &petRsp
	return &rsp, nil
}

// GetRequestsForUser lists the caller's own requests, each enriched
// with the referenced pet's public fields. Requires authentication
// only.
func (s *adoptionService) GetRequestsForUser(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error) {
	if principal.UserID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "authentication required")
	}

	reqs, total, err := s.repos.Adoption.ListByUser(principal.UserID, page, pageSize)
	if err != nil {
		zap.L().Error("list user requests failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.listRespond(reqs, total, page, pageSize, false)
}

// GetAllRequests lists every request with pet and applicant identity
// enrichment. Admin only; non-admins get Forbidden, never partial
// data.
func (s *adoptionService) GetAllRequests(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error) {
	if !principal.IsAdmin {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}

	reqs, total, err := s.repos.Adoption.ListAll(page, pageSize)
	if err != nil {
		zap.L().Error("list all requests failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.listRespond(reqs, total, page, pageSize, true)
}

// GetPendingRequests is the admin review queue.
func (s *adoptionService) GetPendingRequests(principal model.Principal, page, pageSize int) (*respond.AdoptionListRespond, error) {
	if !principal.IsAdmin {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}

	reqs, total, err := s.repos.Adoption.ListByStatus(model.AdoptionStatusPending, page, pageSize)
	if err != nil {
		zap.L().Error("list pending requests failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.listRespond(reqs, total, page, pageSize, true)
}

// UpdateStatus overwrites a request's lifecycle status. Admin only.
// Any status may be set from any other; the store keeps the duplicate
// guard consistent on every transition.
func (s *adoptionService) UpdateStatus(principal model.Principal, req request.UpdateAdoptionStatusRequest) (*respond.AdoptionRequestRespond, error) {
	if !principal.IsAdmin {
		return nil, errorx.New(errorx.CodeForbidden, "admin access required")
	}
	if !model.ValidAdoptionStatus(req.Status) {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "invalid status %q", req.Status)
	}

	record, err := s.repos.Adoption.UpdateStatus(req.RequestId, req.Status)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "adoption request not found")
		}
		zap.L().Error("update request status failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	enriched := []respond.AdoptionRequestRespond{respond.NewAdoptionRequestRespond(record)}
	if err := s.enrichSlice(enriched, []model.AdoptionRequest{*record}, true); err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// listRespond assembles one response page with enrichment.
func (s *adoptionService) listRespond(reqs []model.AdoptionRequest, total int64, page, pageSize int, withApplicant bool) (*respond.AdoptionListRespond, error) {
	items := make([]respond.AdoptionRequestRespond, 0, len(reqs))
	for i := range reqs {
		items = append(items, respond.NewAdoptionRequestRespond(&reqs[i]))
	}
	if err := s.enrichSlice(items, reqs, withApplicant); err != nil {
		return nil, err
	}

	_, limit := mysql.NormalizePage(page, pageSize)
	return &respond.AdoptionListRespond{
		Requests:   items,
		Pagination: respond.NewPagination(page, limit, total),
	}, nil
}

// enrichSlice attaches pet data (always) and applicant identity (admin
// views) via two batch lookups, one per referenced table.
func (s *adoptionService) enrichSlice(items []respond.AdoptionRequestRespond, reqs []model.AdoptionRequest, withApplicant bool) error {
	petUuids := make([]string, 0, len(reqs))
	userUuids := make([]string, 0, len(reqs))
	seenPet := make(map[string]bool, len(reqs))
	seenUser := make(map[string]bool, len(reqs))
	for i := range reqs {
		if !seenPet[reqs[i].PetUuid] {
			seenPet[reqs[i].PetUuid] = true
			petUuids = append(petUuids, reqs[i].PetUuid)
		}
		if withApplicant && !seenUser[reqs[i].UserUuid] {
			seenUser[reqs[i].UserUuid] = true
			userUuids = append(userUuids, reqs[i].UserUuid)
		}
	}

	pets, err := s.repos.Pet.FindByUuids(petUuids)
	if err != nil {
		zap.L().Error("batch find pets failed", zap.Error(err))
		return errorx.ErrServerBusy
	}
	petIndex := make(map[string]respond.PetRespond, len(pets))
	for i := range pets {
		petIndex[pets[i].Uuid] = respond.NewPetRespond(&pets[i])
	}

	var userIndex map[string]respond.UserSummary
	if withApplicant {
		users, err := s.repos.User.FindByUuids(userUuids)
		if err != nil {
			zap.L().Error("batch find applicants failed", zap.Error(err))
			return errorx.ErrServerBusy
		}
		userIndex = make(map[string]respond.UserSummary, len(users))
		for _, u := range users {
			// Name and email only; the full profile is already
			// embedded in the request record.
			userIndex[u.Uuid] = respond.UserSummary{
				UserId: u.Uuid,
				Name:   u.Name,
				Email:  u.Email,
			}
		}
	}

	for i := range items {
		if petRsp, ok := petIndex[items[i].PetId]; ok {
			petCopy := petRsp
			items[i].Pet = &petCopy
		}
		if withApplicant {
			if summary, ok := userIndex[items[i].UserId]; ok {
				summaryCopy := summary
				items[i].Applicant = &summaryCopy
			}
		}
	}
	return nil
}
