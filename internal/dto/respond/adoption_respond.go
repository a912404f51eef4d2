package respond

import (
	"time"

	"petlify_server/internal/model"
)

// AdoptionRequestRespond is a stored request enriched for response
// purposes: Pet carries the referenced listing's public fields, and
// Applicant (admin views only) a minimal identity projection.
type AdoptionRequestRespond struct {
	RequestId string `json:"requestId"`
	PetId     string `json:"petId"`
	UserId    string `json:"userId"`

	ApplicantName       string `json:"applicantName"`
	ApplicantEmail      string `json:"applicantEmail"`
	ApplicantPhone      string `json:"applicantPhone"`
	ApplicantAge        int    `json:"applicantAge"`
	ApplicantOccupation string `json:"applicantOccupation"`
	ApplicantAddress    string `json:"applicantAddress"`
	ApplicantCity       string `json:"applicantCity"`
	ApplicantState      string `json:"applicantState"`
	ApplicantZipCode    string `json:"applicantZipCode"`

	LivingSituation  string `json:"livingSituation"`
	HousingType      string `json:"housingType"`
	LandlordApproval bool   `json:"landlordApproval"`
	LandlordContact  string `json:"landlordContact,omitempty"`

	HouseholdMembers int    `json:"householdMembers"`
	ChildrenAges     string `json:"childrenAges,omitempty"`
	OtherPets        bool   `json:"otherPets"`
	OtherPetsDetails string `json:"otherPetsDetails,omitempty"`

	PetExperience   string `json:"petExperience"`
	PetAloneHours   int    `json:"petAloneHours"`
	PetExercisePlan string `json:"petExercisePlan"`
	PetTrainingPlan string `json:"petTrainingPlan"`

	FinancialCommitment string `json:"financialCommitment"`
	TimeCommitment      string `json:"timeCommitment"`
	AdoptionMotivation  string `json:"adoptionMotivation"`
	PetExpectations     string `json:"petExpectations"`
	AdditionalInfo      string `json:"additionalInfo,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Pet       *PetRespond  `json:"pet,omitempty"`
	Applicant *UserSummary `json:"applicant,omitempty"`
}

// NewAdoptionRequestRespond projects a stored request without
// enrichment; callers attach Pet and Applicant as the view requires.
func NewAdoptionRequestRespond(req *model.AdoptionRequest) AdoptionRequestRespond {
	return AdoptionRequestRespond{
		RequestId:           req.Uuid,
		PetId:               req.PetUuid,
		UserId:              req.UserUuid,
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
		Status:              req.Status,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
}

// AdoptionListRespond is the paginated response shared by the
// my-requests, all and pending views.
type AdoptionListRespond struct {
	Requests   []AdoptionRequestRespond `json:"requests"`
	Pagination Pagination               `json:"pagination"`
}
