package model

import (
	"gorm.io/gorm"
)

// Adoption request lifecycle statuses.
// The initial state is pending; administrators may set any status at
// any time (unrestricted overwrite, no transition table).
const (
	AdoptionStatusPending   = "pending"
	AdoptionStatusApproved  = "approved"
	AdoptionStatusRejected  = "rejected"
	AdoptionStatusCompleted = "completed"
)

// ValidAdoptionStatus reports whether s is one of the lifecycle statuses.
func ValidAdoptionStatus(s string) bool {
	switch s {
	case AdoptionStatusPending, AdoptionStatusApproved, AdoptionStatusRejected, AdoptionStatusCompleted:
		return true
	}
	return false
}

// TerminalAdoptionStatus reports whether s frees the (pet, user) pair
// for a new submission.
func TerminalAdoptionStatus(s string) bool {
	return s == AdoptionStatusRejected || s == AdoptionStatusCompleted
}

// AdoptionRequest is one applicant's petition to adopt one pet.
// PetUuid and UserUuid are immutable after creation.
//
// Active is a duplicate guard: 1 while the request is pending or
// approved, NULL once it reaches a terminal status. MySQL unique
// indexes ignore NULL values, so the composite index
// (pet_uuid, user_uuid, active) enforces at most one outstanding
// request per pair while still allowing re-submission after a
// rejection or completed adoption. The index, not the service-level
// pre-check, is the source of truth for the invariant.
type AdoptionRequest struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:request id"`
	PetUuid  string `gorm:"column:pet_uuid;index;type:char(20);not null;uniqueIndex:idx_pet_user_active;comment:adopted pet id"`
	UserUuid string `gorm:"column:user_uuid;index;type:char(20);not null;uniqueIndex:idx_pet_user_active;comment:applicant user id"`
	Active   *int8  `gorm:"column:active;uniqueIndex:idx_pet_user_active;comment:1 while status is non-terminal, NULL otherwise"`

	// Applicant profile.
	ApplicantName       string `gorm:"column:applicant_name;type:varchar(50);not null"`
	ApplicantEmail      string `gorm:"column:applicant_email;type:varchar(100);not null"`
	ApplicantPhone      string `gorm:"column:applicant_phone;type:varchar(20);not null"`
	ApplicantAge        int    `gorm:"column:applicant_age;not null"`
	ApplicantOccupation string `gorm:"column:applicant_occupation;type:varchar(100);not null"`
	ApplicantAddress    string `gorm:"column:applicant_address;type:varchar(255);not null"`
	ApplicantCity       string `gorm:"column:applicant_city;type:varchar(50);not null"`
	ApplicantState      string `gorm:"column:applicant_state;type:varchar(50);not null"`
	ApplicantZipCode    string `gorm:"column:applicant_zip_code;type:varchar(20);not null"`

	// Housing profile.
	LivingSituation  string `gorm:"column:living_situation;type:varchar(50);not null;comment:owning/renting/family/other"`
	HousingType      string `gorm:"column:housing_type;type:varchar(50);not null"`
	LandlordApproval bool   `gorm:"column:landlord_approval"`
	LandlordContact  string `gorm:"column:landlord_contact;type:varchar(100);comment:required when renting with approval"`

	// Household profile.
	HouseholdMembers int    `gorm:"column:household_members;not null"`
	ChildrenAges     string `gorm:"column:children_ages;type:varchar(100)"`
	OtherPets        bool   `gorm:"column:other_pets"`
	OtherPetsDetails string `gorm:"column:other_pets_details;type:varchar(255);comment:required when other_pets"`

	// Care capacity profile.
	PetExperience   string `gorm:"column:pet_experience;type:varchar(255);not null"`
	PetAloneHours   int    `gorm:"column:pet_alone_hours;not null"`
	PetExercisePlan string `gorm:"column:pet_exercise_plan;type:varchar(255);not null"`
	PetTrainingPlan string `gorm:"column:pet_training_plan;type:varchar(255);not null"`

	// Commitment profile.
	FinancialCommitment string `gorm:"column:financial_commitment;type:varchar(255);not null"`
	TimeCommitment      string `gorm:"column:time_commitment;type:varchar(255);not null"`
	AdoptionMotivation  string `gorm:"column:adoption_motivation;type:text;not null"`
	PetExpectations     string `gorm:"column:pet_expectations;type:text;not null"`
	AdditionalInfo      string `gorm:"column:additional_info;type:text"`

	Status string `gorm:"column:status;index;type:varchar(10);not null;default:pending;comment:lifecycle status"`
}

func (AdoptionRequest) TableName() string {
	return "adoption_request"
}

// ActiveGuard returns the guard column value for a status: 1 for
// non-terminal statuses, nil for terminal ones.
func ActiveGuard(status string) *int8 {
	if TerminalAdoptionStatus(status) {
		return nil
	}
	one := int8(1)
	return &one
}
