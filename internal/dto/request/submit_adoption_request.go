package request

// SubmitAdoptionRequest is the full applicant intake payload.
//
// Numeric fields are typed integers: non-numeric input fails JSON
// binding instead of being silently defaulted. Conditional fields use
// required_if so a renting applicant with landlord approval must name
// the landlord, and other-pet details must accompany otherPets=true.
type SubmitAdoptionRequest struct {
	PetId string `json:"petId" binding:"required"`

	// Applicant profile.
	ApplicantName       string `json:"applicantName" binding:"required,min=2,max=50"`
	ApplicantEmail      string `json:"applicantEmail" binding:"required,email,max=100"`
	ApplicantPhone      string `json:"applicantPhone" binding:"required,max=20"`
	ApplicantAge        int    `json:"applicantAge" binding:"required,gte=18"`
	ApplicantOccupation string `json:"applicantOccupation" binding:"required,max=100"`
	ApplicantAddress    string `json:"applicantAddress" binding:"required,max=255"`
	ApplicantCity       string `json:"applicantCity" binding:"required,max=50"`
	ApplicantState      string `json:"applicantState" binding:"required,max=50"`
	ApplicantZipCode    string `json:"applicantZipCode" binding:"required,max=20"`

	// Housing profile.
	LivingSituation  string `json:"livingSituation" binding:"required,oneof=owning renting family other"`
	HousingType      string `json:"housingType" binding:"required,max=50"`
	LandlordApproval bool   `json:"landlordApproval"`
	LandlordContact  string `json:"landlordContact" binding:"required_if=LivingSituation renting LandlordApproval true,max=100"`

	// Household profile.
	HouseholdMembers int    `json:"householdMembers" binding:"required,gte=1"`
	ChildrenAges     string `json:"childrenAges" binding:"max=100"`
	OtherPets        bool   `json:"otherPets"`
	OtherPetsDetails string `json:"otherPetsDetails" binding:"required_if=OtherPets true,max=255"`

	// Care capacity profile.
	PetExperience   string `json:"petExperience" binding:"required,max=255"`
	PetAloneHours   int    `json:"petAloneHours" binding:"gte=0"`
	PetExercisePlan string `json:"petExercisePlan" binding:"required,max=255"`
	PetTrainingPlan string `json:"petTrainingPlan" binding:"required,max=255"`

	// Commitment profile.
	FinancialCommitment string `json:"financialCommitment" binding:"required,max=255"`
	TimeCommitment      string `json:"timeCommitment" binding:"required,max=255"`
	AdoptionMotivation  string `json:"adoptionMotivation" binding:"required"`
	PetExpectations     string `json:"petExpectations" binding:"required"`
	AdditionalInfo      string `json:"additionalInfo"`
}
