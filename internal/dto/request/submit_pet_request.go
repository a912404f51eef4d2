package request

// SubmitPetRequest is the rehoming submission form. Bound from
// multipart form data; images arrive separately as file parts.
type SubmitPetRequest struct {
	Name        string  `form:"name" binding:"required,max=50"`
	Species     string  `form:"species" binding:"required,max=50"`
	Breed       string  `form:"breed" binding:"required,max=50"`
	Age         float64 `form:"age" binding:"required,gte=0"`
	Description string  `form:"description" binding:"required"`

	Gender string  `form:"gender"`
	Size   string  `form:"size"`
	Color  string  `form:"color"`
	Weight float64 `form:"weight" binding:"gte=0"`

	IsVaccinated   bool   `form:"isVaccinated"`
	IsNeutered     bool   `form:"isNeutered"`
	IsHouseTrained bool   `form:"isHouseTrained"`
	HealthIssues   string `form:"healthIssues"`
	SpecialNeeds   string `form:"specialNeeds"`
	Temperament    string `form:"temperament"`
	EnergyLevel    string `form:"energyLevel"`

	OwnerMobile  string `form:"ownerMobile"`
	OwnerAddress string `form:"ownerAddress"`
	OwnerCity    string `form:"ownerCity"`
	OwnerState   string `form:"ownerState"`
	OwnerZipCode string `form:"ownerZipCode"`

	ReasonForRehoming string `form:"reasonForRehoming"`
	RehomingUrgency   string `form:"rehomingUrgency"`
}
