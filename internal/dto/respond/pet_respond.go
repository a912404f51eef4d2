package respond

import (
	"encoding/json"
	"time"

	"petlify_server/internal/model"
)

// PetRespond is the public projection of a pet listing.
type PetRespond struct {
	PetId       string  `json:"petId"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed"`
	Age         float64 `json:"age"`
	Description string  `json:"description"`
	Gender      string  `json:"gender,omitempty"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
	Weight      float64 `json:"weight,omitempty"`

	IsVaccinated   bool   `json:"isVaccinated"`
	IsNeutered     bool   `json:"isNeutered"`
	IsHouseTrained bool   `json:"isHouseTrained"`
	HealthIssues   string `json:"healthIssues,omitempty"`
	SpecialNeeds   string `json:"specialNeeds,omitempty"`
	Temperament    string `json:"temperament,omitempty"`
	EnergyLevel    string `json:"energyLevel,omitempty"`

	ReasonForRehoming string `json:"reasonForRehoming,omitempty"`
	RehomingUrgency   string `json:"rehomingUrgency,omitempty"`

	Images    []string  `json:"images"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	// SubmittedBy is only populated on admin views.
	SubmittedBy *UserSummary `json:"submittedBy,omitempty"`
}

// NewPetRespond projects a stored pet. The owner contact block stays
// server-side; it is not part of the public surface.
func NewPetRespond(pet *model.Pet) PetRespond {
	var images []string
	if pet.Images != "" {
		// A malformed images column yields an empty list rather than
		// failing the whole response.
		_ = json.Unmarshal([]byte(pet.Images), &images)
	}
	if images == nil {
		images = []string{}
	}
	return PetRespond{
		PetId:             pet.Uuid,
		Name:              pet.Name,
		Species:           pet.Species,
		Breed:             pet.Breed,
		Age:               pet.Age,
		Description:       pet.Description,
		Gender:            pet.Gender,
		Size:              pet.Size,
		Color:             pet.Color,
		Weight:            pet.Weight,
		IsVaccinated:      pet.IsVaccinated,
		IsNeutered:        pet.IsNeutered,
		IsHouseTrained:    pet.IsHouseTrained,
		HealthIssues:      pet.HealthIssues,
		SpecialNeeds:      pet.SpecialNeeds,
		Temperament:       pet.Temperament,
		EnergyLevel:       pet.EnergyLevel,
		ReasonForRehoming: pet.ReasonForRehoming,
		RehomingUrgency:   pet.RehomingUrgency,
		Images:            images,
		Status:            pet.Status,
		CreatedAt:         pet.CreatedAt,
	}
}

// PetListRespond is the paginated catalog response.
type PetListRespond struct {
	Pets       []PetRespond `json:"pets"`
	Pagination Pagination   `json:"pagination"`
}
