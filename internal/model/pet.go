package model

import (
	"gorm.io/gorm"
)

// Pet listing moderation statuses.
const (
	PetStatusPending  = "pending"
	PetStatusApproved = "approved"
	PetStatusRejected = "rejected"
	PetStatusAdopted  = "adopted"
)

// ValidPetStatus reports whether s is one of the listing statuses.
func ValidPetStatus(s string) bool {
	switch s {
	case PetStatusPending, PetStatusApproved, PetStatusRejected, PetStatusAdopted:
		return true
	}
	return false
}

// Pet is a rehoming listing submitted by an owner and moderated by an
// administrator. Only approved pets are publicly listed.
type Pet struct {
	gorm.Model
	Uuid        string  `gorm:"column:uuid;uniqueIndex;type:char(20);comment:pet id"`
	Name        string  `gorm:"column:name;type:varchar(50);not null"`
	Species     string  `gorm:"column:species;type:varchar(50);not null"`
	Breed       string  `gorm:"column:breed;type:varchar(50);not null"`
	Age         float64 `gorm:"column:age;not null;comment:age in years"`
	Description string  `gorm:"column:description;type:text;not null"`
	Gender      string  `gorm:"column:gender;type:varchar(20)"`
	Size        string  `gorm:"column:size;type:varchar(20)"`
	Color       string  `gorm:"column:color;type:varchar(50)"`
	Weight      float64 `gorm:"column:weight;comment:weight in kg"`

	IsVaccinated   bool   `gorm:"column:is_vaccinated"`
	IsNeutered     bool   `gorm:"column:is_neutered"`
	IsHouseTrained bool   `gorm:"column:is_house_trained"`
	HealthIssues   string `gorm:"column:health_issues;type:varchar(255)"`
	SpecialNeeds   string `gorm:"column:special_needs;type:varchar(255)"`
	Temperament    string `gorm:"column:temperament;type:varchar(100)"`
	EnergyLevel    string `gorm:"column:energy_level;type:varchar(20)"`

	OwnerMobile  string `gorm:"column:owner_mobile;type:varchar(20)"`
	OwnerAddress string `gorm:"column:owner_address;type:varchar(255)"`
	OwnerCity    string `gorm:"column:owner_city;type:varchar(50)"`
	OwnerState   string `gorm:"column:owner_state;type:varchar(50)"`
	OwnerZipCode string `gorm:"column:owner_zip_code;type:varchar(20)"`

	ReasonForRehoming string `gorm:"column:reason_for_rehoming;type:varchar(255)"`
	RehomingUrgency   string `gorm:"column:rehoming_urgency;type:varchar(20)"`

	// Images is a JSON-encoded list of public URLs.
	Images      string `gorm:"column:images;type:text"`
	Status      string `gorm:"column:status;index;type:varchar(10);not null;default:pending;comment:moderation status"`
	SubmittedBy string `gorm:"column:submitted_by;index;type:char(20);not null;comment:owner user id"`
}

func (Pet) TableName() string {
	return "pet"
}
