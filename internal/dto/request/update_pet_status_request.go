package request

// UpdatePetStatusRequest is the listing moderation payload.
type UpdatePetStatusRequest struct {
	PetId  string `json:"petId" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending approved rejected adopted"`
}
