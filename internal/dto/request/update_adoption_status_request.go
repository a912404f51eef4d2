package request

// UpdateAdoptionStatusRequest is the admin status-transition payload.
// Any of the four statuses may be set at any time; there is no
// transition table.
type UpdateAdoptionStatusRequest struct {
	RequestId string `json:"requestId" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=pending approved rejected completed"`
}
