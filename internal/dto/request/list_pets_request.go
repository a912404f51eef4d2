package request

// ListPetsRequest carries the public catalog query parameters.
type ListPetsRequest struct {
	Search  string `form:"search"`
	Species string `form:"species"`
	Age     string `form:"age" binding:"omitempty,oneof=young adult senior"`
	Status  string `form:"status" binding:"omitempty,oneof=pending approved rejected adopted"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}
