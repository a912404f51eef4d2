package request

// PaginationRequest carries the page/limit query parameters shared by
// every list endpoint. Values are normalized (1-indexed page, limit
// clamped to 100) at the store layer.
type PaginationRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
