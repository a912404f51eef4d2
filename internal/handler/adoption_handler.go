package handler

import (
	"petlify_server/internal/dto/request"
	"petlify_server/internal/infrastructure/middleware"
	"petlify_server/internal/service"

	"github.com/gin-gonic/gin"
)

// AdoptionHandler serves the adoption request endpoints.
type AdoptionHandler struct {
	svc service.AdoptionService
}

// NewAdoptionHandler creates an AdoptionHandler.
func NewAdoptionHandler(svc service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{svc: svc}
}

// SubmitRequest handles POST /api/adoptions.
// Request body: request.SubmitAdoptionRequest
// Response: 201 with the created record, 400/401/404/409 on failure.
func (h *AdoptionHandler) SubmitRequest(c *gin.Context) {
	var req request.SubmitAdoptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.SubmitRequest(middleware.GetPrincipal(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// MyRequests handles GET /api/adoptions/my-requests?page=&limit=.
func (h *AdoptionHandler) MyRequests(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetRequestsForUser(middleware.GetPrincipal(c), req.Page, req.Limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AllRequests handles GET /api/adoptions/all?page=&limit= (admin).
func (h *AdoptionHandler) AllRequests(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetAllRequests(middleware.GetPrincipal(c), req.Page, req.Limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PendingRequests handles GET /api/adoptions/pending?page=&limit= (admin).
func (h *AdoptionHandler) PendingRequests(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetPendingRequests(middleware.GetPrincipal(c), req.Page, req.Limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateStatus handles PUT /api/adoptions/update-status (admin).
// Request body: request.UpdateAdoptionStatusRequest
// Response: the updated, enriched record.
func (h *AdoptionHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateAdoptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.UpdateStatus(middleware.GetPrincipal(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
