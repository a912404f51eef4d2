package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"petlify_server/internal/config"
	"petlify_server/internal/dto/request"
	"petlify_server/internal/infrastructure/middleware"
	"petlify_server/internal/service"
	"petlify_server/pkg/constants"
	"petlify_server/pkg/errorx"
	"petlify_server/pkg/util/random"

	"github.com/gin-gonic/gin"
)

// PetHandler serves the pet catalog endpoints.
type PetHandler struct {
	svc service.PetService
}

// NewPetHandler creates a PetHandler.
func NewPetHandler(svc service.PetService) *PetHandler {
	return &PetHandler{svc: svc}
}

// SubmitPet handles POST /api/pets (multipart).
// Image files are saved under the configured upload directory and
// their public URLs stored on the listing.
func (h *PetHandler) SubmitPet(c *gin.Context) {
	var req request.SubmitPetRequest
	if err := c.ShouldBind(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	imageURLs, err := h.saveImages(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := h.svc.SubmitPet(middleware.GetPrincipal(c), req, imageURLs)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// ListPets handles GET /api/pets.
func (h *PetHandler) ListPets(c *gin.Context) {
	var req request.ListPetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.ListPets(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPetByID handles GET /api/pets/:id.
func (h *PetHandler) GetPetByID(c *gin.Context) {
	data, err := h.svc.GetPetByID(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// FeaturedPets handles GET /api/pets/featured.
func (h *PetHandler) FeaturedPets(c *gin.Context) {
	data, err := h.svc.FeaturedPets()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PendingSubmissions handles GET /api/pets/pending/submissions (admin).
func (h *PetHandler) PendingSubmissions(c *gin.Context) {
	var req request.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.PendingSubmissions(middleware.GetPrincipal(c), req.Page, req.Limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdatePetStatus handles PUT /api/pets/update-status (admin).
func (h *PetHandler) UpdatePetStatus(c *gin.Context) {
	var req request.UpdatePetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.UpdatePetStatus(middleware.GetPrincipal(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// saveImages writes uploaded image parts to the static upload dir and
// returns their public URLs. At most MAX_UPLOAD_FILES images of
// MAX_UPLOAD_FILE_SIZE bytes each; jpg/jpeg/png/gif only.
func (h *PetHandler) saveImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all; a listing without images is legal.
		return []string{}, nil
	}

	files := form.File["images"]
	if len(files) > constants.MAX_UPLOAD_FILES {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "at most %d images per submission", constants.MAX_UPLOAD_FILES)
	}

	conf := config.GetConfig()
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > constants.MAX_UPLOAD_FILE_SIZE {
			return nil, errorx.Newf(errorx.CodeInvalidParam, "image %s exceeds the size limit", file.Filename)
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		switch ext {
		case ".jpg", ".jpeg", ".png", ".gif":
		default:
			return nil, errorx.Newf(errorx.CodeInvalidParam, "unsupported image format %s", ext)
		}

		name := random.GetNowAndLenRandomString(16) + ext
		dst := filepath.Join(conf.UploadConfig.StaticUploadPath, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			return nil, errorx.Wrap(err, errorx.CodeServerBusy, "store image failed")
		}
		urls = append(urls, fmt.Sprintf("%s/static/uploads/%s", conf.UploadConfig.PublicBaseURL, name))
	}
	return urls, nil
}
