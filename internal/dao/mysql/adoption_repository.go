package mysql

import (
	"petlify_server/internal/model"

	"gorm.io/gorm"
)

// adoptionRequestRepository implements AdoptionRequestRepository.
type adoptionRequestRepository struct {
	db *gorm.DB
}

// NewAdoptionRequestRepository creates an AdoptionRequestRepository instance.
func NewAdoptionRequestRepository(db *gorm.DB) AdoptionRequestRepository {
	return &adoptionRequestRepository{db: db}
}

// Create persists a new request. A concurrent duplicate for the same
// (pet, user) pair trips the idx_pet_user_active unique index and comes
// back as a conflict error, indistinguishable from the service-level
// pre-check to callers.
func (r *adoptionRequestRepository) Create(req *model.AdoptionRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return wrapDBError(err, "you have already submitted a request for this pet")
	}
	return nil
}

func (r *adoptionRequestRepository) FindByUuid(uuid string) (*model.AdoptionRequest, error) {
	var req model.AdoptionRequest
	if err := r.db.First(&req, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find adoption request uuid=%s", uuid)
	}
	return &req, nil
}

// FindActiveByPetAndUser resolves against the composite index, so the
// lookup stays O(log n) regardless of table size.
func (r *adoptionRequestRepository) FindActiveByPetAndUser(petUuid, userUuid string) (*model.AdoptionRequest, error) {
	var req model.AdoptionRequest
	err := r.db.Where("pet_uuid = ? AND user_uuid = ? AND active IS NOT NULL", petUuid, userUuid).
		First(&req).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "find active request pet=%s user=%s", petUuid, userUuid)
	}
	return &req, nil
}

// listPage runs a filtered, paginated query ordered by creation time
// descending with uuid ascending as the deterministic tie-break.
func (r *adoptionRequestRepository) listPage(where func(*gorm.DB) *gorm.DB, page, pageSize int) ([]model.AdoptionRequest, int64, error) {
	offset, limit := NormalizePage(page, pageSize)

	var total int64
	if err := where(r.db.Model(&model.AdoptionRequest{})).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count adoption requests")
	}

	var reqs []model.AdoptionRequest
	err := where(r.db.Model(&model.AdoptionRequest{})).
		Order("created_at DESC, uuid ASC").
		Offset(offset).
		Limit(limit).
		Find(&reqs).Error
	if err != nil {
		return nil, 0, wrapDBError(err, "list adoption requests")
	}
	return reqs, total, nil
}

func (r *adoptionRequestRepository) ListByUser(userUuid string, page, pageSize int) ([]model.AdoptionRequest, int64, error) {
	return r.listPage(func(db *gorm.DB) *gorm.DB {
		return db.Where("user_uuid = ?", userUuid)
	}, page, pageSize)
}

func (r *adoptionRequestRepository) ListByStatus(status string, page, pageSize int) ([]model.AdoptionRequest, int64, error) {
	return r.listPage(func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	}, page, pageSize)
}

func (r *adoptionRequestRepository) ListAll(page, pageSize int) ([]model.AdoptionRequest, int64, error) {
	return r.listPage(func(db *gorm.DB) *gorm.DB { return db }, page, pageSize)
}

// UpdateStatus overwrites the status and keeps the duplicate guard in
// step (NULL once terminal, 1 otherwise). Two concurrent admin updates
// are last-writer-wins.
func (r *adoptionRequestRepository) UpdateStatus(uuid, status string) (*model.AdoptionRequest, error) {
	var req model.AdoptionRequest
	if err := r.db.First(&req, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find adoption request uuid=%s", uuid)
	}
	req.Status = status
	req.Active = model.ActiveGuard(status)
	// A map update so the nil guard reaches the database as NULL;
	// struct-based Updates would skip the zero-valued field.
	err := r.db.Model(&req).
		Select("status", "active", "updated_at").
		Updates(map[string]interface{}{"status": req.Status, "active": req.Active}).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "update adoption request status uuid=%s", uuid)
	}
	// Re-read so the caller sees the refreshed updated_at.
	if err := r.db.First(&req, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "reload adoption request uuid=%s", uuid)
	}
	return &req, nil
}
