package mysql

import (
	"petlify_server/internal/model"

	"gorm.io/gorm"
)

// petRepository implements PetRepository.
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a PetRepository instance.
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(pet *model.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return wrapDBError(err, "create pet")
	}
	return nil
}

func (r *petRepository) FindByUuid(uuid string) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.First(&pet, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find pet uuid=%s", uuid)
	}
	return &pet, nil
}

func (r *petRepository) FindByUuids(uuids []string) ([]model.Pet, error) {
	if len(uuids) == 0 {
		return []model.Pet{}, nil
	}
	var pets []model.Pet
	if err := r.db.Where("uuid IN ?", uuids).Find(&pets).Error; err != nil {
		return nil, wrapDBError(err, "batch find pets")
	}
	return pets, nil
}

// applyFilter builds the WHERE clause for a listing query.
func applyFilter(db *gorm.DB, filter PetListFilter) *gorm.DB {
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("name LIKE ? OR species LIKE ? OR breed LIKE ? OR description LIKE ?",
			like, like, like, like)
	}
	if filter.Species != "" {
		db = db.Where("species LIKE ?", "%"+filter.Species+"%")
	}
	switch filter.AgeBucket {
	case "young":
		db = db.Where("age <= ?", 2)
	case "adult":
		db = db.Where("age > ? AND age <= ?", 2, 7)
	case "senior":
		db = db.Where("age > ?", 7)
	}
	return db
}

func (r *petRepository) List(filter PetListFilter, page, pageSize int) ([]model.Pet, int64, error) {
	offset, limit := NormalizePage(page, pageSize)

	var total int64
	if err := applyFilter(r.db.Model(&model.Pet{}), filter).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count pets")
	}

	var pets []model.Pet
	err := applyFilter(r.db.Model(&model.Pet{}), filter).
		Order("created_at DESC, uuid ASC").
		Offset(offset).
		Limit(limit).
		Find(&pets).Error
	if err != nil {
		return nil, 0, wrapDBError(err, "list pets")
	}
	return pets, total, nil
}

func (r *petRepository) Featured(limit int) ([]model.Pet, error) {
	var pets []model.Pet
	err := r.db.Where("status = ?", model.PetStatusApproved).
		Order("created_at DESC, uuid ASC").
		Limit(limit).
		Find(&pets).Error
	if err != nil {
		return nil, wrapDBError(err, "featured pets")
	}
	return pets, nil
}

func (r *petRepository) UpdateStatus(uuid, status string) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.First(&pet, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "find pet uuid=%s", uuid)
	}
	pet.Status = status
	if err := r.db.Save(&pet).Error; err != nil {
		return nil, wrapDBErrorf(err, "update pet status uuid=%s", uuid)
	}
	return &pet, nil
}
