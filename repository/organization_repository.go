package repository

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) Create(tx *gorm.DB, org *entity.Organization) error {
	return tx.Create(org).Error
}

func (r *OrganizationRepository) FindByID(id uint) (*entity.Organization, error) {
	var org entity.Organization
	if err := r.DB.First(&org, id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Organization{}).Where("id = ?", id).Updates(updates).Error
}

// SpecialNumberTaken checks uniqueness, optionally excluding one org (for
// settings updates that keep the current number).
func (r *OrganizationRepository) SpecialNumberTaken(specialNumber string, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&entity.Organization{}).Where("special_number = ?", specialNumber)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
