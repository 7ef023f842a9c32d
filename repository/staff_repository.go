package repository

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) Create(tx *gorm.DB, s *entity.OrganizationStaff) error {
	return tx.Create(s).Error
}

func (r *StaffRepository) FindByID(id uint) (*entity.OrganizationStaff, error) {
	var s entity.OrganizationStaff
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) ListByOrg(orgID uint) ([]entity.OrganizationStaff, error) {
	var out []entity.OrganizationStaff
	err := r.DB.Where("org_id = ?", orgID).Order("id").Find(&out).Error
	return out, err
}

func (r *StaffRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.OrganizationStaff{}).Where("id = ?", id).Updates(updates).Error
}

func (r *StaffRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.OrganizationStaff{}, id).Error
}
