package repository

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

type VendorRepository struct {
	DB *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) Create(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *VendorRepository) FindByID(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VendorRepository) ListByOrg(orgID uint) ([]entity.Vendor, error) {
	var out []entity.Vendor
	err := r.DB.Where("org_id = ?", orgID).Order("id").Find(&out).Error
	return out, err
}

func (r *VendorRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Vendor{}).Where("id = ?", id).Updates(updates).Error
}

func (r *VendorRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Vendor{}, id).Error
}
