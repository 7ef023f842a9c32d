package repository

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByVendor returns a vendor's menu. Employee browsing passes
// activeOnly=true so inactive items never show up.
func (r *MenuRepository) ListByVendor(vendorID uint, activeOnly bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Where("vendor_id = ?", vendorID)
	if activeOnly {
		q = q.Where("status = ?", entity.MenuItemActive)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *MenuRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// GetBasics loads just what placement needs (id, price, vendor, org, status).
func (r *MenuRepository) GetBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price, vendor_id, org_id, status").First(&m, id).Error
	return m, err
}
