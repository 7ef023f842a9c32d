package repository

import (
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) Create(emp *entity.Employee) error {
	return r.DB.Create(emp).Error
}

func (r *EmployeeRepository) FindByID(id uint) (*entity.Employee, error) {
	var emp entity.Employee
	if err := r.DB.First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) ListByOrg(orgID uint) ([]entity.Employee, error) {
	var out []entity.Employee
	err := r.DB.Where("org_id = ?", orgID).Order("id").Find(&out).Error
	return out, err
}

func (r *EmployeeRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", id).Updates(updates).Error
}

func (r *EmployeeRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Employee{}, id).Error
}

// SetBalance writes an absolute value. Last write wins; the staff UI sends
// the precomputed new balance.
func (r *EmployeeRepository) SetBalance(id uint, balance float64) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", id).Update("balance", balance).Error
}

// AddToBalance adjusts the balance atomically inside a transaction. Used by
// order placement (debit) and cancellation acceptance (credit).
func (r *EmployeeRepository) AddToBalance(tx *gorm.DB, id uint, delta float64) error {
	return tx.Model(&entity.Employee{}).Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}
