package repository

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

// Identity is the resolver result: who the email belongs to, and where.
type Identity struct {
	ID       uint
	Role     string
	OrgID    uint
	Name     string
	Email    string
	Password string
}

var ErrUnknownEmail = errors.New("unknown email")

// AccountRepository answers cross-table account questions: which of the
// three role tables an email lives in, and whether an email is taken at all.
type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// Resolve probes organization_staff, then employees, then vendors, and
// returns the first match. Probe order is fixed; every privileged request
// goes through here.
func (r *AccountRepository) Resolve(email string) (*Identity, error) {
	var staff entity.OrganizationStaff
	err := r.DB.Where("email = ?", email).First(&staff).Error
	if err == nil {
		return &Identity{
			ID: staff.ID, Role: entity.RoleStaff, OrgID: staff.OrgID,
			Name: staff.Name, Email: staff.Email, Password: staff.Password,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var emp entity.Employee
	err = r.DB.Where("email = ?", email).First(&emp).Error
	if err == nil {
		return &Identity{
			ID: emp.ID, Role: entity.RoleEmployee, OrgID: emp.OrgID,
			Name: emp.Name, Email: emp.Email, Password: emp.Password,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var vendor entity.Vendor
	err = r.DB.Where("email = ?", email).First(&vendor).Error
	if err == nil {
		return &Identity{
			ID: vendor.ID, Role: entity.RoleVendor, OrgID: vendor.OrgID,
			Name: vendor.Name, Email: vendor.Email, Password: vendor.Password,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return nil, ErrUnknownEmail
}

// EmailTaken checks all three role tables. Emails are unique across the
// whole system, not per table.
func (r *AccountRepository) EmailTaken(email string) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.OrganizationStaff{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.DB.Model(&entity.Employee{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := r.DB.Model(&entity.Vendor{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePassword writes the new hash into whichever table the identity
// came from.
func (r *AccountRepository) UpdatePassword(id *Identity, hashed string) error {
	switch id.Role {
	case entity.RoleStaff:
		return r.DB.Model(&entity.OrganizationStaff{}).Where("id = ?", id.ID).Update("password", hashed).Error
	case entity.RoleEmployee:
		return r.DB.Model(&entity.Employee{}).Where("id = ?", id.ID).Update("password", hashed).Error
	case entity.RoleVendor:
		return r.DB.Model(&entity.Vendor{}).Where("id = ?", id.ID).Update("password", hashed).Error
	}
	return errors.New("unknown role")
}
