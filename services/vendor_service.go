package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

type VendorService struct {
	Auth *AuthService
	Repo *repository.VendorRepository
}

func NewVendorService(auth *AuthService, repo *repository.VendorRepository) *VendorService {
	return &VendorService{Auth: auth, Repo: repo}
}

type CreateVendorReq struct {
	UserEmail string   `json:"user_email" binding:"required,email"`
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (s *VendorService) Create(req *CreateVendorReq) (*entity.Vendor, error) {
	caller, err := s.Auth.ResolveRole(req.UserEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)
	taken, err := s.Auth.Accounts.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	v := &entity.Vendor{
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		OrgID:     caller.OrgID,
	}
	if err := s.Repo.Create(v); err != nil {
		return nil, err
	}
	return v, nil
}

// List serves both staff management and employee browsing: any resolved
// member of the org may see its vendors.
func (s *VendorService) List(userEmail string) ([]entity.Vendor, error) {
	caller, err := s.Auth.Resolve(userEmail)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOrg(caller.OrgID)
}

func (s *VendorService) sameOrgVendor(userEmail string, vendorID uint) (*entity.Vendor, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	v, err := s.Repo.FindByID(vendorID)
	if err != nil {
		return nil, errors.New("vendor not found")
	}
	if v.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}
	return v, nil
}

type UpdateVendorReq struct {
	UserEmail string   `json:"user_email" binding:"required,email"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (s *VendorService) Update(vendorID uint, req *UpdateVendorReq) (*entity.Vendor, error) {
	if _, err := s.sameOrgVendor(req.UserEmail, vendorID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(vendorID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(vendorID)
}

func (s *VendorService) Delete(userEmail string, vendorID uint) error {
	if _, err := s.sameOrgVendor(userEmail, vendorID); err != nil {
		return err
	}
	return s.Repo.Delete(vendorID)
}
