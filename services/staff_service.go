package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// StaffService lets staff members manage each other.
type StaffService struct {
	Auth *AuthService
	Repo *repository.StaffRepository
}

func NewStaffService(auth *AuthService, repo *repository.StaffRepository) *StaffService {
	return &StaffService{Auth: auth, Repo: repo}
}

type CreateStaffReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
}

func (s *StaffService) Create(req *CreateStaffReq) (*entity.OrganizationStaff, error) {
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

	member := &entity.OrganizationStaff{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Phone:    req.Phone,
		OrgID:    caller.OrgID,
	}
	if err := s.Repo.Create(s.Auth.DB, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *StaffService) List(userEmail string) ([]entity.OrganizationStaff, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOrg(caller.OrgID)
}

type UpdateStaffReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

func (s *StaffService) sameOrgStaff(userEmail string, staffID uint) (*entity.OrganizationStaff, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	member, err := s.Repo.FindByID(staffID)
	if err != nil {
		return nil, errors.New("staff member not found")
	}
	if member.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}
	return member, nil
}

func (s *StaffService) Update(staffID uint, req *UpdateStaffReq) (*entity.OrganizationStaff, error) {
	if _, err := s.sameOrgStaff(req.UserEmail, staffID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(staffID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(staffID)
}

func (s *StaffService) Delete(userEmail string, staffID uint) error {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return err
	}
	if caller.ID == staffID {
		return errors.New("cannot delete yourself")
	}
	if _, err := s.sameOrgStaff(userEmail, staffID); err != nil {
		return err
	}
	return s.Repo.Delete(staffID)
}
