package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// EmployeeService covers the staff-side employee management: CRUD plus the
// balance write. Every operation re-resolves the caller and checks the
// target belongs to the same organization.
type EmployeeService struct {
	Auth *AuthService
	Repo *repository.EmployeeRepository
}

func NewEmployeeService(auth *AuthService, repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{Auth: auth, Repo: repo}
}

type CreateEmployeeReq struct {
	UserEmail     string  `json:"user_email" binding:"required,email"`
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	Phone         string  `json:"phone"`
	SpecialNumber string  `json:"specialNumber"`
	Balance       float64 `json:"balance"`
}

func (s *EmployeeService) Create(req *CreateEmployeeReq) (*entity.Employee, error) {
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

	emp := &entity.Employee{
		Name:          req.Name,
		Email:         email,
		Password:      string(hashed),
		Phone:         req.Phone,
		SpecialNumber: req.SpecialNumber,
		Balance:       req.Balance,
		OrgID:         caller.OrgID,
	}
	if err := s.Repo.Create(emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *EmployeeService) List(userEmail string) ([]entity.Employee, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOrg(caller.OrgID)
}

type UpdateEmployeeReq struct {
	UserEmail     string `json:"user_email" binding:"required,email"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	SpecialNumber string `json:"specialNumber"`
}

// sameOrgEmployee loads the target and enforces the tenancy check shared by
// update, delete and balance writes.
func (s *EmployeeService) sameOrgEmployee(userEmail string, employeeID uint) (*entity.Employee, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	emp, err := s.Repo.FindByID(employeeID)
	if err != nil {
		return nil, errors.New("employee not found")
	}
	if emp.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}
	return emp, nil
}

func (s *EmployeeService) Update(employeeID uint, req *UpdateEmployeeReq) (*entity.Employee, error) {
	if _, err := s.sameOrgEmployee(req.UserEmail, employeeID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.SpecialNumber != "" {
		updates["special_number"] = req.SpecialNumber
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(employeeID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(employeeID)
}

func (s *EmployeeService) Delete(userEmail string, employeeID uint) error {
	if _, err := s.sameOrgEmployee(userEmail, employeeID); err != nil {
		return err
	}
	return s.Repo.Delete(employeeID)
}

// SetBalance writes the absolute value sent by the staff UI.
func (s *EmployeeService) SetBalance(userEmail string, employeeID uint, balance float64) (*entity.Employee, error) {
	if _, err := s.sameOrgEmployee(userEmail, employeeID); err != nil {
		return nil, err
	}
	if err := s.Repo.SetBalance(employeeID, balance); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(employeeID)
}
