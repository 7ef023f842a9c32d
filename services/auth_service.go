package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login, password changes and the email
// resolver every privileged operation goes through. There are no sessions
// or tokens: callers send their email with each request and it is
// re-resolved against the three role tables every time.
type AuthService struct {
	DB       *gorm.DB
	Accounts *repository.AccountRepository
	Orgs     *repository.OrganizationRepository
	Staff    *repository.StaffRepository
}

func NewAuthService(
	db *gorm.DB,
	accounts *repository.AccountRepository,
	orgs *repository.OrganizationRepository,
	staff *repository.StaffRepository,
) *AuthService {
	return &AuthService{DB: db, Accounts: accounts, Orgs: orgs, Staff: staff}
}

// Resolve maps an email to its role and organization.
func (s *AuthService) Resolve(email string) (*repository.Identity, error) {
	return s.Accounts.Resolve(utils.NormalizeEmail(email))
}

// ResolveRole is Resolve plus a role requirement.
func (s *AuthService) ResolveRole(email, role string) (*repository.Identity, error) {
	id, err := s.Resolve(email)
	if err != nil {
		return nil, err
	}
	if id.Role != role {
		return nil, errors.New("forbidden")
	}
	return id, nil
}

// ----- Registration -----

type RegisterOrgReq struct {
	OrgName       string   `json:"orgName" binding:"required"`
	SpecialNumber string   `json:"specialNumber" binding:"required"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	StaffName     string   `json:"staffName" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Password      string   `json:"password" binding:"required,min=6"`
	Phone         string   `json:"phone"`
}

// RegisterOrganization creates the tenant root plus its first staff member.
func (s *AuthService) RegisterOrganization(req *RegisterOrgReq) (*entity.Organization, *entity.OrganizationStaff, error) {
	if !utils.IsSpecialNumber(req.SpecialNumber) {
		return nil, nil, errors.New("special number must be exactly 6 digits")
	}
	taken, err := s.Orgs.SpecialNumberTaken(req.SpecialNumber, 0)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, errors.New("special number already in use")
	}

	email := utils.NormalizeEmail(req.Email)
	taken, err = s.Accounts.EmailTaken(email)
	if err != nil {
		return nil, nil, err
	}
	if taken {
		return nil, nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.New("hash password failed")
	}

	org := &entity.Organization{
		Name:          req.OrgName,
		SpecialNumber: req.SpecialNumber,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	staff := &entity.OrganizationStaff{
		Name:     req.StaffName,
		Email:    email,
		Password: string(hashed),
		Phone:    req.Phone,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Orgs.Create(tx, org); err != nil {
			return err
		}
		staff.OrgID = org.ID
		return s.Staff.Create(tx, staff)
	})
	if err != nil {
		return nil, nil, err
	}
	return org, staff, nil
}

// ----- Login -----

// Login verifies the password and hands back the resolved identity. The
// client stores it and replays the email on later requests.
func (s *AuthService) Login(email, password string) (*repository.Identity, error) {
	id, err := s.Resolve(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(id.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	return id, nil
}

// ----- Password change -----

func (s *AuthService) ChangePassword(email, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	id, err := s.Resolve(email)
	if err != nil {
		return errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(id.Password), []byte(oldPassword)); err != nil {
		return errors.New("invalid credentials")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.Accounts.UpdatePassword(id, string(hashed))
}
