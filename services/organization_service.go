package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"
)

type OrganizationService struct {
	Auth *AuthService
	Repo *repository.OrganizationRepository
}

func NewOrganizationService(auth *AuthService, repo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{Auth: auth, Repo: repo}
}

// Get returns the caller's own organization, whatever their role.
func (s *OrganizationService) Get(userEmail string) (*entity.Organization, error) {
	caller, err := s.Auth.Resolve(userEmail)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(caller.OrgID)
}

type UpdateOrganizationReq struct {
	UserEmail     string   `json:"user_email" binding:"required,email"`
	Name          string   `json:"name"`
	SpecialNumber string   `json:"specialNumber"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

func (s *OrganizationService) Update(req *UpdateOrganizationReq) (*entity.Organization, error) {
	caller, err := s.Auth.ResolveRole(req.UserEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.SpecialNumber != "" {
		if !utils.IsSpecialNumber(req.SpecialNumber) {
			return nil, errors.New("special number must be exactly 6 digits")
		}
		taken, err := s.Repo.SpecialNumberTaken(req.SpecialNumber, caller.OrgID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.New("special number already in use")
		}
		updates["special_number"] = req.SpecialNumber
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(caller.OrgID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(caller.OrgID)
}
