package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
)

// MenuService handles the vendor-side menu CRUD and employee browsing.
type MenuService struct {
	Auth    *AuthService
	Repo    *repository.MenuRepository
	Vendors *repository.VendorRepository
}

func NewMenuService(auth *AuthService, repo *repository.MenuRepository, vendors *repository.VendorRepository) *MenuService {
	return &MenuService{Auth: auth, Repo: repo, Vendors: vendors}
}

type CreateMenuItemReq struct {
	UserEmail   string  `json:"user_email" binding:"required,email"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	caller, err := s.Auth.ResolveRole(req.UserEmail, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, errors.New("price must be non-negative")
	}
	status := req.Status
	if status == "" {
		status = entity.MenuItemActive
	}
	if status != entity.MenuItemActive && status != entity.MenuItemInactive {
		return nil, errors.New("invalid status")
	}

	m := &entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Status:      status,
		VendorID:    caller.ID,
		OrgID:       caller.OrgID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListOwn returns the vendor's full menu, inactive items included.
func (s *MenuService) ListOwn(userEmail string) ([]entity.MenuItem, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByVendor(caller.ID, false)
}

// Browse returns a vendor's active menu to an employee of the same org.
func (s *MenuService) Browse(userEmail string, vendorID uint) ([]entity.MenuItem, error) {
	caller, err := s.Auth.Resolve(userEmail)
	if err != nil {
		return nil, err
	}
	v, err := s.Vendors.FindByID(vendorID)
	if err != nil {
		return nil, errors.New("vendor not found")
	}
	if v.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}
	return s.Repo.ListByVendor(vendorID, true)
}

func (s *MenuService) ownMenuItem(userEmail string, itemID uint) (*entity.MenuItem, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	m, err := s.Repo.FindByID(itemID)
	if err != nil {
		return nil, errors.New("menu item not found")
	}
	if m.VendorID != caller.ID || m.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}
	return m, nil
}

type UpdateMenuItemReq struct {
	UserEmail   string   `json:"user_email" binding:"required,email"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
	Price       *float64 `json:"price"`
	Status      string   `json:"status"`
}

func (s *MenuService) Update(itemID uint, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	if _, err := s.ownMenuItem(req.UserEmail, itemID); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.New("price must be non-negative")
		}
		updates["price"] = *req.Price
	}
	if req.Status != "" {
		if req.Status != entity.MenuItemActive && req.Status != entity.MenuItemInactive {
			return nil, errors.New("invalid status")
		}
		updates["status"] = req.Status
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(itemID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(itemID)
}

func (s *MenuService) Delete(userEmail string, itemID uint) error {
	if _, err := s.ownMenuItem(userEmail, itemID); err != nil {
		return err
	}
	return s.Repo.Delete(itemID)
}
