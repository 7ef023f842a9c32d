package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// ImportService is the CSV bulk importer. Parsing is deliberately naive:
// rows split on newline, fields on comma, no quoting. Rows that fail
// validation are skipped and reported; the import is not transactional, so
// partial success is the normal outcome.
type ImportService struct {
	Auth      *AuthService
	Employees *repository.EmployeeRepository
	Vendors   *repository.VendorRepository
	Staff     *repository.StaffRepository
	Menu      *repository.MenuRepository
}

func NewImportService(
	auth *AuthService,
	employees *repository.EmployeeRepository,
	vendors *repository.VendorRepository,
	staff *repository.StaffRepository,
	menu *repository.MenuRepository,
) *ImportService {
	return &ImportService{Auth: auth, Employees: employees, Vendors: vendors, Staff: staff, Menu: menu}
}

const (
	ImportEmployees = "employees"
	ImportVendors   = "vendors"
	ImportStaff     = "staff"
	ImportMenuItems = "menu_items"
)

type ImportReq struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	Type      string `json:"type" binding:"required"`
	Data      string `json:"data" binding:"required"`
	VendorID  uint   `json:"vendorId"` // required for menu_items
}

type ImportedRow struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type ImportResult struct {
	Count    int           `json:"count"`
	Errors   []string      `json:"errors"`
	Imported []ImportedRow `json:"imported"`
}

// Import processes the raw CSV text row by row. The first line is the
// header and is skipped.
func (s *ImportService) Import(req *ImportReq) (*ImportResult, error) {
	caller, err := s.Auth.ResolveRole(req.UserEmail, entity.RoleStaff)
	if err != nil {
		return nil, err
	}

	switch req.Type {
	case ImportEmployees, ImportVendors, ImportStaff, ImportMenuItems:
	default:
		return nil, errors.New("unknown import type")
	}
	if req.Type == ImportMenuItems {
		if req.VendorID == 0 {
			return nil, errors.New("vendorId is required for menu item import")
		}
		v, err := s.Vendors.FindByID(req.VendorID)
		if err != nil {
			return nil, errors.New("vendor not found")
		}
		if v.OrgID != caller.OrgID {
			return nil, errors.New("forbidden")
		}
	}

	res := &ImportResult{Errors: []string{}, Imported: []ImportedRow{}}
	lines := strings.Split(strings.ReplaceAll(req.Data, "\r\n", "\n"), "\n")
	rowNum := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rowNum++
		if rowNum == 1 {
			continue // header
		}
		fields := strings.Split(line, ",")
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
		}

		var row ImportedRow
		var rowErr error
		if req.Type == ImportMenuItems {
			row, rowErr = s.importMenuItem(caller, req.VendorID, fields)
		} else {
			row, rowErr = s.importAccount(caller, req.Type, fields)
		}
		if rowErr != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", i+1, rowErr))
			continue
		}
		res.Count++
		res.Imported = append(res.Imported, row)
	}
	return res, nil
}

// importAccount handles employees, vendors and staff: name,email,password[,phone]
func (s *ImportService) importAccount(caller *repository.Identity, typ string, fields []string) (ImportedRow, error) {
	if len(fields) < 3 {
		return ImportedRow{}, errors.New("name, email and password are required")
	}
	name, email, password := fields[0], utils.NormalizeEmail(fields[1]), fields[2]
	phone := ""
	if len(fields) > 3 {
		phone = fields[3]
	}
	if name == "" || email == "" || password == "" {
		return ImportedRow{}, errors.New("name, email and password are required")
	}

	// same cross-table rule as the single-create endpoints
	taken, err := s.Auth.Accounts.EmailTaken(email)
	if err != nil {
		return ImportedRow{}, err
	}
	if taken {
		return ImportedRow{}, fmt.Errorf("email %s already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ImportedRow{}, errors.New("hash password failed")
	}

	switch typ {
	case ImportEmployees:
		emp := &entity.Employee{Name: name, Email: email, Password: string(hashed), Phone: phone, OrgID: caller.OrgID}
		if err := s.Employees.Create(emp); err != nil {
			return ImportedRow{}, err
		}
		return ImportedRow{ID: emp.ID, Name: emp.Name, Email: emp.Email}, nil
	case ImportVendors:
		v := &entity.Vendor{Name: name, Email: email, Password: string(hashed), Phone: phone, OrgID: caller.OrgID}
		if err := s.Vendors.Create(v); err != nil {
			return ImportedRow{}, err
		}
		return ImportedRow{ID: v.ID, Name: v.Name, Email: v.Email}, nil
	default:
		member := &entity.OrganizationStaff{Name: name, Email: email, Password: string(hashed), Phone: phone, OrgID: caller.OrgID}
		if err := s.Staff.Create(s.Auth.DB, member); err != nil {
			return ImportedRow{}, err
		}
		return ImportedRow{ID: member.ID, Name: member.Name, Email: member.Email}, nil
	}
}

// importMenuItem: name,price[,description]
func (s *ImportService) importMenuItem(caller *repository.Identity, vendorID uint, fields []string) (ImportedRow, error) {
	if len(fields) < 2 {
		return ImportedRow{}, errors.New("name and price are required")
	}
	name := fields[0]
	if name == "" {
		return ImportedRow{}, errors.New("name and price are required")
	}
	price, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || price < 0 {
		return ImportedRow{}, errors.New("price must be a non-negative number")
	}
	description := ""
	if len(fields) > 2 {
		description = fields[2]
	}

	m := &entity.MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Status:      entity.MenuItemActive,
		VendorID:    vendorID,
		OrgID:       caller.OrgID,
	}
	if err := s.Menu.Create(m); err != nil {
		return ImportedRow{}, err
	}
	return ImportedRow{ID: m.ID, Name: m.Name}, nil
}

// Template returns the literal CSV template text for an entity type.
func Template(typ string) (string, error) {
	switch typ {
	case ImportEmployees:
		return "name,email,password,phone\nAsha Rao,asha@example.com,changeme,9000000001\n", nil
	case ImportVendors:
		return "name,email,password,phone\nChaat Corner,chaat@example.com,changeme,9000000002\n", nil
	case ImportStaff:
		return "name,email,password,phone\nRavi Menon,ravi@example.com,changeme,9000000003\n", nil
	case ImportMenuItems:
		return "name,price,description\nMasala Dosa,80,Crisp dosa with potato filling\n", nil
	}
	return "", errors.New("unknown import type")
}
