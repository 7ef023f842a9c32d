package services

import (
	"testing"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	auth      *AuthService
	employees *EmployeeService
	vendors   *VendorService
	staff     *StaffService
	menu      *MenuService
	orders    *OrderService
	orgSvc    *OrganizationService
	importer  *ImportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// cache=shared keeps every pooled connection on the same in-memory
	// database; with a plain ":memory:" DSN each connection gets its own,
	// so queries outside a transaction would see empty tables.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Organization{}, &entity.OrganizationStaff{},
		&entity.Employee{}, &entity.Vendor{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	accounts := repository.NewAccountRepository(db)
	orgs := repository.NewOrganizationRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	auth := NewAuthService(db, accounts, orgs, staffRepo)
	return &testEnv{
		db:        db,
		auth:      auth,
		employees: NewEmployeeService(auth, empRepo),
		vendors:   NewVendorService(auth, vendorRepo),
		staff:     NewStaffService(auth, staffRepo),
		menu:      NewMenuService(auth, menuRepo, vendorRepo),
		orders:    NewOrderService(db, auth, orderRepo, menuRepo, empRepo, vendorRepo),
		orgSvc:    NewOrganizationService(auth, orgs),
		importer:  NewImportService(auth, empRepo, vendorRepo, staffRepo, menuRepo),
	}
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(h)
}

// seedOrg creates an organization with one staff member, one employee and
// one vendor, all sharing the password "secret123".
func seedOrg(t *testing.T, env *testEnv, name, specialNumber, suffix string) (*entity.Organization, *entity.OrganizationStaff, *entity.Employee, *entity.Vendor) {
	t.Helper()

	pw := hash(t, "secret123")
	org := &entity.Organization{Name: name, SpecialNumber: specialNumber}
	require.NoError(t, env.db.Create(org).Error)

	staff := &entity.OrganizationStaff{
		Name: "Staff " + suffix, Email: "staff" + suffix + "@test.com", Password: pw, OrgID: org.ID,
	}
	require.NoError(t, env.db.Create(staff).Error)

	emp := &entity.Employee{
		Name: "Employee " + suffix, Email: "emp" + suffix + "@test.com", Password: pw, OrgID: org.ID,
	}
	require.NoError(t, env.db.Create(emp).Error)

	vendor := &entity.Vendor{
		Name: "Vendor " + suffix, Email: "vendor" + suffix + "@test.com", Password: pw, OrgID: org.ID,
	}
	require.NoError(t, env.db.Create(vendor).Error)

	return org, staff, emp, vendor
}
