package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateEmployee(t *testing.T) {
	env := setupTestEnv(t)
	org, staff, _, vendor := seedOrg(t, env, "Acme", "111111", "1")

	emp, err := env.employees.Create(&CreateEmployeeReq{
		UserEmail: staff.Email,
		Name:      "New Hire", Email: "HIRE@test.com", Password: "secret123",
		Balance: 100,
	})
	require.NoError(t, err)
	require.Equal(t, org.ID, emp.OrgID)
	require.Equal(t, "hire@test.com", emp.Email)
	require.Equal(t, float64(100), emp.Balance)

	// cross-table uniqueness
	_, err = env.employees.Create(&CreateEmployeeReq{
		UserEmail: staff.Email,
		Name:      "Dup", Email: vendor.Email, Password: "secret123",
	})
	require.Error(t, err)

	// only staff can create
	_, err = env.employees.Create(&CreateEmployeeReq{
		UserEmail: emp.Email,
		Name:      "Nope", Email: "nope@test.com", Password: "secret123",
	})
	require.Error(t, err)
}

func TestEmployeeTenancyChecks(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, _ := seedOrg(t, env, "Acme", "111111", "1")
	_, otherStaff, _, _ := seedOrg(t, env, "Globex", "222222", "2")

	// staff of another org cannot touch the employee
	_, err := env.employees.Update(emp.ID, &UpdateEmployeeReq{UserEmail: otherStaff.Email, Name: "Hacked"})
	require.Error(t, err)
	require.Error(t, env.employees.Delete(otherStaff.Email, emp.ID))
	_, err = env.employees.SetBalance(otherStaff.Email, emp.ID, 9999)
	require.Error(t, err)
	require.Equal(t, float64(0), employeeBalance(t, env, emp.ID))
}

func TestSetBalance_AbsoluteWrite(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, emp, _ := seedOrg(t, env, "Acme", "111111", "1")

	updated, err := env.employees.SetBalance(staff.Email, emp.ID, 250)
	require.NoError(t, err)
	require.Equal(t, float64(250), updated.Balance)

	// negative values are allowed, no floor
	updated, err = env.employees.SetBalance(staff.Email, emp.ID, -40)
	require.NoError(t, err)
	require.Equal(t, float64(-40), updated.Balance)
}

func TestMenuBrowse_ActiveOnlySameOrg(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")
	_, _, otherEmp, _ := seedOrg(t, env, "Globex", "222222", "2")

	active, err := env.menu.Create(&CreateMenuItemReq{
		UserEmail: vendor.Email, Name: "Dosa", Price: 80,
	})
	require.NoError(t, err)
	_, err = env.menu.Create(&CreateMenuItemReq{
		UserEmail: vendor.Email, Name: "Retired", Price: 10, Status: "inactive",
	})
	require.NoError(t, err)

	items, err := env.menu.Browse(emp.Email, vendor.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, active.ID, items[0].ID)

	// vendor sees the full menu
	own, err := env.menu.ListOwn(vendor.Email)
	require.NoError(t, err)
	require.Len(t, own, 2)

	// employee from another org is blocked
	_, err = env.menu.Browse(otherEmp.Email, vendor.ID)
	require.Error(t, err)
}

func TestOrganizationUpdate(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, _ := seedOrg(t, env, "Acme", "111111", "1")
	seedOrg(t, env, "Globex", "222222", "2")

	org, err := env.orgSvc.Update(&UpdateOrganizationReq{
		UserEmail: staff.Email, Name: "Acme Corp", SpecialNumber: "333333",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", org.Name)
	require.Equal(t, "333333", org.SpecialNumber)

	// collides with Globex
	_, err = env.orgSvc.Update(&UpdateOrganizationReq{
		UserEmail: staff.Email, SpecialNumber: "222222",
	})
	require.Error(t, err)

	_, err = env.orgSvc.Update(&UpdateOrganizationReq{
		UserEmail: staff.Email, SpecialNumber: "12ab56",
	})
	require.Error(t, err)
}
