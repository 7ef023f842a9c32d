package services

import (
	"testing"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"github.com/stretchr/testify/require"
)

func TestRegisterOrganization(t *testing.T) {
	env := setupTestEnv(t)

	org, staff, err := env.auth.RegisterOrganization(&RegisterOrgReq{
		OrgName: "Acme", SpecialNumber: "123456",
		StaffName: "Admin", Email: "Admin@Acme.com", Password: "secret123",
	})
	require.NoError(t, err)
	require.Equal(t, "123456", org.SpecialNumber)
	require.Equal(t, org.ID, staff.OrgID)
	require.Equal(t, "admin@acme.com", staff.Email, "email is normalized")

	id, err := env.auth.Login("ADMIN@acme.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, entity.RoleStaff, id.Role)
	require.Equal(t, org.ID, id.OrgID)
}

func TestRegisterOrganization_SpecialNumberFormat(t *testing.T) {
	env := setupTestEnv(t)

	for _, bad := range []string{"", "12345", "1234567", "12345a", "12 456"} {
		_, _, err := env.auth.RegisterOrganization(&RegisterOrgReq{
			OrgName: "Acme", SpecialNumber: bad,
			StaffName: "Admin", Email: "admin@acme.com", Password: "secret123",
		})
		require.Error(t, err, "special number %q must be rejected", bad)
	}
}

func TestRegisterOrganization_DuplicateSpecialNumber(t *testing.T) {
	env := setupTestEnv(t)
	seedOrg(t, env, "Acme", "111111", "1")

	_, _, err := env.auth.RegisterOrganization(&RegisterOrgReq{
		OrgName: "Copycat", SpecialNumber: "111111",
		StaffName: "Admin", Email: "copy@test.com", Password: "secret123",
	})
	require.Error(t, err)
}

func TestRegisterOrganization_EmailTakenByAnyRole(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	for _, email := range []string{emp.Email, vendor.Email} {
		_, _, err := env.auth.RegisterOrganization(&RegisterOrgReq{
			OrgName: "Other", SpecialNumber: "999999",
			StaffName: "Admin", Email: email, Password: "secret123",
		})
		require.Error(t, err)
	}
}

func TestResolve_RolePerTable(t *testing.T) {
	env := setupTestEnv(t)
	org, staff, emp, vendor := seedOrg(t, env, "Acme", "111111", "1")

	for email, role := range map[string]string{
		staff.Email:  entity.RoleStaff,
		emp.Email:    entity.RoleEmployee,
		vendor.Email: entity.RoleVendor,
	} {
		id, err := env.auth.Resolve(email)
		require.NoError(t, err)
		require.Equal(t, role, id.Role)
		require.Equal(t, org.ID, id.OrgID)
	}

	_, err := env.auth.Resolve("nobody@test.com")
	require.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, _ := seedOrg(t, env, "Acme", "111111", "1")

	_, err := env.auth.Login(staff.Email, "wrong")
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, _ := seedOrg(t, env, "Acme", "111111", "1")

	require.Error(t, env.auth.ChangePassword(emp.Email, "wrong", "newsecret"))
	require.Error(t, env.auth.ChangePassword(emp.Email, "secret123", "short"))

	require.NoError(t, env.auth.ChangePassword(emp.Email, "secret123", "newsecret"))
	_, err := env.auth.Login(emp.Email, "secret123")
	require.Error(t, err)
	id, err := env.auth.Login(emp.Email, "newsecret")
	require.NoError(t, err)
	require.Equal(t, entity.RoleEmployee, id.Role)
}
