package services

import (
	"testing"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"github.com/stretchr/testify/require"
)

func TestImport_EmployeesPartialSuccess(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, emp, _ := seedOrg(t, env, "Acme", "111111", "1")

	// 3 valid rows, 2 invalid (missing password, duplicate email)
	data := "name,email,password,phone\n" +
		"Asha Rao,asha@test.com,changeme,9000000001\n" +
		"Broken Row,broken@test.com\n" +
		"Ravi Menon,ravi@test.com,changeme\n" +
		"Dup Row," + emp.Email + ",changeme\n" +
		"Lata Iyer,lata@test.com,changeme,9000000002\n"

	res, err := env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: ImportEmployees, Data: data,
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	require.Len(t, res.Errors, 2)
	require.Len(t, res.Imported, 3)

	// valid rows persisted despite the failures in between
	var count int64
	env.db.Model(&entity.Employee{}).Where("email IN ?", []string{"asha@test.com", "ravi@test.com", "lata@test.com"}).Count(&count)
	require.Equal(t, int64(3), count)
}

func TestImport_EmailUniqueAcrossRoleTables(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, vendor := seedOrg(t, env, "Acme", "111111", "1")

	// the vendor's email must be rejected even for an employee import
	data := "name,email,password\nSneaky," + vendor.Email + ",changeme\n"
	res, err := env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: ImportEmployees, Data: data,
	})
	require.NoError(t, err)
	require.Equal(t, 0, res.Count)
	require.Len(t, res.Errors, 1)
}

func TestImport_MenuItems(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, vendor := seedOrg(t, env, "Acme", "111111", "1")

	data := "name,price,description\n" +
		"Masala Dosa,80,Crisp dosa\n" +
		"Bad Price,free\n" +
		"Chai,20\n"

	res, err := env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: ImportMenuItems, Data: data, VendorID: vendor.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Len(t, res.Errors, 1)

	items, err := env.menu.ListOwn(vendor.Email)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, entity.MenuItemActive, items[0].Status)
}

func TestImport_MenuItemsNeedVendor(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, _ := seedOrg(t, env, "Acme", "111111", "1")
	_, _, _, foreignVendor := seedOrg(t, env, "Globex", "222222", "2")

	_, err := env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: ImportMenuItems, Data: "name,price\nChai,20\n",
	})
	require.Error(t, err)

	// vendor from another org is off limits
	_, err = env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: ImportMenuItems, Data: "name,price\nChai,20\n",
		VendorID: foreignVendor.ID,
	})
	require.Error(t, err)
}

func TestImport_OnlyStaffMayImport(t *testing.T) {
	env := setupTestEnv(t)
	_, _, emp, _ := seedOrg(t, env, "Acme", "111111", "1")

	_, err := env.importer.Import(&ImportReq{
		UserEmail: emp.Email, Type: ImportEmployees, Data: "name,email,password\nX,x@test.com,changeme\n",
	})
	require.Error(t, err)
}

func TestImport_UnknownType(t *testing.T) {
	env := setupTestEnv(t)
	_, staff, _, _ := seedOrg(t, env, "Acme", "111111", "1")

	_, err := env.importer.Import(&ImportReq{
		UserEmail: staff.Email, Type: "riders", Data: "name\n",
	})
	require.Error(t, err)
}

func TestTemplate(t *testing.T) {
	for _, typ := range []string{ImportEmployees, ImportVendors, ImportStaff, ImportMenuItems} {
		text, err := Template(typ)
		require.NoError(t, err)
		require.NotEmpty(t, text)
	}
	_, err := Template("riders")
	require.Error(t, err)
}
