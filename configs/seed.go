package configs

import (
	"log"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// SeedOrganization creates a first organization + staff login when the env
// vars are set and the email is not taken yet.
func SeedOrganization(cfg *Config) error {
	if cfg.SeedStaffEmail == "" || cfg.SeedStaffPassword == "" || cfg.SeedOrgName == "" {
		log.Println("skip seeding: missing SEED_ORG_NAME/SEED_STAFF_EMAIL/SEED_STAFF_PASSWORD")
		return nil
	}
	if !utils.IsSpecialNumber(cfg.SeedSpecialNumber) {
		log.Println("skip seeding: SEED_ORG_SPECIAL_NUMBER must be 6 digits")
		return nil
	}

	email := utils.NormalizeEmail(cfg.SeedStaffEmail)
	var count int64
	db.Model(&entity.OrganizationStaff{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("seed staff already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.SeedStaffPassword), bcrypt.DefaultCost)
	org := entity.Organization{Name: cfg.SeedOrgName, SpecialNumber: cfg.SeedSpecialNumber}
	if err := db.Create(&org).Error; err != nil {
		return err
	}
	staff := entity.OrganizationStaff{
		Name:     cfg.SeedStaffName,
		Email:    email,
		Password: string(hash),
		OrgID:    org.ID,
	}
	return db.Create(&staff).Error
}
