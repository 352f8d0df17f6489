package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedOwner creates the first owner account from env so a fresh
// database is usable right away.
func SeedOwner() error {
	db := DB()
	email := getEnv("OWNER_EMAIL", "")
	pass := getEnv("OWNER_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding owner: missing OWNER_EMAIL/OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Account{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("owner already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	account := entity.Account{Email: email, Password: string(hash), Role: "owner"}
	if err := db.Create(&account).Error; err != nil {
		return err
	}
	owner := entity.Owner{
		RestaurantName: getEnv("OWNER_RESTAURANT", "My Restaurant"),
		AccountID:      account.ID,
	}
	return db.Create(&owner).Error
}

// SeedLookups inserts the status rows every deployment needs.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{"Available", "Occupied", "Reserved"} {
		db.FirstOrCreate(&entity.TableStatus{}, entity.TableStatus{StatusName: name})
	}

	for _, name := range []string{
		entity.StatusPlaced, entity.StatusConfirmed, entity.StatusPreparing,
		entity.StatusReady, entity.StatusDelivered, entity.StatusCancelled,
	} {
		db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name})
	}

	return nil
}
