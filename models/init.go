package models

import (
	"math/rand"
	"server/db"
	"time"
)

func Init() {
	// Seed the random number generator - required for User.PassSalt
	rand.Seed(time.Now().UnixNano())

	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&Picture{})
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Ability{})
}
