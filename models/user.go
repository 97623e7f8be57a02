package models

import (
	"server/db"
	"server/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string    `gorm:"type:varchar(128)"`
	PassSalt  string    `gorm:"type:varchar(200)"`
	DiscordID string    `gorm:"type:varchar(32)"` // Discord member id, may be empty
	Abilities []Ability `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

const saltSize = 60

func UserCreate(name, email, plainTextPassword string) (u User, err error) {
	u.Email = email
	u.Name = name
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

func UserLogin(email, plainTextPassword string) (u User, success bool) {
	result := db.Instance.Preload("Abilities").First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func (u *User) GrantAbility(name string) error {
	return db.Instance.Create(&Ability{UserID: u.ID, Name: name}).Error
}

func (u *User) HasAbility(name string) bool {
	for _, ability := range u.Abilities {
		if ability.Name == name {
			return true
		}
	}
	return false
}

func (u *User) GetAbilities() []string {
	abilities := []string{}
	for _, ability := range u.Abilities {
		abilities = append(abilities, ability.Name)
	}
	return abilities
}
