package models

// Named abilities granted to users
const (
	AbilityAlbumAdmin  = "album-admin"  // full access to every album, including private ones
	AbilityManageAlbum = "manage-album" // may update/delete albums (own records, or any with album-admin)
)

type Ability struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:user_ability,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name      string `gorm:"type:varchar(50);index:user_ability,unique"`
}
