package models

type Picture struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	AlbumID   uint64 `gorm:"not null;index"`
	Album     Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserID    uint64 `gorm:"not null"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name      string `gorm:"type:varchar(300)"`
	MimeType  string `gorm:"type:varchar(50)"`
	Path      string `gorm:"type:varchar(500)"`
}
