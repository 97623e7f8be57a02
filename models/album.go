package models

import (
	"server/db"

	"gorm.io/gorm"
)

type Album struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Name      string `gorm:"type:varchar(300);not null"`
	Slug      string `gorm:"type:varchar(100);not null;index:uniq_slug,unique"`
	Private   bool   `gorm:"not null;default:false"`
	Community bool   `gorm:"not null;default:false"`
	ChannelID string `gorm:"type:varchar(32);not null"` // set once, when the Discord channel is created
	UserID    uint64 `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AlbumInfo is the external JSON shape of an album. Private is a pointer so
// listing modes that exclude the flag can omit it entirely.
type AlbumInfo struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Private       *bool  `json:"private,omitempty"`
	PicturesCount *int64 `json:"picturesCount,omitempty"`
}

// Community albums live in a shared space and cannot be private
func (a *Album) BeforeSave(tx *gorm.DB) error {
	if a.Community {
		a.Private = false
	}
	return nil
}

// PicturesCount is always counted, never stored, so it cannot drift
func (a *Album) PicturesCount() (int64, error) {
	var count int64
	err := db.Instance.Model(&Picture{}).Where("album_id = ?", a.ID).Count(&count).Error
	return count, err
}

func (a *Album) Info() AlbumInfo {
	private := a.Private
	return AlbumInfo{
		ID:      a.ID,
		Name:    a.Name,
		Slug:    a.Slug,
		Private: &private,
	}
}

func AlbumFindByID(id uint64) (album Album, err error) {
	// createdBy is needed by the access policy on every load
	err = db.Instance.Preload("User").First(&album, id).Error
	return
}
