package models

import (
	"errors"
	"os"
	"server/db"
	"testing"

	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	db.Init("", "file::memory:?cache=shared")
	Init()
	os.Exit(m.Run())
}

func TestAlbumCommunityForcesPublic(t *testing.T) {
	album := Album{
		Name:      "Community trips",
		Slug:      "community-trips",
		Private:   true,
		Community: true,
		ChannelID: "c1",
		UserID:    1,
	}
	if err := db.Instance.Create(&album).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	var stored Album
	if err := db.Instance.First(&stored, album.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Private {
		t.Errorf("community album was persisted as private")
	}
	if !stored.Community {
		t.Errorf("community flag lost")
	}
}

func TestAlbumSlugUnique(t *testing.T) {
	first := Album{Name: "Trip", Slug: "trip-unique", ChannelID: "c2", UserID: 1}
	if err := db.Instance.Create(&first).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	second := Album{Name: "Other trip", Slug: "trip-unique", ChannelID: "c3", UserID: 2}
	err := db.Instance.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate slug: got %v, want gorm.ErrDuplicatedKey", err)
	}
	// The first record must be unaffected
	var stored Album
	if err := db.Instance.First(&stored, first.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Name != "Trip" || stored.UserID != 1 {
		t.Errorf("first album changed: %+v", stored)
	}
}

func TestAlbumPicturesCount(t *testing.T) {
	album := Album{Name: "Counted", Slug: "counted", ChannelID: "c4", UserID: 1}
	if err := db.Instance.Create(&album).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	count, err := album.PicturesCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("empty album count = %d", count)
	}
	for i := 0; i < 2; i++ {
		picture := Picture{AlbumID: album.ID, UserID: 1, Name: "p", MimeType: "image/jpeg"}
		if err := db.Instance.Create(&picture).Error; err != nil {
			t.Fatalf("create picture: %v", err)
		}
	}
	count, err = album.PicturesCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestAlbumInfoShape(t *testing.T) {
	album := Album{ID: 5, Name: "Trip", Slug: "trip", Private: true, ChannelID: "hidden", UserID: 9}
	info := album.Info()
	if info.ID != 5 || info.Name != "Trip" || info.Slug != "trip" {
		t.Errorf("info = %+v", info)
	}
	if info.Private == nil || !*info.Private {
		t.Errorf("private flag not carried over")
	}
	// ChannelID and UserID have no place in the external shape at all -
	// AlbumInfo simply has no fields for them
}
