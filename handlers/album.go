package handlers

import (
	"errors"
	"net/http"
	"server/auth"
	"server/config"
	"server/db"
	"server/discord"
	"server/models"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	albumKey  = "album"
	accessKey = "access"
)

type AlbumIndexRequest struct {
	Visibility string `form:"visibility" binding:"omitempty,oneof=public private"`
	Admin      bool   `form:"admin"`
}

type AlbumStoreRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Private   bool   `json:"private"`
	Community bool   `json:"community"`
}

type AlbumUpdateRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AlbumLoad resolves the :id path parameter before any handler on the path
// runs. It is deliberately unauthenticated - visibility and ownership are
// decided per operation from the access flags it stores in the context.
func AlbumLoad(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	album, err := models.AlbumFindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	user := auth.LoadSession(c).User()
	c.Set(albumKey, &album)
	c.Set(accessKey, models.EvaluateAccess(&album, &user))
	c.Next()
}

func loadedAlbum(c *gin.Context) (*models.Album, models.Access) {
	return c.MustGet(albumKey).(*models.Album), c.MustGet(accessKey).(models.Access)
}

func AlbumShow(c *gin.Context) {
	album, access := loadedAlbum(c)
	if !access.CanAccess {
		c.JSON(http.StatusForbidden, ShowForbiddenResponse)
		return
	}
	count, err := album.PicturesCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	info := album.Info()
	info.PicturesCount = &count
	c.JSON(http.StatusOK, gin.H{"album": info})
}

func AlbumIndex(c *gin.Context) {
	r := AlbumIndexRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := auth.LoadSession(c).User()

	albums := []models.Album{}
	includePrivate := true
	var result *gorm.DB
	if r.Admin && user.HasAbility(models.AbilityAlbumAdmin) {
		result = db.Instance.Find(&albums)
	} else {
		// admin=true without the ability silently falls back to the
		// normal visibility rules
		switch r.Visibility {
		case "public":
			result = db.Instance.Where("private = ?", false).Find(&albums)
			includePrivate = false
		case "private":
			result = db.Instance.Where("private = ? AND user_id = ?", true, user.ID).Find(&albums)
			includePrivate = false
		default:
			result = db.Instance.Where("private = ? OR user_id = ?", false, user.ID).Find(&albums)
		}
	}
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	infos := make([]models.AlbumInfo, 0, len(albums))
	for _, album := range albums {
		info := album.Info()
		if !includePrivate {
			info.Private = nil
		}
		infos = append(infos, info)
	}
	c.JSON(http.StatusOK, gin.H{"albums": infos})
}

func AlbumStore(c *gin.Context, user *models.User) {
	r := AlbumStoreRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Channel first, record second: a failure here leaves no dangling
	// album row pointing at a channel that was never created
	channelID, err := discord.Instance.CreateChannel(discord.ChannelName(r.Slug), config.DISCORD_PARENT_CHANNEL)
	if err != nil {
		c.JSON(http.StatusBadGateway, DiscordErrorResponse)
		return
	}
	if r.Private && !r.Community {
		overwrites := []discord.PermissionOverwrite{
			{SubjectID: config.DISCORD_GUILD, Type: discord.OverwriteRole, Allow: false},
			{SubjectID: config.DISCORD_WORKER_ID, Type: discord.OverwriteMember, Allow: true},
		}
		// The owner may have no resolvable Discord membership - then the
		// channel simply gets no extra grant
		if memberID, err := discord.Instance.LookupMember(user.DiscordID); err == nil && memberID != "" {
			overwrites = append(overwrites, discord.PermissionOverwrite{
				SubjectID: memberID,
				Type:      discord.OverwriteMember,
				Allow:     true,
			})
		}
		if err := discord.Instance.SetChannelPermissions(channelID, overwrites); err != nil {
			_ = discord.Instance.DeleteChannel(channelID)
			c.JSON(http.StatusBadGateway, DiscordErrorResponse)
			return
		}
	}
	album := models.Album{
		Name:      r.Name,
		Slug:      r.Slug,
		Private:   r.Private,
		Community: r.Community,
		ChannelID: channelID,
		UserID:    user.ID,
	}
	result := db.Instance.Create(&album)
	if result.Error != nil {
		// Compensate: don't leave an orphaned channel behind
		_ = discord.Instance.DeleteChannel(channelID)
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, SlugTakenResponse)
		} else {
			c.JSON(http.StatusInternalServerError, DBErrorResponse)
		}
		return
	}
	discord.CacheChannel(album.ID, channelID)
	c.JSON(http.StatusCreated, gin.H{"album": album.Info()})
}

func AlbumUpdate(c *gin.Context, user *models.User) {
	album, access := loadedAlbum(c)
	if !access.CanModify {
		c.JSON(http.StatusForbidden, EditForbiddenResponse)
		return
	}
	r := AlbumUpdateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{}
	if r.Name != "" {
		updates["name"] = r.Name
	}
	if r.Slug != "" {
		updates["slug"] = r.Slug
	}
	if len(updates) > 0 {
		result := db.Instance.Model(album).Updates(updates)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, SlugTakenResponse)
			} else {
				c.JSON(http.StatusInternalServerError, DBErrorResponse)
			}
			return
		}
	}
	if r.Slug != "" {
		channelID := discord.CachedChannel(album.ID, album.ChannelID)
		if err := discord.Instance.RenameChannel(channelID, discord.ChannelName(r.Slug)); err != nil {
			c.JSON(http.StatusBadGateway, DiscordErrorResponse)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"album": album.Info()})
}

func AlbumDestroy(c *gin.Context, user *models.User) {
	album, access := loadedAlbum(c)
	if !access.CanModify {
		c.JSON(http.StatusForbidden, DeleteForbiddenResponse)
		return
	}
	count, err := album.PicturesCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, NotEmptyResponse)
		return
	}
	if err := db.Instance.Delete(&models.Album{}, album.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBErrorResponse)
		return
	}
	channelID := discord.CachedChannel(album.ID, album.ChannelID)
	if err := discord.Instance.DeleteChannel(channelID); err != nil {
		c.JSON(http.StatusBadGateway, DiscordErrorResponse)
		return
	}
	discord.ForgetChannel(album.ID)
	c.Status(http.StatusNoContent)
}
