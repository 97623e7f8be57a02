package main

import (
	"log"
	"server/auth"
	"server/config"
	"server/db"
	"server/discord"
	"server/handlers"
	"server/models"
	"server/utils"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionStoreKey       = "this is a long key" // TODO: convert to env variable
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init(config.MYSQL_DSN, config.SQLITE_FILE)
	models.Init()
	discord.Init(config.DISCORD_TOKEN, config.DISCORD_GUILD)

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionStoreKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// User session handlers
	router.POST("/user/login", handlers.UserLogin)
	router.GET("/user/status", handlers.UserGetStatus)
	authRouter := &auth.Router{Base: &router.RouterGroup}
	authRouter.POST("/user/logout", handlers.UserLogout)

	// Album handlers. Listing and showing need no login - the access policy
	// gates the content. Everything below goes through the login guard, and
	// update/delete additionally through the manage-album gate.
	albums := router.Group("/albums")
	albums.GET("", handlers.AlbumIndex)
	albumAuth := &auth.Router{Base: albums}
	albumAuth.POST("", handlers.AlbumStore)

	albumID := albums.Group("/:id", handlers.AlbumLoad)
	albumID.GET("", handlers.AlbumShow)
	albumIDAuth := &auth.Router{Base: albumID}
	albumIDAuth.PUT("", handlers.AlbumUpdate, models.AbilityManageAlbum)
	albumIDAuth.DELETE("", handlers.AlbumDestroy, models.AbilityManageAlbum)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
