package auth

import (
	"net/http"
	"server/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and holds the required abilities
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the login guard + ability gate in front of
// handlers. It wraps any route group, so gates can be layered per sub-path
// while public routes on the same group stay untouched.
type Router struct {
	Base gin.IRoutes
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required []string) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	for _, ability := range required {
		if !user.HasAbility(ability) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc, required ...string) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc, required ...string) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) PUT(path string, handler HandlerFunc, required ...string) {
	cr.Base.PUT(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc, required ...string) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}
