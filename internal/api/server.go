package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vikascc28/gossip-camp-backend/internal/middleware"
)

// RegisterRoutes wires the full HTTP surface onto a gin engine. uploadDir is
// served under /uploads so locally stored display images resolve.
//
// Parameterized room routes live under /rooms/id/:roomId so the literal
// segments (joined, public, college, private, recent, trending) never collide
// with the path parameter in the routing tree.
func RegisterRoutes(
	r *gin.Engine,
	jwtSecret string,
	uploadDir string,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	roomHandler *RoomHandler,
) {
	r.GET("/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static("/uploads", uploadDir)

	r.POST("/v1/auth/signup", authHandler.Signup)
	r.POST("/v1/auth/login", authHandler.Login)

	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(jwtSecret))

	v1.GET("/profiles", profileHandler.List)
	v1.GET("/profiles/:username", profileHandler.Get)
	v1.POST("/profiles/:username/toggle-follow", profileHandler.ToggleFollow)

	rooms := v1.Group("/rooms")
	rooms.POST("/private", roomHandler.CreatePrivate)
	rooms.POST("/public", roomHandler.CreatePublic)
	rooms.POST("/admin-public", roomHandler.CreateAdmin)
	rooms.GET("/joined", roomHandler.ListJoined)
	rooms.GET("/public", roomHandler.ListPublic)
	rooms.GET("/college", roomHandler.ListCollege)
	rooms.GET("/private", roomHandler.GetPrivate)
	rooms.GET("/recent", roomHandler.Recent)
	rooms.GET("/trending", roomHandler.Trending)
	rooms.GET("/id/:roomId", roomHandler.GetDetails)
	rooms.GET("/id/:roomId/profile", roomHandler.GetRoomProfile)
	rooms.POST("/id/:roomId/toggle-join", roomHandler.ToggleJoin)
}
