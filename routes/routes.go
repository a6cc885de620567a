package routes

import (
	"nannyhub/controllers"
	"nannyhub/middleware"
	"nannyhub/services"
	"nannyhub/ws"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controllers struct {
	Auth           *controllers.AuthController
	NannyProfiles  *controllers.NannyProfileController
	FamilyProfiles *controllers.FamilyProfileController
	Contacts       *controllers.ContactController
	Messages       *controllers.MessageController
	WS             *ws.Handler
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, auth *services.AuthService) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")

	api.POST("/register", ctrl.Auth.Register)
	api.POST("/login", ctrl.Auth.Login)
	// Logout parses its own token so an absent header reports "missing
	// token" and a stale one still succeeds.
	api.POST("/logout", ctrl.Auth.Logout)

	api.GET("/nanny_profiles", ctrl.NannyProfiles.List)
	// :id also serves "me"; gin rejects a static sibling of a wildcard.
	api.GET("/nanny_profiles/:id", ctrl.NannyProfiles.Get)

	authed := api.Group("/")
	authed.Use(middleware.RequireAuth(auth))
	{
		authed.GET("/me", ctrl.Auth.Me)

		authed.POST("/nanny_profiles", ctrl.NannyProfiles.Upsert)

		authed.POST("/family_profiles", ctrl.FamilyProfiles.Upsert)
		authed.GET("/family_profiles/me", ctrl.FamilyProfiles.Me)

		authed.POST("/contact_requests", ctrl.Contacts.Create)
		authed.GET("/contact_requests", ctrl.Contacts.List)
		authed.DELETE("/contact_requests/:id", ctrl.Contacts.Delete)

		authed.POST("/messages", ctrl.Messages.Create)
		authed.GET("/messages", ctrl.Messages.List)
		authed.GET("/messages/last", ctrl.Messages.Last)
	}

	router.GET("/ws", ctrl.WS.Serve)
}
