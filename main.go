package main

import (
	"log"

	"nannyhub/config"
	"nannyhub/controllers"
	_ "nannyhub/docs"
	"nannyhub/middleware"
	"nannyhub/repositories"
	"nannyhub/routes"
	"nannyhub/services"
	"nannyhub/ws"

	"github.com/gin-gonic/gin"
)

// @title NannyHub API
// @version 1.0
// @description Marketplace backend connecting families with nannies.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	pool := config.ConnectDB()
	defer config.CloseDB(pool)

	cache := config.ConnectRedis()
	defer config.CloseRedis(cache)

	userRepo := repositories.NewUserRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	nannyRepo := repositories.NewNannyProfileRepository(pool)
	familyRepo := repositories.NewFamilyProfileRepository(pool)
	contactRepo := repositories.NewContactRequestRepository(pool)
	messageRepo := repositories.NewMessageRepository(pool)

	emailSvc, err := services.NewEmailService(config.AppConfig)
	if err != nil {
		log.Printf("Email notifications disabled: %v", err)
	}

	authSvc := services.NewAuthService(userRepo, sessionRepo)
	profileSvc := services.NewProfileService(nannyRepo, familyRepo)
	contactSvc := services.NewContactService(userRepo, contactRepo, messageRepo, emailSvc)

	hub := ws.NewHub()
	go hub.Run()
	ws.SetDefaultHub(hub)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, routes.Controllers{
		Auth:           controllers.NewAuthController(authSvc),
		NannyProfiles:  controllers.NewNannyProfileController(profileSvc, authSvc, cache),
		FamilyProfiles: controllers.NewFamilyProfileController(profileSvc),
		Contacts:       controllers.NewContactController(contactSvc),
		Messages:       controllers.NewMessageController(contactSvc),
		WS:             ws.NewHandler(hub),
	}, authSvc)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
