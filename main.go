package main

import (
	"fmt"
	"log"
	"os"

	"dmscreen/config"
	"dmscreen/handlers"
	"dmscreen/middleware"
	"dmscreen/models"
	"dmscreen/repository"
	"dmscreen/routes"
	"dmscreen/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.EmailReset{},
		&models.Campaign{},
		&models.CampaignJoinCode{},
		&models.Player{},
		&models.PlayerInfo{},
		&models.PlayerProficiency{},
		&models.Item{},
		&models.Weapon{},
		&models.PlayerEquipment{},
		&models.Spell{},
		&models.PlayerSpell{},
		&models.Map{},
		&models.CreatedMap{},
		&models.Battlemap{},
		&models.Message{},
		&models.Log{},
		&models.Enemy{},
		&models.EnemyAbility{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	redisClient := config.InitRedis(cfg)
	sessions := services.NewSessionStore(redisClient)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	spellRepo := repository.NewSpellRepository(db)
	mapRepo := repository.NewMapRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	logRepo := repository.NewLogRepository(db)
	enemyRepo := repository.NewEnemyRepository(db)

	authService := services.NewAuthService(userRepo, sessions, cfg.JWTSecret)
	campaignService := services.NewCampaignService(campaignRepo, playerRepo, cfg.Host)
	playerService := services.NewPlayerService(playerRepo, itemRepo, spellRepo, campaignRepo)
	itemService := services.NewItemService(itemRepo, campaignService)
	spellService := services.NewSpellService(spellRepo, campaignService)
	mapService := services.NewMapService(mapRepo, playerRepo, campaignService, cfg.UploadDir)
	messageService := services.NewMessageService(messageRepo, campaignRepo, playerRepo)
	logService := services.NewLogService(logRepo, playerRepo, campaignService)
	enemyService := services.NewEnemyService(enemyRepo)

	hub := services.NewHub()
	go hub.Run()
	messageService.SetHub(hub)

	authHandler := handlers.NewAuthHandler(authService, sessions, cfg.JWTSecret)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	itemHandler := handlers.NewItemHandler(itemService, spellService)
	messageHandler := handlers.NewMessageHandler(messageService)
	logHandler := handlers.NewLogHandler(logService)
	mapHandler := handlers.NewMapHandler(mapService)
	enemyHandler := handlers.NewEnemyHandler(enemyService)

	router := gin.Default()
	router.Use(middleware.CORS())

	routes.SetupRoutes(router, authHandler, campaignHandler, playerHandler,
		itemHandler, messageHandler, logHandler, mapHandler, enemyHandler,
		hub, campaignService, sessions, cfg.JWTSecret, cfg.UploadDir)

	addr := fmt.Sprintf("%s:%s", cfg.BindAddress, cfg.Port)
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
