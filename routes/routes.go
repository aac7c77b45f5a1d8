package routes

import (
	"log"
	"net/http"
	"strconv"

	"dmscreen/handlers"
	"dmscreen/middleware"
	"dmscreen/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	playerHandler *handlers.PlayerHandler,
	itemHandler *handlers.ItemHandler,
	messageHandler *handlers.MessageHandler,
	logHandler *handlers.LogHandler,
	mapHandler *handlers.MapHandler,
	enemyHandler *handlers.EnemyHandler,
	hub *services.Hub,
	campaignService *services.CampaignService,
	sessions *services.SessionStore,
	jwtSecret string,
	uploadDir string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/session", authHandler.Session)
		api.POST("/forgot_password", authHandler.ForgotPassword)
		api.POST("/reset_password", authHandler.ResetPassword)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.Auth(jwtSecret, sessions))
		{
			protected.POST("/logout", authHandler.Logout)

			// Characters owned by the logged-in user
			protected.GET("/user/players", playerHandler.GetUserPlayers)
			protected.GET("/user/classes", playerHandler.GetClasses)
			protected.POST("/user/player", playerHandler.CreateUserPlayer)

			// Campaigns
			campaigns := protected.Group("/campaigns")
			{
				campaigns.GET("", campaignHandler.GetCampaigns)
				campaigns.POST("", campaignHandler.CreateCampaign)
				campaigns.GET("/:id", campaignHandler.GetCampaign)
				campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
				campaigns.GET("/:id/code", campaignHandler.GetJoinCode)
				campaigns.POST("/:id/code", campaignHandler.RotateJoinCode)

				campaigns.GET("/:id/players", playerHandler.GetCampaignPlayers)
				campaigns.GET("/:id/items", itemHandler.GetItems)
				campaigns.POST("/:id/items", itemHandler.CreateItem)
				campaigns.GET("/:id/spells", itemHandler.GetSpells)
				campaigns.POST("/:id/spells", itemHandler.CreateSpell)
				campaigns.GET("/:id/messages", messageHandler.GetMessages)
				campaigns.GET("/:id/logs", logHandler.GetLogs)
				campaigns.POST("/:id/logs", logHandler.CreateLog)
				campaigns.GET("/:id/maps", mapHandler.GetMaps)
				campaigns.GET("/:id/created_maps", mapHandler.GetCreatedMaps)
				campaigns.POST("/:id/created_maps", mapHandler.SaveCreatedMap)
				campaigns.GET("/:id/battlemaps", mapHandler.GetBattlemaps)
				campaigns.POST("/:id/battlemaps", mapHandler.SaveBattlemap)
			}

			protected.POST("/join", campaignHandler.JoinCampaign)
			protected.POST("/messages", messageHandler.CreateMessage)

			// Player sub-resources
			players := protected.Group("/players")
			{
				players.PUT("/:id", playerHandler.UpdatePlayer)
				players.DELETE("/:id", playerHandler.DeletePlayer)
				players.GET("/:id/info", playerHandler.GetPlayerInfo)
				players.PUT("/:id/info", playerHandler.SetPlayerInfo)
				players.GET("/:id/proficiencies", playerHandler.GetProficiencies)
				players.PUT("/:id/proficiencies", playerHandler.UpdateProficiencies)
				players.GET("/:id/items", playerHandler.GetPlayerItems)
				players.POST("/:id/items", playerHandler.AddPlayerItem)
				players.DELETE("/:id/items/:itemID", playerHandler.DeletePlayerItem)
				players.GET("/:id/spells", playerHandler.GetPlayerSpells)
				players.POST("/:id/spells", playerHandler.AddPlayerSpell)
				players.DELETE("/:id/spells/:spellID", playerHandler.DeletePlayerSpell)
			}

			// Items and spells by id
			protected.GET("/items/:id", itemHandler.GetItem)
			protected.DELETE("/items/:id", itemHandler.DeleteItem)
			protected.GET("/spells/:id", itemHandler.GetSpell)
			protected.DELETE("/spells/:id", itemHandler.DeleteSpell)

			protected.DELETE("/logs/:id", logHandler.DeleteLog)

			// Maps
			protected.POST("/uploadmap", mapHandler.UploadMap)
			protected.POST("/getmap", mapHandler.GetMap)
			protected.PUT("/maps/:id/parent", mapHandler.MoveMap)

			// Enemies
			enemies := protected.Group("/enemies")
			{
				enemies.GET("", enemyHandler.GetEnemies)
				enemies.POST("", enemyHandler.CreateEnemy)
				enemies.GET("/:id", enemyHandler.GetEnemy)
				enemies.PUT("/:id", enemyHandler.UpdateEnemy)
				enemies.DELETE("/:id", enemyHandler.DeleteEnemy)
				enemies.GET("/:id/abilities", enemyHandler.GetAbilities)
				enemies.POST("/:id/abilities", enemyHandler.AddAbility)
			}
			protected.DELETE("/abilities/:id", enemyHandler.DeleteAbility)
		}
	}

	// Uploaded map images
	router.Static("/uploads", uploadDir)

	// WebSocket endpoint for campaign chat
	router.GET("/ws/:campaignID", func(c *gin.Context) {
		campaignID, err := strconv.ParseUint(c.Param("campaignID"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid campaign ID"})
			return
		}

		session, _, err := middleware.SessionFromRequest(c, jwtSecret, sessions)
		if err != nil || session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		// Only campaign members may listen in.
		if _, err := campaignService.RequireMember(session.UserID, uint(campaignID)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for campaign %d, user %d: %v", campaignID, session.UserID, err)
			return
		}

		hub.RegisterClient(conn, uint(campaignID), session.UserID, session.UserName)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
