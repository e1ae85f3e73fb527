package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/config"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/handlers"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/middleware"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/services"
	"github.com/geraldsberongoy/cpe-fair-web-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg := config.Load()

	if cfg.AppEnv == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.DebugLevel)
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	// TranslateError turns uniqueness and foreign-key failures into
	// gorm sentinel errors the controllers can map to 409/400.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Game{},
		&models.Score{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	archiveEnabled, err := utils.InitR2()
	if err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.EventName + " leaderboard",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-admin-key",
	}))

	var sessions *services.SessionClient
	if cfg.SessionVerifyURL != "" {
		sessions = services.NewSessionClient(cfg.SessionVerifyURL, cfg.SessionServiceKey)
	}
	gate := middleware.AdminGate(cfg, sessions)

	teamService := services.NewTeamService(db)
	playerService := services.NewPlayerService(db)
	gameService := services.NewGameService(db)
	scoreService := services.NewScoreService(db)
	authService := services.NewAuthService(cfg)
	exportService := services.NewExportService(db, cfg)

	handlers.SetupTeamRoutes(app, teamService, gate)
	handlers.SetupPlayerRoutes(app, playerService, gate)
	handlers.SetupGameRoutes(app, gameService, gate)
	handlers.SetupScoreRoutes(app, scoreService, gate)
	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupExportRoutes(app, exportService, gate)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	sched, err := scoreService.StartRetentionScheduler()
	if err != nil {
		log.Fatal("failed to start retention scheduler:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", cfg.Port)
	log.Printf("✅ CORS configured for origins: %s", cfg.AllowedOrigins)
	if sessions != nil {
		log.Println("✅ Bearer session verification enabled")
	}
	if archiveEnabled {
		log.Println("✅ Export archiving to R2 enabled")
	}

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := sched.Shutdown(); err != nil {
		log.Printf("retention scheduler shutdown: %v", err)
	}
	_ = app.Shutdown()
}
