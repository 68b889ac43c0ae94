package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/DeclanJeon/TrendLens/internal/cache"
	"github.com/DeclanJeon/TrendLens/internal/config"
	"github.com/DeclanJeon/TrendLens/internal/gemini"
	"github.com/DeclanJeon/TrendLens/internal/handlers"
	"github.com/DeclanJeon/TrendLens/internal/service"
	"github.com/DeclanJeon/TrendLens/internal/youtube"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("[TrendLens] ")
	log.Println("🚀 Starting TrendLens API...")

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ctx := context.Background()

	// One cache pool per data lifetime: trends churn fast, categories are
	// near-static, generated prompts are keyed per video+duration.
	log.Printf("💾 Caches: trends=%v categories=%v prompts=%v",
		cfg.Cache.TrendTTL.Std(), cfg.Cache.CategoryTTL.Std(), cfg.Cache.PromptTTL.Std())
	trendCache := cache.New(cfg.Cache.TrendTTL.Std())
	categoryCache := cache.New(cfg.Cache.CategoryTTL.Std())
	promptCache := cache.New(cfg.Cache.PromptTTL.Std())

	ytClient, err := youtube.New(ctx, cfg.YouTube, trendCache, categoryCache)
	if err != nil {
		log.Fatalf("❌ Failed to init YouTube client: %v", err)
	}

	aiClient, err := gemini.New(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to init Gemini client: %v", err)
	}
	log.Printf("🤖 Gemini models: text=%s image=%s", cfg.Gemini.Model, cfg.Gemini.ImageModel)

	insight := service.NewInsight(aiClient)
	generator := service.NewGenerator(aiClient, promptCache, cfg.Shorts)
	images := service.NewImageBatcher(aiClient, cfg.Shorts.ImageCallDelay.Std())

	app := fiber.New(fiber.Config{
		ServerHeader: "TrendLens",
		AppName:      "TrendLens API",
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": message})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	handlers.New(ytClient, insight, generator, images).Register(app)

	// Dashboard assets; API routes are registered first and win.
	app.Get("/*", static.New(cfg.Paths.Static))

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("🛑 Shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️  Error during shutdown: %v", err)
		}
		log.Println("👋 Goodbye!")
		os.Exit(0)
	}()

	log.Printf("🌐 Server starting on port %s", cfg.Server.Port)
	log.Println("✅ Ready to analyze trends!")

	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
