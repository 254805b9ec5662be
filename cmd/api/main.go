package main

import (
	"log"
	"os"
	"time"

	"github.com/auy1jlll/pizza-vx-sub003/internal/catalog"
	"github.com/auy1jlll/pizza-vx-sub003/internal/db"
	"github.com/auy1jlll/pizza-vx-sub003/internal/middleware"
	"github.com/auy1jlll/pizza-vx-sub003/internal/ordering"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)
	adminCatalogHandler := catalog.NewAdminHandler(catalogService)

	// ───────────────────────── ORDERING ENGINE ─────────────────────────
	engine := ordering.NewEngine(catalogRepo)
	orderingHandler := ordering.NewHandler(engine)

	// ───────────────────────── STOREFRONT ROUTES ─────────────────────────
	menu := r.Group("/menu")
	{
		menu.GET("/items/:id", catalogHandler.GetMenuItem)
		menu.GET("/items/:id/choose-sides", orderingHandler.ChooseSides)
		menu.GET("/categories/:slug", catalogHandler.GetCategoryBySlug)
		menu.GET("/options/:id", catalogHandler.GetOption)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("/validate", orderingHandler.Validate)
		orders.POST("/price", orderingHandler.Price)
		orders.POST("/cart-item", orderingHandler.CartItem)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/categories", adminCatalogHandler.CreateCategory)
		admin.POST("/items", adminCatalogHandler.CreateMenuItem)
		admin.POST("/items/:id/groups", adminCatalogHandler.AssociateGroup)
		admin.POST("/groups", adminCatalogHandler.CreateGroup)
		admin.POST("/options", adminCatalogHandler.CreateOption)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
