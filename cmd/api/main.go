package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-loja-backend/internal/handler"
	"go-loja-backend/internal/model"
	"go-loja-backend/internal/repository"
	"go-loja-backend/internal/service"
	"go-loja-backend/internal/ws"
	"go-loja-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Category{}, &model.Subcategory{}, &model.Product{}, &model.Sale{}); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)

	salesService := service.NewSalesService(productRepo, saleRepo, db, wsHub)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)

	salesHandler := handler.NewSalesHandler(salesService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Loja Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	app.Post("/venda", salesHandler.CreateSale)
	app.Delete("/vendas/:id", salesHandler.DeleteSale)
	app.Get("/relatorio-vendas", salesHandler.Report)

	app.Get("/produtos", catalogHandler.GetProducts)
	app.Get("/produtos/estoque-baixo", catalogHandler.GetLowStockProducts)
	app.Post("/produtos", catalogHandler.CreateProduct)
	app.Delete("/produtos/:id", catalogHandler.DeleteProduct)

	app.Get("/categorias", catalogHandler.GetCategories)
	app.Post("/categorias", catalogHandler.CreateCategory)
	app.Delete("/categorias/:id", catalogHandler.DeleteCategory)

	app.Get("/subcategorias", catalogHandler.GetSubcategories)
	app.Post("/subcategorias", catalogHandler.CreateSubcategory)
	app.Delete("/subcategorias/:id", catalogHandler.DeleteSubcategory)

	// WebSocket route: stock updates pushed after each sale or reversal
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5001"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
