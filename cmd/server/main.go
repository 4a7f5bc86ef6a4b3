package main

import (
	"log"
	"strings"

	"butce-backend/internal/auth"
	"butce-backend/internal/budget"
	"butce-backend/internal/config"
	"butce-backend/internal/database"
	"butce-backend/internal/dataset"
	"butce-backend/internal/ledger"
	"butce-backend/internal/voice"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	ds, err := dataset.Load(cfg.ExcelPath)
	if err != nil {
		log.Fatalf("Excel veri seti yüklenemedi (%s): %v", cfg.ExcelPath, err)
	}
	log.Printf("Veri seti yüklendi: %d satır, %d yönetici", len(ds.Rows), len(ds.Managers()))

	st := ledger.NewState(ds)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Çalışan tablosu
	protected.Get("/employees", budget.ListEmployeesHandler(st))
	protected.Get("/employees/summary", budget.SummaryHandler(st))
	protected.Post("/employees/select", budget.SelectHandler(st))

	// İşlem akışı
	protected.Post("/operations", budget.OperationHandler(st))
	protected.Post("/save", budget.SaveHandler(st, cfg.ExcelPath))
	protected.Get("/unsaved-count", budget.UnsavedCountHandler(st))

	// Sesli komutlar ve toplu işlem onayı
	protected.Post("/voice-commands", voice.CommandHandler(st))
	protected.Get("/pending-batch", voice.PendingBatchHandler(st))
	protected.Post("/pending-batch/confirm", voice.ConfirmBatchHandler(st))
	protected.Post("/pending-batch/cancel", voice.CancelBatchHandler(st))

	// Geçmiş ve dışa aktarma
	protected.Get("/history", budget.HistoryHandler(st))
	protected.Get("/history/export", budget.HistoryExportHandler(st))
	protected.Get("/dataset/export", budget.DatasetExportHandler(st))

	// Ayarlar
	protected.Get("/settings/auto-apply", budget.GetAutoApplyHandler(st))
	protected.Put("/settings/auto-apply", budget.SetAutoApplyHandler(st))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
