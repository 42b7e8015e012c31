package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/cart"
	"github.com/Jrgn63/keyking/catalog"
	"github.com/Jrgn63/keyking/config"
	ordercontroller "github.com/Jrgn63/keyking/controllers/order"
	"github.com/Jrgn63/keyking/events"
	"github.com/Jrgn63/keyking/mailer"
	"github.com/Jrgn63/keyking/middleware"
	"github.com/Jrgn63/keyking/models"
	"github.com/Jrgn63/keyking/payment"
	"github.com/Jrgn63/keyking/routes"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if cfg.AdminSecret == "" {
		log.Warn().Msg("ADMIN_SECRET is not set; admin endpoints will reject everything")
	}

	db := initDatabase(cfg)

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	backfillSlugs(db)

	carts := cart.NewStore(time.Duration(cfg.CartTTLMinutes) * time.Minute)
	startCartSweeper(carts)

	deps := routes.Deps{
		DB:        db,
		Cfg:       cfg,
		Carts:     carts,
		Payments:  payment.NewClient(cfg.Midtrans),
		Feed:      ordercontroller.NewFeed(),
		Publisher: events.NewPublisher(cfg.Kafka),
		Mailer:    mailer.NewMailer(cfg.SMTP),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, deps)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initDatabase(cfg *config.Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBConfig.Host, cfg.DBConfig.User, cfg.DBConfig.Password,
			cfg.DBConfig.Name, cfg.DBConfig.Port,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	return db
}

// backfillSlugs gives pre-migration rows (written before slugs existed) a
// slug computed from their name.
func backfillSlugs(db *gorm.DB) {
	var products []models.Product
	if err := db.Where("slug = '' OR slug IS NULL").Find(&products).Error; err != nil {
		log.Error().Err(err).Msg("slug backfill scan failed")
		return
	}
	for _, p := range products {
		slug := catalog.Slugify(p.Name)
		if err := db.Model(&models.Product{}).Where("id = ?", p.ID).Update("slug", slug).Error; err != nil {
			log.Error().Err(err).Str("id", p.ID).Msg("slug backfill failed")
			continue
		}
		log.Info().Str("name", p.Name).Str("slug", slug).Msg("slug backfilled")
	}
}

// startCartSweeper drops idle cart sessions on a fixed interval.
func startCartSweeper(carts *cart.Store) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler init failed")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(func() {
			if n := carts.Sweep(); n > 0 {
				log.Info().Int("sessions", n).Msg("idle carts swept")
			}
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduling cart sweep failed")
	}

	scheduler.Start()
}
