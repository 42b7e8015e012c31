// Command seed loads a starter keyboard catalog into an empty store.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Jrgn63/keyking/catalog"
	"github.com/Jrgn63/keyking/config"
	"github.com/Jrgn63/keyking/models"
)

func main() {
	cfg := config.Load()

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
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("counting products failed")
	}
	if count > 0 {
		log.Info().Int64("products", count).Msg("catalog is not empty, nothing to do")
		return
	}

	discount := func(pct int) *int { return &pct }
	products := []models.Product{
		{
			Name:             "Mechanical Keyboard TKL",
			ShortDescription: "Tenkeyless hot-swap board with gasket mount",
			LongDescription:  "An 87-key tenkeyless keyboard with a gasket-mounted plate, hot-swap sockets, and south-facing RGB.",
			Price:            129.99,
			Stock:            25,
			Category:         "keyboards",
			Tags:             []string{"tkl", "hot-swap", "rgb"},
			ImageURLs:        []string{"https://cdn.keyking.example/boards/tkl-1.jpg"},
		},
		{
			Name:             "Linear Switches (70 pack)",
			ShortDescription: "Factory-lubed linear switches",
			LongDescription:  "Smooth 45g linear switches, factory lubed, 5-pin. Pack of 70 covers a full-size build.",
			Price:            34.50,
			Discount:         discount(10),
			Stock:            120,
			Category:         "switches",
			Tags:             []string{"linear", "lubed"},
			ImageURLs:        []string{"https://cdn.keyking.example/switches/linear-70.jpg"},
		},
		{
			Name:             "PBT Keycap Set",
			ShortDescription: "Double-shot PBT keycaps, Cherry profile",
			LongDescription:  "A 140-key double-shot PBT set in Cherry profile with support for TKL, 75%, and 65% layouts.",
			Price:            79.00,
			Stock:            40,
			Category:         "keycaps",
			Tags:             []string{"pbt", "cherry-profile"},
			ImageURLs:        []string{"https://cdn.keyking.example/keycaps/pbt-set.jpg"},
		},
		{
			Name:             "Coiled Aviator Cable",
			ShortDescription: "USB-C coiled cable with aviator connector",
			LongDescription:  "Hand-coiled double-sleeved USB-C cable with a detachable aviator connector, 1.5m total.",
			Price:            45.00,
			Stock:            0,
			Category:         "accessories",
			Tags:             []string{"cable", "usb-c"},
			ImageURLs:        []string{"https://cdn.keyking.example/cables/coiled-aviator.jpg"},
		},
	}

	for i := range products {
		products[i].Slug = catalog.Slugify(products[i].Name)
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal().Err(err).Str("name", products[i].Name).Msg("seeding product failed")
		}
		log.Info().Str("name", products[i].Name).Str("slug", products[i].Slug).Msg("seeded")
	}
}
