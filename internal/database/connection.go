// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/okaimono/shotengai-backend/internal/config"
	"github.com/okaimono/shotengai-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Street{},
		&models.Shop{},
		&models.Product{},
		&models.Set{},
		&models.Event{},
		&models.Order{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Catalog indexes
		"CREATE INDEX IF NOT EXISTS idx_products_sale ON products(is_sale) WHERE is_sale",
		"CREATE INDEX IF NOT EXISTS idx_products_shop_name ON products(shop_id, name)",
		"CREATE INDEX IF NOT EXISTS idx_sets_active_created ON sets(is_active, created_at DESC)",

		// Event indexes
		"CREATE INDEX IF NOT EXISTS idx_events_active_regular ON events(is_active, is_regular)",
		"CREATE INDEX IF NOT EXISTS idx_events_dates ON events(start_date, end_date)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var streetCount int64
	db.Model(&models.Street{}).Count(&streetCount)
	if streetCount > 0 {
		log.Println("Seed skipped, streets already present")
		return nil
	}

	streets := []models.Street{
		{Name: "中央通り", Slug: "chuo-dori"},
		{Name: "本町通り", Slug: "honmachi-dori"},
	}
	if err := db.Create(&streets).Error; err != nil {
		return fmt.Errorf("failed to seed streets: %w", err)
	}

	lineURL := "https://line.me/R/ti/p/@uotake"
	shops := []models.Shop{
		{StreetID: streets[0].ID, Name: "魚竹鮮魚店", Category: models.ShopCategoryFish, Description: "朝どれの魚とお造りの店", LineURL: &lineURL},
		{StreetID: streets[0].ID, Name: "肉のマルフク", Category: models.ShopCategoryMeat, Description: "精肉と揚げたて惣菜"},
		{StreetID: streets[0].ID, Name: "八百辰", Category: models.ShopCategoryVegetable, Description: "下ごしらえも頼める八百屋"},
		{StreetID: streets[1].ID, Name: "やおや青木", Category: models.ShopCategoryVegetable, Description: "旬の野菜と果物"},
		{StreetID: streets[1].ID, Name: "惣菜こばやし", Category: models.ShopCategoryOther, Description: "今夜のおかずはここで"},
		{StreetID: streets[1].ID, Name: "フルーツパーラー山田", Category: models.ShopCategoryBread, Description: "果物とスムージー"},
	}
	if err := db.Create(&shops).Error; err != nil {
		return fmt.Errorf("failed to seed shops: %w", err)
	}

	salePrice := 780
	products := []models.Product{
		{ShopID: &shops[0].ID, Name: "刺身盛り合わせ", Price: 980, Category: models.ShopCategoryFish, IsSale: true, SalePrice: &salePrice},
		{ShopID: &shops[1].ID, Name: "国産牛カルビ 300g", Price: 1480, Category: models.ShopCategoryMeat},
		{ShopID: &shops[2].ID, Name: "ごぼう 1本", Price: 160, Category: models.ShopCategoryVegetable},
		{ShopID: &shops[3].ID, Name: "季節の果物セット", Price: 1200, Category: models.ShopCategoryVegetable},
		{ShopID: &shops[4].ID, Name: "唐揚げ 100g", Price: 240, Category: models.ShopCategoryMeat},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	set := models.Set{
		Name:        "晩ごはん応援セット",
		Description: "刺身・唐揚げ・ごぼうの3点セット",
		Price:       1280,
		IsActive:    true,
		Products:    []models.Product{products[0], products[2], products[4]},
	}
	if err := db.Create(&set).Error; err != nil {
		return fmt.Errorf("failed to seed sets: %w", err)
	}

	start := models.DateOnly(time.Now().AddDate(0, 0, 7))
	end := start.AddDate(0, 0, 1)
	events := []models.Event{
		{
			Title:        "金曜ナイト屋台",
			Category:     models.EventCategoryNight,
			IsRegular:    true,
			ScheduleText: "毎週金曜 17:00〜21:00",
			IsFeatured:   true,
			IsActive:     true,
		},
		{
			Title:     "秋の収穫祭",
			Category:  models.EventCategorySeason,
			StartDate: &start,
			EndDate:   &end,
			Location:  "中央通り広場",
			IsActive:  true,
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	log.Println("Initial data seeding completed")
	return nil
}
