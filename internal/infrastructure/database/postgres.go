package database

import (
	"fmt"
	"log"

	"github.com/restobill/restobill-api/internal/config"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities and recreates the
// denormalized order summary view. The view is convenience only; the
// authoritative totals live on orders.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.Exec(`
		CREATE OR REPLACE VIEW v_order_summary AS
		SELECT
			o.id AS order_id,
			o.created_at,
			o.order_mode,
			o.table_no,
			o.customer_name,
			SUM(oi.line_subtotal) AS subtotal,
			o.discount_amount,
			SUM(oi.line_tax) AS tax_amount,
			o.total_amount,
			o.payment_method,
			o.amount_paid,
			o.change_due
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY o.id
	`).Error; err != nil {
		return fmt.Errorf("failed to create order summary view: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedMenu seeds the sample menu when the catalog is empty
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample menu...")

	items := []entity.MenuItem{
		{ItemName: "Masala Dosa", Category: "Main Course", Price: decimal.NewFromFloat(120.0), GSTRate: decimal.NewFromFloat(5.0), IsActive: true},
		{ItemName: "Paneer Tikka", Category: "Starter", Price: decimal.NewFromFloat(180.0), GSTRate: decimal.NewFromFloat(5.0), IsActive: true},
		{ItemName: "Veg Fried Rice", Category: "Main Course", Price: decimal.NewFromFloat(150.0), GSTRate: decimal.NewFromFloat(5.0), IsActive: true},
		{ItemName: "Butter Naan", Category: "Breads", Price: decimal.NewFromFloat(35.0), GSTRate: decimal.NewFromFloat(5.0), IsActive: true},
		{ItemName: "Gulab Jamun (2 pc)", Category: "Desserts", Price: decimal.NewFromFloat(80.0), GSTRate: decimal.NewFromFloat(5.0), IsActive: true},
		{ItemName: "Mineral Water 750ml", Category: "Beverages", Price: decimal.NewFromFloat(40.0), GSTRate: decimal.NewFromFloat(18.0), IsActive: true},
		{ItemName: "Fresh Lime Soda", Category: "Beverages", Price: decimal.NewFromFloat(90.0), GSTRate: decimal.NewFromFloat(18.0), IsActive: true},
		{ItemName: "Cold Coffee", Category: "Beverages", Price: decimal.NewFromFloat(140.0), GSTRate: decimal.NewFromFloat(18.0), IsActive: true},
	}

	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Printf("Seeded %d menu items", len(items))
	return nil
}
