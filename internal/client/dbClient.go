package client

import (
	"log"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitMysqlClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Subject{},
		&model.Product{},
		&model.ProductVariant{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.ProductLike{},
		&model.OrderFeedback{},
		&model.SupportInfo{},
		&model.StoreSetting{},
	)
}
