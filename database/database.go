package database

import (
	"fmt"
	"time"

	"mealtracker-go-api/models"
	"mealtracker-go-api/structs"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
)

// Open builds the gorm handle from the environment config. The handle is
// passed to every service explicitly, there is no package level connection.
func Open(config *structs.EnviromentModel) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		config.Database.User,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Db,
		config.Database.Params,
	)

	db, err := gorm.Open(config.Database.Client, dsn)
	if err != nil {
		return nil, err
	}

	db.DB().SetMaxIdleConns(int(config.Database.MaxIdle))
	db.DB().SetMaxOpenConns(int(config.Database.MaxOpenConn))
	if lifeTime, err := time.ParseDuration(config.Database.MaxLifeTime); err == nil {
		db.DB().SetConnMaxLifetime(lifeTime)
	}
	db.LogMode(config.Database.LogEnable == 1)

	return db, nil
}

// Migrate keeps the four domain tables and the activity log in sync with the
// model definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Ingredient{},
		&models.Dish{},
		&models.DishHasIngredient{},
		&models.MenuItem{},
		&models.ActivityLog{},
	).Error
}
