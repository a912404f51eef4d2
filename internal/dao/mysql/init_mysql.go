package mysql

import (
	"fmt"

	"petlify_server/internal/config"
	"petlify_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the MySQL connection, migrates the schema and returns the
// repository aggregate.
//
// TranslateError makes GORM surface driver error 1062 as
// gorm.ErrDuplicatedKey, which the adoption store relies on to report
// duplicate submissions racing past the service-level pre-check.
func Init() *Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal("open mysql failed", zap.Error(err))
	}

	// AutoMigrate creates missing tables and indexes, including the
	// idx_pet_user_active unique index backing duplicate prevention.
	err = db.AutoMigrate(
		&model.UserInfo{},
		&model.Pet{},
		&model.AdoptionRequest{},
	)
	if err != nil {
		zap.L().Fatal("auto migrate failed", zap.Error(err))
	}

	return NewRepositories(db)
}
