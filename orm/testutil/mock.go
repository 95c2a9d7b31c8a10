package testutil

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/clawpad/clawpad/orm"
	"github.com/clawpad/clawpad/orm/config"
	"github.com/clawpad/clawpad/orm/plugins"
)

// NewMockDB returns a Database backed by sqlmock using regexp query matching.
func NewMockDB() (*orm.Database, sqlmock.Sqlmock, error) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		return nil, nil, err
	}

	gormcfg := &gorm.Config{
		NamingStrategy:  schema.NamingStrategy{SingularTable: true},
		PrepareStmt:     false,
		CreateBatchSize: 100,
		Logger:          logger.Discard,
	}

	instance, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormcfg)
	if err != nil {
		return nil, nil, err
	}

	if err := instance.Use(plugins.NewMetricsPlugin()); err != nil {
		return nil, nil, err
	}

	return orm.NewDatabase(instance, &config.Config{BatchSize: 100}), mock, nil
}
