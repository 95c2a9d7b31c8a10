package orm

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"os"

	"ariga.io/atlas-go-sdk/atlasexec"
	sloggorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/clawpad/clawpad/orm/config"
	"github.com/clawpad/clawpad/orm/migrations"
	"github.com/clawpad/clawpad/orm/plugins"
)

type Database struct {
	*gorm.DB
	config *config.Config
}

func OpenDB(config *config.Config, logger *slog.Logger) (*Database, error) {
	gormcfg := &gorm.Config{
		NamingStrategy:  schema.NamingStrategy{SingularTable: true},
		PrepareStmt:     true,
		CreateBatchSize: config.BatchSize,
		Logger:          sloggorm.New(sloggorm.WithHandler(logger.Handler())),
	}

	instance, err := gorm.Open(postgres.Open(config.DSN), gormcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := instance.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.MaxConns)
	sqlDB.SetMaxIdleConns(config.IdleConns)

	if err := instance.Use(plugins.NewMetricsPlugin()); err != nil {
		return nil, err
	}

	return &Database{DB: instance, config: config}, nil
}

// NewDatabase wraps an already opened gorm instance.
func NewDatabase(db *gorm.DB, config *config.Config) *Database {
	return &Database{DB: db, config: config}
}

// Migrate applies pending migrations when DB_AUTO_MIGRATE is set.
func (d Database) Migrate(ctx context.Context) error {
	if !d.config.AutoMigrate {
		return nil
	}
	_, err := d.ApplyMigrations(ctx)
	return err
}

// ApplyMigrations applies every pending migration and returns how many ran.
func (d Database) ApplyMigrations(ctx context.Context) (int, error) {
	client, closeFn, err := d.atlasClient()
	if err != nil {
		return 0, err
	}
	defer closeFn()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: d.config.DSN,
	})
	if err != nil {
		return 0, err
	}
	return len(res.Applied), nil
}

// PendingMigrations lists the versions not yet applied to the database.
func (d Database) PendingMigrations(ctx context.Context) ([]string, error) {
	client, closeFn, err := d.atlasClient()
	if err != nil {
		return nil, err
	}
	defer closeFn()

	status, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL: d.config.DSN,
	})
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(status.Pending))
	for _, file := range status.Pending {
		versions = append(versions, file.Version)
	}
	return versions, nil
}

func (d Database) atlasClient() (*atlasexec.Client, func(), error) {
	workDir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(d.migrationFS()),
	)
	if err != nil {
		return nil, nil, err
	}

	client, err := atlasexec.NewClient(workDir.Path(), "atlas")
	if err != nil {
		_ = workDir.Close()
		return nil, nil, err
	}
	return client, func() { _ = workDir.Close() }, nil
}

func (d Database) migrationFS() fs.FS {
	if d.config.MigrationDir != "" {
		return os.DirFS(d.config.MigrationDir)
	}
	return migrations.FS
}

func (d Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the database answers within ctx.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// GetDBStats returns database connection pool statistics
func (d Database) GetDBStats() (*sql.DBStats, error) {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, err
	}

	stats := sqlDB.Stats()
	return &stats, nil
}
