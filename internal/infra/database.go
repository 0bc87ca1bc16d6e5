package infra

import (
	"context"
	"fmt"
	"time"

	"catalogo/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBOptions tunes the connection pool and gorm's own logging.
type DBOptions struct {
	MaxOpenConns int
	MaxIdleConns int
	// Production silences gorm's logger; otherwise slow queries and errors are
	// reported at warn level.
	Production bool
}

// NewDatabase establishes a GORM connection backed by pgx and verifies it
// with a ping. The schema is not touched; call Migrate for that.
func NewDatabase(dsn string, opts DBOptions) (*gorm.DB, error) {
	level := logger.Warn
	if opts.Production {
		level = logger.Silent
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// catalogTables lists the models in dependency order: parents first.
func catalogTables() []any {
	return []any{&model.Category{}, &model.Subcategory{}, &model.Product{}}
}

// Migrate creates or updates the catalog tables, then applies the constraints
// AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(catalogTables()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// ResetSchema drops every catalog table and recreates it empty.
func ResetSchema(db *gorm.DB) error {
	tables := catalogTables()
	// children first so foreign keys never block the drop
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return Migrate(db)
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// applySchemaPatches runs idempotent DDL statements GORM AutoMigrate cannot
// handle on its own. Each one is guarded so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"products price unconstrained numeric", `
DO $$ BEGIN
  IF EXISTS (SELECT 1 FROM information_schema.columns
             WHERE table_name = 'products' AND column_name = 'price'
               AND (data_type <> 'numeric' OR numeric_precision IS NOT NULL)) THEN
    ALTER TABLE products ALTER COLUMN price TYPE numeric;
  END IF;
END $$`},
		{"products gender check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_products_gender') THEN
    ALTER TABLE products
      ADD CONSTRAINT chk_products_gender CHECK (gender IN ('femenino', 'masculino', 'unisex'));
  END IF;
END $$`},
		{"products quantity check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_products_quantity') THEN
    ALTER TABLE products
      ADD CONSTRAINT chk_products_quantity CHECK (quantity >= 0);
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
