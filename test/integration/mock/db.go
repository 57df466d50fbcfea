// Package mock provides test doubles for the integration suite: an
// in-memory database, a fake bank charge service and a fake message relay.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by all scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The map key is the table name, used by the db assertion steps.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every scenario on the same in-memory schema.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: false,
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{DbConn: dbConn, models: models}
	if err := d.Reset(); err != nil {
		panic("failed to initialize database: " + err.Error())
	}
	return d
}

// Reset drops and recreates every table. Recreating instead of deleting rows
// also resets the autoincrement sequences, so each scenario sees IDs
// starting at 1.
func (d *Db) Reset() error {
	modelList := make([]any, 0, len(d.models))
	for _, m := range d.models {
		modelList = append(modelList, m)
	}

	for _, m := range modelList {
		if d.DbConn.Migrator().HasTable(m) {
			if err := d.DbConn.Migrator().DropTable(m); err != nil {
				return err
			}
		}
	}

	return d.DbConn.AutoMigrate(modelList...)
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}

// HealthCheck reports whether the underlying connection is usable.
func (d *Db) HealthCheck() bool {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
