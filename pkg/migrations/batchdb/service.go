// Package batchdb holds all the migrations for the gas batcher database
package batchdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the gas batcher database
var Migrations = migrate.NewMigrations()
