package batchdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	mghelper "github.com/chainsafe/gas-batcher/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating batch_analytics table...")
		if err := mghelper.CreateSchema(ctx, db, &batchstore.AnalyticsDao{}); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `
			ALTER TABLE batch_analytics
			ADD CONSTRAINT batch_analytics_non_negative
			CHECK (total_gas_saved >= 0 AND total_batches >= 0 AND total_transactions >= 0)`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping batch_analytics table...")
		return mghelper.DropTables(ctx, db, &batchstore.AnalyticsDao{})
	})
}
