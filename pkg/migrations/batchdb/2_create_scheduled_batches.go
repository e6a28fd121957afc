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
		log.Println("creating scheduled_batches table...")
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := mghelper.CreateSchema(ctx, tx, &batchstore.ScheduledBatchDao{}); err != nil {
				return err
			}
			if err := mghelper.CreateCompositeIndex(ctx, tx, &batchstore.ScheduledBatchDao{}, "status", "execution_time"); err != nil {
				return err
			}
			return mghelper.CreateModelIndexes(ctx, tx, &batchstore.ScheduledBatchDao{}, "dapp_id")
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping scheduled_batches table...")
		return mghelper.DropTables(ctx, db, &batchstore.ScheduledBatchDao{})
	})
}
