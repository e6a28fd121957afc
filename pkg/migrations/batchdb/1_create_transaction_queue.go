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
		log.Println("creating transaction_queue table...")
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := mghelper.CreateSchema(ctx, tx, &batchstore.TransactionDao{}); err != nil {
				return err
			}
			// Serves the pending-by-creation scan used by auto-processing.
			if err := mghelper.CreateCompositeIndex(ctx, tx, &batchstore.TransactionDao{}, "status", "created_at"); err != nil {
				return err
			}
			return mghelper.CreateModelIndexes(ctx, tx, &batchstore.TransactionDao{}, "user_address")
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transaction_queue table...")
		return mghelper.DropTables(ctx, db, &batchstore.TransactionDao{})
	})
}
