package migrations

import (
	"context"

	"github.com/dipdup-io/l2-token-catalog/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
)

func init() {
	DbMigrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// early indexer builds wrote -1 instead of NULL for unknown liquidity
		res, err := db.NewUpdate().
			Model((*storage.Token)(nil)).
			Set("liquidity = NULL").
			Where("liquidity < 0").
			Exec(ctx)
		if err != nil {
			return err
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		log.Info().
			Int64("updated tokens amount", rows).
			Msg("migration applied")
		return nil

	}, func(ctx context.Context, db *bun.DB) error {
		return nil
	})
}
