package chart

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type settingsRepoPG struct {
	pool  *pgxpool.Pool
	table string
}

// NewSettingsRepoPG reads the global properties of one tenant schema. The
// chart configuration is process-wide, so it does not follow the request's
// tenant connection.
func NewSettingsRepoPG(pool *pgxpool.Pool, schema string) SettingsRepository {
	return &settingsRepoPG{pool: pool, table: pgx.Identifier{schema, "global_property"}.Sanitize()}
}

func (r *settingsRepoPG) GetSettings(ctx context.Context) (Settings, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT property, property_value FROM `+r.table+` WHERE property = ANY($1)`,
		[]string{PropertyTabs, PropertyLinks, PropertyChronology})
	if err != nil {
		return Settings{}, fmt.Errorf("query global properties: %w", err)
	}
	defer rows.Close()

	var s Settings
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Settings{}, fmt.Errorf("scan global property: %w", err)
		}
		switch name {
		case PropertyTabs:
			s.Tabs = value
		case PropertyLinks:
			s.Links = value
		case PropertyChronology:
			s.Chronology = value
		}
	}
	return s, rows.Err()
}

func (r *settingsRepoPG) SaveSettings(ctx context.Context, s Settings) error {
	batch := &pgx.Batch{}
	for name, value := range map[string]string{
		PropertyTabs:       s.Tabs,
		PropertyLinks:      s.Links,
		PropertyChronology: s.Chronology,
	} {
		batch.Queue(`
			INSERT INTO `+r.table+` (property, property_value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (property) DO UPDATE SET property_value = EXCLUDED.property_value, updated_at = NOW()`,
			name, value)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("save global properties: %w", err)
	}
	return tx.Commit(ctx)
}
