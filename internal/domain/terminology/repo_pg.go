package terminology

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/flowsheet/internal/platform/db"
)

type conceptRepoPG struct{ pool *pgxpool.Pool }

func NewConceptRepoPG(pool *pgxpool.Pool) ConceptLookup {
	return &conceptRepoPG{pool: pool}
}

const conceptCols = `concept_id, uuid, name`

func (r *conceptRepoPG) scanRow(row pgx.Row) (*Concept, error) {
	var c Concept
	if err := row.Scan(&c.ID, &c.UUID, &c.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConceptNotFound
		}
		return nil, fmt.Errorf("scan concept: %w", err)
	}
	return &c, nil
}

func (r *conceptRepoPG) GetConceptByID(ctx context.Context, id int) (*Concept, error) {
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+conceptCols+` FROM concept WHERE concept_id = $1`, id))
}

func (r *conceptRepoPG) GetConceptByUUID(ctx context.Context, uuid string) (*Concept, error) {
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+conceptCols+` FROM concept WHERE uuid = $1`, uuid))
}
