package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/flowsheet/internal/platform/db"
)

type formRepoPG struct{ pool *pgxpool.Pool }

func NewFormRepoPG(pool *pgxpool.Pool) Lookup {
	return &formRepoPG{pool: pool}
}

const formCols = `form_id, uuid, name, encounter_type_id, markup`

func (r *formRepoPG) scanRow(row pgx.Row) (*Form, error) {
	var f Form
	if err := row.Scan(&f.ID, &f.UUID, &f.Name, &f.EncounterTypeID, &f.Markup); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("scan form: %w", err)
	}
	return &f, nil
}

func (r *formRepoPG) GetFormByUUID(ctx context.Context, uuid string) (*Form, error) {
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+formCols+` FROM form WHERE uuid = $1`, uuid))
}

func (r *formRepoPG) GetFormByID(ctx context.Context, id int) (*Form, error) {
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+formCols+` FROM form WHERE form_id = $1`, id))
}
