package medication

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/flowsheet/internal/platform/db"
)

type drugRepoPG struct{ pool *pgxpool.Pool }

func NewDrugRepoPG(pool *pgxpool.Pool) DrugLookup {
	return &drugRepoPG{pool: pool}
}

const drugCols = `drug_id, uuid, name`

func (r *drugRepoPG) scanRow(row pgx.Row) (*Drug, error) {
	var d Drug
	if err := row.Scan(&d.ID, &d.UUID, &d.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDrugNotFound
		}
		return nil, fmt.Errorf("scan drug: %w", err)
	}
	return &d, nil
}

func (r *drugRepoPG) GetDrugByUUID(ctx context.Context, uuid string) (*Drug, error) {
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+drugCols+` FROM drug WHERE uuid = $1`, uuid))
}

func (r *drugRepoPG) GetDrugByNameOrID(ctx context.Context, ref string) (*Drug, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		d, err := r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
			`SELECT `+drugCols+` FROM drug WHERE drug_id = $1`, id))
		if !errors.Is(err, ErrDrugNotFound) {
			return d, err
		}
	}
	return r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+drugCols+` FROM drug WHERE LOWER(name) = LOWER($1)
		 ORDER BY retired, drug_id LIMIT 1`, ref))
}
