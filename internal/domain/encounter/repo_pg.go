package encounter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehr/flowsheet/internal/platform/db"
)

type encounterRepoPG struct{ pool *pgxpool.Pool }

func NewEncounterRepoPG(pool *pgxpool.Pool) Repository {
	return &encounterRepoPG{pool: pool}
}

const encCols = `id, patient_id, form_id, encounter_type_id, location_id, encounter_datetime, created_at`

func (r *encounterRepoPG) scanRow(row pgx.Row) (*Encounter, error) {
	var e Encounter
	err := row.Scan(&e.ID, &e.PatientID, &e.FormID, &e.EncounterTypeID, &e.LocationID,
		&e.EncounterDatetime, &e.CreatedAt)
	return &e, err
}

func (r *encounterRepoPG) Create(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	return db.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO encounter (id, patient_id, form_id, encounter_type_id, location_id, encounter_datetime)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		enc.ID, enc.PatientID, enc.FormID, enc.EncounterTypeID, enc.LocationID, enc.EncounterDatetime,
	).Scan(&enc.CreatedAt)
}

func (r *encounterRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	e, err := r.scanRow(db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+encCols+` FROM encounter WHERE id = $1 AND NOT voided`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEncounterNotFound
	}
	return e, err
}

func (r *encounterRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, f Filter) ([]*Encounter, error) {
	where := []string{"patient_id = $1", "NOT voided"}
	args := []interface{}{patientID}
	if f.FormID != nil {
		args = append(args, *f.FormID)
		where = append(where, fmt.Sprintf("form_id = $%d", len(args)))
	}
	if f.EncounterTypeID != nil {
		args = append(args, *f.EncounterTypeID)
		where = append(where, fmt.Sprintf("encounter_type_id = $%d", len(args)))
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx,
		`SELECT `+encCols+` FROM encounter WHERE `+strings.Join(where, " AND ")+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list encounters: %w", err)
	}
	defer rows.Close()

	var items []*Encounter
	for rows.Next() {
		e, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
