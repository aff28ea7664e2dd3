package storage

import (
	"context"
	"encoding/json"

	"github.com/petcare-labs/pawsched/libs/db"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
)

type ClinicRepository struct {
	pool *db.Pool
}

func NewClinicRepository(pool *db.Pool) *ClinicRepository {
	return &ClinicRepository{pool: pool}
}

const clinicColumns = `id::text, name, address, latitude, longitude, is_emergency, is_24_hour, hours, created_at, updated_at`

func (r *ClinicRepository) Get(ctx context.Context, clinicID string) (model.Clinic, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+clinicColumns+`
		FROM clinics
		WHERE id = $1
	`, clinicID)
	return scanClinic(row)
}

func (r *ClinicRepository) List(ctx context.Context) ([]model.Clinic, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+clinicColumns+`
		FROM clinics
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clinics []model.Clinic
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		clinics = append(clinics, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return clinics, nil
}

// SearchByAddress matches the clinic address case-insensitively against a
// locality substring. Unranked.
func (r *ClinicRepository) SearchByAddress(ctx context.Context, query string, emergencyOnly, open24hOnly bool) ([]model.Clinic, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+clinicColumns+`
		FROM clinics
		WHERE address ILIKE '%' || $1 || '%'
			AND ($2 = false OR is_emergency)
			AND ($3 = false OR is_24_hour)
		ORDER BY created_at, id
	`, query, emergencyOnly, open24hOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clinics []model.Clinic
	for rows.Next() {
		c, err := scanClinic(rows)
		if err != nil {
			return nil, err
		}
		clinics = append(clinics, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return clinics, nil
}

func (r *ClinicRepository) Create(ctx context.Context, c model.Clinic) (string, error) {
	hoursJSON, err := json.Marshal(c.Hours)
	if err != nil {
		return "", err
	}
	var id string
	err = r.pool.QueryRow(ctx, `
		INSERT INTO clinics (name, address, latitude, longitude, is_emergency, is_24_hour, hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, c.Name, c.Address, c.Latitude, c.Longitude, c.IsEmergency, c.Is24Hour, hoursJSON).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ClinicRepository) Update(ctx context.Context, c model.Clinic) error {
	hoursJSON, err := json.Marshal(c.Hours)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE clinics
		SET name = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			is_emergency = $6,
			is_24_hour = $7,
			hours = $8,
			updated_at = now()
		WHERE id = $1
	`, c.ID, c.Name, c.Address, c.Latitude, c.Longitude, c.IsEmergency, c.Is24Hour, hoursJSON)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

type clinicScanner interface {
	Scan(dest ...any) error
}

func scanClinic(row clinicScanner) (model.Clinic, error) {
	var c model.Clinic
	var rawHours []byte
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Latitude,
		&c.Longitude,
		&c.IsEmergency,
		&c.Is24Hour,
		&rawHours,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return model.Clinic{}, err
	}
	if len(rawHours) > 0 {
		if err := json.Unmarshal(rawHours, &c.Hours); err != nil {
			return model.Clinic{}, err
		}
	} else {
		c.Hours = map[string]string{}
	}
	return c, nil
}
