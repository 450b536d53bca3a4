package patient

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `patient_id, family, given, date_of_birth, gender, address, phone`

type row interface {
	Scan(dest ...any) error
}

func scanPatient(r row) (*Patient, error) {
	var p Patient
	var dob time.Time
	if err := r.Scan(&p.ID, &p.Family, &p.Given, &dob, &p.Gender, &p.Address, &p.Phone); err != nil {
		return nil, err
	}
	p.Dob = DateOf(dob)
	return &p, nil
}

func (r *repoPG) FindByID(ctx context.Context, id int) (*Patient, bool, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE patient_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StorageError{Op: "find by id", Err: err}
	}
	return p, true, nil
}

func (r *repoPG) FindByNaturalKey(ctx context.Context, family, given string, dob Date) (*Patient, bool, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients
		 WHERE family = $1 AND given = $2 AND date_of_birth = $3`,
		family, given, dob.Time))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &StorageError{Op: "find by natural key", Err: err}
	}
	return p, true, nil
}

func (r *repoPG) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patients WHERE patient_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, &StorageError{Op: "exists by id", Err: err}
	}
	return exists, nil
}

func (r *repoPG) Save(ctx context.Context, p *Patient) error {
	if p.ID == 0 {
		err := r.pool.QueryRow(ctx, `
			INSERT INTO patients (family, given, date_of_birth, gender, address, phone)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING patient_id`,
			p.Family, p.Given, p.Dob.Time, p.Gender, p.Address, p.Phone,
		).Scan(&p.ID)
		if err != nil {
			// The unique index on (family, given, date_of_birth) closes the
			// duplicate window the service's read-then-write leaves open.
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return &AlreadyExistsError{Family: p.Family, Given: p.Given, Dob: p.Dob}
			}
			return &StorageError{Op: "insert", Err: err}
		}
		return nil
	}

	_, err := r.pool.Exec(ctx, `
		UPDATE patients SET
			family = $2, given = $3, date_of_birth = $4, gender = $5, address = $6, phone = $7
		WHERE patient_id = $1`,
		p.ID, p.Family, p.Given, p.Dob.Time, p.Gender, p.Address, p.Phone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &AlreadyExistsError{Family: p.Family, Given: p.Given, Dob: p.Dob}
		}
		return &StorageError{Op: "update", Err: err}
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY patient_id`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, &StorageError{Op: "list scan", Err: err}
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list rows", Err: err}
	}
	return patients, nil
}
