package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"church_backend/internal/domain"
)

type RegistrationStore struct {
	db *sqlx.DB
}

func NewRegistrationStore(db *sqlx.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

func (s *RegistrationStore) Create(ctx context.Context, reg *domain.Registration) error {
	ex := getExecutor(ctx, s.db)

	query := `
		INSERT INTO registrations (
			id, participant_name, parent_guardian_name, sex, age,
			contact_phone, contact_email,
			emergency_name, emergency_phone, emergency_relation,
			accommodations, medical_conditions, allergies, dietary_restrictions,
			waiver_accepted, parent_signature, status, camp_year, camp_dates
		) VALUES (
			:id, :participant_name, :parent_guardian_name, :sex, :age,
			:contact_phone, :contact_email,
			:emergency_name, :emergency_phone, :emergency_relation,
			:accommodations, :medical_conditions, :allergies, :dietary_restrictions,
			:waiver_accepted, :parent_signature, :status, :camp_year, :camp_dates
		)`

	if _, err := sqlx.NamedExecContext(ctx, ex, query, reg); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}

	return s.db.GetContext(ctx, &reg.CreatedAt,
		"SELECT created_at FROM registrations WHERE id = $1", reg.ID)
}

// ExistsActive reports whether a non-cancelled registration already exists
// for the same participant, email and camp year.
func (s *RegistrationStore) ExistsActive(ctx context.Context, participantName, contactEmail string, campYear int) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE participant_name = $1
			  AND contact_email = $2
			  AND camp_year = $3
			  AND status <> $4
		)`, participantName, contactEmail, campYear, domain.RegistrationStatusCancelled)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *RegistrationStore) List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	query := `
		SELECT id, participant_name, parent_guardian_name, sex, age,
		       contact_phone, contact_email,
		       emergency_name, emergency_phone, emergency_relation,
		       accommodations, medical_conditions, allergies, dietary_restrictions,
		       waiver_accepted, parent_signature, status, camp_year, camp_dates,
		       created_at, updated_at
		FROM registrations
		WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.CampYear != 0 {
		args = append(args, filter.CampYear)
		query += fmt.Sprintf(" AND camp_year = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	var regs []domain.Registration
	if err := s.db.SelectContext(ctx, &regs, query, args...); err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *RegistrationStore) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	var reg domain.Registration
	err := s.db.GetContext(ctx, &reg, `
		SELECT id, participant_name, parent_guardian_name, sex, age,
		       contact_phone, contact_email,
		       emergency_name, emergency_phone, emergency_relation,
		       accommodations, medical_conditions, allergies, dietary_restrictions,
		       waiver_accepted, parent_signature, status, camp_year, camp_dates,
		       created_at, updated_at
		FROM registrations
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *RegistrationStore) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE registrations SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}

func (s *RegistrationStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM registrations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRegistrationNotFound
	}
	return nil
}
