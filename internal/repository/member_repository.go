package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/coacandes/member-service/internal/models"
	"github.com/lib/pq"
)

// MemberWriteRepository handles all state-mutating operations for members.
// It operates exclusively against the PostgreSQL write store (source of
// truth). Each method is a single statement, so every logical write commits
// in its own transaction.
type MemberWriteRepository struct {
	db *sql.DB
}

func NewMemberWriteRepository(db *sql.DB) *MemberWriteRepository {
	return &MemberWriteRepository{db: db}
}

func (r *MemberWriteRepository) Create(member *models.Member) error {
	query := `
		INSERT INTO members (id, identification, identification_type, names, surnames,
			email, phone, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(query,
		member.ID, member.Identification, member.IdentificationType,
		member.Names, member.Surnames,
		nullString(member.Email), nullString(member.Phone), nullString(member.Address),
		member.Active, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *MemberWriteRepository) GetByID(id string) (*models.Member, error) {
	query := `
		SELECT id, identification, identification_type, names, surnames,
			   email, phone, address, active, created_at, updated_at
		FROM members
		WHERE id = $1
	`
	return r.scanMember(r.db.QueryRow(query, id))
}

// ExistsByIdentification is the optimistic pre-check used by create and
// update. The unique constraint remains the final arbiter.
func (r *MemberWriteRepository) ExistsByIdentification(identification string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE identification = $1)`
	if err := r.db.QueryRow(query, identification).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check identification: %w", err)
	}
	return exists, nil
}

func (r *MemberWriteRepository) Update(member *models.Member) error {
	query := `
		UPDATE members
		SET identification = $2, identification_type = $3, names = $4, surnames = $5,
			email = $6, phone = $7, address = $8, active = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := r.db.Exec(query,
		member.ID, member.Identification, member.IdentificationType,
		member.Names, member.Surnames,
		nullString(member.Email), nullString(member.Phone), nullString(member.Address),
		member.Active, member.UpdatedAt,
	)
	if err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}

// Delete removes the member row. Only the command service calls this, and
// only after the accounts check has confirmed no active accounts exist.
func (r *MemberWriteRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}

func (r *MemberWriteRepository) scanMember(row *sql.Row) (*models.Member, error) {
	var member models.Member
	var email, phone, address sql.NullString

	err := row.Scan(
		&member.ID, &member.Identification, &member.IdentificationType,
		&member.Names, &member.Surnames,
		&email, &phone, &address,
		&member.Active, &member.CreatedAt, &member.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	member.Email = email.String
	member.Phone = phone.String
	member.Address = address.String
	return &member, nil
}

// duplicateKeyError maps a Postgres unique violation onto the registry's
// error taxonomy. The identification constraint is folded into the same
// error kind as the service-level pre-check, so callers see one duplicate
// error no matter which layer caught the race.
func duplicateKeyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	if pqErr.Constraint == "members_identification_key" {
		return models.ErrDuplicateIdentification
	}
	return fmt.Errorf("email already exists")
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
