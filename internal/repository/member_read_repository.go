package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/coacandes/member-service/internal/models"
	sharedredis "github.com/coacandes/member-service/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const memberViewKeyPrefix = "member:view:"

// MemberReadRepository handles all read operations for members. Single-member
// reads go to Redis first and fall back to PostgreSQL on a miss; list and
// by-identification reads always hit PostgreSQL. The deletion safety check
// never goes through this repository — it requires a fresh answer from the
// accounts service, not a projection.
type MemberReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ViewCache[models.MemberView]
}

func NewMemberReadRepository(db *sql.DB, redisClient *goredis.Client) *MemberReadRepository {
	return &MemberReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.MemberView](redisClient, memberViewKeyPrefix, 0),
	}
}

// GetByID returns a MemberView from Redis first, then PostgreSQL.
func (r *MemberReadRepository) GetByID(ctx context.Context, id string) (*models.MemberView, error) {
	if view, ok := r.cache.Get(ctx, id); ok {
		return view, nil
	}

	query := selectMemberView + ` WHERE id = $1`
	view, err := r.scanMemberView(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	// Warm the cache
	r.CacheMemberView(ctx, view)
	return view, nil
}

// GetByIdentification looks a member up by their national ID or tax
// registration number. Identification is unique, so at most one row matches.
func (r *MemberReadRepository) GetByIdentification(ctx context.Context, identification string) (*models.MemberView, error) {
	query := selectMemberView + ` WHERE identification = $1`
	view, err := r.scanMemberView(r.db.QueryRowContext(ctx, query, identification))
	if err != nil {
		return nil, err
	}

	r.CacheMemberView(ctx, view)
	return view, nil
}

// List returns the whole registry ordered by identification. The order is
// deterministic but carries no meaning; callers must not read it as
// registration order.
func (r *MemberReadRepository) List(ctx context.Context) ([]*models.MemberView, error) {
	query := selectMemberView + ` ORDER BY identification`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	views := make([]*models.MemberView, 0)
	for rows.Next() {
		var view models.MemberView
		var email, phone, address sql.NullString
		if err := rows.Scan(
			&view.ID, &view.Identification, &view.IdentificationType,
			&view.Names, &view.Surnames,
			&email, &phone, &address,
			&view.Active, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		view.Email = email.String
		view.Phone = phone.String
		view.Address = address.String
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return views, nil
}

// CacheMemberView stores or refreshes the Redis read model for a member.
// Called by the command service after every mutation.
func (r *MemberReadRepository) CacheMemberView(ctx context.Context, view *models.MemberView) {
	if err := r.cache.Set(ctx, view.ID, view); err != nil {
		log.Printf("Member view cache write failed: %v", err)
	}
}

// InvalidateMemberView removes the Redis read model entry for a deleted member.
func (r *MemberReadRepository) InvalidateMemberView(ctx context.Context, memberID string) {
	if err := r.cache.Delete(ctx, memberID); err != nil {
		log.Printf("Member view cache eviction failed: %v", err)
	}
}

const selectMemberView = `
	SELECT id, identification, identification_type, names, surnames,
		   email, phone, address, active, created_at, updated_at
	FROM members`

func (r *MemberReadRepository) scanMemberView(row *sql.Row) (*models.MemberView, error) {
	var view models.MemberView
	var email, phone, address sql.NullString

	err := row.Scan(
		&view.ID, &view.Identification, &view.IdentificationType,
		&view.Names, &view.Surnames,
		&email, &phone, &address,
		&view.Active, &view.CreatedAt, &view.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	view.Email = email.String
	view.Phone = phone.String
	view.Address = address.String
	return &view, nil
}
