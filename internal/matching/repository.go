// internal/matching/repository.go

package matching

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// MaxCandidates caps how many profiles one matching run loads from the
// database. Scoring is O(candidates), so the cap bounds request latency.
const MaxCandidates = 500

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ListCandidates(ctx context.Context, excludeID string, location string) ([]*Profile, error)
	CountCompleteProfiles(ctx context.Context, excludeID string) (int, error)
	GetEmail(ctx context.Context, userID string) (string, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// profileRow maps the users table. The tenant_profile JSONB column scans
// through TenantProfile's sql.Scanner implementation.
type profileRow struct {
	ID                string         `db:"id"`
	Username          string         `db:"username"`
	Email             string         `db:"email"`
	Firstname         *string        `db:"firstname"`
	Lastname          *string        `db:"lastname"`
	Photo             *string        `db:"photo"`
	Age               *int           `db:"age"`
	Gender            *string        `db:"gender"`
	Bio               *string        `db:"bio"`
	Location          *string        `db:"location"`
	Languages         pq.StringArray `db:"languages"`
	TenantProfile     *TenantProfile `db:"tenant_profile"`
	IsProfileComplete bool           `db:"is_profile_complete"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (row *profileRow) toProfile() *Profile {
	profile := &Profile{
		ID:        row.ID,
		Username:  row.Username,
		Firstname: row.Firstname,
		Lastname:  row.Lastname,
		Photo:     row.Photo,
		Age:       row.Age,
		Bio:       row.Bio,
		Location:  row.Location,
		Languages: []string(row.Languages),
		Tenant:    row.TenantProfile,
	}
	if row.Gender != nil {
		gender := Gender(*row.Gender)
		profile.Gender = &gender
	}
	return profile
}

const profileColumns = `
	id, username, email, firstname, lastname, photo, age, gender, bio,
	location, languages, tenant_profile, is_profile_complete,
	created_at, updated_at`

func (r *postgresRepository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`

	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !row.IsProfileComplete {
		return nil, ErrProfileIncomplete
	}
	return row.toProfile(), nil
}

// ListCandidates returns complete profiles other than excludeID, optionally
// narrowed by a case-insensitive partial location match, newest first,
// capped at MaxCandidates.
func (r *postgresRepository) ListCandidates(ctx context.Context, excludeID string, location string) ([]*Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users
		WHERE is_profile_complete = TRUE AND id != $1`
	args := []interface{}{excludeID}

	if location != "" {
		query += ` AND location ILIKE $2`
		args = append(args, "%"+location+"%")
	}
	query += ` ORDER BY updated_at DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, MaxCandidates)

	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	profiles := make([]*Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, rows[i].toProfile())
	}
	return profiles, nil
}

func (r *postgresRepository) CountCompleteProfiles(ctx context.Context, excludeID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE is_profile_complete = TRUE AND id != $1`
	if err := r.db.GetContext(ctx, &count, query, excludeID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresRepository) GetEmail(ctx context.Context, userID string) (string, error) {
	var email string
	query := `SELECT email FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &email, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrUserNotFound
		}
		return "", err
	}
	return email, nil
}
