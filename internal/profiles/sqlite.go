package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/spigell/career-scorer/internal/recommend"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    TEXT PRIMARY KEY,
	interests  TEXT NOT NULL DEFAULT '',
	skills     TEXT NOT NULL DEFAULT '[]',
	projects   TEXT NOT NULL DEFAULT '[]',
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS recommendations (
	user_id    TEXT PRIMARY KEY,
	domains    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
`

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore keeps profiles in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// OpenSQLite opens (creating when needed) the database at dsn and applies the
// schema.
func OpenSQLite(ctx context.Context, dsn string, logger *zap.Logger) (*SQLiteStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlite dsn not specified")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY under
	// concurrent requests.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema in %s: %w", dsn, err)
	}

	logger.Debug("profile store opened", zap.String("dsn", dsn))

	return &SQLiteStore{db: db, logger: logger, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get returns the profile of userID or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, userID string) (*Profile, error) {
	return getProfile(ctx, s.db, userID)
}

// Update merges patch into the stored profile, creating it when missing, and
// returns the result.
func (s *SQLiteStore) Update(ctx context.Context, userID string, patch map[string]any) (*Profile, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin profile update: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(ctx, tx, userID)
	if errors.Is(err, ErrNotFound) {
		profile = &Profile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if err := profile.Apply(patch); err != nil {
		return nil, err
	}
	profile.UpdatedAt = s.now().UTC()

	skills, err := json.Marshal(nonNil(profile.Skills))
	if err != nil {
		return nil, fmt.Errorf("marshal skills: %w", err)
	}
	projects, err := json.Marshal(nonNil(profile.Projects))
	if err != nil {
		return nil, fmt.Errorf("marshal projects: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO profiles (user_id, interests, skills, projects, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			interests = excluded.interests,
			skills = excluded.skills,
			projects = excluded.projects,
			updated_at = excluded.updated_at`,
		userID, profile.Interests, string(skills), string(projects), profile.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("save profile %s: %w", userID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile %s: %w", userID, err)
	}

	s.logger.Debug("profile updated", zap.String("user_id", userID), zap.Int("patched_fields", len(patch)))
	return profile, nil
}

// SaveRecommendations replaces the stored ranking of userID.
func (s *SQLiteStore) SaveRecommendations(ctx context.Context, userID string, recs []recommend.Recommendation) error {
	domains, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recommendations (user_id, domains, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			domains = excluded.domains,
			created_at = excluded.created_at`,
		userID, string(domains), s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save recommendations %s: %w", userID, err)
	}
	return nil
}

// Recommendations returns the last ranking stored for userID or ErrNotFound.
func (s *SQLiteStore) Recommendations(ctx context.Context, userID string) (*Recommendations, error) {
	var (
		domains   string
		createdAt int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT domains, created_at FROM recommendations WHERE user_id = ?`, userID,
	).Scan(&domains, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query recommendations %s: %w", userID, err)
	}

	out := &Recommendations{UserID: userID, CreatedAt: time.UnixMilli(createdAt).UTC()}
	if err := json.Unmarshal([]byte(domains), &out.Domains); err != nil {
		return nil, fmt.Errorf("decode recommendations %s: %w", userID, err)
	}
	return out, nil
}

func getProfile(ctx context.Context, q queryer, userID string) (*Profile, error) {
	var (
		p                Profile
		skills, projects string
		updatedAt        int64
	)

	err := q.QueryRowContext(ctx,
		`SELECT user_id, interests, skills, projects, updated_at FROM profiles WHERE user_id = ?`, userID,
	).Scan(&p.UserID, &p.Interests, &skills, &projects, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}

	if err := json.Unmarshal([]byte(skills), &p.Skills); err != nil {
		return nil, fmt.Errorf("decode skills of %s: %w", userID, err)
	}
	if err := json.Unmarshal([]byte(projects), &p.Projects); err != nil {
		return nil, fmt.Errorf("decode projects of %s: %w", userID, err)
	}
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
