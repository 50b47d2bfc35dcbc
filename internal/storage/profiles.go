package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/profile"
)

const profileColumns = `id, username, avatar, level, exp, games_played, games_won,
	games_lost, high_score, created_at, updated_at`

// SaveProfile inserts the profile or updates the row with the same username.
func (s *Store) SaveProfile(u *profile.User) error {
	if err := profile.ValidateUsername(u.Username); err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = time.Now().UTC()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = u.UpdatedAt
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles (`+profileColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
			avatar = excluded.avatar,
			level = excluded.level,
			exp = excluded.exp,
			games_played = excluded.games_played,
			games_won = excluded.games_won,
			games_lost = excluded.games_lost,
			high_score = excluded.high_score,
			updated_at = excluded.updated_at`,
		u.ID, u.Username, string(u.Avatar), u.Level, u.Exp,
		u.GamesPlayed, u.GamesWon, u.GamesLost, u.HighScore,
		u.CreatedAt.Format(sqliteTime), u.UpdatedAt.Format(sqliteTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile %s: %w", u.Username, err)
	}
	return nil
}

// LoadProfile returns the profile with the given username, or
// ErrProfileNotFound.
func (s *Store) LoadProfile(username string) (*profile.User, error) {
	row := s.db.QueryRow(
		`SELECT `+profileColumns+` FROM profiles WHERE username = ?`,
		username,
	)
	u, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load profile %s: %w", username, err)
	}
	return u, nil
}

// LoadOrCreateProfile returns the stored profile or creates and saves a new
// one with the given avatar.
func (s *Store) LoadOrCreateProfile(username string, avatar profile.Avatar) (*profile.User, error) {
	u, err := s.LoadProfile(username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}
	u, err = profile.New(username, avatar)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot create profile: %w", err)
	}
	if err := s.SaveProfile(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListProfiles returns every profile, best account level first.
func (s *Store) ListProfiles() ([]*profile.User, error) {
	rows, err := s.db.Query(
		`SELECT ` + profileColumns + ` FROM profiles
		 ORDER BY level DESC, exp DESC, high_score DESC, username ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var users []*profile.User
	for rows.Next() {
		u, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return users, nil
}

// DeleteProfile removes a profile. Its scores are kept.
func (s *Store) DeleteProfile(username string) error {
	res, err := s.db.Exec("DELETE FROM profiles WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("storage: cannot delete profile %s: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete profile %s: %w", username, err)
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*profile.User, error) {
	var u profile.User
	var avatar string
	var createdAt, updatedAt any
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&avatar,
		&u.Level,
		&u.Exp,
		&u.GamesPlayed,
		&u.GamesWon,
		&u.GamesLost,
		&u.HighScore,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	u.Avatar = profile.Avatar(avatar)
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}
