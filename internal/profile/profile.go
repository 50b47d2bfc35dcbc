// Package profile tracks a player's long-term progress: experience,
// account level, wins, losses and best score.
package profile

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Avatar is the player's chosen colour.
type Avatar string

const (
	AvatarWhite Avatar = "white"
	AvatarBlack Avatar = "black"
	AvatarBlue  Avatar = "blue"
	AvatarRed   Avatar = "red"
)

// Avatars lists the selectable avatars.
func Avatars() []Avatar {
	return []Avatar{AvatarWhite, AvatarBlack, AvatarBlue, AvatarRed}
}

// ParseAvatar converts a user-supplied name to an Avatar.
func ParseAvatar(name string) (Avatar, error) {
	a := Avatar(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Avatars() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("profile: unknown avatar %q", name)
}

// MaxUsernameLen bounds usernames so they fit the scoreboard.
const MaxUsernameLen = 16

var (
	ErrEmptyUsername   = errors.New("profile: username is empty")
	ErrLongUsername    = fmt.Errorf("profile: username longer than %d characters", MaxUsernameLen)
	ErrInvalidUsername = errors.New("profile: username contains whitespace or control characters")
)

// ValidateUsername reports whether name can be used as a profile key.
func ValidateUsername(name string) error {
	if name == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		return ErrLongUsername
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f {
			return ErrInvalidUsername
		}
	}
	return nil
}

// Experience rewards.
const (
	levelExpMin   = 100
	levelExpMax   = 300
	victoryExpMin = 1000
	victoryExpMax = 1500
	expPerLevel   = 1000
)

// User is one player's persistent profile.
type User struct {
	ID          string
	Username    string
	Avatar      Avatar
	Level       int
	Exp         int
	GamesPlayed int
	GamesWon    int
	GamesLost   int
	HighScore   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a first-time profile at account level 1.
func New(username string, avatar Avatar) (*User, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if avatar == "" {
		avatar = AvatarWhite
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Avatar:    avatar,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ExpToNext returns the experience needed for the next account level.
func (u *User) ExpToNext() int {
	return u.Level * expPerLevel
}

// AddLevelExp rewards finishing a 0-indexed game level: a base roll in
// [100, 300] plus a bonus in [1, (level+1)*100].
func (u *User) AddLevelExp(rng *rand.Rand, level int) int {
	bonus := 1 + rng.Intn((level+1)*100)
	gained := levelExpMin + rng.Intn(levelExpMax-levelExpMin+1) + bonus
	u.Exp += gained
	u.checkLevelUp()
	u.touch()
	return gained
}

// AddWin records a won game and its experience reward in [1000, 1500].
func (u *User) AddWin(rng *rand.Rand) int {
	u.GamesPlayed++
	u.GamesWon++
	gained := victoryExpMin + rng.Intn(victoryExpMax-victoryExpMin+1)
	u.Exp += gained
	u.checkLevelUp()
	u.touch()
	return gained
}

// AddLoss records a lost game.
func (u *User) AddLoss() {
	u.GamesPlayed++
	u.GamesLost++
	u.touch()
}

// SetHighScore keeps score if it beats the stored best. It reports whether
// the best changed.
func (u *User) SetHighScore(score int) bool {
	if score <= u.HighScore {
		return false
	}
	u.HighScore = score
	u.touch()
	return true
}

// WinRate returns the share of games won, or 0 before the first game.
func (u *User) WinRate() float64 {
	if u.GamesPlayed == 0 {
		return 0
	}
	return float64(u.GamesWon) / float64(u.GamesPlayed)
}

// checkLevelUp advances at most one account level per reward.
func (u *User) checkLevelUp() {
	if u.Exp >= u.ExpToNext() {
		u.Exp -= u.ExpToNext()
		u.Level++
	}
}

func (u *User) touch() {
	u.UpdatedAt = time.Now().UTC()
}

func (u *User) String() string {
	return fmt.Sprintf("%s [%s] lvl %d (%d/%d) played %d (won %d, lost %d) best %d",
		u.Username, u.Avatar, u.Level, u.Exp, u.ExpToNext(),
		u.GamesPlayed, u.GamesWon, u.GamesLost, u.HighScore)
}
