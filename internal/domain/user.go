package domain

import "time"

// MaxBadges is the capacity of a user's badge slot list.
const MaxBadges = 10

// User is the subset of a forum account the economy engine cares about:
// the drop-eligibility timestamp, the three cosmetic equip slots, and the
// experience counter credited by reactions.
type User struct {
	ID       string `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"`

	// LastReward is the last time a drop was issued to this user. It is
	// monotonically non-decreasing; the drop issuer advances it with a
	// compare-and-swap so concurrent attempts mint at most one drop per
	// eligibility window. New accounts start at the zero epoch.
	LastReward time.Time `json:"last_reward" db:"last_reward"`

	// Equip slots. Avatar and Background hold at most one drop id each;
	// Badges holds up to MaxBadges drop ids in insertion order with no
	// duplicates. Empty string means the slot is vacant.
	Avatar     string   `json:"avatar,omitempty" db:"avatar_drop"`
	Background string   `json:"background,omitempty" db:"background_drop"`
	Badges     []string `json:"badges" db:"badges"`

	Experience int `json:"experience" db:"experience"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HasEquipped reports whether dropID currently occupies any of the
// user's equip slots.
func (u *User) HasEquipped(dropID string) bool {
	if u.Avatar == dropID || u.Background == dropID {
		return true
	}
	for _, b := range u.Badges {
		if b == dropID {
			return true
		}
	}
	return false
}

// Post is the minimal reply/post shape the reaction flow needs: who wrote
// it and which reaction drops have been attached to it.
type Post struct {
	ID        string    `json:"post_id" db:"post_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	Reactions []string  `json:"reactions" db:"reactions"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
