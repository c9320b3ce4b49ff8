package domain

import (
	"encoding/json"
	"time"
)

// TimeLayout renders creation times as ISO-8601 in UTC with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// UserRecord is the persisted user, credential included.
type UserRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// MarshalJSON writes createdAt with TimeLayout.
func (u UserRecord) MarshalJSON() ([]byte, error) {
	type record UserRecord
	return json.Marshal(struct {
		record
		CreatedAt string `json:"createdAt"`
	}{
		record:    record(u),
		CreatedAt: u.CreatedAt.UTC().Format(TimeLayout),
	})
}

// PublicUser is a UserRecord without its credential.
type PublicUser struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

func (u UserRecord) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func PublicUsers(records []UserRecord) []PublicUser {
	users := make([]PublicUser, 0, len(records))
	for _, r := range records {
		users = append(users, r.Public())
	}
	return users
}
