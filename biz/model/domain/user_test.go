package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRecord_Public(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	u := UserRecord{ID: "1", Name: "Ana", Email: "a@x.com", Password: "secret1", CreatedAt: created}

	assert.Equal(t, PublicUser{ID: "1", Name: "Ana", Email: "a@x.com", CreatedAt: created}, u.Public())
}

func TestPublicUsers(t *testing.T) {
	assert.NotNil(t, PublicUsers(nil))
	assert.Empty(t, PublicUsers(nil))

	users := PublicUsers([]UserRecord{
		{ID: "1", Email: "a@x.com", Password: "p1"},
		{ID: "2", Email: "b@x.com", Password: "p2"},
	})
	assert.Len(t, users, 2)
	assert.Equal(t, "1", users[0].ID)
	assert.Equal(t, "b@x.com", users[1].Email)
}

func TestUserRecord_MarshalJSON(t *testing.T) {
	cases := []struct {
		created time.Time
		want    string
	}{
		{time.Date(2024, 5, 1, 10, 0, 5, 370_000_000, time.UTC), "2024-05-01T10:00:05.370Z"},
		{time.Date(2024, 5, 1, 10, 0, 5, 0, time.UTC), "2024-05-01T10:00:05.000Z"},
		{time.Date(2024, 5, 1, 18, 0, 5, 1_000_000, time.FixedZone("WITA", 8*3600)), "2024-05-01T10:00:05.001Z"},
	}
	for _, tc := range cases {
		u := UserRecord{ID: "1", Name: "Ana", Email: "a@x.com", Password: "secret1", CreatedAt: tc.created}

		data, err := json.Marshal(u)
		require.NoError(t, err)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(data, &fields))
		assert.Equal(t, map[string]string{
			"id":        "1",
			"name":      "Ana",
			"email":     "a@x.com",
			"password":  "secret1",
			"createdAt": tc.want,
		}, fields)

		var back UserRecord
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, tc.created.Equal(back.CreatedAt))
		assert.Equal(t, "Ana", back.Name)
	}
}
