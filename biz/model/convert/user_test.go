package convert

import (
	"testing"
	"time"

	"userhub/be/biz/model/domain"

	"github.com/stretchr/testify/assert"
)

func TestUserDomainRecordRoundTrip(t *testing.T) {
	u := &domain.UserRecord{
		ID:        "u1",
		Name:      "Ana",
		Email:     "a@x.com",
		Password:  "secret1",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC),
	}

	m := UserDomainToRecord(u)
	assert.Equal(t, "u1", m.UserId)
	assert.Equal(t, "secret1", m.Password)

	assert.Equal(t, u, UserRecordToDomain(m))
	assert.Nil(t, UserDomainToRecord(nil))
	assert.Nil(t, UserRecordToDomain(nil))
}

func TestPublicUserToInfo(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	info := PublicUserToInfo(domain.PublicUser{
		ID:        "u1",
		Name:      "Ana",
		Email:     "a@x.com",
		CreatedAt: time.Date(2024, 5, 1, 17, 0, 0, 5_000_000, loc),
	})

	assert.Equal(t, "2024-05-01T10:00:00.005Z", info.CreatedAt)
	assert.Equal(t, "a@x.com", info.Email)
}

func TestPublicUsersToInfos(t *testing.T) {
	infos := PublicUsersToInfos(nil)
	assert.NotNil(t, infos)
	assert.Empty(t, infos)
}

func TestNow(t *testing.T) {
	now := Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
}
