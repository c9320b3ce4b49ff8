package convert

import (
	"time"

	"userhub/be/biz/model/domain"
	"userhub/be/biz/model/dto"
	"userhub/be/biz/model/storage"
)

const TimeLayout = domain.TimeLayout

func UserDomainToRecord(u *domain.UserRecord) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
		},
		UserId:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Password: u.Password,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.UserRecord {
	if m == nil {
		return nil
	}
	return &domain.UserRecord{
		ID:        m.UserId,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func PublicUserToInfo(u domain.PublicUser) dto.UserInfo {
	return dto.UserInfo{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(TimeLayout),
	}
}

func PublicUsersToInfos(users []domain.PublicUser) []dto.UserInfo {
	infos := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, PublicUserToInfo(u))
	}
	return infos
}

// Now is the creation time of a new record.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
