package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"userhub/be/biz/config"
	"userhub/be/biz/dal/store"
	"userhub/be/biz/db/mysql"
	"userhub/be/biz/db/redis"
	"userhub/be/biz/db/s3"
	"userhub/be/biz/db/sqlite"
	"userhub/be/biz/model/convert"
	"userhub/be/biz/model/domain"
	"userhub/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type authenticateInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Service implements register, authenticate and list over a Store. Each call
// loads the collection afresh.
type Service struct {
	store store.Store

	// serializes load-mutate-save when the store is not an Updater
	mu sync.Mutex

	now   func() time.Time
	newID func() (string, error)
}

func New(s store.Store) *Service {
	return &Service{
		store: s,
		now:   convert.Now,
		newID: newUserID,
	}
}

var (
	defaultOnce sync.Once
	defaultSvc  *Service
)

// NewDefault returns the process-wide service for the configured store.
func NewDefault() *Service {
	defaultOnce.Do(func() {
		defaultSvc = New(newStore(config.GetStoreConf()))
	})
	return defaultSvc
}

func newStore(conf config.StoreConf) store.Store {
	switch conf.Driver {
	case config.DriverRedis:
		return store.NewRedisStore(redis.GetRedisClient(), config.GetRedisConf().Key, conf.MaxRetries)
	case config.DriverMySQL:
		return store.NewGormStore(mysql.GetDbConn())
	case config.DriverSQLite:
		return store.NewGormStore(sqlite.GetDbConn())
	case config.DriverS3:
		s3Conf := config.GetS3Conf()
		return store.NewS3Store(s3.GetClient(), s3Conf.Bucket, s3Conf.Key, conf.MaxRetries)
	default:
		path := conf.FilePath
		if path == "" {
			path = "users.json"
		}
		return store.NewFileStore(path)
	}
}

// UUIDv7 ids sort by creation time.
func newUserID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *Service) Register(ctx context.Context, name, email, password string) errs.Error {
	if bizErr := validateInput(registerInput{Name: name, Email: email, Password: password}); bizErr != nil {
		return bizErr
	}

	err := s.update(ctx, func(records []domain.UserRecord) ([]domain.UserRecord, error) {
		for _, r := range records {
			if r.Email == email {
				return nil, errs.EmailRegistered
			}
		}

		id, err := s.newID()
		if err != nil {
			return nil, err
		}
		return append(records, domain.UserRecord{
			ID:        id,
			Name:      name,
			Email:     email,
			Password:  password,
			CreatedAt: s.now(),
		}), nil
	})
	if err != nil {
		return s.storeErr(ctx, "Register", err)
	}

	hlog.CtxInfof(ctx, "user registered: %s", email)
	return nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.PublicUser, errs.Error) {
	if bizErr := validateInput(authenticateInput{Email: email, Password: password}); bizErr != nil {
		return nil, bizErr
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.storeErr(ctx, "Authenticate", err)
	}

	for _, r := range records {
		if r.Email == email && r.Password == password {
			u := r.Public()
			return &u, nil
		}
	}
	return nil, errs.InvalidCredentials
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.PublicUser, errs.Error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, s.storeErr(ctx, "ListUsers", err)
	}
	return domain.PublicUsers(records), nil
}

func (s *Service) update(ctx context.Context, fn store.UpdateFunc) error {
	if u, ok := s.store.(store.Updater); ok {
		return u.Update(ctx, fn)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(records)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, next)
}

// storeErr passes business errors through and hides store failures behind a
// generic error, logging the cause.
func (s *Service) storeErr(ctx context.Context, op string, err error) errs.Error {
	var bizErr errs.Error
	if errors.As(err, &bizErr) {
		return bizErr
	}

	hlog.CtxErrorf(ctx, "%s store err: %v", op, err)
	switch {
	case errors.Is(err, store.ErrConflict):
		return errs.EmailRegistered
	case errors.Is(err, store.ErrCorrupt):
		return errs.CorruptStore
	case errors.Is(err, store.ErrRead):
		return errs.StoreReadFailure
	case errors.Is(err, store.ErrWrite):
		return errs.StoreWriteFailure
	default:
		return errs.ServerError
	}
}

// validateInput reports a missing field before any other rule.
func validateInput(in any) errs.Error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.ParamError
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return errs.MissingField
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Password" && fe.Tag() == "min" {
			return errs.PasswordTooShort
		}
	}
	return errs.ParamError
}
