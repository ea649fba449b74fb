package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
)

// Storages bundles the repositories of one store driver with the profile
// cache.
type Storages struct {
	AdminRepository    AdminRepository
	UserRepository     UserRepository
	QuestionRepository QuestionRepository
	QuestionCache      QuestionCache

	backend backend
}

// driverKind names the store driver selected by a DSN.
type driverKind int

const (
	driverUnknown driverKind = iota
	driverPostgres
	driverSQLite
	driverMongo
)

func detectDriver(dsn string) driverKind {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPostgres
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return driverSQLite
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return driverMongo
	default:
		return driverUnknown
	}
}

// NewStorages connects the driver selected by the DSN scheme, migrates SQL
// schemas and attaches the Redis cache when cfg.Cache.RedisURL is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch detectDriver(cfg.DB.DSN) {
	case driverPostgres, driverSQLite:
		db, err := connectSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}

		storages.AdminRepository = NewAdminRepository(db, log)
		storages.UserRepository = NewUserRepository(db, log)
		storages.QuestionRepository = NewQuestionRepository(db, log)
		storages.backend = db
	case driverMongo:
		s, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		storages.AdminRepository = NewMongoAdminRepository(s, log)
		storages.UserRepository = NewMongoUserRepository(s, log)
		storages.QuestionRepository = NewMongoQuestionRepository(s, log)
		storages.backend = s
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(cfg.DB.DSN))
	}

	storages.QuestionCache = NewNopQuestionCache()
	if cfg.Cache.RedisURL != "" {
		cache, err := NewRedisQuestionCache(ctx, cfg.Cache, log)
		if err != nil {
			_ = storages.backend.Close()
			return nil, err
		}
		storages.QuestionCache = cache
	}

	return storages, nil
}

func connectSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if detectDriver(cfg.DSN) == driverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// redactDSN keeps only the scheme so credentials never reach the logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if dsn == "" {
		return ""
	}

	return "..."
}

// Ping checks the store and the cache.
func (s *Storages) Ping(ctx context.Context) error {
	if s.backend == nil {
		return errors.New("store is not connected")
	}
	if err := s.backend.Ping(ctx); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := s.QuestionCache.Ping(ctx); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

// PingStore checks only the primary store.
func (s *Storages) PingStore(ctx context.Context) error {
	if s.backend == nil {
		return errors.New("store is not connected")
	}

	return s.backend.Ping(ctx)
}

// PingCache checks only the profile cache.
func (s *Storages) PingCache(ctx context.Context) error {
	return s.QuestionCache.Ping(ctx)
}

// Close releases the cache and the store connections.
func (s *Storages) Close() error {
	var errs []error
	if s.QuestionCache != nil {
		errs = append(errs, s.QuestionCache.Close())
	}
	if s.backend != nil {
		errs = append(errs, s.backend.Close())
	}

	return errors.Join(errs...)
}
