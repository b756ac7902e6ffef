package migrations

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/dal/migrations/v1"
	"github.com/Roma7-7-7/cek-notifier/internal/dal/migrations/v2"
	"github.com/Roma7-7-7/cek-notifier/internal/dal/migrations/v3"
)

// Migration is a single versioned change of the bbolt layout.
type Migration interface {
	Version() int
	Description() string
	Up(db *bbolt.DB) error
}

const migrationsBucket = "migrations"

//nolint:gochecknoglobals // append-only registry, ordered by version
var registeredMigrations = []Migration{
	v1.New(),
	v2.New(),
	v3.New(),
}

// RunMigrations applies pending migrations in version order. Applied versions are
// recorded as "v<N>" -> RFC3339 timestamp in the migrations bucket.
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	log = log.With("component", "migrations")

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		return err
	}); err != nil {
		return fmt.Errorf("ensure migrations bucket: %w", err)
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	pending := slices.Clone(registeredMigrations)
	slices.SortFunc(pending, func(a, b Migration) int {
		return cmp.Compare(a.Version(), b.Version())
	})

	count := 0
	for _, m := range pending {
		version := m.Version()
		if at, ok := applied[version]; ok {
			log.Debug("migration already applied", "version", version, "applied_at", at.Format(time.RFC3339))
			continue
		}

		log.Info("applying migration", "version", version, "description", m.Description())
		start := time.Now()
		if err = m.Up(db); err != nil {
			return fmt.Errorf("apply migration v%d: %w", version, err)
		}
		if err = recordMigration(db, version, time.Now()); err != nil {
			return fmt.Errorf("record migration v%d: %w", version, err)
		}
		log.Info("migration applied", "version", version, "duration", time.Since(start))
		count++
	}

	log.Info("migrations completed", "applied", count, "total", len(pending))
	return nil
}

func appliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	res := make(map[int]time.Time)

	err := db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(migrationsBucket)).ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key=%s: %w", k, err)
			}
			at, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp of v%d: %w", version, err)
			}
			res[version] = at
			return nil
		})
	})

	return res, err
}

func recordMigration(db *bbolt.DB, version int, at time.Time) error {
	return db.Update(func(tx *bbolt.Tx) error {
		key := fmt.Sprintf("v%d", version)
		return tx.Bucket([]byte(migrationsBucket)).Put([]byte(key), []byte(at.Format(time.RFC3339)))
	})
}
