package dal_test

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/dal/migrations"
)

type BoltDBTestSuite struct {
	suite.Suite
	db    *bbolt.DB
	store *dal.BoltDB
	now   *nowWrapper
}

// SetupSuite runs ONCE before all tests in the suite
func (s *BoltDBTestSuite) SetupSuite() {
	db, err := bbolt.Open(filepath.Join(s.T().TempDir(), "test.db"), 0600, nil)
	s.Require().NoError(err)
	s.Require().NoError(migrations.RunMigrations(db, slog.New(slog.DiscardHandler)))

	s.db = db
	s.store, err = dal.NewBoltDB(db)
	s.Require().NoError(err)
	s.now = &nowWrapper{}
	s.store.SetNow(s.now.Call)
}

func (s *BoltDBTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

// TearDownTest runs after EACH test (cleanup data, not DB)
func (s *BoltDBTestSuite) TearDownTest() {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{"history", "publications", "sources"} {
			s.Require().NoErrorf(tx.DeleteBucket([]byte(bucket)), "bucket: %v", bucket)
			if _, err := tx.CreateBucket([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	s.now.Reset()
}

func TestBoltDBTestSuite(t *testing.T) {
	suite.Run(t, new(BoltDBTestSuite))
}

func TestNewBoltDB_MissingBuckets(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = dal.NewBoltDB(db)
	if err == nil {
		t.Fatal("expected error for database without migrations")
	}
}

type nowWrapper struct {
	now func() time.Time
}

func (w *nowWrapper) Call() time.Time {
	if w.now != nil {
		return w.now()
	}
	return time.Now()
}

func (w *nowWrapper) Set(v time.Time) {
	w.now = func() time.Time {
		return v
	}
}

func (w *nowWrapper) Reset() {
	w.now = time.Now
}
