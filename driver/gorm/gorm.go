package gorm

import (
	"github.com/hnhuaxi/scoped"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// DB is the process-wide shared gorm handle.
type DB struct {
	*gorm.DB
}

func init() {
	scoped.Define[DB](func(args ...any) (*DB, error) {
		var (
			dial gorm.Dialector
			cfg  = &gorm.Config{}
		)

		for _, arg := range args {
			switch v := arg.(type) {
			case gorm.Dialector:
				dial = v
			case *gorm.Config:
				if v != nil {
					cfg = v
				}
			}
		}

		if dial == nil {
			return nil, errors.Wrap(scoped.ErrConstruction, "gorm: missing dialector")
		}

		db, err := gorm.Open(dial, cfg)
		if err != nil {
			return nil, err
		}
		return &DB{DB: db}, nil
	})
}

// Open returns the shared handle, opening the database on first use. cfg may
// be nil.
func Open(dial gorm.Dialector, cfg *gorm.Config) (*DB, error) {
	return scoped.Instance[DB](dial, cfg)
}

// Close releases the underlying connection pool. scoped.Shutdown picks this
// up through io.Closer.
func (db *DB) Close() error {
	sqldb, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
