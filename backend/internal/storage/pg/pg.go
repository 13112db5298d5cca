package pg

import (
	"context"
	"database/sql"
	"embed"

	"github.com/itchan-dev/yatube/shared/config"
	"github.com/itchan-dev/yatube/shared/logger"
	sharedpg "github.com/itchan-dev/yatube/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Querier = sharedpg.Querier

type Storage struct {
	db *sql.DB
}

// New connects to the database and brings the schema up to date.
func New(cfg *config.Config, connCfg sharedpg.ConnectionConfig) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(cfg, connCfg)
	if err != nil {
		return nil, err
	}
	if err := sharedpg.Migrate(db, migrations, "migrations"); err != nil {
		db.Close()
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping is used by the readiness probe
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
