package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chatting/chatting/internal/actors/mysql"
	"github.com/chatting/chatting/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
}

var (
	down   = flag.Bool("down", false, "run migration down")
	driver = flag.String("driver", "", "database to migrate: postgres or mysql (defaults to the configured storage backend)")
	dir    = flag.String("dir", "db/migrations", "root directory of the migrations")
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	name := *driver
	if name == "" {
		name = cfg.Storage.Backend
	}

	db, instance, err := open(name, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	abs, err := filepath.Abs(filepath.Join(*dir, name))
	if err != nil {
		return fmt.Errorf("error resolving migrations dir: %w", err)
	}
	migrationsDir := "file://" + filepath.ToSlash(abs)
	log.WithField("dir", migrationsDir).WithField("driver", name).Info("using migrations")

	m, err := migrate.NewWithDatabaseInstance(migrationsDir, name, instance)
	if err != nil {
		return fmt.Errorf("NewWithDatabaseInstance error: %w", err)
	}
	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("schema already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error migrating: %w", err)
	}
	log.WithField("down", *down).Info("migration applied")
	return nil
}

func open(name string, cfg config.Config) (*sql.DB, database.Driver, error) {
	switch name {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening db connection: %w", err)
		}
		instance, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("error invoking WithInstance: %w", err)
		}
		return db, instance, nil
	case config.BackendMySQL:
		args, err := cfg.MySQL.ConnectArgs()
		if err != nil {
			return nil, nil, err
		}
		db, err := mysql.Connect(context.Background(), args)
		if err != nil {
			return nil, nil, err
		}
		instance, err := migratemysql.WithInstance(db, &migratemysql.Config{})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("error invoking WithInstance: %w", err)
		}
		return db, instance, nil
	default:
		return nil, nil, fmt.Errorf("no migrations for driver %q", name)
	}
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
}
