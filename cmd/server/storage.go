package main

import (
	"context"
	"fmt"

	"github.com/chatting/chatting/internal/actors/memory"
	mongoactor "github.com/chatting/chatting/internal/actors/mongo"
	"github.com/chatting/chatting/internal/actors/mysql"
	"github.com/chatting/chatting/internal/actors/postgres"
	"github.com/chatting/chatting/internal/config"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storageProvider binds the configured backend to its environment. The returned
// func releases the backend resources.
func storageProvider(ctx context.Context, cfg config.Config) (ports.ChangeTrackingProvider, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		opts, err := pg.ParseURL(cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid postgres url: %w", err)
		}
		db := pg.Connect(opts)
		if err := db.Ping(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("postgres does not appear to be reachable: %w", err)
		}
		return ports.Bind[postgres.Env](postgres.NewUserService(), postgres.Conn{DB: db}), func() { _ = db.Close() }, nil

	case config.BackendMySQL:
		args, err := cfg.MySQL.ConnectArgs()
		if err != nil {
			return nil, nil, err
		}
		db, err := mysql.Connect(ctx, args)
		if err != nil {
			return nil, nil, err
		}
		return ports.Bind[mysql.Env](mysql.NewUserService(), mysql.Conn{DB: db}), func() { _ = db.Close() }, nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to mongo: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, fmt.Errorf("mongo does not appear to be reachable: %w", err)
		}
		users := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		release := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("error disconnecting from mongo")
			}
		}
		return ports.Bind[mongoactor.Env](mongoactor.NewUserService(), mongoactor.Collection{Users: users}), release, nil

	case config.BackendMemory:
		log.Warn("using the in-memory backend; users are lost on restart")
		return ports.Bind[memory.Env](memory.NewUserService(), memory.NewStore()), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
