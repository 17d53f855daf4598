package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/chatting/chatting/internal/config"
	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
}

var (
	addr     = flag.String("addr", "", "host:port to wait for (defaults to the configured storage backend)")
	attempts = flag.Int("attempts", 20, "connection attempts before giving up")
)

// waitfor blocks until a TCP connection to the storage backend can be opened.
func main() {
	flag.Parse()

	target := *addr
	if target == "" {
		cfg, err := config.Load()
		if err != nil {
			log.WithError(err).Fatal("error loading configuration")
		}
		target, err = backendAddr(cfg)
		if err != nil {
			log.WithError(err).Fatal("cannot determine backend address")
		}
		if target == "" {
			log.WithField("backend", cfg.Storage.Backend).Info("nothing to wait for")
			return
		}
	}

	logger := log.WithField("addr", target)
	for i := 1; i <= *attempts; i++ {
		conn, err := net.DialTimeout("tcp", target, 10*time.Second)
		if err == nil {
			conn.Close()
			logger.Info("TCP connection available")
			return
		}
		logger.WithError(err).WithField("attempt", i).Info("connection not yet available")
		time.Sleep(time.Second)
	}
	logger.Fatal("could not open TCP connection after max attempts")
}

func backendAddr(cfg config.Config) (string, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		opts, err := pg.ParseURL(cfg.Postgres.URL)
		if err != nil {
			return "", err
		}
		return opts.Addr, nil
	case config.BackendMySQL:
		return net.JoinHostPort(cfg.MySQL.Host, cfg.MySQL.Port), nil
	case config.BackendMongo:
		opts := options.Client().ApplyURI(cfg.Mongo.URL)
		if err := opts.Validate(); err != nil {
			return "", err
		}
		if len(opts.Hosts) == 0 {
			return "", fmt.Errorf("no host in mongo url")
		}
		if _, _, err := net.SplitHostPort(opts.Hosts[0]); err != nil {
			return net.JoinHostPort(opts.Hosts[0], "27017"), nil
		}
		return opts.Hosts[0], nil
	default:
		return "", nil
	}
}
