package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	grpcactor "github.com/chatting/chatting/internal/actors/grpc"
	"github.com/chatting/chatting/internal/actors/jwt"
	produceractor "github.com/chatting/chatting/internal/actors/pubsub/producer"
	"github.com/chatting/chatting/internal/config"
	"github.com/chatting/chatting/internal/core/ports"
	"github.com/chatting/chatting/internal/core/usecase"
	pb "github.com/chatting/chatting/pkg/sdk/v1"
	log "github.com/sirupsen/logrus"
)

func init() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})

	// Output to stdout instead of the default stderr
	log.SetOutput(os.Stdout)
}

var (
	grpcServerEndpoint = flag.String("grpc-server-endpoint", "", "gRPC server endpoint (overrides configuration)")
	httpServerEndpoint = flag.String("http-server-endpoint", "", "HTTP server endpoint (overrides configuration)")
)

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *grpcServerEndpoint != "" {
		cfg.Server.GRPCEndpoint = *grpcServerEndpoint
	}
	if *httpServerEndpoint != "" {
		cfg.Server.HTTPEndpoint = *httpServerEndpoint
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	store, release, err := storageProvider(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("backend", cfg.Storage.Backend).Error("could not initialize storage")
		return err
	}
	defer release()

	var provider ports.UserProvider = store

	if cfg.PubSub.UserEventTopic != "" {
		client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
		if err != nil {
			return err
		}
		defer client.Close()

		topic := client.Topic(cfg.PubSub.UserEventTopic)
		defer topic.Stop()
		producer, err := produceractor.NewProducer(topic)
		if err != nil {
			return err
		}
		provider = usecase.NewPublishing(usecase.PublishingArgs{
			Next:    store,
			Handler: usecase.NewInformer(producer),
		})
		log.WithField("topic", cfg.PubSub.UserEventTopic).Info("publishing user events")
	}

	if cfg.Auth.Enabled() {
		authority, err := jwt.NewAuthority(jwt.AuthorityArgs{Secret: []byte(cfg.Auth.Secret), Issuer: cfg.Auth.Issuer})
		if err != nil {
			return err
		}
		provider = usecase.NewAuthenticated(usecase.AuthenticatedArgs{Next: provider, Verifier: authority})
		log.Info("access tokens required")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := grpcactor.NewMetrics(reg)
	if err != nil {
		return err
	}

	s, healthSrv := grpcactor.NewServer(grpcactor.ServerArgs{Provider: provider}, grpcactor.WithMetrics(metrics))

	gw := runtime.NewServeMux()
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := pb.RegisterUserServiceHandlerFromEndpoint(ctx, gw, cfg.Server.GRPCEndpoint, opts); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	httpSrv := &http.Server{Addr: cfg.Server.HTTPEndpoint, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	// start http-gateway server
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	}()

	lis, err := net.Listen("tcp", cfg.Server.GRPCEndpoint)
	if err != nil {
		return err
	}

	// Start gRPC server
	go func() {
		if err := s.Serve(lis); err != nil {
			log.WithError(err).Fatal("grpc server failed")
		}
	}()

	log.
		WithField("http-server-addr", cfg.Server.HTTPEndpoint).
		WithField("grpc-server-addr", cfg.Server.GRPCEndpoint).
		WithField("backend", cfg.Storage.Backend).
		Info("servers up or soon to be up. listening to SIGTERM, SIGINT, SIGQUIT for stoping the server")

	// Wait for signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-ch

	healthSrv.Shutdown()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("error shutting down http server")
	}
	s.GracefulStop()

	return nil
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}
