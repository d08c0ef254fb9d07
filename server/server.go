package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/zkmesh/relay/gateway"
	"github.com/zkmesh/relay/logging"
	"github.com/zkmesh/relay/relayer"
)

type Server struct {
	relayer *relayer.Relayer
	cfg     Config

	restListener net.Listener
}

func New(ctx context.Context, cfg Config) (*Server, error) {
	if len(cfg.Gateways) == 0 {
		return nil, errors.New("at least one gateway must be configured")
	}

	// Resolve the REST listener
	addr, err := net.ResolveTCPAddr("tcp", cfg.RawRESTListener)
	if err != nil {
		return nil, err
	}
	restListener, err := net.Listen(addr.Network(), addr.String())
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %v", err)
	}

	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
			return nil, err
		}
	}

	clients := make([]gateway.Client, 0, len(cfg.Gateways))
	for _, target := range cfg.Gateways {
		opts := []gateway.HTTPOption{}
		if cfg.APIKey != "" {
			opts = append(opts, gateway.WithAPIKey(cfg.APIKey))
		}
		client, err := gateway.NewHTTPClient(target, opts...)
		if err != nil {
			return nil, fmt.Errorf("creating gateway client for %s: %w", target, err)
		}
		clients = append(clients, client)
	}

	r, err := relayer.New(
		ctx,
		gateway.NewRoundRobin(clients...),
		relayer.WithConfig(cfg.Relayer),
		relayer.WithJournal(filepath.Join(cfg.DataDir, "journal")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating relayer: %w", err)
	}

	return &Server{
		relayer: r,
		cfg:     cfg,

		restListener: restListener,
	}, nil
}

func (s *Server) Close() error {
	var result *multierror.Error
	result = multierror.Append(result, s.relayer.Close())
	if err := s.restListener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// RestAddr returns the address that the server is listening on for REST.
func (s *Server) RestAddr() net.Addr {
	return s.restListener.Addr()
}

// Start starts the REST server and, when configured, the metrics endpoint.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	serverGroup, ctx := errgroup.WithContext(ctx)

	logger := logging.FromContext(ctx)

	server := &http.Server{
		Handler:           newRouter(ctx, s.relayer, s.cfg),
		ReadHeaderTimeout: time.Second * 5,
	}
	serverGroup.Go(func() error {
		logger.Sugar().Infof("REST server listening on %s", s.restListener.Addr())
		err := server.Serve(s.restListener)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	var metricsServer *http.Server
	if s.cfg.MetricsPort != nil {
		metricsServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", *s.cfg.MetricsPort),
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: time.Second * 5,
		}
		serverGroup.Go(func() error {
			logger.Sugar().Infof("metrics server listening on %s", metricsServer.Addr)
			err := metricsServer.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		})
	}

	// Wait for the server to shut down gracefully
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shutdown server: %s", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Sugar().Errorf("failed to shutdown metrics server: %s", err)
		}
	}
	if err := serverGroup.Wait(); err != nil {
		logger.Sugar().Errorf("error when waiting to shutdown servers: %s", err)
	}
	return nil
}
