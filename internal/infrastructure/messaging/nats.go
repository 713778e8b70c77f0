// Package messaging connects to NATS, starting an embedded server when no URL is configured.
package messaging

import (
	"errors"
	"fmt"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"gestorpro/internal/config"
	"gestorpro/internal/logging"
)

const embeddedReadyTimeout = 5 * time.Second

var ErrEmbeddedNotReady = errors.New("embedded nats server not ready")

// Connection is a NATS connection plus the embedded server behind it, if any.
type Connection struct {
	Conn     *nats.Conn
	embedded *natsserver.Server
}

// Connect dials cfg.URL. With an empty URL it starts an in-process server bound to
// loopback on a random port, which keeps a single instance working without NATS.
func Connect(cfg config.NATSConfig, logger *zap.Logger) (*Connection, error) {
	logger = logging.OrNop(logger).Named("nats")
	url := cfg.URL
	var srv *natsserver.Server
	if url == "" {
		var err error
		srv, err = StartEmbedded()
		if err != nil {
			return nil, err
		}
		url = srv.ClientURL()
		logger.Info("embedded server started", zap.String("url", url))
	}

	nc, err := nats.Connect(url,
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		if srv != nil {
			srv.Shutdown()
		}
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &Connection{Conn: nc, embedded: srv}, nil
}

// StartEmbedded runs a loopback-only NATS server on a random port.
func StartEmbedded() (*natsserver.Server, error) {
	srv, err := natsserver.NewServer(&natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create embedded nats server: %w", err)
	}
	go srv.Start()
	if !srv.ReadyForConnections(embeddedReadyTimeout) {
		srv.Shutdown()
		return nil, ErrEmbeddedNotReady
	}
	return srv, nil
}

// Close drains the connection and stops the embedded server.
func (c *Connection) Close() {
	if c.Conn != nil {
		_ = c.Conn.Drain()
	}
	if c.embedded != nil {
		c.embedded.Shutdown()
		c.embedded.WaitForShutdown()
	}
}
