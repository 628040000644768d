package mongodb

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/riskibarqy/fpl-stats-api/internal/platform/logging"
)

var ErrClientClosed = crerr.New("mongodb client is closed")

type Config struct {
	URI              string
	Database         string
	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
	MaxPoolSize      uint64
	AppName          string
}

// Client owns the process-wide connection pool. It is created once at
// startup and shared by every repository.
type Client struct {
	client   *mongo.Client
	database string
	timeout  time.Duration
	logger   *logging.Logger

	mu     sync.RWMutex
	closed bool
}

// Connect dials the cluster and verifies it with a ping so a misconfigured
// deployment fails at startup instead of on the first request.
func Connect(ctx context.Context, cfg Config, logger *logging.Logger) (*Client, error) {
	if cfg.URI == "" {
		return nil, crerr.New("mongodb uri is required")
	}
	if cfg.Database == "" {
		return nil, crerr.New("mongodb database is required")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, crerr.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, crerr.Wrap(err, "ping mongodb")
	}

	logger.Info("mongodb connection established", "database", cfg.Database, "max_pool_size", cfg.MaxPoolSize)
	return &Client{
		client:   client,
		database: cfg.Database,
		timeout:  cfg.OperationTimeout,
		logger:   logger,
	}, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.client.Database(c.database).Collection(name)
}

func (c *Client) Ping(ctx context.Context) error {
	c.mu.RLock()
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return ErrClientClosed
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.client.Ping(pingCtx, readpref.Primary()); err != nil {
		c.logger.WarnContext(ctx, "mongodb ping failed", "error", err)
		return crerr.Wrap(err, "ping mongodb")
	}
	return nil
}

// Close disconnects the pool. Calling it more than once is a no-op.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return crerr.Wrap(err, "close mongodb connection")
	}
	c.logger.Info("mongodb connection closed", "database", c.database)
	return nil
}

// withOperationTimeout bounds a single store call by the operation timeout
// or the caller's deadline, whichever comes first.
func (c *Client) withOperationTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, c.timeout)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	// WithTimeout keeps the parent's deadline when it is earlier.
	return context.WithTimeout(ctx, timeout)
}
