package datasource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/kcmvp/oop/app"
)

// DB is the minimal database contract exposed by the connection holder.
// It mirrors the methods we use from *sql.DB.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

const (
	UserKey     = "${user}"
	PasswordKey = "${password}"
	HostKey     = "${host}"
)

var (
	ErrDriverRequired = errors.New("datasource: driver is required")
	ErrURLRequired    = errors.New("datasource: url is required")
	ErrPlaceholder    = errors.New("datasource: url placeholder has no value")
)

// Source describes how to reach the database. When URL is empty the DSN is built from
// the individual fields for the drivers we know (mysql, postgres).
type Source struct {
	Driver   string
	Host     string
	DB       string
	User     string
	Password string
	URL      string
}

// DSN returns the final connection string for sql.Open.
//
// A non-empty URL wins: ${user}, ${password} and ${host} are substituted and each
// placeholder present must have a non-empty value.
func (s Source) DSN() (string, error) {
	if strings.TrimSpace(s.URL) != "" {
		for key, val := range map[string]string{UserKey: s.User, PasswordKey: s.Password, HostKey: s.Host} {
			if strings.Contains(s.URL, key) && val == "" {
				return "", fmt.Errorf("%w: %s", ErrPlaceholder, key)
			}
		}
		dsn := strings.ReplaceAll(s.URL, UserKey, s.User)
		dsn = strings.ReplaceAll(dsn, PasswordKey, s.Password)
		return strings.ReplaceAll(dsn, HostKey, s.Host), nil
	}
	switch s.Driver {
	case "mysql":
		mc := mysql.NewConfig()
		mc.User = s.User
		mc.Passwd = s.Password
		mc.Net = "tcp"
		mc.Addr = s.Host
		mc.DBName = s.DB
		return mc.FormatDSN(), nil
	case "postgres":
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(s.User, s.Password),
			Host:     s.Host,
			Path:     "/" + s.DB,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("%w for driver %q", ErrURLRequired, s.Driver)
	}
}

// Conn holds the process-wide database handle and logs every statement at debug level.
type Conn struct {
	db     *sql.DB
	driver string
	logger zerolog.Logger
}

var _ DB = (*Conn)(nil)

// Open builds a Conn for src. sql.Open does not dial, so no I/O happens here.
func Open(src Source, logger zerolog.Logger) (*Conn, error) {
	if src.Driver == "" {
		return nil, ErrDriverRequired
	}
	dsn, err := src.DSN()
	if err != nil {
		return nil, err
	}
	raw, err := sql.Open(src.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open datasource %q: %w", src.Driver, err)
	}
	logger.Debug().Str("driver", src.Driver).Str("host", src.Host).Str("db", src.DB).Msg("datasource opened")
	return &Conn{db: raw, driver: src.Driver, logger: logger}, nil
}

// Raw returns the underlying handle.
func (c *Conn) Raw() *sql.DB { return c.db }

func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := c.db.ExecContext(ctx, query, args...)
	c.logger.Debug().Dur("dur", time.Since(start)).Err(err).Str("sql", query).Interface("args", args).Msg("exec")
	return res, err
}

func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := c.db.QueryContext(ctx, query, args...)
	c.logger.Debug().Dur("dur", time.Since(start)).Err(err).Str("sql", query).Interface("args", args).Msg("query")
	return rows, err
}

func (c *Conn) PingContext(ctx context.Context) error {
	start := time.Now()
	err := c.db.PingContext(ctx)
	c.logger.Debug().Dur("dur", time.Since(start)).Err(err).Str("driver", c.driver).Msg("ping")
	return err
}

func (c *Conn) Close() error {
	err := c.db.Close()
	c.logger.Debug().Err(err).Str("driver", c.driver).Msg("close")
	return err
}

var (
	conn     *Conn
	connErr  error
	connOnce sync.Once

	// loadSource is swapped in tests.
	loadSource = sourceFromConfig
)

func sourceFromConfig() (Source, error) {
	res := app.Config()
	if res.IsError() {
		return Source{}, res.Error()
	}
	v := res.MustGet()
	key := func(name string) string { return v.GetString(app.DatasourceKey + "." + name) }
	return Source{
		Driver:   key("driver"),
		Host:     key("host"),
		DB:       key("db"),
		User:     key("user"),
		Password: key("password"),
		URL:      key("url"),
	}, nil
}

// Connection returns the process-wide connection holder, creating it on first use.
// Later calls return the same *Conn, and a failed first attempt is cached as well.
// The holder is never closed by this package.
func Connection() (*Conn, error) {
	connOnce.Do(func() {
		src, err := loadSource()
		if err != nil {
			connErr = fmt.Errorf("load datasource: %w", err)
			return
		}
		conn, connErr = Open(src, app.Logger())
	})
	return conn, connErr
}
