package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/pkg/config"
)

const (
	minConns    = 1
	dialTimeout = 5 * time.Second
)

// NewPool abre el pool con el codec NUMERIC ↔ decimal.Decimal registrado en
// cada conexión. Con LOG_LEVEL=debug o trace cada consulta queda en el log.
func NewPool(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.PreferIPv4 {
		poolConfig.ConnConfig.DialFunc = dialPreferIPv4
	}
	if log.GetLevel() <= zerolog.DebugLevel {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   queryLogger(log),
			LogLevel: tracelog.LogLevelInfo,
		}
	}

	poolConfig.MaxConns = int32(max(cfg.MaxConns, minConns))
	poolConfig.MinConns = minConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	log.Info().Int32("max_conns", poolConfig.MaxConns).Str("host", poolConfig.ConnConfig.Host).Msg("pool PostgreSQL listo")
	return pool, nil
}

// dialPreferIPv4 conecta por IPv4 cuando el host tiene una; si no, deja que
// el dialer elija. Muchos contenedores resuelven AAAA sin tener ruta IPv6.
func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	d := &net.Dialer{Timeout: dialTimeout}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil || len(ips) == 0 {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ips[0].String(), port))
}

// queryLogger adapta tracelog a zerolog. Los argumentos de las consultas
// no se registran: pueden llevar hashes de contraseña.
func queryLogger(log zerolog.Logger) tracelog.Logger {
	return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		ev := log.WithLevel(zerologLevel(level))
		if sql, ok := data["sql"].(string); ok {
			ev = ev.Str("sql", sql)
		}
		if d, ok := data["time"].(time.Duration); ok {
			ev = ev.Dur("elapsed", d)
		}
		if err, ok := data["err"].(error); ok {
			ev = ev.Err(err)
		}
		ev.Msg(msg)
	})
}

func zerologLevel(l tracelog.LogLevel) zerolog.Level {
	switch l {
	case tracelog.LogLevelTrace:
		return zerolog.TraceLevel
	case tracelog.LogLevelDebug:
		return zerolog.DebugLevel
	case tracelog.LogLevelInfo:
		return zerolog.InfoLevel
	case tracelog.LogLevelWarn:
		return zerolog.WarnLevel
	case tracelog.LogLevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}
