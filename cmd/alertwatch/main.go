// alertwatch is the terminal counterpart of the admin dashboard: it logs an
// admin in, remembers the session, and keeps polling the SOS alert list,
// shouting when new alerts appear.
//
//	alertwatch -login -username root -password secret
//	alertwatch
//	alertwatch -logout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/charhateom/qrakhsa/config"
	"github.com/charhateom/qrakhsa/dto"
	"github.com/charhateom/qrakhsa/internal/auth"
	"github.com/charhateom/qrakhsa/internal/session"
	"github.com/charhateom/qrakhsa/internal/watch"
)

func main() {
	var (
		api      = flag.String("api", "http://localhost:5000", "base URL of the qrakhsa API")
		doLogin  = flag.Bool("login", false, "log in as admin and persist the session")
		doLogout = flag.Bool("logout", false, "forget the persisted session")
		username = flag.String("username", "", "admin username (with -login)")
		password = flag.String("password", "", "admin password (with -login)")
		interval = flag.Duration("interval", 5*time.Second, "poll interval")
	)
	flag.Parse()

	logger, err := config.NewLogger(os.Getenv("LOG_FORMAT"), "alertwatch")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := session.NewStore()
	if err != nil {
		logger.Fatal("session store", zap.Error(err))
	}
	client := newAPIClient(*api)

	switch {
	case *doLogout:
		if err := store.Clear(); err != nil {
			logger.Fatal("logout", zap.Error(err))
		}
		logger.Info("logged out")

	case *doLogin:
		if *username == "" || *password == "" {
			logger.Fatal("login needs -username and -password")
		}
		token, err := client.adminLogin(context.Background(), *username, *password)
		if err != nil {
			if errors.Is(err, ErrUnauthorized) {
				logger.Fatal("invalid credentials")
			}
			logger.Fatal("login", zap.Error(err))
		}
		sess := session.Session{Kind: auth.KindAdmin, Username: *username, Token: token}
		if err := store.Save(sess); err != nil {
			logger.Fatal("save session", zap.Error(err))
		}
		logger.Info("logged in", zap.String("username", *username))

	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runWatch(ctx, logger, store, client, *interval); err != nil {
			logger.Fatal(err.Error())
		}
	}
}

var (
	errNoSession      = errors.New("no admin session; run with -login first")
	errSessionExpired = errors.New("session expired; run with -login again")
)

// runWatch is the guarded route: no admin session, no dashboard.
func runWatch(ctx context.Context, logger *zap.Logger, store *session.Store, client *apiClient, interval time.Duration) error {
	sess, err := store.Load()
	if err != nil || !sess.IsAdmin() {
		return errNoSession
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// A 401 mid-watch means the token expired; drop the session and ask for
	// a fresh login instead of hammering the API.
	var expired atomic.Bool
	listFn := func(ctx context.Context) ([]dto.AlertResponse, error) {
		alerts, err := client.listAlerts(ctx, sess.Token)
		if errors.Is(err, ErrUnauthorized) {
			expired.Store(true)
			cancel()
		}
		return alerts, err
	}

	w := &watch.Watcher{
		List:     listFn,
		Logger:   logger,
		Interval: interval,
		Notify: func(alerts []dto.AlertResponse) {
			fields := []zap.Field{zap.Int("active", len(alerts))}
			if len(alerts) > 0 {
				newest := alerts[0]
				fields = append(fields,
					zap.String("employee", newest.EmployeeName),
					zap.Time("raised_at", newest.Timestamp),
				)
			}
			logger.Warn("new sos alert", fields...)
		},
	}

	logger.Info("watching for sos alerts", zap.String("admin", sess.Username))
	w.Run(ctx)

	if expired.Load() {
		_ = store.Clear()
		return errSessionExpired
	}
	logger.Info("stopped")
	return nil
}
