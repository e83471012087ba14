package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jobadmin/internal/backend"
	"jobadmin/internal/config"
	"jobadmin/internal/service"
	"jobadmin/internal/session"
)

var errNotSignedIn = errors.New("not signed in, run: jobadmin login")

// cli carries the state shared by every command of one invocation.
type cli struct {
	apiURL      string
	sessionPath string
	verbose     bool

	log   *zap.Logger
	store localStore
	api   backend.API
	svc   *service.Services

	// dial builds the backend client. Tests swap it for a mock.
	dial func(baseURL string, onUnauthorized func(context.Context)) (backend.API, error)
}

func newCLI() *cli {
	cfg := config.Load()
	return &cli{
		apiURL: cfg.Backend.BaseURL,
		dial: func(baseURL string, onUnauthorized func(context.Context)) (backend.API, error) {
			return backend.NewClient(baseURL,
				backend.WithTimeout(cfg.Backend.Timeout),
				backend.WithUnauthorizedHandler(onUnauthorized),
			)
		},
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "jobadmin",
		Short:         "Job portal admin console",
		Long:          "jobadmin runs the admin console workflows against the job-portal API from a terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.apiURL, "api", c.apiURL, "job-portal API base URL (API_BASE_URL)")
	root.PersistentFlags().StringVar(&c.sessionPath, "session", c.sessionPath, "session file (default ~/.jobadmin/session.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log backend calls to stderr")

	root.AddCommand(
		loginCmd(c),
		logoutCmd(c),
		whoamiCmd(c),
		menuCmd(c),
		dashboardCmd(c),
		couponsCmd(c),
		cvRequestsCmd(c),
		photosCmd(c),
		jobsCmd(c),
		exportCmd(c),
	)
	return root
}

func (c *cli) init() error {
	if c.log == nil {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if c.verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		log, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		c.log = log
	}

	if c.sessionPath == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return err
		}
		c.sessionPath = path
	}
	c.store = localStore{session.NewFileStore(c.sessionPath)}

	if c.api == nil {
		api, err := c.dial(c.apiURL, c.expire)
		if err != nil {
			return err
		}
		c.api = api
	}
	c.svc = service.New(c.api, c.store, c.apiURL)
	c.log.Debug("cli_ready", zap.String("api", c.apiURL), zap.String("session", c.sessionPath))
	return nil
}

// expire drops the saved session once the backend rejects its token.
func (c *cli) expire(ctx context.Context) {
	if err := c.store.Delete(context.WithoutCancel(ctx), session.LocalID); err != nil {
		c.log.Warn("session_delete_failed", zap.Error(err))
		return
	}
	c.log.Info("session_expired", zap.String("session", c.sessionPath))
}

// signedIn loads the saved session and attaches it, with its backend token, to ctx.
func (c *cli) signedIn(ctx context.Context) (context.Context, *session.Session, error) {
	sess, err := c.store.Get(ctx, session.LocalID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil, errNotSignedIn
	}
	if err != nil {
		return nil, nil, err
	}
	ctx = session.WithSession(ctx, sess)
	return backend.WithToken(ctx, sess.Token), sess, nil
}

// localStore keeps the single CLI session under session.LocalID, whatever id it was created with.
type localStore struct {
	*session.FileStore
}

func (l localStore) Get(ctx context.Context, _ string) (*session.Session, error) {
	return l.FileStore.Get(ctx, session.LocalID)
}

func (l localStore) Save(ctx context.Context, s *session.Session) error {
	s.ID = session.LocalID
	return l.FileStore.Save(ctx, s)
}

func (l localStore) Delete(ctx context.Context, _ string) error {
	return l.FileStore.Delete(ctx, session.LocalID)
}

// describe turns an error into the line shown to the admin.
func describe(err error) string {
	var (
		verr   *service.ValidationError
		apiErr *backend.APIError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, backend.ErrUnauthorized):
		return "session expired, run: jobadmin login"
	case errors.Is(err, service.ErrForbidden):
		return "only a super admin can do this"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("%s (%d %s)", apiErr.Summary("request failed"), apiErr.Status, http.StatusText(apiErr.Status))
	}
	return err.Error()
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)
