package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"yatube/config"
	"yatube/internal/adapter/in/rest"
	"yatube/internal/adapter/out/media/local"
	"yatube/internal/adapter/out/media/s3"
	memstore "yatube/internal/adapter/out/storage/inmemory"
	pgstore "yatube/internal/adapter/out/storage/postgres"
	"yatube/internal/auth"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	cfg   config.Config
	srv   *http.Server
	pool  *pgxpool.Pool
	users *service.UserService
}

type storages struct {
	users    service.UserStorage
	groups   service.GroupStorage
	posts    service.PostStorage
	comments service.CommentStorage
	follows  service.FollowStorage
	tx       service.TxManager
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		st   storages
		pool *pgxpool.Pool
	)

	switch cfg.StorageType {
	case config.StoragePostgres:
		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		getter := trmpgx.DefaultCtxGetter
		st = storages{
			users:    pgstore.NewUserStorage(pool, getter),
			groups:   pgstore.NewGroupStorage(pool, getter),
			posts:    pgstore.NewPostStorage(pool, getter),
			comments: pgstore.NewCommentStorage(pool, getter),
			follows:  pgstore.NewFollowStorage(pool, getter),
			tx:       manager.Must(trmpgx.NewDefaultFactory(pool)),
		}

	default:
		db := memstore.NewDB()
		st = storages{
			users:    memstore.NewUserStorage(db),
			groups:   memstore.NewGroupStorage(db),
			posts:    memstore.NewPostStorage(db),
			comments: memstore.NewCommentStorage(db),
			follows:  memstore.NewFollowStorage(db),
			tx:       memstore.NewTxManager(),
		}
	}

	files, routerCfg, err := newMedia(ctx, cfg.Media)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	routerCfg.Registry = reg

	userSvc := service.NewUserService(st.users)
	if cfg.StorageType == config.StorageMemory {
		if err := bootstrapUsers(ctx, userSvc, cfg.Users); err != nil {
			return nil, err
		}
	}
	h := rest.NewHandler(rest.Deps{
		Posts:    service.NewPostService(st.posts, st.groups, files),
		Comments: service.NewCommentService(st.comments, st.posts),
		Groups:   service.NewGroupService(st.groups),
		Follows:  service.NewFollowService(st.follows, st.users, st.tx),
		Users:    userSvc,
		Tokens:   auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL),
		Media:    files,
	})

	gin.SetMode(gin.ReleaseMode)
	router := rest.NewRouter(h, routerCfg)

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return logger.WithLogger(context.Background(), log)
		},
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType, "media", cfg.Media.Type)
	return &App{cfg: cfg, srv: srv, pool: pool, users: userSvc}, nil
}

func newMedia(ctx context.Context, cfg config.MediaConfig) (service.MediaStorage, rest.RouterConfig, error) {
	if cfg.Type == config.MediaS3 {
		st, err := s3.New(s3.Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			UseSSL:    cfg.S3.UseSSL,
			Bucket:    cfg.S3.Bucket,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return nil, rest.RouterConfig{}, fmt.Errorf("s3 client: %w", err)
		}
		if err := st.EnsureBucket(ctx); err != nil {
			return nil, rest.RouterConfig{}, fmt.Errorf("ensure bucket: %w", err)
		}
		return st, rest.RouterConfig{}, nil
	}

	st, err := local.New(cfg.Root, cfg.URLPrefix)
	if err != nil {
		return nil, rest.RouterConfig{}, err
	}
	return st, rest.RouterConfig{MediaRoot: st.Root(), MediaPrefix: cfg.URLPrefix}, nil
}

// bootstrapUsers seeds the memory store, which starts empty on every run.
func bootstrapUsers(ctx context.Context, users *service.UserService, creds []config.UserCredentials) error {
	log := logger.FromContext(ctx)
	if len(creds) == 0 {
		log.Warn("memory storage has no users; set bootstrap_users to be able to log in")
		return nil
	}
	for _, c := range creds {
		u, err := users.CreateUser(ctx, service.CreateUserRequest{Username: c.Username, Password: c.Password})
		if err != nil {
			return fmt.Errorf("bootstrap user %q: %w", c.Username, err)
		}
		log.Info("bootstrap user created", "id", u.ID, "username", u.Username)
	}
	return nil
}

// CreateUser registers an account. The API has no sign-up endpoint.
func (a *App) CreateUser(ctx context.Context, username, password string) (model.User, error) {
	return a.users.CreateUser(ctx, service.CreateUserRequest{Username: username, Password: password})
}

func (a *App) Handler() http.Handler {
	return a.srv.Handler
}

func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err := a.srv.Shutdown(shCtx)
		a.Close()
		return err

	case err := <-errCh:
		a.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
