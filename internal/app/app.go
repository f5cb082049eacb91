package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/green-haven/nursery-backend/internal/cfg"
	v1Http "github.com/green-haven/nursery-backend/internal/delivery/v1/http"
	"github.com/green-haven/nursery-backend/internal/infrastructure/kafka"
	minioInfra "github.com/green-haven/nursery-backend/internal/infrastructure/minio"
	"github.com/green-haven/nursery-backend/internal/infrastructure/payment"
	s3Repo "github.com/green-haven/nursery-backend/internal/repository/minio"
	"github.com/green-haven/nursery-backend/internal/repository/pgdb"
	pgdbConv "github.com/green-haven/nursery-backend/internal/repository/pgdb/converter"
	"github.com/green-haven/nursery-backend/internal/repository/redis"
	redisConv "github.com/green-haven/nursery-backend/internal/repository/redis/converter"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/clients"
	"github.com/green-haven/nursery-backend/pkg/closer"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
	"github.com/green-haven/nursery-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout    = 10 * time.Second
	forcedCloseTimeout = 2 * time.Second
	ensureTopicTimeout = 15 * time.Second
)

// App собирает все зависимости приложения и управляет их жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	outboxWorker *kafka.OutboxWorker
	imagesInfra  *minioInfra.MinioInfrastructure

	workerCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(forcedCloseTimeout)

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		db.Close()
		log.Infof("database pool closed")
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	ordConv := pgdbConv.NewOrderConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, ordConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	// Контекст фоновых задач живёт дольше HTTP-запросов и отменяется при shutdown
	workerCtx, workerCancel := context.WithCancel(context.Background())

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, workerCtx)
	gateway := payment.NewGateway(cfg.Payment, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		workerCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		workerCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	productUC := usecase.NewProductUC(productRepo, categoryRepo, cacheRepo, imagesInfra, log)
	categoryUC := usecase.NewCategoryUC(categoryRepo, log)
	orderUC := usecase.NewOrderUC(orderRepo, productRepo, outboxRepo, cacheRepo, db.Pool, log)
	paymentUC := usecase.NewPaymentUC(orderRepo, outboxRepo, gateway, db.Pool, log)
	imageUC := usecase.NewImageUC(imagesInfra, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, cfg.Minio.UploadImagesLimit, log)
	router.Init(productUC, categoryUC, orderUC, paymentUC, imageUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:          cfg,
		logger:       log,
		closer:       cl,
		httpSrv:      httpSrv,
		outboxWorker: outboxWorker,
		imagesInfra:  imagesInfra,
		workerCancel: workerCancel,
	}, nil
}

// Run запускает HTTP-сервер и outbox-воркер, блокируется до сигнала
// завершения или фатальной ошибки сервера, затем гасит всё в обратном порядке.
func (a *App) Run() error {
	workerCtx, cancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	cancel()
	a.outboxWorker.Stop()
	a.logger.Infof("outbox worker stopped")

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	a.workerCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
