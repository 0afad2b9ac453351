package api

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	redisAdapter "bidhouse/adapters/redis"
	"bidhouse/adapters/sse"
	"bidhouse/api/openapi"
	"bidhouse/auction"
)

type ServerImpl struct {
	service     *auction.Service
	htmlChecker *bluemonday.Policy
	redisClient *redis.Client
	producer    redisAdapter.IProducer[auction.Event]
	consumer    redisAdapter.IConsumer[auction.Event]
	feed        sse.IFeed[auction.Event]
	sqlDB       *sql.DB
	logger      *slog.Logger

	config ServerConfig
}

func NewServer(config ServerConfig) (*ServerImpl, error) {
	const op = "NewServer"

	// 初始化資料庫連線
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", config.DB.User, config.DB.Password, config.DB.Host, config.DB.Port, config.DB.Database)
	gormConfig := &gorm.Config{TranslateError: true}
	if config.DB.Schema != "" {
		dsn += "&search_path=" + config.DB.Schema
		gormConfig.NamingStrategy = schema.NamingStrategy{
			TablePrefix: config.DB.Schema + ".",
		}
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get database handle, err=%w", op, err)
	}

	opts := []auction.ServiceOption{
		auction.WithLogger(slog.Default()),
		auction.WithSweepInterval(config.Sweeper.Interval),
	}

	// 初始化Redis連線，提供多實例間的拍賣鎖與事件串流
	var redisClient *redis.Client
	var producer redisAdapter.IProducer[auction.Event]
	var consumer redisAdapter.IConsumer[auction.Event]
	var feed sse.IFeed[auction.Event]
	if config.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})

		locker, err := redisAdapter.NewLocker(
			redisClient,
			redisAdapter.WithLockerPrefix(config.Redis.KeyPrefix),
			redisAdapter.WithLockerExpiry(config.Lock.Expiry),
			redisAdapter.WithLockerRetryDelay(config.Lock.RetryDelay),
			redisAdapter.WithLockerLogger(slog.Default()),
		)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create auction locker, err=%w", op, err)
		}

		eventProducer, err := redisAdapter.NewProducer[auction.Event](
			redisClient,
			config.Redis.KeyPrefix+config.Redis.StreamKeys.Events,
			redisAdapter.WithProducerLogger[auction.Event](slog.Default()),
			redisAdapter.WithProducerParseFunc(redisAdapter.EncodeEvent),
			redisAdapter.WithProducerMaxLen[auction.Event](config.Redis.StreamMaxLen),
		)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create event producer, err=%w", op, err)
		}
		producer = eventProducer

		// 每個實例都讀取同一個事件串流，再分送給各自的 SSE 連線
		eventConsumer, err := redisAdapter.NewConsumer[auction.Event](
			redisClient,
			config.Redis.KeyPrefix+config.Redis.StreamKeys.Events,
			redisAdapter.WithConsumerLogger[auction.Event](slog.Default()),
			redisAdapter.WithConsumerParseFunc(redisAdapter.DecodeEvent),
		)
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create event consumer, err=%w", op, err)
		}
		consumer = eventConsumer
		feed, err = sse.NewFeed(eventConsumer.Subscribe(), eventTopic, sse.WithFeedLogger(slog.Default()))
		if err != nil {
			return nil, fmt.Errorf("[%s] Fail to create event feed, err=%w", op, err)
		}

		opts = append(opts, auction.WithLocker(locker), auction.WithPublisher(eventProducer))
	} else {
		slog.Warn("Redis is not configured, running in single instance mode")
	}

	service, err := auction.NewService(db, opts...)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create auction service, err=%w", op, err)
	}
	if config.DB.AutoMigrate {
		if err := service.Migrate(context.Background()); err != nil {
			return nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
		}
	}

	impl := newServerImpl(service, config)
	impl.redisClient = redisClient
	impl.producer = producer
	impl.consumer = consumer
	impl.feed = feed
	impl.sqlDB = sqlDB
	return impl, nil
}

func newServerImpl(service *auction.Service, config ServerConfig) *ServerImpl {
	return &ServerImpl{
		service:     service,
		htmlChecker: bluemonday.UGCPolicy(),
		logger:      slog.Default().With(slog.String("caller", "api.ServerImpl")),
		config:      config,
	}
}

func (impl *ServerImpl) Start() {
	// 啟動事件發布
	if impl.producer != nil {
		impl.producer.Start()
	}
	// 啟動事件訂閱
	if impl.consumer != nil {
		impl.consumer.Start()
	}
	if impl.feed != nil {
		impl.feed.Start()
	}
	// 啟動過期拍賣掃描
	if impl.config.Sweeper.Enabled {
		impl.service.Start()
	}
}

func (impl *ServerImpl) Close() {
	// 先停止掃描，確保不再有新的事件
	impl.service.Close()
	if impl.feed != nil {
		impl.feed.Done()
	}
	if impl.consumer != nil {
		impl.consumer.Close()
	}
	if impl.producer != nil {
		impl.producer.Close()
	}
	if impl.redisClient != nil {
		if err := impl.redisClient.Close(); err != nil {
			impl.logger.Warn("Fail to close redis client", slog.Any("error", err))
		}
	}
	if impl.sqlDB != nil {
		if err := impl.sqlDB.Close(); err != nil {
			impl.logger.Warn("Fail to close database", slog.Any("error", err))
		}
	}
}

// RegisterHandlers 註冊所有 HTTP 路由，請求先經過 OpenAPI 文件檢查才交給 handler
func (impl *ServerImpl) RegisterHandlers(router gin.IRouter) error {
	const op = "RegisterHandlers"

	swagger, err := openapi.GetSwagger()
	if err != nil {
		return fmt.Errorf("[%s] Fail to load openapi spec, err=%w", op, err)
	}
	validator, err := newRequestValidator(swagger)
	if err != nil {
		return fmt.Errorf("[%s] Fail to create request validator, err=%w", op, err)
	}

	handler := openapi.NewStrictHandler(impl, []openapi.StrictMiddlewareFunc{impl.errorMiddleware})
	openapi.RegisterHandlersWithOptions(router, handler, openapi.GinServerOptions{
		Middlewares:  []openapi.MiddlewareFunc{validator},
		ErrorHandler: impl.paramErrorHandler,
	})
	return nil
}
