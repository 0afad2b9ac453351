package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceOptions struct {
	locker        Locker
	publisher     Publisher
	clock         Clock
	logger        *slog.Logger
	sweepInterval time.Duration
}

type ServiceOption func(*serviceOptions)

// WithLocker 設定拍賣鎖，預設為單一行程內的 LocalLocker
func WithLocker(locker Locker) ServiceOption {
	return func(o *serviceOptions) {
		o.locker = locker
	}
}

func WithPublisher(publisher Publisher) ServiceOption {
	return func(o *serviceOptions) {
		o.publisher = publisher
	}
}

func WithClock(clock Clock) ServiceOption {
	return func(o *serviceOptions) {
		o.clock = clock
	}
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

func WithSweepInterval(interval time.Duration) ServiceOption {
	return func(o *serviceOptions) {
		o.sweepInterval = interval
	}
}

// Service 組合出價、狀態機、結算與掃描元件，對外提供拍賣的所有操作
type Service struct {
	db        *gorm.DB
	ledger    *Ledger
	engine    *BidEngine
	lifecycle *LifecycleManager
	sweeper   *ExpirySweeper
	clock     Clock
	logger    *slog.Logger
}

func NewService(db *gorm.DB, opts ...ServiceOption) (*Service, error) {
	if db == nil {
		return nil, errors.New("auction.NewService: nil database")
	}

	options := &serviceOptions{
		locker:        NewLocalLocker(),
		publisher:     nopPublisher{},
		clock:         systemClock,
		logger:        slog.Default(),
		sweepInterval: defaultSweepInterval,
	}
	for _, opt := range opts {
		opt(options)
	}

	ledger := NewLedger(options.clock, options.logger)
	resolver := NewWinnerResolver(ledger, options.clock, options.logger)
	lifecycle := newLifecycleManager(db, options.locker, ledger, resolver, options.publisher, options.clock, options.logger)
	engine := newBidEngine(db, options.locker, ledger, lifecycle, options.publisher, options.clock, options.logger)
	sweeper := newExpirySweeper(db, lifecycle, options.clock, options.sweepInterval, options.logger)

	return &Service{
		db:        db,
		ledger:    ledger,
		engine:    engine,
		lifecycle: lifecycle,
		sweeper:   sweeper,
		clock:     options.clock,
		logger:    options.logger.With(slog.String("caller", "auction.Service")),
	}, nil
}

// Migrate 建立或更新資料表
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auction.Service.Migrate: %w", err)
	}
	return nil
}

// Start 啟動過期拍賣的背景掃描
func (s *Service) Start() {
	s.sweeper.Start()
}

func (s *Service) Close() {
	s.sweeper.Close()
}

// Now 回傳服務使用的時鐘時間
func (s *Service) Now() time.Time {
	return s.clock()
}

func (s *Service) PlaceBid(ctx context.Context, auctionID, bidderID uuid.UUID, amount int64) (BidResult, error) {
	return s.engine.PlaceBid(ctx, auctionID, bidderID, amount)
}

func (s *Service) FinishAuction(ctx context.Context, auctionID uuid.UUID) (Transition, error) {
	return s.lifecycle.Close(ctx, auctionID, CloseReasonManual)
}

func (s *Service) CancelAuction(ctx context.Context, auctionID uuid.UUID) (Transition, error) {
	return s.lifecycle.Cancel(ctx, auctionID)
}

func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return s.sweeper.Sweep(ctx, now)
}

// AdminSetStatus 由管理者直接設定拍賣狀態
// 設定 FINISHED 但沒有任何出價時，拍賣會轉為 EXPIRED
func (s *Service) AdminSetStatus(ctx context.Context, auctionID uuid.UUID, status models.AuctionStatus) (Transition, error) {
	if !status.Valid() {
		return Transition{}, fmt.Errorf("status=%q, err=%w", status, ErrInvalidTransition)
	}
	_, transition, err := s.lifecycle.Update(ctx, auctionID, AuctionPatch{Status: &status})
	return transition, err
}

func (s *Service) AdminUpdate(ctx context.Context, auctionID uuid.UUID, patch AuctionPatch) (models.Auction, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Auction{}, fmt.Errorf("status=%q, err=%w", *patch.Status, ErrInvalidTransition)
	}
	auction, _, err := s.lifecycle.Update(ctx, auctionID, patch)
	return auction, err
}
