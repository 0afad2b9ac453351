package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultSweepInterval = 30 * time.Second

// ExpirySweeper 定期找出已過截止時間但仍為 ACTIVE 的拍賣並結束它們
type ExpirySweeper struct {
	db        *gorm.DB
	lifecycle *LifecycleManager
	clock     Clock
	interval  time.Duration
	logger    *slog.Logger

	mu         sync.Mutex
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc
}

func newExpirySweeper(db *gorm.DB, lifecycle *LifecycleManager, clock Clock, interval time.Duration, logger *slog.Logger) *ExpirySweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpirySweeper{
		db:        db,
		lifecycle: lifecycle,
		clock:     clock,
		interval:  interval,
		logger:    logger.With(slog.String("caller", "auction.ExpirySweeper")),
	}
}

// Sweep 結束所有截止時間早於 now 的 ACTIVE 拍賣，回傳實際轉移狀態的數量
// 單一拍賣失敗不會中斷其他拍賣，所有錯誤合併後回傳
func (s *ExpirySweeper) Sweep(ctx context.Context, now time.Time) (int, error) {
	const op = "ExpirySweeper.Sweep"

	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Model(&models.Auction{}).
		Where("status = ? AND end_time < ?", models.StatusActive, now.UTC()).
		Order("end_time ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("[%s] Fail to list expired auctions, err=%w", op, err)
	}

	closed := 0
	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		transition, err := s.lifecycle.Close(ctx, id, CloseReasonSweep)
		if err != nil {
			s.logger.Warn(
				"Fail to close expired auction",
				slog.String("auction", id.String()),
				slog.Any("err", err),
			)
			errs = append(errs, err)
			continue
		}
		if transition.Changed {
			closed++
		}
	}

	if len(ids) > 0 {
		s.logger.Info(
			"Sweep expired auctions",
			slog.Int("found", len(ids)),
			slog.Int("closed", closed),
			slog.Int("failed", len(errs)),
		)
	}

	if len(errs) > 0 {
		return closed, fmt.Errorf("[%s] err=%w", op, errors.Join(errs...))
	}
	return closed, nil
}

// Start 啟動背景 worker，重複呼叫不會啟動第二個 worker
func (s *ExpirySweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelFunc != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelFunc = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("Expiry sweeper started", slog.Duration("interval", s.interval))
		defer s.logger.Info("Expiry sweeper stopped")

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Sweep(ctx, s.clock()); err != nil && ctx.Err() == nil {
					s.logger.Error("Sweep finished with errors", slog.Any("err", err))
				}
			}
		}
	}()
}

// Close 停止背景 worker 並等待進行中的掃描結束
func (s *ExpirySweeper) Close() {
	s.mu.Lock()
	cancel := s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	s.wg.Wait()
}
