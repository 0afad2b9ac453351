package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CloseReason string

const (
	CloseReasonSweep    CloseReason = "sweep"
	CloseReasonManual   CloseReason = "manual"
	CloseReasonDeadline CloseReason = "deadline"
)

// Transition 描述一次狀態轉移的結果，Changed 為 false 表示拍賣早已處於終止狀態
type Transition struct {
	AuctionID  uuid.UUID
	From       models.AuctionStatus
	To         models.AuctionStatus
	WinnerID   *uuid.UUID
	FinalPrice int64
	BidCount   int
	Refunded   int
	Changed    bool
}

// AuctionPatch 是管理者可修改的欄位，nil 表示不修改
type AuctionPatch struct {
	Title       *string
	Description *string
	Category    *string
	StartPrice  *int64
	Step        *int64
	Status      *models.AuctionStatus
}

func (p AuctionPatch) hasFieldEdits() bool {
	return p.Title != nil || p.Description != nil || p.Category != nil || p.StartPrice != nil || p.Step != nil
}

// LifecycleManager 是拍賣狀態機，所有結束拍賣的流程都經過這裡
type LifecycleManager struct {
	db        *gorm.DB
	locker    Locker
	ledger    *Ledger
	resolver  *WinnerResolver
	publisher Publisher
	clock     Clock
	logger    *slog.Logger
}

func newLifecycleManager(db *gorm.DB, locker Locker, ledger *Ledger, resolver *WinnerResolver, publisher Publisher, clock Clock, logger *slog.Logger) *LifecycleManager {
	return &LifecycleManager{
		db:        db,
		locker:    locker,
		ledger:    ledger,
		resolver:  resolver,
		publisher: publisher,
		clock:     clock,
		logger:    logger.With(slog.String("caller", "auction.LifecycleManager")),
	}
}

// Close 結束拍賣，有出價時轉為 FINISHED 並結算得標者，否則轉為 EXPIRED
func (m *LifecycleManager) Close(ctx context.Context, auctionID uuid.UUID, reason CloseReason) (Transition, error) {
	const op = "LifecycleManager.Close"

	transition, err := m.run(ctx, auctionID, string(reason), func(ctx context.Context, tx *gorm.DB, auction *models.Auction) (Transition, error) {
		return m.closeLocked(ctx, tx, auction, reason)
	})
	if err != nil {
		return Transition{}, fmt.Errorf("[%s] Fail to close auction, auction=%s, err=%w", op, auctionID, err)
	}
	return transition, nil
}

// Cancel 取消拍賣並退還所有托管中的出價，沒有得標者
func (m *LifecycleManager) Cancel(ctx context.Context, auctionID uuid.UUID) (Transition, error) {
	const op = "LifecycleManager.Cancel"

	transition, err := m.run(ctx, auctionID, "cancel", m.cancelLocked)
	if err != nil {
		return Transition{}, fmt.Errorf("[%s] Fail to cancel auction, auction=%s, err=%w", op, auctionID, err)
	}
	return transition, nil
}

// Update 套用管理者的修改，狀態修改會走與 Close/Cancel 相同的流程
func (m *LifecycleManager) Update(ctx context.Context, auctionID uuid.UUID, patch AuctionPatch) (models.Auction, Transition, error) {
	const op = "LifecycleManager.Update"

	var updated models.Auction
	transition, err := m.run(ctx, auctionID, "admin", func(ctx context.Context, tx *gorm.DB, auction *models.Auction) (Transition, error) {
		transition, err := m.updateLocked(ctx, tx, auction, patch)
		updated = *auction
		return transition, err
	})
	if err != nil {
		return models.Auction{}, Transition{}, fmt.Errorf("[%s] Fail to update auction, auction=%s, err=%w", op, auctionID, err)
	}
	return updated, transition, nil
}

type lockedFunc func(ctx context.Context, tx *gorm.DB, auction *models.Auction) (Transition, error)

// run 在拍賣鎖與交易內執行 fn，交易提交後仍持有鎖時發布結束事件
func (m *LifecycleManager) run(ctx context.Context, auctionID uuid.UUID, source string, fn lockedFunc) (Transition, error) {
	var transition Transition
	err := withAuctionLock(ctx, m.locker, auctionID, func(lockCtx context.Context) error {
		err := m.db.WithContext(lockCtx).Transaction(func(tx *gorm.DB) error {
			auction, err := loadAuctionForUpdate(tx, auctionID)
			if err != nil {
				return err
			}
			transition, err = fn(lockCtx, tx, &auction)
			return err
		})
		if err != nil {
			return err
		}
		m.announce(transition, source)
		return nil
	})
	if errors.Is(err, errTransitionLost) {
		// 條件式更新沒有命中，代表其他實例已先結束拍賣，交易已回滾
		m.logger.Warn("Auction closed concurrently", slog.String("auction", auctionID.String()))
		return Transition{AuctionID: auctionID, Changed: false}, nil
	}
	return transition, err
}

func (m *LifecycleManager) closeLocked(ctx context.Context, tx *gorm.DB, auction *models.Auction, reason CloseReason) (Transition, error) {
	if auction.Status.Terminal() {
		return unchanged(auction), nil
	}

	var bidCount int64
	if err := tx.Model(&models.Bid{}).Where("auction_id = ?", auction.ID).Count(&bidCount).Error; err != nil {
		return Transition{}, fmt.Errorf("fail to count bids, auction=%s, err=%w", auction.ID, err)
	}

	from := auction.Status
	to := models.StatusExpired
	refunded := 0
	if bidCount > 0 {
		resolution, err := m.resolver.Resolve(ctx, tx, auction)
		if err != nil {
			return Transition{}, err
		}
		to = models.StatusFinished
		refunded = len(resolution.Refunded)
	}

	if err := m.transitionLocked(tx, auction, to); err != nil {
		return Transition{}, err
	}

	m.logger.Info(
		"Auction closed",
		slog.String("auction", auction.ID.String()),
		slog.String("status", string(to)),
		slog.String("reason", string(reason)),
	)

	return Transition{
		AuctionID:  auction.ID,
		From:       from,
		To:         to,
		WinnerID:   auction.WinnerID,
		FinalPrice: auction.CurrentPrice,
		BidCount:   auction.BidCount,
		Refunded:   refunded,
		Changed:    true,
	}, nil
}

func (m *LifecycleManager) cancelLocked(ctx context.Context, tx *gorm.DB, auction *models.Auction) (Transition, error) {
	if auction.Status.Terminal() {
		return unchanged(auction), nil
	}

	var escrowed []models.Bid
	err := tx.Where("auction_id = ? AND refunded_at IS NULL", auction.ID).Find(&escrowed).Error
	if err != nil {
		return Transition{}, fmt.Errorf("fail to list escrowed bids, auction=%s, err=%w", auction.ID, err)
	}
	slices.SortStableFunc(escrowed, func(a, b models.Bid) int { return compareAccounts(a.BidderID, b.BidderID) })

	now := m.clock()
	for i := range escrowed {
		bid := &escrowed[i]
		if err := markRefunded(tx, bid, now); err != nil {
			return Transition{}, err
		}
		_, err := m.ledger.Credit(ctx, tx, Movement{
			OperationID: refundOperationID(bid.ID),
			UserID:      bid.BidderID,
			AuctionID:   &auction.ID,
			BidID:       &bid.ID,
			Kind:        models.LedgerKindRefund,
			Amount:      bid.Amount,
		})
		if err != nil {
			return Transition{}, fmt.Errorf("fail to refund bid, bid=%s, err=%w", bid.ID, err)
		}
	}

	err = tx.Model(&models.Bid{}).
		Where("auction_id = ? AND is_leading = ?", auction.ID, true).
		Update("is_leading", false).Error
	if err != nil {
		return Transition{}, fmt.Errorf("fail to clear leading flags, auction=%s, err=%w", auction.ID, err)
	}

	from := auction.Status
	if err := m.transitionLocked(tx, auction, models.StatusCancelled); err != nil {
		return Transition{}, err
	}

	m.logger.Info(
		"Auction cancelled",
		slog.String("auction", auction.ID.String()),
		slog.Int("refunded", len(escrowed)),
	)

	return Transition{
		AuctionID:  auction.ID,
		From:       from,
		To:         models.StatusCancelled,
		FinalPrice: auction.CurrentPrice,
		BidCount:   auction.BidCount,
		Refunded:   len(escrowed),
		Changed:    true,
	}, nil
}

func (m *LifecycleManager) updateLocked(ctx context.Context, tx *gorm.DB, auction *models.Auction, patch AuctionPatch) (Transition, error) {
	if auction.Status.Terminal() {
		if patch.hasFieldEdits() {
			return Transition{}, fmt.Errorf("auction=%s, status=%s, err=%w", auction.ID, auction.Status, ErrAuctionClosed)
		}
		return unchanged(auction), nil
	}

	if patch.hasFieldEdits() {
		if err := m.applyFieldEdits(tx, auction, patch); err != nil {
			return Transition{}, err
		}
	}

	if patch.Status == nil {
		return unchanged(auction), nil
	}

	switch *patch.Status {
	case models.StatusActive:
		return unchanged(auction), nil
	case models.StatusFinished:
		return m.closeLocked(ctx, tx, auction, CloseReasonManual)
	case models.StatusCancelled:
		return m.cancelLocked(ctx, tx, auction)
	case models.StatusExpired:
		if auction.BidCount > 0 {
			return Transition{}, fmt.Errorf("auction=%s, bids=%d, err=%w", auction.ID, auction.BidCount, ErrInvalidTransition)
		}
		return m.closeLocked(ctx, tx, auction, CloseReasonManual)
	default:
		return Transition{}, fmt.Errorf("status=%q, err=%w", *patch.Status, ErrInvalidTransition)
	}
}

func (m *LifecycleManager) applyFieldEdits(tx *gorm.DB, auction *models.Auction, patch AuctionPatch) error {
	updates := map[string]any{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return fmt.Errorf("empty title, err=%w", ErrInvalidAuction)
		}
		updates["title"] = title
		auction.Title = title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
		auction.Description = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
		auction.Category = *patch.Category
	}
	if patch.Step != nil {
		if *patch.Step <= 0 {
			return fmt.Errorf("step=%d, err=%w", *patch.Step, ErrInvalidAuction)
		}
		updates["step"] = *patch.Step
		auction.Step = *patch.Step
	}
	if patch.StartPrice != nil {
		if *patch.StartPrice < 0 {
			return fmt.Errorf("start price=%d, err=%w", *patch.StartPrice, ErrInvalidAuction)
		}
		if auction.BidCount > 0 {
			return fmt.Errorf("auction=%s, bids=%d, err=%w", auction.ID, auction.BidCount, ErrAuctionHasBids)
		}
		updates["start_price"] = *patch.StartPrice
		updates["current_price"] = *patch.StartPrice
		auction.StartPrice = *patch.StartPrice
		auction.CurrentPrice = *patch.StartPrice
	}

	updates["updated_at"] = m.clock()
	result := tx.Model(&models.Auction{}).
		Where("id = ? AND status = ?", auction.ID, models.StatusActive).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("fail to update auction, auction=%s, err=%w", auction.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("auction=%s, err=%w", auction.ID, ErrAuctionClosed)
	}
	return nil
}

// transitionLocked 以條件式更新套用狀態轉移，只有仍為 ACTIVE 的拍賣會被更新
func (m *LifecycleManager) transitionLocked(tx *gorm.DB, auction *models.Auction, to models.AuctionStatus) error {
	if !auction.Status.CanTransition(to) {
		return fmt.Errorf("from=%s, to=%s, err=%w", auction.Status, to, ErrInvalidTransition)
	}

	updates := map[string]any{
		"status":     to,
		"updated_at": m.clock(),
	}
	if to == models.StatusFinished {
		updates["winner_id"] = auction.WinnerID
		updates["current_price"] = auction.CurrentPrice
	}

	result := tx.Model(&models.Auction{}).
		Where("id = ? AND status = ?", auction.ID, models.StatusActive).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("fail to transition auction, auction=%s, err=%w", auction.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errTransitionLost
	}
	auction.Status = to
	return nil
}

// announce 發布結束事件，呼叫時交易已提交且仍持有拍賣鎖
func (m *LifecycleManager) announce(transition Transition, source string) {
	if !transition.Changed || !transition.To.Terminal() {
		return
	}
	if err := m.publisher.Publish(closedEvent(transition, m.clock())); err != nil {
		m.logger.Error(
			"Fail to publish auction closed event",
			slog.String("auction", transition.AuctionID.String()),
			slog.String("source", source),
			slog.Any("err", err),
		)
	}
}

func unchanged(auction *models.Auction) Transition {
	return Transition{
		AuctionID:  auction.ID,
		From:       auction.Status,
		To:         auction.Status,
		WinnerID:   auction.WinnerID,
		FinalPrice: auction.CurrentPrice,
		BidCount:   auction.BidCount,
		Changed:    false,
	}
}
