package auction

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BidResult struct {
	BidID      uuid.UUID
	NewBalance int64
	NewPrice   int64
	BidCount   int
	Closed     bool
}

// BidEngine 處理出價，驗證與資金托管都在同一把拍賣鎖與同一個交易內完成
type BidEngine struct {
	db        *gorm.DB
	locker    Locker
	ledger    *Ledger
	lifecycle *LifecycleManager
	publisher Publisher
	clock     Clock
	logger    *slog.Logger
}

func newBidEngine(db *gorm.DB, locker Locker, ledger *Ledger, lifecycle *LifecycleManager, publisher Publisher, clock Clock, logger *slog.Logger) *BidEngine {
	return &BidEngine{
		db:        db,
		locker:    locker,
		ledger:    ledger,
		lifecycle: lifecycle,
		publisher: publisher,
		clock:     clock,
		logger:    logger.With(slog.String("caller", "auction.BidEngine")),
	}
}

// PlaceBid 對拍賣出價
// 成功時前一位領先者的托管金額會被退回，出價金額從出價者帳戶扣除
func (e *BidEngine) PlaceBid(ctx context.Context, auctionID, bidderID uuid.UUID, amount int64) (BidResult, error) {
	const op = "BidEngine.PlaceBid"

	if amount <= 0 {
		return BidResult{}, fmt.Errorf("[%s] amount=%d, err=%w", op, amount, ErrInvalidAmount)
	}

	var result BidResult
	var events []Event
	err := withAuctionLock(ctx, e.locker, auctionID, func(lockCtx context.Context) error {
		err := e.db.WithContext(lockCtx).Transaction(func(tx *gorm.DB) error {
			var err error
			result, events, err = e.placeBidLocked(lockCtx, tx, auctionID, bidderID, amount)
			return err
		})
		if err != nil {
			return err
		}
		// 交易已提交，釋放鎖之前發布，同一拍賣的事件順序與出價順序一致
		e.publish(auctionID, events)
		return nil
	})
	if err != nil {
		return BidResult{}, fmt.Errorf("[%s] Fail to place bid, auction=%s, bidder=%s, err=%w", op, auctionID, bidderID, err)
	}

	e.logger.Info(
		"Higher bid occurs",
		slog.String("auction", auctionID.String()),
		slog.String("bidder", bidderID.String()),
		slog.Int64("amount", amount),
	)
	return result, nil
}

func (e *BidEngine) publish(auctionID uuid.UUID, events []Event) {
	for _, event := range events {
		if err := e.publisher.Publish(event); err != nil {
			e.logger.Error(
				"Fail to publish event",
				slog.String("kind", string(event.Kind)),
				slog.String("auction", auctionID.String()),
				slog.Any("err", err),
			)
		}
	}
}

func (e *BidEngine) placeBidLocked(ctx context.Context, tx *gorm.DB, auctionID, bidderID uuid.UUID, amount int64) (BidResult, []Event, error) {
	auction, err := loadAuctionForUpdate(tx, auctionID)
	if err != nil {
		return BidResult{}, nil, err
	}

	now := e.clock()
	if now.Before(auction.StartTime) {
		return BidResult{}, nil, fmt.Errorf("auction=%s, start=%s, err=%w", auctionID, auction.StartTime, ErrAuctionNotStarted)
	}
	if now.After(auction.EndTime) || auction.Status != models.StatusActive {
		return BidResult{}, nil, fmt.Errorf("auction=%s, status=%s, err=%w", auctionID, auction.Status, ErrAuctionClosed)
	}
	if minimum := auction.MinimumBid(); amount < minimum {
		return BidResult{}, nil, &BidTooLowError{Minimum: minimum}
	}
	balance, err := e.ledger.Balance(ctx, tx, bidderID)
	if err != nil {
		return BidResult{}, nil, err
	}
	if balance < amount {
		return BidResult{}, nil, fmt.Errorf("bidder=%s, balance=%d, amount=%d, err=%w", bidderID, balance, amount, ErrInsufficientFunds)
	}

	leading, err := findLeadingBid(tx, auctionID)
	if err != nil {
		return BidResult{}, nil, err
	}

	bidID, err := uuid.NewV7()
	if err != nil {
		return BidResult{}, nil, fmt.Errorf("fail to generate bid id, err=%w", err)
	}

	type step struct {
		movement Movement
		debit    bool
	}
	steps := []step{{
		movement: Movement{
			OperationID: escrowOperationID(bidID),
			UserID:      bidderID,
			AuctionID:   &auction.ID,
			BidID:       &bidID,
			Kind:        models.LedgerKindEscrow,
			Amount:      amount,
		},
		debit: true,
	}}
	if leading != nil {
		// 新的領先出價寫入前要先清除舊的 leading 旗標
		if err := markRefunded(tx, leading, now); err != nil {
			return BidResult{}, nil, err
		}
		steps = append([]step{{
			movement: Movement{
				OperationID: refundOperationID(leading.ID),
				UserID:      leading.BidderID,
				AuctionID:   &auction.ID,
				BidID:       &leading.ID,
				Kind:        models.LedgerKindRefund,
				Amount:      leading.Amount,
			},
		}}, steps...)
	}
	// 同一帳戶時退款排在扣款之前
	slices.SortStableFunc(steps, func(a, b step) int { return compareAccounts(a.movement.UserID, b.movement.UserID) })

	var newBalance int64
	for _, s := range steps {
		apply := e.ledger.Credit
		if s.debit {
			apply = e.ledger.Debit
		}
		receipt, err := apply(ctx, tx, s.movement)
		if err != nil {
			return BidResult{}, nil, err
		}
		if s.movement.UserID == bidderID {
			newBalance = receipt.BalanceAfter
		}
	}

	bid := models.Bid{
		ID:        bidID,
		AuctionID: auction.ID,
		BidderID:  bidderID,
		Amount:    amount,
		IsLeading: true,
		CreatedAt: now,
	}
	if err := tx.Create(&bid).Error; err != nil {
		return BidResult{}, nil, fmt.Errorf("fail to insert bid, auction=%s, err=%w", auctionID, err)
	}

	update := tx.Model(&models.Auction{}).
		Where("id = ? AND status = ?", auction.ID, models.StatusActive).
		Updates(map[string]any{
			"current_price": amount,
			"bid_count":     gorm.Expr("bid_count + ?", 1),
			"updated_at":    now,
		})
	if update.Error != nil {
		return BidResult{}, nil, fmt.Errorf("fail to update auction price, auction=%s, err=%w", auctionID, update.Error)
	}
	if update.RowsAffected == 0 {
		return BidResult{}, nil, fmt.Errorf("auction=%s, err=%w", auctionID, ErrConcurrentConflict)
	}
	auction.CurrentPrice = amount
	auction.BidCount++

	result := BidResult{
		BidID:      bid.ID,
		NewBalance: newBalance,
		NewPrice:   amount,
		BidCount:   auction.BidCount,
	}
	events := []Event{{
		Kind:       EventBidPlaced,
		AuctionID:  auction.ID,
		BidderID:   bidderID,
		Amount:     amount,
		BidCount:   auction.BidCount,
		Status:     models.StatusActive,
		OccurredAt: now,
	}}

	// 提交前再檢查一次截止時間，已超過時在同一個交易內結束拍賣
	if commitAt := e.clock(); commitAt.After(auction.EndTime) {
		transition, err := e.lifecycle.closeLocked(ctx, tx, &auction, CloseReasonDeadline)
		if err != nil {
			return BidResult{}, nil, err
		}
		result.Closed = transition.Changed
		events = append(events, closedEvent(transition, commitAt))
	}

	return result, events, nil
}
