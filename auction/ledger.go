package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movement 描述一次帳戶資金異動
// OperationID 相同的異動只會被套用一次
type Movement struct {
	OperationID string
	UserID      uuid.UUID
	AuctionID   *uuid.UUID
	BidID       *uuid.UUID
	Kind        models.LedgerKind
	Amount      int64
}

type Receipt struct {
	Applied      bool
	BalanceAfter int64
}

func escrowOperationID(bidID uuid.UUID) string {
	return "escrow:" + bidID.String()
}

func refundOperationID(bidID uuid.UUID) string {
	return "refund:" + bidID.String()
}

func depositOperationID(id string) string {
	return "deposit:" + id
}

// Ledger 負責帳戶餘額的扣款與入帳，所有操作都在呼叫端的交易內執行
type Ledger struct {
	clock  Clock
	logger *slog.Logger
}

func NewLedger(clock Clock, logger *slog.Logger) *Ledger {
	if clock == nil {
		clock = systemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		clock:  clock,
		logger: logger.With(slog.String("caller", "auction.Ledger")),
	}
}

// Debit 從帳戶扣款，餘額不足時回傳 ErrInsufficientFunds
func (l *Ledger) Debit(ctx context.Context, tx *gorm.DB, m Movement) (Receipt, error) {
	return l.apply(ctx, tx, m, -m.Amount)
}

// Credit 將金額存入帳戶
func (l *Ledger) Credit(ctx context.Context, tx *gorm.DB, m Movement) (Receipt, error) {
	return l.apply(ctx, tx, m, m.Amount)
}

// Balance 回傳帳戶目前的可用餘額
func (l *Ledger) Balance(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	const op = "Ledger.Balance"

	var user models.User
	err := tx.WithContext(ctx).Select("id", "balance").Take(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("[%s] user=%s, err=%w", op, userID, ErrUserNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("[%s] Fail to read balance, user=%s, err=%w", op, userID, err)
	}
	return user.Balance, nil
}

func (l *Ledger) apply(ctx context.Context, tx *gorm.DB, m Movement, delta int64) (Receipt, error) {
	const op = "Ledger.apply"

	if m.Amount <= 0 {
		return Receipt{}, fmt.Errorf("[%s] amount=%d, err=%w", op, m.Amount, ErrInvalidAmount)
	}
	if m.OperationID == "" {
		return Receipt{}, fmt.Errorf("[%s] Missing operation id, user=%s", op, m.UserID)
	}
	tx = tx.WithContext(ctx)

	// 先查詢是否已處理過，在 Postgres 中違反唯一索引會使整個交易失效
	var count int64
	err := tx.Model(&models.LedgerEntry{}).Where("operation_id = ?", m.OperationID).Count(&count).Error
	if err != nil {
		return Receipt{}, fmt.Errorf("[%s] Fail to check operation, operation=%s, err=%w", op, m.OperationID, err)
	}
	if count > 0 {
		balance, err := l.Balance(ctx, tx, m.UserID)
		if err != nil {
			return Receipt{}, err
		}
		l.logger.Debug(
			"Movement already applied",
			slog.String("operation", m.OperationID),
		)
		return Receipt{Applied: false, BalanceAfter: balance}, nil
	}

	query := tx.Model(&models.User{}).Where("id = ?", m.UserID)
	if delta < 0 {
		query = query.Where("balance >= ?", -delta)
	}
	result := query.UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return Receipt{}, fmt.Errorf("[%s] Fail to update balance, user=%s, err=%w", op, m.UserID, result.Error)
	}
	if result.RowsAffected == 0 {
		var exists int64
		err := tx.Model(&models.User{}).Where("id = ?", m.UserID).Count(&exists).Error
		if err != nil {
			return Receipt{}, fmt.Errorf("[%s] Fail to check user, user=%s, err=%w", op, m.UserID, err)
		}
		if exists == 0 {
			return Receipt{}, fmt.Errorf("[%s] user=%s, err=%w", op, m.UserID, ErrUserNotFound)
		}
		return Receipt{}, fmt.Errorf("[%s] user=%s, amount=%d, err=%w", op, m.UserID, m.Amount, ErrInsufficientFunds)
	}

	balance, err := l.Balance(ctx, tx, m.UserID)
	if err != nil {
		return Receipt{}, err
	}

	entry := models.LedgerEntry{
		OperationID:  m.OperationID,
		UserID:       m.UserID,
		AuctionID:    m.AuctionID,
		BidID:        m.BidID,
		Kind:         m.Kind,
		Amount:       delta,
		BalanceAfter: balance,
		CreatedAt:    l.clock(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return Receipt{}, fmt.Errorf("[%s] Fail to record ledger entry, operation=%s, err=%w", op, m.OperationID, err)
	}

	return Receipt{Applied: true, BalanceAfter: balance}, nil
}
