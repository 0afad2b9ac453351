package auction

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"bidhouse/models"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Resolution struct {
	Winner   models.Bid
	Refunded []models.Bid
}

// WinnerResolver 在拍賣結束時決定得標出價，並退還其他仍在托管中的出價
type WinnerResolver struct {
	ledger *Ledger
	clock  Clock
	logger *slog.Logger
}

func NewWinnerResolver(ledger *Ledger, clock Clock, logger *slog.Logger) *WinnerResolver {
	if clock == nil {
		clock = systemClock
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WinnerResolver{
		ledger: ledger,
		clock:  clock,
		logger: logger.With(slog.String("caller", "auction.WinnerResolver")),
	}
}

// Resolve 選出得標出價並更新 auction 的 WinnerID 與 CurrentPrice
// 得標者優先取已標記 leading 的出價，否則取金額最高且仍在托管中的出價，同額時取較早者
func (r *WinnerResolver) Resolve(ctx context.Context, tx *gorm.DB, auction *models.Auction) (Resolution, error) {
	const op = "WinnerResolver.Resolve"
	tx = tx.WithContext(ctx)

	var bids []models.Bid
	err := tx.Where("auction_id = ?", auction.ID).
		Order("amount DESC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&bids).Error
	if err != nil {
		return Resolution{}, fmt.Errorf("[%s] Fail to list bids, auction=%s, err=%w", op, auction.ID, err)
	}

	winner, ok := lo.Find(bids, func(b models.Bid) bool { return b.IsLeading && b.HoldsEscrow() })
	if !ok {
		winner, ok = lo.Find(bids, func(b models.Bid) bool { return b.HoldsEscrow() })
	}
	if !ok {
		return Resolution{}, fmt.Errorf("[%s] auction=%s, bids=%d, err=%w", op, auction.ID, len(bids), ErrSettlementInconsistent)
	}

	// 先清除其他出價的 leading 旗標，避免違反部分唯一索引
	err = tx.Model(&models.Bid{}).
		Where("auction_id = ? AND id <> ? AND is_leading = ?", auction.ID, winner.ID, true).
		Update("is_leading", false).Error
	if err != nil {
		return Resolution{}, fmt.Errorf("[%s] Fail to clear leading flags, auction=%s, err=%w", op, auction.ID, err)
	}
	if !winner.IsLeading {
		err = tx.Model(&models.Bid{}).Where("id = ?", winner.ID).Update("is_leading", true).Error
		if err != nil {
			return Resolution{}, fmt.Errorf("[%s] Fail to mark winner, bid=%s, err=%w", op, winner.ID, err)
		}
		winner.IsLeading = true
	}

	now := r.clock()
	refunded := lo.Filter(bids, func(b models.Bid, _ int) bool { return b.ID != winner.ID && b.HoldsEscrow() })
	slices.SortStableFunc(refunded, func(a, b models.Bid) int { return compareAccounts(a.BidderID, b.BidderID) })
	for i := range refunded {
		bid := &refunded[i]
		if err := markRefunded(tx, bid, now); err != nil {
			return Resolution{}, fmt.Errorf("[%s] %w", op, err)
		}
		_, err := r.ledger.Credit(ctx, tx, Movement{
			OperationID: refundOperationID(bid.ID),
			UserID:      bid.BidderID,
			AuctionID:   &auction.ID,
			BidID:       &bid.ID,
			Kind:        models.LedgerKindRefund,
			Amount:      bid.Amount,
		})
		if err != nil {
			return Resolution{}, fmt.Errorf("[%s] Fail to refund bid, bid=%s, err=%w", op, bid.ID, err)
		}
	}

	winnerID := winner.BidderID
	auction.WinnerID = &winnerID
	auction.CurrentPrice = winner.Amount

	if len(refunded) > 0 {
		r.logger.Info(
			"Refund non-winning bids",
			slog.String("auction", auction.ID.String()),
			slog.Int("count", len(refunded)),
		)
	}

	return Resolution{Winner: winner, Refunded: refunded}, nil
}
