package auction

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loadAuctionForUpdate 讀取拍賣，在 Postgres 中同時鎖定該列
func loadAuctionForUpdate(tx *gorm.DB, auctionID uuid.UUID) (models.Auction, error) {
	query := tx
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var auction models.Auction
	err := query.Take(&auction, "id = ?", auctionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Auction{}, fmt.Errorf("auction=%s, err=%w", auctionID, ErrAuctionNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("fail to load auction, auction=%s, err=%w", auctionID, err)
	}
	return auction, nil
}

func findLeadingBid(tx *gorm.DB, auctionID uuid.UUID) (*models.Bid, error) {
	var bids []models.Bid
	err := tx.Where("auction_id = ? AND is_leading = ?", auctionID, true).Limit(1).Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("fail to find leading bid, auction=%s, err=%w", auctionID, err)
	}
	if len(bids) == 0 {
		return nil, nil
	}
	return &bids[0], nil
}

// markRefunded 標記出價已退款並清除 leading 旗標，只會對尚未退款的出價生效
func markRefunded(tx *gorm.DB, bid *models.Bid, at time.Time) error {
	result := tx.Model(&models.Bid{}).
		Where("id = ? AND refunded_at IS NULL", bid.ID).
		Updates(map[string]any{"is_leading": false, "refunded_at": at})
	if result.Error != nil {
		return fmt.Errorf("fail to mark bid refunded, bid=%s, err=%w", bid.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("bid=%s already refunded, err=%w", bid.ID, ErrConcurrentConflict)
	}
	bid.IsLeading = false
	bid.RefundedAt = &at
	return nil
}

// compareAccounts 決定帳戶寫入順序，所有交易都以相同順序寫入帳戶以避免死結
func compareAccounts(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
