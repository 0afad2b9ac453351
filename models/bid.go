package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bid 代表拍賣的出價紀錄
// 同一場拍賣在任何時刻最多只有一筆 IsLeading 的出價，由部分唯一索引保證
type Bid struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AuctionID  uuid.UUID  `gorm:"type:uuid;not null;<-:create;index:idx_bids_auction_created,priority:1;uniqueIndex:idx_bids_auction_leading,where:is_leading = true"`
	BidderID   uuid.UUID  `gorm:"type:uuid;not null;index;<-:create"`
	Amount     int64      `gorm:"type:bigint;not null;<-:create"`
	IsLeading  bool       `gorm:"not null;default:false"`
	RefundedAt *time.Time // 托管金額退回的時間，只會被設定一次
	CreatedAt  time.Time  `gorm:"not null;index:idx_bids_auction_created,priority:2"`

	// 外鍵關聯
	Bidder *User `gorm:"foreignKey:BidderID"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	return assignID(&b.ID)
}

// HoldsEscrow 表示這筆出價的金額是否仍被托管中
func (b Bid) HoldsEscrow() bool {
	return b.RefundedAt == nil
}
