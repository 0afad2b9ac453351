package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auction 代表一場限時拍賣
// 包含起標價、目前價格、最小加價幅度、拍賣時間、狀態以及得標者等資訊
type Auction struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Title        string        `gorm:"type:varchar(255);not null"`
	Description  string        `gorm:"type:text;not null;default:''"`
	Category     string        `gorm:"type:varchar(64);not null;default:''"`
	CreatorID    uuid.UUID     `gorm:"type:uuid;not null;index;<-:create"`
	StartPrice   int64         `gorm:"type:bigint;not null"`
	CurrentPrice int64         `gorm:"type:bigint;not null"`
	Step         int64         `gorm:"type:bigint;not null"`
	StartTime    time.Time     `gorm:"not null"`
	EndTime      time.Time     `gorm:"not null;index:idx_auctions_status_end_time,priority:2"`
	Status       AuctionStatus `gorm:"type:varchar(16);not null;default:ACTIVE;index:idx_auctions_status_end_time,priority:1"`
	BidCount     int           `gorm:"not null;default:0"`
	WinnerID     *uuid.UUID    `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// 外鍵關聯
	Creator *User `gorm:"foreignKey:CreatorID"`
	Winner  *User `gorm:"foreignKey:WinnerID"`
	Bids    []Bid `gorm:"constraint:OnDelete:CASCADE"`
}

func (a *Auction) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}

// MinimumBid 回傳下一口出價的最低金額
func (a Auction) MinimumBid() int64 {
	return a.CurrentPrice + a.Step
}
