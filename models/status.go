package models

import "slices"

// AuctionStatus 代表拍賣的狀態
// ACTIVE 是唯一的非終止狀態，其餘狀態都不會再轉移
type AuctionStatus string

const (
	StatusActive    AuctionStatus = "ACTIVE"
	StatusFinished  AuctionStatus = "FINISHED"
	StatusExpired   AuctionStatus = "EXPIRED"
	StatusCancelled AuctionStatus = "CANCELLED"
)

var TerminalStatuses = []AuctionStatus{StatusFinished, StatusExpired, StatusCancelled}

func (s AuctionStatus) Valid() bool {
	return s == StatusActive || s.Terminal()
}

func (s AuctionStatus) Terminal() bool {
	return slices.Contains(TerminalStatuses, s)
}

// CanTransition 檢查狀態轉移是否合法，只允許 ACTIVE 轉移到終止狀態
func (s AuctionStatus) CanTransition(to AuctionStatus) bool {
	return s == StatusActive && to.Terminal()
}
