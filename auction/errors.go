package auction

import (
	"errors"
	"fmt"
)

var (
	ErrAuctionNotFound        = errors.New("auction not found")
	ErrAuctionNotStarted      = errors.New("auction has not started")
	ErrAuctionClosed          = errors.New("auction is closed")
	ErrAuctionNotClosed       = errors.New("auction is not closed")
	ErrAuctionHasBids         = errors.New("auction already has bids")
	ErrBidTooLow              = errors.New("bid amount too low")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrUserNotFound           = errors.New("user not found")
	ErrConcurrentConflict     = errors.New("concurrent conflict")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidAuction         = errors.New("invalid auction")
	ErrInvalidUser            = errors.New("invalid user")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrSettlementInconsistent = errors.New("no escrowed bid to settle")
)

// BidTooLowError 帶有最低可接受出價的錯誤，可以用 errors.Is(err, ErrBidTooLow) 判斷
type BidTooLowError struct {
	Minimum int64
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("%s, minimum=%d", ErrBidTooLow, e.Minimum)
}

func (e *BidTooLowError) Is(target error) bool {
	return target == ErrBidTooLow
}

// errTransitionLost 表示條件式狀態更新沒有命中任何紀錄，也就是拍賣已被其他流程關閉
var errTransitionLost = errors.New("auction status changed concurrently")
