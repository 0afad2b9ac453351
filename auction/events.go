package auction

import (
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventBidPlaced     EventKind = "bid_placed"
	EventAuctionClosed EventKind = "auction_closed"
)

// Event 是交易提交後對外發布的拍賣事件
type Event struct {
	Kind       EventKind            `msgpack:"kind"`
	AuctionID  uuid.UUID            `msgpack:"auction_id"`
	BidderID   uuid.UUID            `msgpack:"bidder_id,omitempty"`
	Amount     int64                `msgpack:"amount"`
	BidCount   int                  `msgpack:"bid_count"`
	Status     models.AuctionStatus `msgpack:"status"`
	WinnerID   *uuid.UUID           `msgpack:"winner_id,omitempty"`
	OccurredAt time.Time            `msgpack:"occurred_at"`
}

func closedEvent(transition Transition, at time.Time) Event {
	return Event{
		Kind:       EventAuctionClosed,
		AuctionID:  transition.AuctionID,
		Amount:     transition.FinalPrice,
		BidCount:   transition.BidCount,
		Status:     transition.To,
		WinnerID:   transition.WinnerID,
		OccurredAt: at,
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) error { return nil }
