package api

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"bidhouse/api/openapi"
	"bidhouse/auction"
	"bidhouse/models"
)

func newAuction(a models.Auction) openapi.Auction {
	return openapi.Auction{
		Id:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		CreatorId:    a.CreatorID,
		StartPrice:   a.StartPrice,
		CurrentPrice: a.CurrentPrice,
		Step:         a.Step,
		MinimumBid:   a.MinimumBid(),
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		Status:       string(a.Status),
		BidCount:     a.BidCount,
		WinnerId:     a.WinnerID,
	}
}

func newAuctions(auctions []models.Auction) []openapi.Auction {
	return lo.Map(auctions, func(a models.Auction, _ int) openapi.Auction {
		return newAuction(a)
	})
}

func newTransition(t auction.Transition) openapi.Transition {
	return openapi.Transition{
		AuctionId:  t.AuctionID,
		From:       string(t.From),
		To:         string(t.To),
		WinnerId:   t.WinnerID,
		FinalPrice: t.FinalPrice,
		Refunded:   t.Refunded,
		Changed:    t.Changed,
	}
}

// newAuctionEvent 轉換為 SSE 的 data 內容，結束事件沒有出價者
func newAuctionEvent(e auction.Event) openapi.AuctionEvent {
	event := openapi.AuctionEvent{
		Kind:       string(e.Kind),
		AuctionId:  e.AuctionID,
		Amount:     e.Amount,
		BidCount:   e.BidCount,
		Status:     string(e.Status),
		WinnerId:   e.WinnerID,
		OccurredAt: e.OccurredAt,
	}
	if e.BidderID != uuid.Nil {
		event.BidderId = lo.ToPtr(e.BidderID)
	}
	return event
}
