package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"bidhouse/api/openapi"
	"bidhouse/auction"
)

const eventSnapshot = "snapshot"

func eventTopic(event auction.Event) string {
	return event.AuctionID.String()
}

// Track auction events
// (GET /auctions/{auctionID}/events)
func (impl *ServerImpl) GetAuctionsAuctionIDEvents(ctx context.Context, request openapi.GetAuctionsAuctionIDEventsRequestObject) (openapi.GetAuctionsAuctionIDEventsResponseObject, error) {
	const op = "GetAuctionsAuctionIDEvents"

	if impl.feed == nil {
		return openapi.GetAuctionsAuctionIDEvents503JSONResponse{Message: "event feed is not available"}, nil
	}
	c := ctx.(*gin.Context)
	reqCtx := c.Request.Context()

	// 先訂閱再讀取目前狀態，避免兩者之間的事件遺失
	topic := request.AuctionID.String()
	events, err := impl.feed.Subscribe(topic)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to subscribe to auction events, err=%w", op, err)
	}
	defer impl.feed.Unsubscribe(topic, events)

	a, err := impl.service.GetAuction(reqCtx, request.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get auction, err=%w", op, err)
	}

	// SSE請求合法，開始初始化串流
	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	c.SSEvent(eventSnapshot, newAuction(a))
	w.Flush()
	if a.Status.Terminal() {
		return openapi.GetAuctionsAuctionIDEvents200Response{}, nil
	}

LOOP:
	for {
		select {
		case <-reqCtx.Done():
			break LOOP
		case event, ok := <-events:
			if !ok {
				break LOOP
			}
			c.SSEvent(string(event.Kind), newAuctionEvent(event))
			w.Flush()
			if event.Kind == auction.EventAuctionClosed {
				break LOOP
			}
		}
	}
	return openapi.GetAuctionsAuctionIDEvents200Response{}, nil
}
