package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"bidhouse/api/openapi"
	"bidhouse/auction"
	"bidhouse/models"
)

var _ openapi.StrictServerInterface = (*ServerImpl)(nil)

// List active auctions
// (GET /auctions)
func (impl *ServerImpl) GetAuctions(ctx context.Context, request openapi.GetAuctionsRequestObject) (openapi.GetAuctionsResponseObject, error) {
	const op = "GetAuctions"

	auctions, err := impl.service.ListActive(ctx, impl.service.Now())
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list active auctions, err=%w", op, err)
	}
	return openapi.GetAuctions200JSONResponse(newAuctions(auctions)), nil
}

// List featured auctions
// (GET /auctions/featured)
func (impl *ServerImpl) GetAuctionsFeatured(ctx context.Context, request openapi.GetAuctionsFeaturedRequestObject) (openapi.GetAuctionsFeaturedResponseObject, error) {
	const op = "GetAuctionsFeatured"

	// 首頁只顯示最快截止的幾筆
	auctions, err := impl.service.ListActive(ctx, impl.service.Now(), auction.WithLimit(auction.FeaturedLimit))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list featured auctions, err=%w", op, err)
	}
	return openapi.GetAuctionsFeatured200JSONResponse(newAuctions(auctions)), nil
}

// List finished, expired and cancelled auctions
// (GET /auctions/completed)
func (impl *ServerImpl) GetAuctionsCompleted(ctx context.Context, request openapi.GetAuctionsCompletedRequestObject) (openapi.GetAuctionsCompletedResponseObject, error) {
	const op = "GetAuctionsCompleted"

	auctions, err := impl.service.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list completed auctions, err=%w", op, err)
	}
	return openapi.GetAuctionsCompleted200JSONResponse(newAuctions(auctions)), nil
}

// Get auction details
// (GET /auctions/{auctionID})
func (impl *ServerImpl) GetAuctionsAuctionID(ctx context.Context, request openapi.GetAuctionsAuctionIDRequestObject) (openapi.GetAuctionsAuctionIDResponseObject, error) {
	const op = "GetAuctionsAuctionID"

	a, err := impl.service.GetAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get auction, err=%w", op, err)
	}
	return openapi.GetAuctionsAuctionID200JSONResponse(newAuction(a)), nil
}

// List bids of an auction, newest first
// (GET /auctions/{auctionID}/bids)
func (impl *ServerImpl) GetAuctionsAuctionIDBids(ctx context.Context, request openapi.GetAuctionsAuctionIDBidsRequestObject) (openapi.GetAuctionsAuctionIDBidsResponseObject, error) {
	const op = "GetAuctionsAuctionIDBids"

	bids, err := impl.service.GetAuctionBids(ctx, request.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list auction bids, err=%w", op, err)
	}
	return openapi.GetAuctionsAuctionIDBids200JSONResponse(lo.Map(bids, func(b auction.BidView, _ int) openapi.Bid {
		return openapi.Bid{
			BidId:      b.BidID,
			BidderId:   b.BidderID,
			BidderName: b.BidderName,
			Amount:     b.Amount,
			IsLeading:  b.IsLeading,
			CreatedAt:  b.CreatedAt,
		}
	})), nil
}

// Add a new auction
// (POST /auctions)
func (impl *ServerImpl) PostAuctions(ctx context.Context, request openapi.PostAuctionsRequestObject) (openapi.PostAuctionsResponseObject, error) {
	const op = "PostAuctions"

	creator, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.PostAuctions401JSONResponse{Message: msgUnauthorized}, nil
	}
	// 描述允許使用者輸入 HTML，需先過濾
	if request.Body.Description != nil {
		request.Body.Description = lo.ToPtr(impl.htmlChecker.Sanitize(*request.Body.Description))
	}
	input := auction.NewAuction{
		Title:       request.Body.Title,
		Description: lo.FromPtr(request.Body.Description),
		Category:    lo.FromPtr(request.Body.Category),
		CreatorID:   creator,
		StartPrice:  lo.FromPtr(request.Body.StartPrice),
		Step:        lo.FromPtr(request.Body.Step),
		StartTime:   lo.FromPtr(request.Body.StartTime),
		EndTime:     request.Body.EndTime,
	}

	a, err := impl.service.CreateAuction(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create auction, err=%w", op, err)
	}
	return openapi.PostAuctions201JSONResponse(newAuction(a)), nil
}

// Place a bid on an auction
// (POST /auctions/{auctionID}/bids)
func (impl *ServerImpl) PostAuctionsAuctionIDBids(ctx context.Context, request openapi.PostAuctionsAuctionIDBidsRequestObject) (openapi.PostAuctionsAuctionIDBidsResponseObject, error) {
	const op = "PostAuctionsAuctionIDBids"

	bidder, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.PostAuctionsAuctionIDBids401JSONResponse{Message: msgUnauthorized}, nil
	}
	result, err := impl.service.PlaceBid(ctx, request.AuctionID, bidder, request.Body.Amount)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to place bid, err=%w", op, err)
	}
	return openapi.PostAuctionsAuctionIDBids200JSONResponse{
		BidId:      result.BidID,
		NewBalance: result.NewBalance,
		NewPrice:   result.NewPrice,
		BidCount:   result.BidCount,
		Closed:     result.Closed,
	}, nil
}

// Update auction fields or status
// (PATCH /auctions/{auctionID})
func (impl *ServerImpl) PatchAuctionsAuctionID(ctx context.Context, request openapi.PatchAuctionsAuctionIDRequestObject) (openapi.PatchAuctionsAuctionIDResponseObject, error) {
	const op = "PatchAuctionsAuctionID"

	if !isAdmin(request.Params.XUserRole) {
		return openapi.PatchAuctionsAuctionID403JSONResponse{Message: msgForbidden}, nil
	}
	patch := auction.AuctionPatch{
		Title:      request.Body.Title,
		Category:   request.Body.Category,
		StartPrice: request.Body.StartPrice,
		Step:       request.Body.Step,
	}
	if request.Body.Description != nil {
		patch.Description = lo.ToPtr(impl.htmlChecker.Sanitize(*request.Body.Description))
	}
	if request.Body.Status != nil {
		patch.Status = lo.ToPtr(models.AuctionStatus(*request.Body.Status))
	}

	a, err := impl.service.AdminUpdate(ctx, request.AuctionID, patch)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to update auction, err=%w", op, err)
	}
	return openapi.PatchAuctionsAuctionID200JSONResponse(newAuction(a)), nil
}

// Delete a closed auction
// (DELETE /auctions/{auctionID})
func (impl *ServerImpl) DeleteAuctionsAuctionID(ctx context.Context, request openapi.DeleteAuctionsAuctionIDRequestObject) (openapi.DeleteAuctionsAuctionIDResponseObject, error) {
	const op = "DeleteAuctionsAuctionID"

	if !isAdmin(request.Params.XUserRole) {
		return openapi.DeleteAuctionsAuctionID403JSONResponse{Message: msgForbidden}, nil
	}
	if err := impl.service.DeleteAuction(ctx, request.AuctionID); err != nil {
		return nil, fmt.Errorf("[%s] Fail to delete auction, err=%w", op, err)
	}
	return openapi.DeleteAuctionsAuctionID204Response{}, nil
}

// Finish an auction and settle the winner
// (POST /auctions/{auctionID}/finish)
func (impl *ServerImpl) PostAuctionsAuctionIDFinish(ctx context.Context, request openapi.PostAuctionsAuctionIDFinishRequestObject) (openapi.PostAuctionsAuctionIDFinishResponseObject, error) {
	const op = "PostAuctionsAuctionIDFinish"

	if !isAdmin(request.Params.XUserRole) {
		return openapi.PostAuctionsAuctionIDFinish403JSONResponse{Message: msgForbidden}, nil
	}
	transition, err := impl.service.FinishAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to finish auction, err=%w", op, err)
	}
	return openapi.PostAuctionsAuctionIDFinish200JSONResponse(newTransition(transition)), nil
}

// Cancel an auction and refund every bidder
// (POST /auctions/{auctionID}/cancel)
func (impl *ServerImpl) PostAuctionsAuctionIDCancel(ctx context.Context, request openapi.PostAuctionsAuctionIDCancelRequestObject) (openapi.PostAuctionsAuctionIDCancelResponseObject, error) {
	const op = "PostAuctionsAuctionIDCancel"

	if !isAdmin(request.Params.XUserRole) {
		return openapi.PostAuctionsAuctionIDCancel403JSONResponse{Message: msgForbidden}, nil
	}
	transition, err := impl.service.CancelAuction(ctx, request.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to cancel auction, err=%w", op, err)
	}
	return openapi.PostAuctionsAuctionIDCancel200JSONResponse(newTransition(transition)), nil
}

// Close every expired auction now
// (POST /auctions/sweep)
func (impl *ServerImpl) PostAuctionsSweep(ctx context.Context, request openapi.PostAuctionsSweepRequestObject) (openapi.PostAuctionsSweepResponseObject, error) {
	const op = "PostAuctionsSweep"

	if !isAdmin(request.Params.XUserRole) {
		return openapi.PostAuctionsSweep403JSONResponse{Message: msgForbidden}, nil
	}
	closed, err := impl.service.SweepExpired(ctx, impl.service.Now())
	if err != nil {
		// 失敗前已關閉的拍賣不會回復，回報數量讓呼叫端決定是否重試
		impl.logger.Error("Sweep partially failed", slog.String("op", op), slog.Int("closed", closed), slog.Any("error", err))
		return openapi.PostAuctionsSweep500JSONResponse{
			Closed: closed,
			Error:  lo.ToPtr("some expired auctions could not be closed"),
		}, nil
	}
	return openapi.PostAuctionsSweep200JSONResponse{Closed: closed}, nil
}

// Register a user
// (POST /users)
func (impl *ServerImpl) PostUsers(ctx context.Context, request openapi.PostUsersRequestObject) (openapi.PostUsersResponseObject, error) {
	const op = "PostUsers"

	user, err := impl.service.CreateUser(ctx, request.Body.Username)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create user, err=%w", op, err)
	}
	return openapi.PostUsers201JSONResponse{
		Id:       user.ID,
		Username: user.Username,
		Balance:  user.Balance,
	}, nil
}

// List auctions created by the current user
// (GET /users/me/auctions)
func (impl *ServerImpl) GetUsersMeAuctions(ctx context.Context, request openapi.GetUsersMeAuctionsRequestObject) (openapi.GetUsersMeAuctionsResponseObject, error) {
	const op = "GetUsersMeAuctions"

	creator, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.GetUsersMeAuctions401JSONResponse{Message: msgUnauthorized}, nil
	}
	auctions, err := impl.service.ListByCreator(ctx, creator, lo.FromPtr(request.Params.Completed))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list user auctions, err=%w", op, err)
	}
	return openapi.GetUsersMeAuctions200JSONResponse(newAuctions(auctions)), nil
}

// Get free balance of the current user
// (GET /users/me/balance)
func (impl *ServerImpl) GetUsersMeBalance(ctx context.Context, request openapi.GetUsersMeBalanceRequestObject) (openapi.GetUsersMeBalanceResponseObject, error) {
	const op = "GetUsersMeBalance"

	user, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.GetUsersMeBalance401JSONResponse{Message: msgUnauthorized}, nil
	}
	balance, err := impl.service.GetBalance(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get balance, err=%w", op, err)
	}
	return openapi.GetUsersMeBalance200JSONResponse{Balance: balance}, nil
}

// Deposit funds
// (POST /users/me/deposits)
func (impl *ServerImpl) PostUsersMeDeposits(ctx context.Context, request openapi.PostUsersMeDepositsRequestObject) (openapi.PostUsersMeDepositsResponseObject, error) {
	const op = "PostUsersMeDeposits"

	user, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.PostUsersMeDeposits401JSONResponse{Message: msgUnauthorized}, nil
	}
	balance, err := impl.service.Deposit(ctx, user, request.Body.Amount, lo.FromPtr(request.Body.OperationId))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to deposit, err=%w", op, err)
	}
	return openapi.PostUsersMeDeposits200JSONResponse{Balance: balance}, nil
}

// List bids of the current user
// (GET /users/me/bids)
func (impl *ServerImpl) GetUsersMeBids(ctx context.Context, request openapi.GetUsersMeBidsRequestObject) (openapi.GetUsersMeBidsResponseObject, error) {
	const op = "GetUsersMeBids"

	user, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.GetUsersMeBids401JSONResponse{Message: msgUnauthorized}, nil
	}
	bids, err := impl.service.GetUserBids(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list user bids, err=%w", op, err)
	}
	return openapi.GetUsersMeBids200JSONResponse(lo.Map(bids, func(b auction.UserBidView, _ int) openapi.UserBid {
		return openapi.UserBid{
			BidId:         b.BidID,
			AuctionId:     b.AuctionID,
			AuctionTitle:  b.AuctionTitle,
			AuctionStatus: string(b.AuctionStatus),
			Amount:        b.Amount,
			IsLeading:     b.IsLeading,
			Refunded:      b.Refunded,
			CreatedAt:     b.CreatedAt,
		}
	})), nil
}

// List auctions won by the current user
// (GET /users/me/won)
func (impl *ServerImpl) GetUsersMeWon(ctx context.Context, request openapi.GetUsersMeWonRequestObject) (openapi.GetUsersMeWonResponseObject, error) {
	const op = "GetUsersMeWon"

	user, ok := currentUser(request.Params.XUserID)
	if !ok {
		return openapi.GetUsersMeWon401JSONResponse{Message: msgUnauthorized}, nil
	}
	auctions, err := impl.service.GetWonAuctions(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list won auctions, err=%w", op, err)
	}
	return openapi.GetUsersMeWon200JSONResponse(newAuctions(auctions)), nil
}
