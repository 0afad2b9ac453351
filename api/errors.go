package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bidhouse/adapters/sse"
	"bidhouse/api/openapi"
	"bidhouse/auction"
)

// errorStatuses 依序比對，第一個符合的錯誤決定回應的狀態碼與訊息
var errorStatuses = []struct {
	err    error
	status int
}{
	{auction.ErrAuctionNotFound, http.StatusNotFound},
	{auction.ErrUserNotFound, http.StatusNotFound},
	{auction.ErrAuctionNotStarted, http.StatusForbidden},
	{auction.ErrAuctionClosed, http.StatusGone},
	{auction.ErrInsufficientFunds, http.StatusPaymentRequired},
	{auction.ErrBidTooLow, http.StatusBadRequest},
	{auction.ErrInvalidAmount, http.StatusBadRequest},
	{auction.ErrInvalidAuction, http.StatusBadRequest},
	{auction.ErrInvalidUser, http.StatusBadRequest},
	{auction.ErrInvalidTransition, http.StatusBadRequest},
	{auction.ErrConcurrentConflict, http.StatusConflict},
	{auction.ErrAuctionHasBids, http.StatusConflict},
	{auction.ErrAuctionNotClosed, http.StatusConflict},
	{sse.ErrFeedClosed, http.StatusServiceUnavailable},
}

// writeError 將領域錯誤轉換為 HTTP 回應，未預期的錯誤只回傳通用訊息
func (impl *ServerImpl) writeError(c *gin.Context, op string, err error) {
	for _, known := range errorStatuses {
		if !errors.Is(err, known.err) {
			continue
		}
		response := openapi.Error{Message: known.err.Error()}
		var tooLow *auction.BidTooLowError
		if errors.As(err, &tooLow) {
			response.Minimum = &tooLow.Minimum
		}
		impl.logger.Debug("Request rejected", slog.String("op", op), slog.Any("error", err))
		c.JSON(known.status, response)
		return
	}

	impl.logger.Error("Request failed", slog.String("op", op), slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, openapi.Error{Message: "internal server error"})
}

// errorMiddleware 攔截 handler 回傳的錯誤並寫出錯誤回應，產生的 strict handler 便不會再回 500
func (impl *ServerImpl) errorMiddleware(f openapi.StrictHandlerFunc, operationID string) openapi.StrictHandlerFunc {
	return func(c *gin.Context, request interface{}) (interface{}, error) {
		response, err := f(c, request)
		if err != nil {
			impl.writeError(c, operationID, err)
			return nil, nil
		}
		return response, nil
	}
}

// paramErrorHandler 處理路徑與標頭參數綁定失敗
func (impl *ServerImpl) paramErrorHandler(c *gin.Context, err error, statusCode int) {
	c.AbortWithStatusJSON(statusCode, openapi.Error{Message: err.Error()})
}
