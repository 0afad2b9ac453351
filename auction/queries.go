package auction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type NewAuction struct {
	Title       string
	Description string
	Category    string
	CreatorID   uuid.UUID
	StartPrice  int64
	Step        int64
	StartTime   time.Time // 零值表示立即開始
	EndTime     time.Time
}

type BidView struct {
	BidID      uuid.UUID
	BidderID   uuid.UUID
	BidderName string
	Amount     int64
	IsLeading  bool
	CreatedAt  time.Time
}

type UserBidView struct {
	BidID         uuid.UUID
	AuctionID     uuid.UUID
	AuctionTitle  string
	AuctionStatus models.AuctionStatus
	Amount        int64
	IsLeading     bool
	Refunded      bool
	CreatedAt     time.Time
}

func (s *Service) CreateUser(ctx context.Context, username string) (models.User, error) {
	const op = "Service.CreateUser"

	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("[%s] empty username, err=%w", op, ErrInvalidUser)
	}
	user := models.User{Username: username}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("[%s] Fail to create user, err=%w", op, err)
	}
	return user, nil
}

// Deposit 存入金額，operationID 相同的存款只會入帳一次
func (s *Service) Deposit(ctx context.Context, userID uuid.UUID, amount int64, operationID string) (int64, error) {
	const op = "Service.Deposit"

	if operationID == "" {
		operationID = uuid.NewString()
	}

	var receipt Receipt
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		receipt, err = s.ledger.Credit(ctx, tx, Movement{
			OperationID: depositOperationID(operationID),
			UserID:      userID,
			Kind:        models.LedgerKindDeposit,
			Amount:      amount,
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("[%s] Fail to deposit, user=%s, err=%w", op, userID, err)
	}
	return receipt.BalanceAfter, nil
}

func (s *Service) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.ledger.Balance(ctx, s.db, userID)
}

// CreateAuction 建立新的拍賣，建立後狀態為 ACTIVE
func (s *Service) CreateAuction(ctx context.Context, input NewAuction) (models.Auction, error) {
	const op = "Service.CreateAuction"

	now := s.clock()
	title := strings.TrimSpace(input.Title)
	startTime := input.StartTime.UTC()
	if input.StartTime.IsZero() {
		startTime = now
	}
	endTime := input.EndTime.UTC()

	switch {
	case title == "":
		return models.Auction{}, fmt.Errorf("[%s] empty title, err=%w", op, ErrInvalidAuction)
	case input.Step <= 0:
		return models.Auction{}, fmt.Errorf("[%s] step=%d, err=%w", op, input.Step, ErrInvalidAuction)
	case input.StartPrice < 0:
		return models.Auction{}, fmt.Errorf("[%s] start price=%d, err=%w", op, input.StartPrice, ErrInvalidAuction)
	case startTime.Before(now):
		return models.Auction{}, fmt.Errorf("[%s] start time in the past, err=%w", op, ErrInvalidAuction)
	case !endTime.After(startTime):
		return models.Auction{}, fmt.Errorf("[%s] end time not after start time, err=%w", op, ErrInvalidAuction)
	}

	auction := models.Auction{
		Title:        title,
		Description:  input.Description,
		Category:     input.Category,
		CreatorID:    input.CreatorID,
		StartPrice:   input.StartPrice,
		CurrentPrice: input.StartPrice,
		Step:         input.Step,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       models.StatusActive,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", input.CreatorID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("creator=%s, err=%w", input.CreatorID, ErrUserNotFound)
		}
		return tx.Create(&auction).Error
	})
	if err != nil {
		return models.Auction{}, fmt.Errorf("[%s] Fail to create auction, err=%w", op, err)
	}

	s.logger.Info(
		"Auction created",
		slog.String("auction", auction.ID.String()),
		slog.Time("end", auction.EndTime),
	)
	return auction, nil
}

// DeleteAuction 刪除已結束的拍賣及其出價紀錄
func (s *Service) DeleteAuction(ctx context.Context, auctionID uuid.UUID) error {
	const op = "Service.DeleteAuction"

	err := withAuctionLock(ctx, s.lifecycle.locker, auctionID, func(lockCtx context.Context) error {
		return s.db.WithContext(lockCtx).Transaction(func(tx *gorm.DB) error {
			auction, err := loadAuctionForUpdate(tx, auctionID)
			if err != nil {
				return err
			}
			if !auction.Status.Terminal() {
				return fmt.Errorf("auction=%s, status=%s, err=%w", auctionID, auction.Status, ErrAuctionNotClosed)
			}
			if err := tx.Where("auction_id = ?", auctionID).Delete(&models.Bid{}).Error; err != nil {
				return fmt.Errorf("fail to delete bids, err=%w", err)
			}
			return tx.Delete(&models.Auction{}, "id = ?", auctionID).Error
		})
	})
	if err != nil {
		return fmt.Errorf("[%s] Fail to delete auction, auction=%s, err=%w", op, auctionID, err)
	}
	return nil
}

func (s *Service) GetAuction(ctx context.Context, auctionID uuid.UUID) (models.Auction, error) {
	const op = "Service.GetAuction"

	var auction models.Auction
	err := s.db.WithContext(ctx).Take(&auction, "id = ?", auctionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Auction{}, fmt.Errorf("[%s] auction=%s, err=%w", op, auctionID, ErrAuctionNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("[%s] Fail to get auction, auction=%s, err=%w", op, auctionID, err)
	}
	return auction, nil
}

// GetAuctionBids 依出價時間由新到舊列出拍賣的所有出價
func (s *Service) GetAuctionBids(ctx context.Context, auctionID uuid.UUID) ([]BidView, error) {
	const op = "Service.GetAuctionBids"

	if _, err := s.GetAuction(ctx, auctionID); err != nil {
		return nil, err
	}

	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Preload("Bidder").
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list bids, auction=%s, err=%w", op, auctionID, err)
	}

	return lo.Map(bids, func(b models.Bid, _ int) BidView {
		view := BidView{
			BidID:     b.ID,
			BidderID:  b.BidderID,
			Amount:    b.Amount,
			IsLeading: b.IsLeading,
			CreatedAt: b.CreatedAt,
		}
		if b.Bidder != nil {
			view.BidderName = b.Bidder.Username
		}
		return view
	}), nil
}

// FeaturedLimit 是首頁精選拍賣的筆數
const FeaturedLimit = 6

type listOptions struct {
	limit int
}

type ListOption func(*listOptions)

// WithLimit 限制回傳筆數，0 表示不限制
func WithLimit(limit int) ListOption {
	return func(o *listOptions) {
		o.limit = limit
	}
}

// ListActive 列出尚未截止的 ACTIVE 拍賣，依截止時間排序
func (s *Service) ListActive(ctx context.Context, now time.Time, opts ...ListOption) ([]models.Auction, error) {
	const op = "Service.ListActive"

	options := listOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	query := s.db.WithContext(ctx).
		Where("status = ? AND end_time > ?", models.StatusActive, now.UTC()).
		Order("end_time ASC").
		Order("id ASC")
	if options.limit > 0 {
		query = query.Limit(options.limit)
	}
	var auctions []models.Auction
	if err := query.Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to list active auctions, err=%w", op, err)
	}
	return auctions, nil
}

// ListByCreator 依建立時間由新到舊列出使用者建立的拍賣
// completedOnly 為 true 時只列出已結束的拍賣
func (s *Service) ListByCreator(ctx context.Context, userID uuid.UUID, completedOnly bool) ([]models.Auction, error) {
	const op = "Service.ListByCreator"

	query := s.db.WithContext(ctx).Where("creator_id = ?", userID)
	if completedOnly {
		query = query.Where("status IN ?", models.TerminalStatuses)
	}
	var auctions []models.Auction
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list creator auctions, user=%s, err=%w", op, userID, err)
	}
	return auctions, nil
}

func (s *Service) ListCompleted(ctx context.Context) ([]models.Auction, error) {
	const op = "Service.ListCompleted"

	var auctions []models.Auction
	err := s.db.WithContext(ctx).
		Where("status IN ?", models.TerminalStatuses).
		Order("end_time DESC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list completed auctions, err=%w", op, err)
	}
	return auctions, nil
}

func (s *Service) GetUserBids(ctx context.Context, userID uuid.UUID) ([]UserBidView, error) {
	const op = "Service.GetUserBids"

	var bids []models.Bid
	err := s.db.WithContext(ctx).
		Where("bidder_id = ?", userID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list user bids, user=%s, err=%w", op, userID, err)
	}
	if len(bids) == 0 {
		return []UserBidView{}, nil
	}

	auctionIDs := lo.Uniq(lo.Map(bids, func(b models.Bid, _ int) uuid.UUID { return b.AuctionID }))
	var auctions []models.Auction
	if err := s.db.WithContext(ctx).Where("id IN ?", auctionIDs).Find(&auctions).Error; err != nil {
		return nil, fmt.Errorf("[%s] Fail to load auctions, user=%s, err=%w", op, userID, err)
	}
	byID := lo.KeyBy(auctions, func(a models.Auction) uuid.UUID { return a.ID })

	return lo.Map(bids, func(b models.Bid, _ int) UserBidView {
		auction := byID[b.AuctionID]
		return UserBidView{
			BidID:         b.ID,
			AuctionID:     b.AuctionID,
			AuctionTitle:  auction.Title,
			AuctionStatus: auction.Status,
			Amount:        b.Amount,
			IsLeading:     b.IsLeading,
			Refunded:      !b.HoldsEscrow(),
			CreatedAt:     b.CreatedAt,
		}
	}), nil
}

// GetWonAuctions 列出使用者得標的拍賣
func (s *Service) GetWonAuctions(ctx context.Context, userID uuid.UUID) ([]models.Auction, error) {
	const op = "Service.GetWonAuctions"

	var auctions []models.Auction
	err := s.db.WithContext(ctx).
		Where("winner_id = ? AND status = ?", userID, models.StatusFinished).
		Order("end_time DESC").
		Find(&auctions).Error
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to list won auctions, user=%s, err=%w", op, userID, err)
	}
	return auctions, nil
}
