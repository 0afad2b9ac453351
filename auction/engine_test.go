package auction

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlaceBid_OvertakeRefundsPreviousLeader(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	bob := createUser(t, db, "bob", 1000)
	auction := createAuction(t, db, seller, 100, 10)
	before := totalFunds(t, db)

	result, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(850), result.NewBalance)
	assert.Equal(t, int64(150), result.NewPrice)
	assert.Equal(t, 1, result.BidCount)
	assert.False(t, result.Closed)

	result, err = service.PlaceBid(context.Background(), auction.ID, bob.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(800), result.NewBalance)
	assert.Equal(t, int64(200), result.NewPrice)
	assert.Equal(t, 2, result.BidCount)

	assert.Equal(t, int64(1000), balanceOf(t, db, alice.ID))
	assert.Equal(t, int64(800), balanceOf(t, db, bob.ID))

	bids := bidsOf(t, db, auction.ID)
	require.Len(t, bids, 2)
	assert.False(t, bids[0].IsLeading)
	assert.NotNil(t, bids[0].RefundedAt)
	assert.True(t, bids[1].IsLeading)
	assert.Nil(t, bids[1].RefundedAt)

	updated := reloadAuction(t, db, auction.ID)
	assert.Equal(t, int64(200), updated.CurrentPrice)
	assert.Equal(t, 2, updated.BidCount)
	assert.Equal(t, models.StatusActive, updated.Status)

	var entries []models.LedgerEntry
	require.NoError(t, db.Order("created_at ASC").Find(&entries).Error)
	assert.Len(t, entries, 3)

	assert.Equal(t, before, totalFunds(t, db))
	requireSingleLeader(t, db, auction.ID)
}

func TestPlaceBid_Validation(t *testing.T) {
	service, db, clock := setupService(t)

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	poor := createUser(t, db, "poor", 100)
	auction := createAuction(t, db, seller, 100, 10)

	cancelled := createAuction(t, db, seller, 100, 10)
	require.NoError(t, db.Model(&cancelled).Update("status", models.StatusCancelled).Error)

	testCases := []struct {
		name      string
		now       time.Time
		auctionID uuid.UUID
		bidderID  uuid.UUID
		amount    int64
		expected  error
	}{
		{"NonPositiveAmount", baseTime, uuid.New(), alice.ID, 0, ErrInvalidAmount},
		{"AuctionNotFound", baseTime, uuid.New(), alice.ID, 150, ErrAuctionNotFound},
		{"NotStarted", baseTime.Add(-time.Second), auction.ID, alice.ID, 150, ErrAuctionNotStarted},
		{"PastDeadline", baseTime.Add(time.Hour + time.Second), auction.ID, alice.ID, 150, ErrAuctionClosed},
		{"TerminalStatus", baseTime.Add(time.Minute), cancelled.ID, alice.ID, 150, ErrAuctionClosed},
		{"BelowMinimum", baseTime.Add(time.Minute), auction.ID, alice.ID, 109, ErrBidTooLow},
		{"TooLowBeforeUnknownBidder", baseTime.Add(time.Minute), auction.ID, uuid.New(), 100, ErrBidTooLow},
		{"UnknownBidder", baseTime.Add(time.Minute), auction.ID, uuid.New(), 150, ErrUserNotFound},
		{"InsufficientFunds", baseTime.Add(time.Minute), auction.ID, poor.ID, 150, ErrInsufficientFunds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock.Set(tc.now)
			_, err := service.PlaceBid(context.Background(), tc.auctionID, tc.bidderID, tc.amount)
			require.ErrorIs(t, err, tc.expected)
		})
	}

	// 所有失敗的出價都不應留下任何副作用
	assert.Empty(t, bidsOf(t, db, auction.ID))
	assert.Equal(t, int64(1000), balanceOf(t, db, alice.ID))
	assert.Equal(t, int64(100), balanceOf(t, db, poor.ID))
	assert.Equal(t, 0, reloadAuction(t, db, auction.ID).BidCount)
}

func TestPlaceBid_TooLowReportsMinimum(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	auction := createAuction(t, db, seller, 100, 10)

	_, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 105)

	var tooLow *BidTooLowError
	require.ErrorAs(t, err, &tooLow)
	assert.Equal(t, int64(110), tooLow.Minimum)

	// 剛好等於最低出價時應該成功
	result, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 110)
	require.NoError(t, err)
	assert.Equal(t, int64(110), result.NewPrice)
}

func TestPlaceBid_RaiseOwnLeadingBid(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	auction := createAuction(t, db, seller, 100, 10)

	_, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.NoError(t, err)

	result, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(700), result.NewBalance)
	assert.Equal(t, int64(700), balanceOf(t, db, alice.ID))
	requireSingleLeader(t, db, auction.ID)
}

func TestPlaceBid_RaiseChecksFreeBalanceOnly(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 200)
	auction := createAuction(t, db, seller, 100, 10)

	_, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.NoError(t, err)

	// 可用餘額只剩 50，即使加上自己的托管金額足夠也會被拒絕
	_, err = service.PlaceBid(context.Background(), auction.ID, alice.ID, 170)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(50), balanceOf(t, db, alice.ID))
}

func TestPlaceBid_ClosesAuctionWhenDeadlinePassesBeforeCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)

	deadline := baseTime.Add(time.Hour)
	var mu sync.Mutex
	calls := 0
	// 第一次讀取時間剛好在截止點，之後的讀取都已超過截止時間
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return deadline
		}
		return deadline.Add(time.Second)
	}

	db := setupDB(t)
	service, err := NewService(db, WithClock(clock), WithPublisher(publisher))
	require.NoError(t, err)

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	auction := createAuction(t, db, seller, 100, 10)

	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Cond(func(x any) bool {
			e, ok := x.(Event)
			return ok && e.Kind == EventBidPlaced
		})).Return(nil),
		publisher.EXPECT().Publish(gomock.Cond(func(x any) bool {
			e, ok := x.(Event)
			return ok && e.Kind == EventAuctionClosed && e.Status == models.StatusFinished &&
				e.WinnerID != nil && *e.WinnerID == alice.ID
		})).Return(nil),
	)

	result, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.NoError(t, err)
	assert.True(t, result.Closed)

	updated := reloadAuction(t, db, auction.ID)
	assert.Equal(t, models.StatusFinished, updated.Status)
	require.NotNil(t, updated.WinnerID)
	assert.Equal(t, alice.ID, *updated.WinnerID)
	assert.Equal(t, int64(850), balanceOf(t, db, alice.ID))
}

func TestPlaceBid_PublishFailureIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any()).Return(errors.New("stream unavailable"))

	service, db, clock := setupService(t, WithPublisher(publisher))
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	auction := createAuction(t, db, seller, 100, 10)

	_, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(850), balanceOf(t, db, alice.ID))
}

// heldLocker 記錄目前被持有的鎖
type heldLocker struct {
	*LocalLocker
	mu   sync.Mutex
	held map[string]bool
}

func newHeldLocker() *heldLocker {
	return &heldLocker{LocalLocker: NewLocalLocker(), held: make(map[string]bool)}
}

func (l *heldLocker) Lock(ctx context.Context, key string) (context.Context, func(), error) {
	lockCtx, unlock, err := l.LocalLocker.Lock(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	l.mu.Lock()
	l.held[key] = true
	l.mu.Unlock()
	return lockCtx, func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
		unlock()
	}, nil
}

func (l *heldLocker) isHeld(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[key]
}

type recordingPublisher struct {
	locker   *heldLocker
	mu       sync.Mutex
	events   []Event
	unlocked int
}

func (p *recordingPublisher) Publish(event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.locker.isHeld(auctionLockKey(event.AuctionID)) {
		p.unlocked++
	}
	p.events = append(p.events, event)
	return nil
}

func TestPlaceBid_EventsFollowBidOrder(t *testing.T) {
	locker := newHeldLocker()
	publisher := &recordingPublisher{locker: locker}
	service, db, clock := setupService(t, WithLocker(locker), WithPublisher(publisher))
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	bidders := make([]models.User, 4)
	for i := range bidders {
		bidders[i] = createUser(t, db, "bidder", 100000)
	}
	auction := createAuction(t, db, seller, 100, 10)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// 金額彼此不同，較晚取得鎖的低價出價會被拒絕
			amount := int64(150 + i*10)
			_, err := service.PlaceBid(context.Background(), auction.ID, bidders[i%len(bidders)].ID, amount)
			if err != nil && !errors.Is(err, ErrBidTooLow) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	assert.Zero(t, publisher.unlocked, "events must be published while the auction lock is held")

	updated := reloadAuction(t, db, auction.ID)
	require.Len(t, publisher.events, updated.BidCount)
	for i, event := range publisher.events {
		assert.Equal(t, EventBidPlaced, event.Kind)
		assert.Equal(t, i+1, event.BidCount)
		if i > 0 {
			assert.Greater(t, event.Amount, publisher.events[i-1].Amount)
		}
	}
	assert.Equal(t, updated.CurrentPrice, publisher.events[len(publisher.events)-1].Amount)
}

func TestPlaceBid_LockFailureIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	locker := NewMockLocker(ctrl)

	service, db, clock := setupService(t, WithLocker(locker))
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	alice := createUser(t, db, "alice", 1000)
	auction := createAuction(t, db, seller, 100, 10)

	locker.EXPECT().
		Lock(gomock.Any(), auctionLockKey(auction.ID)).
		Return(nil, nil, errors.New("lock is held by another instance"))

	_, err := service.PlaceBid(context.Background(), auction.ID, alice.ID, 150)
	require.ErrorIs(t, err, ErrConcurrentConflict)
	assert.Empty(t, bidsOf(t, db, auction.ID))
	assert.Equal(t, int64(1000), balanceOf(t, db, alice.ID))
}

func TestPlaceBid_ConcurrentBidsOnSameAuction(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	x := createUser(t, db, "x", 1000)
	y := createUser(t, db, "y", 1000)
	auction := createAuction(t, db, seller, 140, 10)
	before := totalFunds(t, db)

	var wg sync.WaitGroup
	start := make(chan struct{})
	var errX, errY error
	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		_, errX = service.PlaceBid(context.Background(), auction.ID, x.ID, 150)
	}()
	go func() {
		defer wg.Done()
		<-start
		_, errY = service.PlaceBid(context.Background(), auction.ID, y.ID, 160)
	}()
	close(start)
	wg.Wait()

	// 160 一定勝出，150 的結果取決於誰先取得鎖
	require.NoError(t, errY)
	updated := reloadAuction(t, db, auction.ID)
	assert.Equal(t, int64(160), updated.CurrentPrice)
	assert.Equal(t, int64(840), balanceOf(t, db, y.ID))
	assert.Equal(t, int64(1000), balanceOf(t, db, x.ID))

	if errX == nil {
		assert.Equal(t, 2, updated.BidCount)
		bids := bidsOf(t, db, auction.ID)
		require.Len(t, bids, 2)
		assert.NotNil(t, bids[0].RefundedAt)
	} else {
		require.ErrorIs(t, errX, ErrBidTooLow)
		assert.Equal(t, 1, updated.BidCount)
	}

	assert.Equal(t, before, totalFunds(t, db))
	requireSingleLeader(t, db, auction.ID)
}

func TestPlaceBid_ConcurrentStress(t *testing.T) {
	service, db, clock := setupService(t)
	clock.Set(baseTime.Add(time.Minute))

	seller := createUser(t, db, "seller", 0)
	bidders := make([]models.User, 5)
	for i := range bidders {
		bidders[i] = createUser(t, db, "bidder", 5000)
	}
	auctions := []models.Auction{
		createAuction(t, db, seller, 100, 10),
		createAuction(t, db, seller, 200, 25),
		createAuction(t, db, seller, 50, 5),
	}
	before := totalFunds(t, db)

	var wg sync.WaitGroup
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			auction := auctions[i%len(auctions)]
			bidder := bidders[i%len(bidders)]
			current, err := service.GetAuction(context.Background(), auction.ID)
			if err != nil {
				return
			}
			amount := current.MinimumBid() + int64(i%3)*current.Step
			_, err = service.PlaceBid(context.Background(), auction.ID, bidder.ID, amount)
			if err != nil && !errors.Is(err, ErrBidTooLow) && !errors.Is(err, ErrInsufficientFunds) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, before, totalFunds(t, db))
	for _, auction := range auctions {
		requireSingleLeader(t, db, auction.ID)
		updated := reloadAuction(t, db, auction.ID)
		assert.Equal(t, len(bidsOf(t, db, auction.ID)), updated.BidCount)
	}

	clock.Set(baseTime.Add(2 * time.Hour))
	closed, err := service.SweepExpired(context.Background(), clock.Now())
	require.NoError(t, err)
	assert.Equal(t, len(auctions), closed)
	assert.Equal(t, before, totalFunds(t, db))

	for _, auction := range auctions {
		updated := reloadAuction(t, db, auction.ID)
		var escrowed int64
		require.NoError(t, db.Model(&models.Bid{}).
			Where("auction_id = ? AND refunded_at IS NULL", auction.ID).
			Count(&escrowed).Error)
		if updated.BidCount > 0 {
			assert.Equal(t, models.StatusFinished, updated.Status)
			assert.Equal(t, int64(1), escrowed)
		} else {
			assert.Equal(t, models.StatusExpired, updated.Status)
		}
	}
}
