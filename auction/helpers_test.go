package auction

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"bidhouse/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// setupDB 使用單一連線的 SQLite，交易本身就是序列化的，不會用到 FOR UPDATE
// 資料列鎖與部分唯一索引在 Postgres 上的行為由 postgres_test.go 涵蓋
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupService(t *testing.T, opts ...ServiceOption) (*Service, *gorm.DB, *fakeClock) {
	t.Helper()

	db := setupDB(t)
	clock := newFakeClock(baseTime)
	service, err := NewService(db, append([]ServiceOption{WithClock(clock.Now)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(service.Close)
	return service, db, clock
}

func createUser(t *testing.T, db *gorm.DB, name string, balance int64) models.User {
	t.Helper()

	user := models.User{Username: name, Balance: balance}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// createAuction 建立一場從 baseTime 開始、持續一小時的拍賣
func createAuction(t *testing.T, db *gorm.DB, creator models.User, startPrice, step int64) models.Auction {
	t.Helper()

	auction := models.Auction{
		Title:        "Vintage camera",
		CreatorID:    creator.ID,
		StartPrice:   startPrice,
		CurrentPrice: startPrice,
		Step:         step,
		StartTime:    baseTime,
		EndTime:      baseTime.Add(time.Hour),
		Status:       models.StatusActive,
	}
	require.NoError(t, db.Create(&auction).Error)
	return auction
}

func reloadAuction(t *testing.T, db *gorm.DB, id uuid.UUID) models.Auction {
	t.Helper()

	var auction models.Auction
	require.NoError(t, db.Take(&auction, "id = ?", id).Error)
	return auction
}

func balanceOf(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()

	var user models.User
	require.NoError(t, db.Take(&user, "id = ?", id).Error)
	return user.Balance
}

func bidsOf(t *testing.T, db *gorm.DB, auctionID uuid.UUID) []models.Bid {
	t.Helper()

	var bids []models.Bid
	require.NoError(t, db.Where("auction_id = ?", auctionID).Order("created_at ASC").Order("id ASC").Find(&bids).Error)
	return bids
}

// totalFunds 是所有帳戶餘額加上仍在托管中的出價金額，出價與結算都不應改變這個值
func totalFunds(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var balances, escrowed int64
	require.NoError(t, db.Model(&models.User{}).Select("COALESCE(SUM(balance), 0)").Scan(&balances).Error)
	require.NoError(t, db.Model(&models.Bid{}).Where("refunded_at IS NULL").Select("COALESCE(SUM(amount), 0)").Scan(&escrowed).Error)
	return balances + escrowed
}

// requireSingleLeader 檢查拍賣最多只有一筆 leading 出價，且金額等於目前價格
func requireSingleLeader(t *testing.T, db *gorm.DB, auctionID uuid.UUID) {
	t.Helper()

	auction := reloadAuction(t, db, auctionID)
	var leaders []models.Bid
	require.NoError(t, db.Where("auction_id = ? AND is_leading = ?", auctionID, true).Find(&leaders).Error)
	require.LessOrEqual(t, len(leaders), 1)
	if len(leaders) == 1 {
		require.Equal(t, auction.CurrentPrice, leaders[0].Amount)
		require.Nil(t, leaders[0].RefundedAt)
	}
}
