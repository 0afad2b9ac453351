package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	redisAdapter "bidhouse/adapters/redis"
	"bidhouse/adapters/sse"
	"bidhouse/api/openapi"
	"bidhouse/auction"
	"bidhouse/models"
)

const eventStream = "test:stream:events"

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	router *gin.Engine
	impl   *ServerImpl
	db     *gorm.DB
	redis  *redis.Client
	clock  *testClock
}

// setupServer 建立完整的伺服器，opts 會覆蓋預設的服務選項
func setupServer(t *testing.T, opts ...auction.ServiceOption) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	locker, err := redisAdapter.NewLocker(client, redisAdapter.WithLockerPrefix("test:"))
	require.NoError(t, err)
	producer, err := redisAdapter.NewProducer[auction.Event](
		client,
		eventStream,
		redisAdapter.WithProducerParseFunc(redisAdapter.EncodeEvent),
	)
	require.NoError(t, err)
	// 串流在測試開始時是空的，從頭讀取才不會錯過消費者啟動前寫入的事件
	consumer, err := redisAdapter.NewConsumer[auction.Event](
		client,
		eventStream,
		redisAdapter.WithConsumerStartID[auction.Event]("0"),
		redisAdapter.WithConsumerParseFunc(redisAdapter.DecodeEvent),
		redisAdapter.WithConsumerBlockTimeout[auction.Event](100*time.Millisecond),
	)
	require.NoError(t, err)
	feed, err := sse.NewFeed(consumer.Subscribe(), eventTopic)
	require.NoError(t, err)

	clock := &testClock{now: baseTime}
	service, err := auction.NewService(db, append([]auction.ServiceOption{
		auction.WithClock(clock.Now),
		auction.WithLocker(locker),
		auction.WithPublisher(producer),
	}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, service.Migrate(context.Background()))

	impl := newServerImpl(service, ServerConfig{})
	impl.producer = producer
	impl.consumer = consumer
	impl.feed = feed
	impl.redisClient = client
	impl.sqlDB = sqlDB
	impl.Start()
	t.Cleanup(func() {
		impl.Close()
		mr.Close()
	})

	router := gin.New()
	router.ContextWithFallback = true
	require.NoError(t, impl.RegisterHandlers(router))
	return &testServer{router: router, impl: impl, db: db, redis: client, clock: clock}
}

type requestOption func(*http.Request)

func asUser(id uuid.UUID) requestOption {
	return func(r *http.Request) {
		r.Header.Set(HeaderUserID, id.String())
	}
}

func asAdmin() requestOption {
	return func(r *http.Request) {
		r.Header.Set(HeaderUserRole, RoleAdmin)
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), w.Body.String())
	return result
}

// registerUser 透過 API 註冊使用者並存入指定金額
func (s *testServer) registerUser(t *testing.T, name string, deposit int64) uuid.UUID {
	t.Helper()

	w := s.do(t, http.MethodPost, "/users", openapi.CreateUserRequest{Username: name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decode[openapi.User](t, w)

	if deposit > 0 {
		w = s.do(t, http.MethodPost, "/users/me/deposits", openapi.DepositRequest{Amount: deposit}, asUser(user.Id))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	return user.Id
}

func (s *testServer) createAuction(t *testing.T, creator uuid.UUID, startPrice, step int64) openapi.Auction {
	t.Helper()

	w := s.do(t, http.MethodPost, "/auctions", openapi.CreateAuctionRequest{
		Title:      "Vintage camera",
		StartPrice: lo.ToPtr(startPrice),
		Step:       lo.ToPtr(step),
		EndTime:    baseTime.Add(time.Hour),
	}, asUser(creator))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[openapi.Auction](t, w)
}

func TestServer_RequiresUser(t *testing.T) {
	s := setupServer(t)

	w := s.do(t, http.MethodPost, "/auctions", openapi.CreateAuctionRequest{Title: "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/users/me/balance", nil, func(r *http.Request) {
		r.Header.Set(HeaderUserID, "not-a-uuid")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_AdminRoutesRequireAdmin(t *testing.T) {
	s := setupServer(t)
	user := s.registerUser(t, "alice", 0)
	a := s.createAuction(t, user, 100, 10)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auctions/" + a.Id.String() + "/finish"},
		{http.MethodPost, "/auctions/" + a.Id.String() + "/cancel"},
		{http.MethodPatch, "/auctions/" + a.Id.String()},
		{http.MethodDelete, "/auctions/" + a.Id.String()},
		{http.MethodPost, "/auctions/sweep"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := s.do(t, p.method, p.path, map[string]any{}, asUser(user))
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestServer_BidAndFinish(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)
	alice := s.registerUser(t, "alice", 1000)
	bob := s.registerUser(t, "bob", 1000)
	carol := s.registerUser(t, "carol", 50)

	a := s.createAuction(t, seller, 100, 10)
	assert.Equal(t, int64(110), a.MinimumBid)

	w := s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 150}, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[openapi.PlaceBidResult](t, w)
	assert.Equal(t, int64(850), result.NewBalance)
	assert.Equal(t, int64(150), result.NewPrice)
	assert.Equal(t, 1, result.BidCount)
	assert.False(t, result.Closed)

	// 低於目前價格加上加價幅度
	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 155}, asUser(bob))
	require.Equal(t, http.StatusBadRequest, w.Code)
	rejected := decode[openapi.Error](t, w)
	require.NotNil(t, rejected.Minimum)
	assert.Equal(t, int64(160), *rejected.Minimum)

	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 200}, asUser(carol))
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 200}, asUser(bob))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// alice 被超越後托管金額退回
	w = s.do(t, http.MethodGet, "/users/me/balance", nil, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1000), decode[openapi.Balance](t, w).Balance)

	w = s.do(t, http.MethodGet, "/auctions/"+a.Id.String()+"/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := decode[[]openapi.Bid](t, w)
	require.Len(t, bids, 2)
	assert.Equal(t, bob, bids[0].BidderId)
	assert.Equal(t, "bob", bids[0].BidderName)
	assert.True(t, bids[0].IsLeading)
	assert.False(t, bids[1].IsLeading)

	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/finish", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	transition := decode[openapi.Transition](t, w)
	assert.Equal(t, string(models.StatusFinished), transition.To)
	require.NotNil(t, transition.WinnerId)
	assert.Equal(t, bob, *transition.WinnerId)
	assert.Equal(t, int64(200), transition.FinalPrice)

	// 重複結束不會再次結算
	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/finish", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[openapi.Transition](t, w).Changed)

	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 300}, asUser(alice))
	assert.Equal(t, http.StatusGone, w.Code)

	w = s.do(t, http.MethodGet, "/users/me/won", nil, asUser(bob))
	require.Equal(t, http.StatusOK, w.Code)
	won := decode[[]openapi.Auction](t, w)
	require.Len(t, won, 1)
	assert.Equal(t, a.Id, won[0].Id)

	w = s.do(t, http.MethodGet, "/users/me/bids", nil, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code)
	mine := decode[[]openapi.UserBid](t, w)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Refunded)
	assert.Equal(t, string(models.StatusFinished), mine[0].AuctionStatus)

	// 兩筆出價與一次結束事件都會寫入串流
	assert.Eventually(t, func() bool {
		return s.redis.XLen(context.Background(), eventStream).Val() == 3
	}, 2*time.Second, 20*time.Millisecond)
}

func TestServer_Sweep(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)
	alice := s.registerUser(t, "alice", 500)

	withBid := s.createAuction(t, seller, 100, 10)
	empty := s.createAuction(t, seller, 100, 10)
	w := s.do(t, http.MethodPost, "/auctions/"+withBid.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 120}, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/auctions/sweep", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[openapi.SweepResult](t, w).Closed)

	s.clock.Advance(2 * time.Hour)
	w = s.do(t, http.MethodPost, "/auctions/sweep", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decode[openapi.SweepResult](t, w).Closed)

	w = s.do(t, http.MethodGet, "/auctions/"+withBid.Id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.StatusFinished), decode[openapi.Auction](t, w).Status)

	w = s.do(t, http.MethodGet, "/auctions/"+empty.Id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.StatusExpired), decode[openapi.Auction](t, w).Status)

	w = s.do(t, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]openapi.Auction](t, w))

	w = s.do(t, http.MethodGet, "/auctions/completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]openapi.Auction](t, w), 2)
}

// failingLocker 讓指定拍賣的鎖請求失敗，其餘拍賣照常使用 LocalLocker
type failingLocker struct {
	*auction.LocalLocker

	mu      sync.Mutex
	failing string
}

func (l *failingLocker) failOn(auctionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failing = auctionID
}

func (l *failingLocker) Lock(ctx context.Context, key string) (context.Context, func(), error) {
	l.mu.Lock()
	failing := l.failing
	l.mu.Unlock()
	if failing != "" && strings.Contains(key, failing) {
		return nil, nil, errors.New("lock backend unavailable")
	}
	return l.LocalLocker.Lock(ctx, key)
}

func TestServer_SweepReportsPartialFailure(t *testing.T) {
	locker := &failingLocker{LocalLocker: auction.NewLocalLocker()}
	s := setupServer(t, auction.WithLocker(locker))
	seller := s.registerUser(t, "seller", 0)

	healthy := s.createAuction(t, seller, 100, 10)
	stuck := s.createAuction(t, seller, 100, 10)
	s.clock.Advance(2 * time.Hour)
	locker.failOn(stuck.Id.String())

	// 無法取得鎖的拍賣不影響其他拍賣，已關閉的數量仍會回報
	w := s.do(t, http.MethodPost, "/auctions/sweep", nil, asAdmin())
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	result := decode[openapi.SweepResult](t, w)
	assert.Equal(t, 1, result.Closed)
	require.NotNil(t, result.Error)
	assert.NotEmpty(t, *result.Error)

	w = s.do(t, http.MethodGet, "/auctions/"+healthy.Id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.StatusExpired), decode[openapi.Auction](t, w).Status)
	w = s.do(t, http.MethodGet, "/auctions/"+stuck.Id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.StatusActive), decode[openapi.Auction](t, w).Status)

	// 重試時只剩下先前失敗的拍賣
	locker.failOn("")
	w = s.do(t, http.MethodPost, "/auctions/sweep", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result = decode[openapi.SweepResult](t, w)
	assert.Equal(t, 1, result.Closed)
	assert.Nil(t, result.Error)
}

func TestServer_FeaturedAuctions(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)

	// 依建立順序反向設定截止時間，精選清單應依截止時間排序而非建立時間
	total := auction.FeaturedLimit + 2
	for i := range total {
		w := s.do(t, http.MethodPost, "/auctions", openapi.CreateAuctionRequest{
			Title:   fmt.Sprintf("Lot %d", i),
			Step:    lo.ToPtr(int64(10)),
			EndTime: baseTime.Add(time.Duration(total-i) * time.Hour),
		}, asUser(seller))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/auctions/featured", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	featured := decode[[]openapi.Auction](t, w)
	require.Len(t, featured, auction.FeaturedLimit)
	assert.Equal(t, fmt.Sprintf("Lot %d", total-1), featured[0].Title)
	for i := 1; i < len(featured); i++ {
		assert.False(t, featured[i].EndTime.Before(featured[i-1].EndTime))
	}

	w = s.do(t, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]openapi.Auction](t, w), total)
}

func TestServer_MyAuctions(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)
	other := s.registerUser(t, "other", 0)

	open := s.createAuction(t, seller, 100, 10)
	cancelled := s.createAuction(t, seller, 100, 10)
	s.createAuction(t, other, 100, 10)
	w := s.do(t, http.MethodPost, "/auctions/"+cancelled.Id.String()+"/cancel", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/users/me/auctions", nil, asUser(seller))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	mine := decode[[]openapi.Auction](t, w)
	require.Len(t, mine, 2)
	assert.ElementsMatch(t,
		[]uuid.UUID{open.Id, cancelled.Id},
		lo.Map(mine, func(a openapi.Auction, _ int) uuid.UUID { return a.Id }),
	)

	w = s.do(t, http.MethodGet, "/users/me/auctions?completed=true", nil, asUser(seller))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	completed := decode[[]openapi.Auction](t, w)
	require.Len(t, completed, 1)
	assert.Equal(t, cancelled.Id, completed[0].Id)
	assert.Equal(t, string(models.StatusCancelled), completed[0].Status)

	w = s.do(t, http.MethodGet, "/users/me/auctions?completed=maybe", nil, asUser(seller))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/users/me/auctions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_ValidatesRequestBody(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"auction without title", "/auctions", map[string]any{"endTime": baseTime.Add(time.Hour)}},
		{"auction with empty title", "/auctions", map[string]any{"title": "", "endTime": baseTime.Add(time.Hour)}},
		{"auction without end time", "/auctions", map[string]any{"title": "Lens"}},
		{"user without username", "/users", map[string]any{}},
		{"user with empty username", "/users", map[string]any{"username": ""}},
		{"deposit with text amount", "/users/me/deposits", map[string]any{"amount": "ten"}},
		{"bid without amount", "/auctions/" + uuid.NewString() + "/bids", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, tt.path, tt.body, asUser(seller))
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[openapi.Error](t, w).Message)
		})
	}

	// 驗證失敗的請求不會寫入資料
	w := s.do(t, http.MethodGet, "/users/me/auctions", nil, asUser(seller))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]openapi.Auction](t, w))
}

func TestServer_CancelPatchAndDelete(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)
	alice := s.registerUser(t, "alice", 500)
	a := s.createAuction(t, seller, 100, 10)
	path := "/auctions/" + a.Id.String()

	w := s.do(t, http.MethodPatch, path, openapi.UpdateAuctionRequest{Title: lo.ToPtr("Rare camera")}, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Rare camera", decode[openapi.Auction](t, w).Title)

	w = s.do(t, http.MethodDelete, path, nil, asAdmin())
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, path+"/bids", openapi.PlaceBidRequest{Amount: 150}, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPatch, path, openapi.UpdateAuctionRequest{Status: lo.ToPtr("UNKNOWN")}, asAdmin())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, path+"/cancel", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	transition := decode[openapi.Transition](t, w)
	assert.Equal(t, string(models.StatusCancelled), transition.To)
	assert.Equal(t, 1, transition.Refunded)

	w = s.do(t, http.MethodGet, "/users/me/balance", nil, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(500), decode[openapi.Balance](t, w).Balance)

	w = s.do(t, http.MethodDelete, path, nil, asAdmin())
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_PostAuctionSanitizesDescription(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)

	description := `<b>mint condition</b><script>alert("x")</script>`
	w := s.do(t, http.MethodPost, "/auctions", openapi.CreateAuctionRequest{
		Title:       "Lens",
		Description: &description,
		StartPrice:  lo.ToPtr(int64(10)),
		Step:        lo.ToPtr(int64(1)),
		EndTime:     baseTime.Add(time.Hour),
	}, asUser(seller))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "<b>mint condition</b>", decode[openapi.Auction](t, w).Description)
}

func TestServer_InvalidRequests(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)

	w := s.do(t, http.MethodGet, "/auctions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/auctions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 截止時間早於開始時間
	w = s.do(t, http.MethodPost, "/auctions", openapi.CreateAuctionRequest{
		Title:      "Lens",
		StartPrice: lo.ToPtr(int64(10)),
		Step:       lo.ToPtr(int64(1)),
		EndTime:    baseTime.Add(-time.Hour),
	}, asUser(seller))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/users/me/deposits", openapi.DepositRequest{Amount: -5}, asUser(seller))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/users/me/balance", nil, asUser(uuid.New()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_DepositIsIdempotent(t *testing.T) {
	s := setupServer(t)
	user := s.registerUser(t, "alice", 0)

	request := openapi.DepositRequest{Amount: 300, OperationId: lo.ToPtr("topup-1")}
	for range 2 {
		w := s.do(t, http.MethodPost, "/users/me/deposits", request, asUser(user))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, int64(300), decode[openapi.Balance](t, w).Balance)
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	impl := &ServerImpl{logger: slog.Default()}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", fmt.Errorf("wrap: %w", auction.ErrAuctionNotFound), http.StatusNotFound, auction.ErrAuctionNotFound.Error()},
		{"not started", auction.ErrAuctionNotStarted, http.StatusForbidden, auction.ErrAuctionNotStarted.Error()},
		{"closed", auction.ErrAuctionClosed, http.StatusGone, auction.ErrAuctionClosed.Error()},
		{"funds", auction.ErrInsufficientFunds, http.StatusPaymentRequired, auction.ErrInsufficientFunds.Error()},
		{"conflict", errors.Join(auction.ErrConcurrentConflict, errors.New("lock timeout")), http.StatusConflict, auction.ErrConcurrentConflict.Error()},
		{"has bids", auction.ErrAuctionHasBids, http.StatusConflict, auction.ErrAuctionHasBids.Error()},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			impl.writeError(c, "test", tt.err)

			assert.Equal(t, tt.status, w.Code)
			response := decode[openapi.Error](t, w)
			assert.Equal(t, tt.message, response.Message)
			assert.Nil(t, response.Minimum)
		})
	}

	t.Run("strict handler error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		handler := impl.errorMiddleware(func(*gin.Context, interface{}) (interface{}, error) {
			return nil, fmt.Errorf("wrap: %w", auction.ErrAuctionNotFound)
		}, "GetAuctionsAuctionID")
		response, err := handler(c, nil)

		require.NoError(t, err)
		assert.Nil(t, response)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, auction.ErrAuctionNotFound.Error(), decode[openapi.Error](t, w).Message)
	})

	t.Run("bid too low carries minimum", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		impl.writeError(c, "test", fmt.Errorf("wrap: %w", &auction.BidTooLowError{Minimum: 120}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decode[openapi.Error](t, w)
		require.NotNil(t, response.Minimum)
		assert.Equal(t, int64(120), *response.Minimum)
	})
}

// readSSE 讀取下一個 SSE 事件，回傳事件名稱與 data 內容
func readSSE(t *testing.T, reader *bufio.Reader) (string, string) {
	t.Helper()

	var name, data string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		case line == "" && name != "":
			return name, data
		}
	}
}

func TestServer_AuctionEvents(t *testing.T) {
	s := setupServer(t)
	seller := s.registerUser(t, "seller", 0)
	alice := s.registerUser(t, "alice", 500)
	a := s.createAuction(t, seller, 100, 10)

	httpServer := httptest.NewServer(s.router)
	defer httpServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/auctions/"+a.Id.String()+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	name, data := readSSE(t, reader)
	require.Equal(t, eventSnapshot, name)
	var snapshot openapi.Auction
	require.NoError(t, json.Unmarshal([]byte(data), &snapshot))
	assert.Equal(t, a.Id, snapshot.Id)

	w := s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/bids", openapi.PlaceBidRequest{Amount: 150}, asUser(alice))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	name, data = readSSE(t, reader)
	require.Equal(t, string(auction.EventBidPlaced), name)
	var placed openapi.AuctionEvent
	require.NoError(t, json.Unmarshal([]byte(data), &placed))
	assert.Equal(t, int64(150), placed.Amount)
	require.NotNil(t, placed.BidderId)
	assert.Equal(t, alice, *placed.BidderId)

	w = s.do(t, http.MethodPost, "/auctions/"+a.Id.String()+"/finish", nil, asAdmin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	name, data = readSSE(t, reader)
	require.Equal(t, string(auction.EventAuctionClosed), name)
	var closed openapi.AuctionEvent
	require.NoError(t, json.Unmarshal([]byte(data), &closed))
	assert.Equal(t, string(models.StatusFinished), closed.Status)
	require.NotNil(t, closed.WinnerId)
	assert.Equal(t, alice, *closed.WinnerId)
}

func TestServer_AuctionEventsUnavailable(t *testing.T) {
	s := setupServer(t)
	s.impl.feed = nil

	w := s.do(t, http.MethodGet, "/auctions/"+uuid.NewString()+"/events", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
