package server

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"roomshare-server/api/radar"
	"roomshare-server/config"
	daopg "roomshare-server/dao/postgres"
	daoredis "roomshare-server/dao/redis"
	"roomshare-server/db"
	"roomshare-server/logger"
	"roomshare-server/metrics"
	"roomshare-server/models"
	"roomshare-server/server/handlers"
	services "roomshare-server/service"
)

type testEnv struct {
	router  *mux.Router
	mock    sqlmock.Sqlmock
	redis   *db.MockRedisClient
	session *daoredis.SessionDAO
}

type testEnvOptions struct {
	radarKey  string
	rateLimit int
}

func newTestEnv(t *testing.T, opts testEnvOptions) *testEnv {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if opts.rateLimit == 0 {
		opts.rateLimit = 100
	}

	log := logger.NewTestLogger(t)
	cfg := config.DefaultSearch()
	redisClient := db.NewMockRedisClient()

	listingDao := daopg.NewListingDAO(sqlDB)
	userDao := daopg.NewUserDAO(sqlDB)
	messageDao := daopg.NewMessageDAO(sqlDB)
	bookingDao := daopg.NewBookingDAO(sqlDB)
	sessionDao := daoredis.NewSessionDAO(redisClient)
	mapCache := daoredis.NewMapCacheDAO(redisClient)
	limiter := daoredis.NewRateLimiter(redisClient, opts.rateLimit, time.Minute)

	notifier := services.NewNotificationService(nil, "", log)
	searchService := services.NewListingSearchService(listingDao, mapCache, cfg, log)
	listingService := services.NewListingService(listingDao, userDao, bookingDao, mapCache, notifier, cfg, log)
	messageService := services.NewMessageService(messageDao, userDao, notifier, log)
	bookingService := services.NewBookingService(bookingDao, listingDao, userDao, notifier, log)

	radarCfg := config.RadarConfig{SecretKey: opts.radarKey, BaseURL: "https://api.radar.io/v1"}
	listingHandler := handlers.NewListingHandler(searchService, listingService, cfg, log)
	nearbyHandler := handlers.NewNearbyHandler(radar.NewRadarApiClientMock(), radarCfg, cfg, log)
	messageHandler := handlers.NewMessageHandler(messageService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	debugHandler := handlers.NewDebugHandler(searchService, cfg, log)

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		listingHandler, nearbyHandler, messageHandler, bookingHandler, debugHandler,
		sessionDao, limiter, log, muxRouter, true,
	)
	appRouter.RegisterRoutes()

	return &testEnv{router: muxRouter, mock: mock, redis: redisClient, session: sessionDao}
}

func (e *testEnv) seedSession(t *testing.T, token, userID string) {
	t.Helper()
	err := e.session.Put(context.Background(), models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

var listingRowColumns = []string{
	"id", "owner_id", "title", "description", "room_type", "lease_duration",
	"price_monthly", "street", "zip", "city", "state", "lat", "lng",
	"amenities", "house_rules", "languages", "gender_preference",
	"household_gender", "available_from", "active", "created_at", "updated_at",
}

func listingRow(id, ownerID string, price int) []driverValue {
	now := time.Now().UTC()
	return []driverValue{
		id, ownerID, "Sunny room", "A bright room", "private", "monthly",
		price, "1 Main St", "94110", "San Francisco", "CA", 37.76, -122.42,
		"{Wifi}", "{}", "{English}", "any", "mixed", "2026-12-01", true, now, now,
	}
}

type driverValue = driver.Value

func addListingRows(rows *sqlmock.Rows, listings ...[]driverValue) *sqlmock.Rows {
	for _, l := range listings {
		rows.AddRow(l...)
	}
	return rows
}

func TestMapListings_ClampsOversizedBounds(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	// 15 degree spans against a 10 degree limit: the query must run with
	// spans shrunk to 10, centered where the request was centered.
	env.mock.ExpectQuery("FROM listings").
		WithArgs(30.5, 40.5, -132.5, -122.5).
		WillReturnRows(sqlmock.NewRows(listingRowColumns))

	rr := env.do("GET", "/v1/map-listings?minLng=-135&maxLng=-120&minLat=28&maxLat=43", "", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("x-request-id") == "" {
		t.Error("missing x-request-id header")
	}

	var resp models.MapSearchResult
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Bounds.LatSpan() > 10 || resp.Bounds.LngSpan() > 10 {
		t.Errorf("spans not clamped: %+v", resp.Bounds)
	}
	if resp.Meta.Cached {
		t.Error("map response must always report cached:false")
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestMapListings_MissingBounds(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	rr := env.do("GET", "/v1/map-listings", "", nil)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "bounds") {
		t.Errorf("error should mention bounds: %s", rr.Body.String())
	}
	if rr.Header().Get("x-request-id") == "" {
		t.Error("missing x-request-id header on error path")
	}
}

func TestMapListings_SecondRequestServedFromCache(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))

	first := env.do("GET", "/v1/map-listings?minLat=37&maxLat=38&minLng=-123&maxLng=-122", "", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", first.Code, first.Body.String())
	}

	// No second query expectation: a repeat within the TTL hits Redis.
	second := env.do("GET", "/v1/map-listings?minLat=37&maxLat=38&minLng=-123&maxLng=-122", "", nil)
	if second.Code != http.StatusOK {
		t.Fatalf("status = %d", second.Code)
	}

	var resp models.MapSearchResult
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Listings) != 1 || resp.Listings[0].ID != "l1" {
		t.Errorf("cached listings = %+v", resp.Listings)
	}
	if resp.Meta.Cached {
		t.Error("even a server-cache hit must report cached:false")
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListings_NoViewportReturnsBoundsRequired(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	rr := env.do("GET", "/v1/listings?minPrice=500", "", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp models.SearchResult
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.BoundsRequired {
		t.Error("expected boundsRequired:true")
	}
	if len(resp.Items) != 0 {
		t.Errorf("items = %v, want empty", resp.Items)
	}
}

func TestListings_PriceRangeViolationRejected(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	rr := env.do("GET", "/v1/listings?minLat=37&maxLat=38&minLng=-123&maxLng=-122&minPrice=900&maxPrice=500", "", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestListings_ListAndMapNeverExposeStreetOrZip(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	env.mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))

	rr := env.do("GET", "/v1/listings?minLat=37&maxLat=38&minLng=-123&maxLng=-122", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	body := rr.Body.String()
	if strings.Contains(body, "1 Main St") || strings.Contains(body, "94110") {
		t.Errorf("street-level data leaked into list response: %s", body)
	}
	if !strings.Contains(body, "San Francisco") {
		t.Errorf("city missing from list response: %s", body)
	}
}

func TestCreateListing_RequiresAuth(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	rr := env.do("POST", "/v1/listings", "", map[string]interface{}{"title": "x"})

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestCreateListing_SessionUserMissing(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "ghost")

	env.mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rr := env.do("POST", "/v1/listings", "tok", validListingBody())

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestCreateListing_EnforcesPerUserCap(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM users").
		WillReturnRows(userRows("owner-1", true, false))
	env.mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	rr := env.do("POST", "/v1/listings", "tok", validListingBody())

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Maximum 10") {
		t.Errorf("cap error should name the limit: %s", rr.Body.String())
	}
}

func TestCreateListing_UnverifiedEmailRejected(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM users").
		WillReturnRows(userRows("owner-1", false, false))

	rr := env.do("POST", "/v1/listings", "tok", validListingBody())

	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rr.Code)
	}
}

func TestCreateListing_InvalidBody(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	req := httptest.NewRequest("POST", "/v1/listings", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid JSON body") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestCreateListing_Success(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM users").
		WillReturnRows(userRows("owner-1", true, false))
	env.mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	env.mock.ExpectExec("INSERT INTO listings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rr := env.do("POST", "/v1/listings", "tok", validListingBody())

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var created models.Listing
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.OwnerID != "owner-1" || !created.Active {
		t.Errorf("created = %+v", created)
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPatchListing_OwnershipCheckedAgainstURLId(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok-intruder", "intruder")
	env.seedSession(t, "tok-owner", "owner-1")

	patch := map[string]interface{}{"price_monthly": 1300}

	// Non-owner: the listing is loaded, ownership fails, nothing is written.
	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))

	rr := env.do("PATCH", "/v1/listings/l1", "tok-intruder", patch)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("non-owner status = %d", rr.Code)
	}
	var errResp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatal(err)
	}
	if errResp["error"] != "Forbidden" {
		t.Errorf(`error = %q, want "Forbidden"`, errResp["error"])
	}

	// Owner: same URL id, write goes through.
	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))
	env.mock.ExpectExec("UPDATE listings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1300)))

	rr = env.do("PATCH", "/v1/listings/l1", "tok-owner", patch)
	if rr.Code != http.StatusOK {
		t.Fatalf("owner status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteListing_BlockedByActiveBookings(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))
	env.mock.ExpectQuery("FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rr := env.do("DELETE", "/v1/listings/l1", "tok", nil)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestDeleteListing_NotFound(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(sqlmock.NewRows(listingRowColumns))

	rr := env.do("DELETE", "/v1/listings/missing", "tok", nil)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestNearby_NotConfigured(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{radarKey: ""})
	env.seedSession(t, "tok", "user-1")

	rr := env.do("POST", "/v1/nearby", "tok", map[string]interface{}{
		"lat": 37.76, "lng": -122.42, "radius_meters": 500,
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Nearby search is not configured") {
		t.Errorf("body = %s", rr.Body.String())
	}
}

func TestNearby_ValidatesInput(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{radarKey: "sk_test"})
	env.seedSession(t, "tok", "user-1")

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "radius off allowlist",
			body: map[string]interface{}{"lat": 37.76, "lng": -122.42, "radius_meters": 750},
		},
		{
			name: "query over length cap",
			body: map[string]interface{}{
				"lat": 37.76, "lng": -122.42, "radius_meters": 500,
				"query": strings.Repeat("a", 101),
			},
		},
		{
			name: "latitude out of range",
			body: map[string]interface{}{"lat": 91.0, "lng": -122.42, "radius_meters": 500},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := env.do("POST", "/v1/nearby", "tok", test.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestNearby_Success(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{radarKey: "sk_test"})
	env.seedSession(t, "tok", "user-1")

	rr := env.do("POST", "/v1/nearby", "tok", map[string]interface{}{
		"lat": 37.76, "lng": -122.42, "radius_meters": 1000, "query": "coffee",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp models.NearbyResult
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Places) == 0 {
		t.Error("no places returned")
	}
	if resp.Meta.Cached {
		t.Error("nearby must always report cached:false")
	}
}

func TestMessages_ParticipantOnly(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok-outsider", "outsider")
	env.seedSession(t, "tok-alice", "alice")

	conv := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "listing_id", "participant_a", "participant_b", "created_at"}).
			AddRow("c1", "l1", "alice", "bob", time.Now())
	}

	env.mock.ExpectQuery("FROM conversations").WillReturnRows(conv())
	rr := env.do("GET", "/v1/conversations/c1/messages", "tok-outsider", nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("outsider status = %d", rr.Code)
	}

	// A participant reads the thread; the counterpart's messages get
	// marked read as a side effect.
	env.mock.ExpectQuery("FROM conversations").WillReturnRows(conv())
	env.mock.ExpectQuery("FROM messages").
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "body", "read", "created_at"}).
			AddRow("m1", "c1", "bob", "hi there", false, time.Now()))
	env.mock.ExpectExec("UPDATE messages").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rr = env.do("GET", "/v1/conversations/c1/messages", "tok-alice", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("participant status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if err := env.mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestBookings_RequestLifecycle(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok-renter", "renter-1")

	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))
	env.mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	env.mock.ExpectQuery("FROM users").
		WillReturnRows(userRows("owner-1", true, false))

	rr := env.do("POST", "/v1/bookings", "tok-renter", map[string]interface{}{
		"listing_id": "l1", "move_in_date": "2026-12-01",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var b models.Booking
	if err := json.Unmarshal(rr.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if b.Status != models.BookingPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
}

func TestBookings_CannotBookOwnListing(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})
	env.seedSession(t, "tok", "owner-1")

	env.mock.ExpectQuery("FROM listings").
		WillReturnRows(addListingRows(sqlmock.NewRows(listingRowColumns), listingRow("l1", "owner-1", 1200)))

	rr := env.do("POST", "/v1/bookings", "tok", map[string]interface{}{
		"listing_id": "l1", "move_in_date": "2026-12-01",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestRateLimit_RejectsWithRetryAfter(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{rateLimit: 2})

	for i := 0; i < 2; i++ {
		rr := env.do("GET", "/ping", "", nil)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rr.Code)
		}
	}

	throttledBefore := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/ping", "GET", "429"))

	rr := env.do("GET", "/ping", "", nil)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}

	// Throttled requests still count in the request metrics.
	throttledAfter := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/ping", "GET", "429"))
	if throttledAfter != throttledBefore+1 {
		t.Errorf("429 requests counted = %v, want %v", throttledAfter, throttledBefore+1)
	}
}

func TestCacheControl_PrivateNoStoreOnV1(t *testing.T) {
	env := newTestEnv(t, testEnvOptions{})

	rr := env.do("GET", "/v1/listings?minPrice=500", "", nil)

	if got := rr.Header().Get("Cache-Control"); got != "private, no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func userRows(id string, verified, suspended bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "email_verified", "suspended", "created_at"}).
		AddRow(id, fmt.Sprintf("%s@example.com", id), "Test User", verified, suspended, time.Now())
}

func validListingBody() map[string]interface{} {
	return map[string]interface{}{
		"title":          "Cozy room near the park",
		"description":    "South-facing room with a desk.",
		"room_type":      "private",
		"lease_duration": "monthly",
		"price_monthly":  1200,
		"street":         "1 Main St",
		"zip":            "94110",
		"city":           "San Francisco",
		"state":          "CA",
		"lat":            37.76,
		"lng":            -122.42,
		"amenities":      []string{"Wifi"},
		"house_rules":    []string{"No Smoking"},
		"languages":      []string{"English"},
		"available_from": "2026-12-01",
	}
}
