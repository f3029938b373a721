package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roomshare-server/apperr"
	"roomshare-server/config"
	daopg "roomshare-server/dao/postgres"
	daoredis "roomshare-server/dao/redis"
	"roomshare-server/geo"
	"roomshare-server/logger"
	"roomshare-server/models"
)

// ListingService owns the listing write path: create, patch, delete.
// Every mutation invalidates the map cache so stale pins never outlive
// their 30 second window by more than one request.
type ListingService struct {
	listingDao *daopg.ListingDAO
	userDao    *daopg.UserDAO
	bookingDao *daopg.BookingDAO
	mapCache   *daoredis.MapCacheDAO
	notifier   *NotificationService
	cfg        config.SearchConfig
	log        logger.Logger
}

func NewListingService(
	listingDao *daopg.ListingDAO,
	userDao *daopg.UserDAO,
	bookingDao *daopg.BookingDAO,
	mapCache *daoredis.MapCacheDAO,
	notifier *NotificationService,
	cfg config.SearchConfig,
	log logger.Logger,
) *ListingService {
	return &ListingService{
		listingDao: listingDao,
		userDao:    userDao,
		bookingDao: bookingDao,
		mapCache:   mapCache,
		notifier:   notifier,
		cfg:        cfg,
		log:        log,
	}
}

// Get returns the full listing record. The owner sees everything; anyone
// else gets the record with street-level fields blanked.
func (s *ListingService) Get(ctx context.Context, id, viewerID string) (*models.Listing, error) {
	l, err := s.listingDao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.OwnerID != viewerID {
		l.Street = ""
		l.Zip = ""
	}
	return l, nil
}

// Create validates and stores a new listing for the authenticated user.
func (s *ListingService) Create(ctx context.Context, ownerID string, l *models.Listing) (*models.Listing, error) {
	owner, err := s.userDao.GetByID(ctx, ownerID)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeUnauthorized, "Unauthorized")
		}
		return nil, err
	}
	if !owner.EmailVerified {
		return nil, apperr.New(apperr.CodeForbidden, "Email must be verified before creating listings")
	}
	if owner.Suspended {
		return nil, apperr.New(apperr.CodeForbidden, "Account is suspended")
	}

	count, err := s.listingDao.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Create failed", err)
	}
	if count >= s.cfg.MaxListingsPerUser {
		return nil, apperr.Validation(fmt.Sprintf("Maximum %d active listings per user", s.cfg.MaxListingsPerUser))
	}

	if err := validateListing(l, s.cfg); err != nil {
		return nil, err
	}

	l.ID = uuid.New().String()
	l.OwnerID = ownerID
	l.Active = true
	if err := s.listingDao.Create(ctx, l); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Create failed", err)
	}

	s.invalidateMapCache(ctx)
	s.notifier.ListingCreated(ctx, owner, l)
	return l, nil
}

// Patch applies a partial update. The URL id is authoritative and the
// caller must own the listing it names.
func (s *ListingService) Patch(ctx context.Context, id, callerID string, patch daopg.ListingPatch) (*models.Listing, error) {
	existing, err := s.listingDao.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, apperr.New(apperr.CodeForbidden, "Forbidden")
	}

	if err := validatePatch(patch, s.cfg); err != nil {
		return nil, err
	}

	if err := s.listingDao.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	s.invalidateMapCache(ctx)
	return s.listingDao.GetByID(ctx, id)
}

// Delete removes a listing. Listings with pending or accepted bookings
// stay until those bookings resolve.
func (s *ListingService) Delete(ctx context.Context, id, callerID string) error {
	existing, err := s.listingDao.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != callerID {
		return apperr.New(apperr.CodeForbidden, "Forbidden")
	}

	active, err := s.bookingDao.CountActiveForListing(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.CodeInternal, "Delete failed", err)
	}
	if active > 0 {
		return apperr.Validation("Listing has active bookings and cannot be deleted")
	}

	if err := s.listingDao.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMapCache(ctx)
	return nil
}

func (s *ListingService) invalidateMapCache(ctx context.Context) {
	if err := s.mapCache.InvalidateAll(ctx); err != nil {
		s.log.Warn("map cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func validateListing(l *models.Listing, cfg config.SearchConfig) error {
	if l.Title == "" {
		return apperr.Validation("title is required")
	}
	if l.PriceMonthly <= 0 {
		return apperr.Validation("price_monthly must be positive")
	}
	if !contains(models.RoomTypes, l.RoomType) {
		return apperr.Validation("invalid room_type")
	}
	if !contains(models.LeaseDurations, l.LeaseDuration) {
		return apperr.Validation("invalid lease_duration")
	}
	if l.GenderPref != "" && !contains(models.GenderPrefs, l.GenderPref) {
		return apperr.Validation("invalid gender_preference")
	}
	if l.HouseholdGend != "" && !contains(models.HouseholdGenders, l.HouseholdGend) {
		return apperr.Validation("invalid household_gender")
	}
	if err := geo.ValidatePoint(l.Lat, l.Lng); err != nil {
		return err
	}
	if l.AvailableFrom != "" {
		if _, err := time.Parse("2006-01-02", l.AvailableFrom); err != nil {
			return apperr.Validation("available_from must be YYYY-MM-DD")
		}
	}
	for _, a := range l.Amenities {
		if !contains(models.AmenityAllowlist, a) {
			return apperr.Validation("unknown amenity: " + a)
		}
	}
	for _, r := range l.HouseRules {
		if !contains(models.HouseRuleAllowlist, r) {
			return apperr.Validation("unknown house rule: " + r)
		}
	}
	for _, lg := range l.Languages {
		if !contains(models.LanguageAllowlist, lg) {
			return apperr.Validation("unknown language: " + lg)
		}
	}
	return nil
}

func validatePatch(p daopg.ListingPatch, cfg config.SearchConfig) error {
	if p.Title != nil && *p.Title == "" {
		return apperr.Validation("title must not be empty")
	}
	if p.PriceMonthly != nil && *p.PriceMonthly <= 0 {
		return apperr.Validation("price_monthly must be positive")
	}
	if p.RoomType != nil && !contains(models.RoomTypes, *p.RoomType) {
		return apperr.Validation("invalid room_type")
	}
	if p.LeaseDuration != nil && !contains(models.LeaseDurations, *p.LeaseDuration) {
		return apperr.Validation("invalid lease_duration")
	}
	if p.AvailableFrom != nil {
		if _, err := time.Parse("2006-01-02", *p.AvailableFrom); err != nil {
			return apperr.Validation("available_from must be YYYY-MM-DD")
		}
	}
	for _, a := range p.Amenities {
		if !contains(models.AmenityAllowlist, a) {
			return apperr.Validation("unknown amenity: " + a)
		}
	}
	for _, r := range p.HouseRules {
		if !contains(models.HouseRuleAllowlist, r) {
			return apperr.Validation("unknown house rule: " + r)
		}
	}
	for _, lg := range p.Languages {
		if !contains(models.LanguageAllowlist, lg) {
			return apperr.Validation("unknown language: " + lg)
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
