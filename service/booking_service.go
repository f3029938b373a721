package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"roomshare-server/apperr"
	daopg "roomshare-server/dao/postgres"
	"roomshare-server/logger"
	"roomshare-server/models"
)

// BookingService handles the booking request lifecycle. A renter opens a
// request against a listing; only the listing owner may accept or
// decline it, and only the renter may cancel it.
type BookingService struct {
	bookingDao *daopg.BookingDAO
	listingDao *daopg.ListingDAO
	userDao    *daopg.UserDAO
	notifier   *NotificationService
	log        logger.Logger
}

func NewBookingService(
	bookingDao *daopg.BookingDAO,
	listingDao *daopg.ListingDAO,
	userDao *daopg.UserDAO,
	notifier *NotificationService,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		bookingDao: bookingDao,
		listingDao: listingDao,
		userDao:    userDao,
		notifier:   notifier,
		log:        log,
	}
}

// Request opens a pending booking against an active listing.
func (s *BookingService) Request(ctx context.Context, renterID string, listingID, moveInDate, note string) (*models.Booking, error) {
	if _, err := time.Parse("2006-01-02", moveInDate); err != nil {
		return nil, apperr.Validation("move_in_date must be YYYY-MM-DD")
	}

	listing, err := s.listingDao.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID == renterID {
		return nil, apperr.Validation("cannot book your own listing")
	}
	if !listing.Active {
		return nil, apperr.Validation("listing is not available")
	}

	b := &models.Booking{
		ID:         uuid.New().String(),
		ListingID:  listingID,
		RenterID:   renterID,
		MoveInDate: moveInDate,
		Note:       note,
		Status:     models.BookingPending,
	}
	if err := s.bookingDao.Insert(ctx, b); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "Failed to create booking", err)
	}

	if owner, err := s.userDao.GetByID(ctx, listing.OwnerID); err == nil {
		s.notifier.BookingRequested(ctx, owner, b, listing)
	}
	return b, nil
}

// Respond lets the listing owner accept or decline a pending booking.
func (s *BookingService) Respond(ctx context.Context, bookingID, callerID string, accept bool) (*models.Booking, error) {
	b, err := s.bookingDao.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	listing, err := s.listingDao.GetByID(ctx, b.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.OwnerID != callerID {
		return nil, apperr.New(apperr.CodeForbidden, "Forbidden")
	}
	if b.Status != models.BookingPending {
		return nil, apperr.Validation("booking is not pending")
	}

	status := models.BookingDeclined
	if accept {
		status = models.BookingAccepted
	}
	if err := s.bookingDao.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	b.Status = status

	if renter, err := s.userDao.GetByID(ctx, b.RenterID); err == nil {
		s.notifier.BookingResolved(ctx, renter, b, listing)
	}
	return b, nil
}

// Cancel lets the renter withdraw a booking that has not been declined.
func (s *BookingService) Cancel(ctx context.Context, bookingID, callerID string) (*models.Booking, error) {
	b, err := s.bookingDao.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.RenterID != callerID {
		return nil, apperr.New(apperr.CodeForbidden, "Forbidden")
	}
	if !b.Status.IsActive() {
		return nil, apperr.Validation("booking is already resolved")
	}

	if err := s.bookingDao.UpdateStatus(ctx, bookingID, models.BookingCanceled); err != nil {
		return nil, err
	}
	b.Status = models.BookingCanceled
	return b, nil
}
