package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"roomshare-server/config"
	"roomshare-server/logger"
	"roomshare-server/models"
)

// SESService is the slice of the SES client used here, kept narrow so
// tests can substitute a fake.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// NotificationService sends transactional email for listing, message and
// booking events. When no email sender is configured it logs and moves
// on; notification failures never fail the triggering request.
type NotificationService struct {
	sesClient SESService
	sender    string
	log       logger.Logger
}

func NewNotificationService(sesClient SESService, sender string, log logger.Logger) *NotificationService {
	return &NotificationService{sesClient: sesClient, sender: sender, log: log}
}

// NewSESClient builds the real SES client from ambient AWS credentials.
func NewSESClient(ctx context.Context, cfg config.EmailConfig) (SESService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return ses.NewFromConfig(awsCfg), nil
}

func (s *NotificationService) ListingCreated(ctx context.Context, owner *models.User, l *models.Listing) {
	subject := "Your listing is live"
	body := fmt.Sprintf("Hi %s,\n\nYour listing %q in %s, %s is now visible in search.\n", owner.Name, l.Title, l.City, l.State)
	s.send(ctx, owner.Email, subject, body)
}

func (s *NotificationService) MessageReceived(ctx context.Context, recipient *models.User, m *models.Message) {
	subject := "You have a new message"
	body := fmt.Sprintf("Hi %s,\n\nYou received a new message. Log in to read and reply.\n", recipient.Name)
	s.send(ctx, recipient.Email, subject, body)
}

func (s *NotificationService) BookingRequested(ctx context.Context, owner *models.User, b *models.Booking, l *models.Listing) {
	subject := "New booking request"
	body := fmt.Sprintf("Hi %s,\n\nSomeone requested to book %q with move-in date %s.\n", owner.Name, l.Title, b.MoveInDate)
	s.send(ctx, owner.Email, subject, body)
}

func (s *NotificationService) BookingResolved(ctx context.Context, renter *models.User, b *models.Booking, l *models.Listing) {
	subject := fmt.Sprintf("Your booking request was %s", b.Status)
	body := fmt.Sprintf("Hi %s,\n\nYour booking request for %q is now %s.\n", renter.Name, l.Title, b.Status)
	s.send(ctx, renter.Email, subject, body)
}

func (s *NotificationService) send(ctx context.Context, to, subject, body string) {
	if s.sesClient == nil || s.sender == "" {
		s.log.Debug("email sending not configured, skipping", map[string]interface{}{
			"subject": subject,
		})
		return
	}

	_, err := s.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.sender),
	})
	if err != nil {
		s.log.Warn("email send failed", map[string]interface{}{
			"subject": subject,
			"error":   err.Error(),
		})
	}
}
