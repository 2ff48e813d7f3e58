package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"hillescape/config"
	"hillescape/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	created    []models.Booking
	createErr  error
	existing   map[string]bool
	existsErr  error
	collisions int
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, ref string) (*models.Booking, error) {
	for i := range f.created {
		if f.created[i].BookingReference == ref {
			return &f.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBookingRepo) List(_ context.Context) ([]models.Booking, error) {
	return f.created, nil
}

func (f *fakeBookingRepo) ReferenceExists(_ context.Context, _ string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if f.collisions > 0 {
		f.collisions--
		return true, nil
	}
	return false, nil
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

type fakeNotificationService struct {
	outcome       models.NotificationOutcome
	confirmations []models.Booking
}

func (f *fakeNotificationService) SendBookingConfirmation(_ context.Context, b models.Booking) models.NotificationOutcome {
	f.confirmations = append(f.confirmations, b)
	return f.outcome
}

func (f *fakeNotificationService) SendAdminAlert(_ context.Context, _ models.Booking) models.NotificationOutcome {
	return f.outcome
}

func (f *fakeNotificationService) Dispatch(_ context.Context, _ models.EmailMessage) models.NotificationOutcome {
	return f.outcome
}

func (f *fakeNotificationService) ProbeProviders(_ context.Context) []models.ProviderProbe {
	return nil
}

func setupPricingConfig(t *testing.T) {
	t.Helper()
	config.AppConfig.TaxRate = 0.18
	config.AppConfig.ExtraAdultRate = 800
	config.AppConfig.MaxAdultsPerRoom = 2
	config.AppConfig.DefaultNightlyRate = 2603
	config.AppConfig.BookingRefPrefix = "HILL"
	config.AppConfig.CoerceInvalidDates = false
}

func validRequest() models.BookingRequest {
	in := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	out := time.Now().AddDate(0, 1, 2).Format("2006-01-02")
	return models.BookingRequest{
		ResortID:   "1",
		ResortName: "Deluxe Family Room",
		RoomType:   "Deluxe",
		Location:   "Sholayar Dam City",
		CheckIn:    in,
		CheckOut:   out,
		Guests:     models.Guests{Adults: 2, Children: 0, Rooms: 1},
		Customer: models.Customer{
			Name:  "Asha Nair",
			Email: "asha@example.com",
			Phone: "+919900112233",
		},
		BasePrice: 2603,
	}
}

func newTestService(repo *fakeBookingRepo, notif *fakeNotificationService) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:         repo,
		Notification: notif,
		Logger:       zap.NewNop(),
	}
}

func TestCreateBookingPersistsPending(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{}
	notif := &fakeNotificationService{outcome: models.NotificationOutcome{Delivered: true, Provider: models.NotifierResend}}
	svc := newTestService(repo, notif)

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	stored := repo.created[0]
	assert.Equal(t, models.BookingStatusPending, stored.Status)
	assert.Equal(t, resp.BookingReference, stored.BookingReference)
	assert.Equal(t, 2, stored.PriceBreakdown.Nights)
	assert.Equal(t, 6143.0, resp.TotalAmount)
	assert.Equal(t, "Asha Nair", resp.Customer.Name)
	assert.True(t, resp.Email.Sent)
	assert.Equal(t, models.NotifierResend, resp.Email.Provider)
	require.Len(t, notif.confirmations, 1)
}

func TestCreateBookingReferenceFormat(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotificationService{})

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	ref := resp.BookingReference
	require.Len(t, ref, 16)
	assert.Equal(t, "HILL", ref[:4])
	for _, c := range ref[4:12] {
		assert.True(t, c >= '0' && c <= '9', "timestamp segment must be digits: %s", ref)
	}
	for _, c := range ref[12:] {
		ok := (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
		assert.True(t, ok, "random segment must be upper base36: %s", ref)
	}
}

func TestCreateBookingRetriesOnReferenceCollision(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{collisions: 2}
	svc := newTestService(repo, &fakeNotificationService{})

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingReference)
	assert.Zero(t, repo.collisions)
}

func TestCreateBookingInvalidDateFormat(t *testing.T) {
	setupPricingConfig(t)
	svc := newTestService(&fakeBookingRepo{}, &fakeNotificationService{})

	req := validRequest()
	req.CheckIn = "not-a-date"
	_, err := svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "checkIn", verr.Field)
}

func TestCreateBookingPastCheckIn(t *testing.T) {
	setupPricingConfig(t)
	svc := newTestService(&fakeBookingRepo{}, &fakeNotificationService{})

	req := validRequest()
	req.CheckIn = "2020-01-01"
	_, err := svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "checkIn", verr.Field)
}

func TestCreateBookingInvertedRange(t *testing.T) {
	setupPricingConfig(t)
	svc := newTestService(&fakeBookingRepo{}, &fakeNotificationService{})

	req := validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
	_, err := svc.CreateBooking(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "checkOut", verr.Field)
}

func TestCreateBookingRepoFailure(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{createErr: errors.New("write timeout")}
	notif := &fakeNotificationService{}
	svc := newTestService(repo, notif)

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "storage failures are not validation errors")
	assert.Empty(t, notif.confirmations, "no email before the booking is stored")
}

func TestCreateBookingEmailFailureDoesNotFailBooking(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{}
	notif := &fakeNotificationService{outcome: models.NotificationOutcome{
		Delivered: false,
		Provider:  models.NotifierConsole,
	}}
	svc := newTestService(repo, notif)

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Email.Sent)
	assert.Equal(t, models.BookingStatusPending, resp.Status)
	require.Len(t, repo.created, 1)
}

func TestCreateBookingEnqueuesAdminAlert(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotificationService{})

	var enqueued []string
	svc.EnqueueAdmin = func(reference string) error {
		enqueued = append(enqueued, reference)
		return nil
	}

	resp, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, enqueued, 1)
	assert.Equal(t, resp.BookingReference, enqueued[0])
}

func TestCreateBookingEnqueueFailureIsSwallowed(t *testing.T) {
	setupPricingConfig(t)
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeNotificationService{})
	svc.EnqueueAdmin = func(string) error { return errors.New("queue down") }

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}
