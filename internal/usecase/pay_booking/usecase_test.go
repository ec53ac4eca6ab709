package pay_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TRV-BookingEngine/internal/domain"
	"github.com/m04kA/TRV-BookingEngine/internal/integrations/razorpay"
	itinerarySvc "github.com/m04kA/TRV-BookingEngine/internal/service/itinerary"
)

type fakeBookingRepo struct {
	booking *domain.Booking

	markPaidCalled bool
	paidRef        string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	cp := *f.booking
	return &cp, nil
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, _ int64, paymentRef string) error {
	f.markPaidCalled = true
	f.paidRef = paymentRef
	return nil
}

type fakeItineraryService struct {
	availabilityErr error
	price           domain.PricingBreakdown
}

func (f *fakeItineraryService) Load(_ context.Context, _ itinerarySvc.Selection) (*itinerarySvc.Itinerary, error) {
	return &itinerarySvc.Itinerary{}, nil
}

func (f *fakeItineraryService) CheckAvailability(_ context.Context, _ *itinerarySvc.Itinerary, _ itinerarySvc.CheckParams) error {
	return f.availabilityErr
}

func (f *fakeItineraryService) Price(_ *itinerarySvc.Itinerary, _, _ int, _ bool) (domain.PricingBreakdown, error) {
	return f.price, nil
}

type fakeGateway struct {
	payment *razorpay.Payment
	err     error
}

func (f *fakeGateway) VerifyPayment(_ context.Context, _, _, _ string) (*razorpay.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payment, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func draftBooking() *domain.Booking {
	return &domain.Booking{
		ID:               42,
		UserID:           7,
		StayID:           1,
		TransportationID: 2,
		CheckInDate:      day("2024-06-01"),
		CheckOutDate:     day("2024-06-04"),
		NumberOfPeople:   2,
		NumberOfDays:     3,
		Status:           domain.StatusDraft,
		PaymentStatus:    domain.PaymentUnpaid,
		Pricing: domain.PricingBreakdown{
			StayTotal:           3000,
			TransportationTotal: 1500,
			SightseeingTotal:    1200,
			GrandTotal:          5700,
		},
	}
}

func validRequest() *Request {
	return &Request{
		BookingID: 42,
		UserID:    7,
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
		Signature: "sig",
	}
}

func capturedPayment(amountPaise int64) *razorpay.Payment {
	return &razorpay.Payment{
		ID:       "pay_xyz",
		OrderID:  "order_abc",
		Amount:   amountPaise,
		Currency: "INR",
		Status:   "captured",
		Captured: true,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}
	itinerary := &fakeItineraryService{price: draftBooking().Pricing}
	gateway := &fakeGateway{payment: capturedPayment(570000)}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	require.NotNil(t, resp.PaymentRef)
	assert.Equal(t, "pay_xyz", *resp.PaymentRef)
	assert.Equal(t, int64(5700), resp.Pricing.GrandTotal)

	assert.True(t, repo.markPaidCalled)
	assert.Equal(t, "pay_xyz", repo.paidRef)
}

func TestExecute_GatewayRejection(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}
	itinerary := &fakeItineraryService{price: draftBooking().Pricing}
	gateway := &fakeGateway{err: razorpay.ErrSignatureMismatch}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentVerificationFailed)
	assert.False(t, repo.markPaidCalled)
}

func TestExecute_AmountMismatch(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}
	itinerary := &fakeItineraryService{price: draftBooking().Pricing}

	// Платеж на 5699 рупий вместо 5700
	gateway := &fakeGateway{payment: capturedPayment(569900)}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentVerificationFailed)
	assert.False(t, repo.markPaidCalled)
}

func TestExecute_StaleQuote(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}

	// Каталог подорожал после создания черновика
	current := draftBooking().Pricing
	current.StayTotal += 600
	current.GrandTotal += 600
	itinerary := &fakeItineraryService{price: current}

	gateway := &fakeGateway{payment: capturedPayment(570000)}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStaleQuote)
	assert.False(t, repo.markPaidCalled)
}

func TestExecute_CapacityExceededLeavesDraft(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}
	itinerary := &fakeItineraryService{
		price:           draftBooking().Pricing,
		availabilityErr: itinerarySvc.ErrCapacityExceeded,
	}
	gateway := &fakeGateway{payment: capturedPayment(570000)}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, repo.markPaidCalled)
	assert.Equal(t, domain.StatusDraft, repo.booking.Status)
	assert.Equal(t, domain.PaymentUnpaid, repo.booking.PaymentStatus)
}

func TestExecute_NonDraftNotPayable(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusBooked,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			b := draftBooking()
			b.Status = status
			repo := &fakeBookingRepo{booking: b}
			itinerary := &fakeItineraryService{price: b.Pricing}
			gateway := &fakeGateway{payment: capturedPayment(570000)}

			uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.False(t, repo.markPaidCalled)
		})
	}
}

func TestExecute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{booking: draftBooking()}
	itinerary := &fakeItineraryService{price: draftBooking().Pricing}
	gateway := &fakeGateway{payment: capturedPayment(570000)}

	uc := NewUseCase(repo, itinerary, gateway, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.UserID = 99
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, repo.markPaidCalled)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: draftBooking()},
		&fakeItineraryService{}, &fakeGateway{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Signature = ""
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
