package services

import (
	"testing"
	"time"

	"gastropass_backend/internal/handoff"
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	svc         SubscriptionService
	userRepo    repositories.UserRepository
	planRepo    repositories.PlanRepository
	paymentRepo repositories.PaymentRepository
	user        *models.User
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()
	st := newTestStore(t)

	userRepo := repositories.NewUserRepository(st)
	planRepo := repositories.NewPlanRepository(st)
	paymentRepo := repositories.NewPaymentRepository(st)
	seedPlans(t, planRepo)

	return &subscriptionFixture{
		svc:         NewSubscriptionService(userRepo, planRepo, paymentRepo, handoff.NewWhatsApp("5511999990000")),
		userRepo:    userRepo,
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		user:        seedUser(t, userRepo, "Maria", "maria@test.com"),
	}
}

func TestSubscribe_CreatesPendingPaymentAndHandoff(t *testing.T) {
	f := newSubscriptionFixture(t)

	res, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "premium"})
	require.NoError(t, err)

	assert.Equal(t, "premium", res.PlanID)
	assert.Equal(t, 39.90, res.Amount)
	assert.Equal(t, "pendente", res.Status)
	assert.Contains(t, res.HandoffURL, "https://wa.me/5511999990000?text=")
	assert.Contains(t, res.HandoffURL, "text=")

	payment, err := f.paymentRepo.FindByID(res.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, "Assinatura Premium", payment.Description)
	assert.Equal(t, f.user.ID, payment.UserID)

	user, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, user.PaymentPending)
	assert.Equal(t, res.PaymentID, user.PaymentPending.PaymentID)
	assert.Nil(t, user.Subscription, "subscribing must not activate anything")
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	f := newSubscriptionFixture(t)

	_, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "diamante"})
	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
}

func TestSubscribe_AgainCancelsOrphanedPayment(t *testing.T) {
	f := newSubscriptionFixture(t)

	first, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "basico"})
	require.NoError(t, err)

	second, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "vip"})
	require.NoError(t, err)

	orphan, err := f.paymentRepo.FindByID(first.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCancelled, orphan.Status)

	user, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	require.NotNil(t, user.PaymentPending)
	assert.Equal(t, second.PaymentID, user.PaymentPending.PaymentID)
}

func TestCheckStatus_NoPendingPayment(t *testing.T) {
	f := newSubscriptionFixture(t)

	res, err := f.svc.CheckStatus(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.SubscriptionStateNone, res.State)
	assert.Contains(t, res.Message, "Nenhum pagamento pendente")
}

func TestCheckStatus_StillPending(t *testing.T) {
	f := newSubscriptionFixture(t)

	_, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "premium"})
	require.NoError(t, err)

	res, err := f.svc.CheckStatus(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.SubscriptionStatePending, res.State)

	// The pending marker stays until the admin decides.
	user, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	assert.NotNil(t, user.PaymentPending)
}

func TestCheckStatus_PaidActivatesSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)

	sub, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "premium"})
	require.NoError(t, err)

	_, err = f.svc.ApprovePayment(sub.PaymentID)
	require.NoError(t, err)

	res, err := f.svc.CheckStatus(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.SubscriptionStateActive, res.State)
	require.NotNil(t, res.Subscription)
	assert.Equal(t, "premium", res.Subscription.PlanID)
	assert.Equal(t, models.SubscriptionStatusActive, res.Subscription.Status)
	assert.True(t, res.Subscription.EndDate.After(res.Subscription.StartDate))

	user, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	assert.Nil(t, user.PaymentPending)
	require.NotNil(t, user.Subscription)
}

func TestCheckStatus_CancelledClearsPending(t *testing.T) {
	f := newSubscriptionFixture(t)

	sub, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "basico"})
	require.NoError(t, err)

	_, err = f.svc.CancelPayment(sub.PaymentID)
	require.NoError(t, err)

	res, err := f.svc.CheckStatus(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.SubscriptionStateNone, res.State)
	assert.Contains(t, res.Message, "cancelado")

	user, err := f.userRepo.FindByID(f.user.ID)
	require.NoError(t, err)
	assert.Nil(t, user.PaymentPending)
	assert.Nil(t, user.Subscription)
}

func TestApprovePayment_AlreadyDecided(t *testing.T) {
	f := newSubscriptionFixture(t)

	sub, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "basico"})
	require.NoError(t, err)

	_, err = f.svc.CancelPayment(sub.PaymentID)
	require.NoError(t, err)

	// Approving a cancelled payment is rejected.
	_, err = f.svc.ApprovePayment(sub.PaymentID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)

	// Re-approving an approved payment is idempotent.
	sub2, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "basico"})
	require.NoError(t, err)
	_, err = f.svc.ApprovePayment(sub2.PaymentID)
	require.NoError(t, err)
	payment, err := f.svc.ApprovePayment(sub2.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestPaymentHistory_FiltersByUser(t *testing.T) {
	f := newSubscriptionFixture(t)
	other := seedUser(t, f.userRepo, "João", "joao@test.com")

	_, err := f.svc.Subscribe(f.user.ID, &dto.SubscribeRequest{PlanID: "basico"})
	require.NoError(t, err)
	_, err = f.svc.Subscribe(other.ID, &dto.SubscribeRequest{PlanID: "vip"})
	require.NoError(t, err)

	history, err := f.svc.PaymentHistory(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, history.Total)
	assert.Equal(t, f.user.ID, history.Payments[0].UserID)

	all, err := f.svc.ListPayments()
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

func TestAddCalendarMonth(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain month", "2024-03-15", "2024-04-15"},
		{"jan 31 to leap feb", "2024-01-31", "2024-02-29"},
		{"jan 31 to regular feb", "2023-01-31", "2023-02-28"},
		{"mar 31 to apr 30", "2024-03-31", "2024-04-30"},
		{"dec rolls year", "2024-12-10", "2025-01-10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := time.Parse("2006-01-02", tc.in)
			require.NoError(t, err)
			got := addCalendarMonth(in)
			assert.Equal(t, tc.want, got.Format("2006-01-02"))
		})
	}
}
