package services

import (
	"fmt"
	"time"

	"gastropass_backend/internal/handoff"
	"gastropass_backend/internal/logger"
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// SubscriptionService drives the manual payment workflow: Subscribe opens a
// pending payment and hands the user off to the operator chat; CheckStatus
// reconciles whatever the admin decided since.
type SubscriptionService interface {
	Subscribe(userID string, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error)
	CheckStatus(userID string) (*dto.CheckStatusResponse, error)
	Info(userID string) (*dto.SubscriptionInfoResponse, error)
	PaymentHistory(userID string) (*dto.PaymentListResponse, error)

	ListPayments() (*dto.PaymentListResponse, error)
	ApprovePayment(paymentID string) (*models.Payment, error)
	CancelPayment(paymentID string) (*models.Payment, error)
}

type subscriptionService struct {
	userRepo    repositories.UserRepository
	planRepo    repositories.PlanRepository
	paymentRepo repositories.PaymentRepository
	whatsapp    *handoff.WhatsApp
}

func NewSubscriptionService(
	userRepo repositories.UserRepository,
	planRepo repositories.PlanRepository,
	paymentRepo repositories.PaymentRepository,
	whatsapp *handoff.WhatsApp,
) SubscriptionService {
	return &subscriptionService{
		userRepo:    userRepo,
		planRepo:    planRepo,
		paymentRepo: paymentRepo,
		whatsapp:    whatsapp,
	}
}

// Subscribe records a pending payment for the chosen plan and returns the
// handoff link. The active subscription, if any, is left untouched until the
// payment is confirmed.
func (s *subscriptionService) Subscribe(userID string, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	plan, err := s.planRepo.FindByID(req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Subscribing again abandons the previous attempt. The orphaned payment
	// is cancelled so the admin queue does not fill with dead entries.
	if user.PaymentPending != nil {
		if err := s.cancelOrphan(user.PaymentPending.PaymentID); err != nil {
			return nil, err
		}
	}

	payment := &models.Payment{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Date:        time.Now().Format(models.PaymentDateLayout),
		Description: "Assinatura " + plan.Name,
		Amount:      plan.Price,
		Status:      models.PaymentStatusPending,
		PlanID:      plan.ID,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user.PaymentPending = &models.PaymentPending{
		PaymentID: payment.ID,
		PlanID:    plan.ID,
	}
	if err := s.userRepo.Save(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("subscription requested",
		"user_id", user.ID, "plan_id", plan.ID, "payment_id", payment.ID)

	return &dto.SubscribeResponse{
		PaymentID:  payment.ID,
		PlanID:     plan.ID,
		Amount:     plan.Price,
		Status:     string(payment.Status),
		HandoffURL: s.whatsapp.PaymentLink(user, plan, payment.ID),
		Message:    "Envie a mensagem pelo WhatsApp para confirmar o pagamento.",
	}, nil
}

// CheckStatus reconciles the user's pending payment against whatever the
// admin decided. Confirmation activates the subscription for one calendar
// month; cancellation just clears the pending marker.
func (s *subscriptionService) CheckStatus(userID string) (*dto.CheckStatusResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.PaymentPending == nil {
		return &dto.CheckStatusResponse{
			State:        subscriptionState(user),
			Message:      "Nenhum pagamento pendente.",
			Subscription: user.Subscription,
		}, nil
	}

	payment, err := s.paymentRepo.FindByID(user.PaymentPending.PaymentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			// The referenced payment is gone. Report a null result and
			// change nothing; a later subscribe overwrites the marker.
			return &dto.CheckStatusResponse{
				State:        subscriptionState(user),
				Message:      "Nenhum pagamento pendente.",
				Subscription: user.Subscription,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	switch payment.Status {
	case models.PaymentStatusPaid:
		now := time.Now()
		user.Subscription = &models.Subscription{
			PlanID:    payment.PlanID,
			StartDate: now,
			EndDate:   addCalendarMonth(now),
			Status:    models.SubscriptionStatusActive,
		}
		user.PaymentPending = nil
		if err := s.userRepo.Save(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
		logger.Info("subscription activated", "user_id", user.ID, "plan_id", payment.PlanID)
		return &dto.CheckStatusResponse{
			State:        dto.SubscriptionStateActive,
			Message:      "Pagamento confirmado! Sua assinatura está ativa.",
			Subscription: user.Subscription,
		}, nil

	case models.PaymentStatusCancelled:
		user.PaymentPending = nil
		if err := s.userRepo.Save(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.CheckStatusResponse{
			State:        subscriptionState(user),
			Message:      "Pagamento cancelado. Escolha um plano para assinar novamente.",
			Subscription: user.Subscription,
		}, nil

	default:
		return &dto.CheckStatusResponse{
			State:        dto.SubscriptionStatePending,
			Message:      "Pagamento ainda em processamento. Tente novamente em alguns minutos.",
			Subscription: user.Subscription,
		}, nil
	}
}

func (s *subscriptionService) Info(userID string) (*dto.SubscriptionInfoResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	res := &dto.SubscriptionInfoResponse{
		State:          subscriptionState(user),
		Subscription:   user.Subscription,
		PaymentPending: user.PaymentPending,
	}

	if user.Subscription != nil {
		if plan, err := s.planRepo.FindByID(user.Subscription.PlanID); err == nil {
			res.Plan = plan
		}
	}
	return res, nil
}

func (s *subscriptionService) PaymentHistory(userID string) (*dto.PaymentListResponse, error) {
	payments, err := s.paymentRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return &dto.PaymentListResponse{Payments: payments, Total: len(payments)}, nil
}

func (s *subscriptionService) ListPayments() (*dto.PaymentListResponse, error) {
	payments, err := s.paymentRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return &dto.PaymentListResponse{Payments: payments, Total: len(payments)}, nil
}

func (s *subscriptionService) ApprovePayment(paymentID string) (*models.Payment, error) {
	return s.setPaymentStatus(paymentID, models.PaymentStatusPaid)
}

func (s *subscriptionService) CancelPayment(paymentID string) (*models.Payment, error) {
	return s.setPaymentStatus(paymentID, models.PaymentStatusCancelled)
}

func (s *subscriptionService) setPaymentStatus(paymentID string, status models.PaymentStatus) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(paymentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if payment.Status == status {
		return payment, nil
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Payment is already %s", payment.Status))
	}

	payment.Status = status
	if err := s.paymentRepo.Save(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("payment status updated", "payment_id", payment.ID, "status", string(status))
	return payment, nil
}

// cancelOrphan flips the user's previous pending payment to cancelled. A
// payment that disappeared or was already decided is left alone.
func (s *subscriptionService) cancelOrphan(paymentID string) error {
	payment, err := s.paymentRepo.FindByID(paymentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if payment.Status != models.PaymentStatusPending {
		return nil
	}

	payment.Status = models.PaymentStatusCancelled
	if err := s.paymentRepo.Save(payment); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// subscriptionState derives the reportable state from the user document.
// Status is taken at face value; flipping an overdue subscription to
// "inativo" is the notification sweep's job, not the reader's.
func subscriptionState(user *models.User) string {
	if user.Subscription != nil {
		if user.Subscription.Status == models.SubscriptionStatusActive {
			return dto.SubscriptionStateActive
		}
		return dto.SubscriptionStateExpired
	}
	if user.PaymentPending != nil {
		return dto.SubscriptionStatePending
	}
	return dto.SubscriptionStateNone
}

// addCalendarMonth advances one calendar month, clamping to the last day of
// the target month so Jan 31 lands on Feb 28/29 instead of Mar 2/3.
func addCalendarMonth(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfNext := time.Date(year, month+1, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
