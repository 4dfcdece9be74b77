package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"gastropass_backend/internal/logger"
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/services/dto"
	"gastropass_backend/pkg/apperrors"
)

// NotificationService runs the batch sweep over all users: expiring
// subscriptions get flipped, near-expiry users get a reminder, and freshly
// confirmed payments get a welcome line. Produced lines are kept in an
// in-memory log the admin can read back.
type NotificationService interface {
	RunSweep(today time.Time) (*dto.SweepResult, error)
	Log() *dto.NotificationLogResponse
	ClearLog()
}

type notificationService struct {
	userRepo    repositories.UserRepository
	paymentRepo repositories.PaymentRepository

	mu  sync.Mutex
	log []string
}

func NewNotificationService(userRepo repositories.UserRepository, paymentRepo repositories.PaymentRepository) NotificationService {
	return &notificationService{
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *notificationService) RunSweep(today time.Time) (*dto.SweepResult, error) {
	users, err := s.userRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	payments, err := s.paymentRepo.All()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var notifications []string
	usersChanged := false
	paymentsChanged := false

	for i := range users {
		user := &users[i]

		if user.Subscription != nil && user.Subscription.Status == models.SubscriptionStatusActive {
			days := daysUntil(today, user.Subscription.EndDate)
			switch {
			case days < 0:
				user.Subscription.Status = models.SubscriptionStatusInactive
				usersChanged = true
				notifications = append(notifications, fmt.Sprintf(
					"Olá %s, sua assinatura expirou. Renove para continuar aproveitando os benefícios!",
					user.Name))
			case days == 3:
				// Fires on every sweep while exactly three days remain.
				notifications = append(notifications, fmt.Sprintf(
					"Olá %s, sua assinatura expira em 3 dias. Renove para não perder os benefícios!",
					user.Name))
			}
		}

		for j := range payments {
			payment := &payments[j]
			if payment.UserID != user.ID ||
				payment.Status != models.PaymentStatusPaid ||
				payment.NotificationSent {
				continue
			}

			// A confirmed payment the user never checked on still activates
			// the subscription here.
			if user.PaymentPending != nil && user.PaymentPending.PaymentID == payment.ID {
				user.Subscription = &models.Subscription{
					PlanID:    payment.PlanID,
					StartDate: today,
					EndDate:   addCalendarMonth(today),
					Status:    models.SubscriptionStatusActive,
				}
				user.PaymentPending = nil
				usersChanged = true
			} else if user.Subscription != nil && user.Subscription.Status != models.SubscriptionStatusActive {
				// An orphaned paid payment still counts: the user paid, so
				// an inactive subscription is flipped back on.
				user.Subscription.Status = models.SubscriptionStatusActive
				usersChanged = true
			}

			payment.NotificationSent = true
			paymentsChanged = true
			notifications = append(notifications, fmt.Sprintf(
				"Olá %s, seu pagamento de R$ %.2f foi confirmado! Aproveite o Gastro Pass.",
				user.Name, payment.Amount))
		}
	}

	if usersChanged {
		if err := s.userRepo.ReplaceAll(users); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if paymentsChanged {
		if err := s.paymentRepo.ReplaceAll(payments); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	s.mu.Lock()
	s.log = append(s.log, notifications...)
	s.mu.Unlock()

	logger.Info("notification sweep completed",
		"users_checked", len(users), "notifications", len(notifications))

	if notifications == nil {
		notifications = []string{}
	}
	return &dto.SweepResult{
		Notifications: notifications,
		Count:         len(notifications),
		UsersChecked:  len(users),
	}, nil
}

func (s *notificationService) Log() *dto.NotificationLogResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.log))
	copy(out, s.log)
	return &dto.NotificationLogResponse{Notifications: out, Total: len(out)}
}

func (s *notificationService) ClearLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = nil
}

// daysUntil counts whole days remaining, rounding up. An end date earlier
// today rounds to zero, so the expiry flip waits until the day after.
func daysUntil(now, end time.Time) int {
	return int(math.Ceil(end.Sub(now).Hours() / 24))
}
