package newsletter

import (
	"context"
	"time"

	"github.com/greenbasket/storefront/cmd/config"
	"github.com/greenbasket/storefront/constant"
	"github.com/greenbasket/storefront/model"
	newsletterrepo "github.com/greenbasket/storefront/repository/newsletter"
	"github.com/greenbasket/storefront/thirdparty/rabbitmq"
	"github.com/greenbasket/storefront/utils/errors"
	"github.com/greenbasket/storefront/utils/logger"
	"go.uber.org/zap"
)

type NewsletterApp interface {
	Subscribe(ctx context.Context, req *model.NewsletterSubscribeRequest) (*model.NewsletterSubscribeResponse, error)
	DispatchWelcome(ctx context.Context, subscriberID uint64) error
}

type newsletterAppImpl struct {
	config         *config.Config
	newsletterRepo newsletterrepo.NewsletterRepository
	publisher      *rabbitmq.Publisher
}

func NewNewsletterApp(config *config.Config, newsletterRepo newsletterrepo.NewsletterRepository, publisher *rabbitmq.Publisher) NewsletterApp {
	return &newsletterAppImpl{
		config:         config,
		newsletterRepo: newsletterRepo,
		publisher:      publisher,
	}
}

// Subscribe records the email (idempotent on duplicates) and schedules the
// delayed welcome message. A publish failure is logged, not surfaced: the
// subscription itself succeeded.
func (s *newsletterAppImpl) Subscribe(ctx context.Context, req *model.NewsletterSubscribeRequest) (*model.NewsletterSubscribeResponse, error) {
	subscriberID, err := s.newsletterRepo.Subscribe(ctx, req.Email)
	if err != nil {
		logger.Error("[Subscribe] error newsletterRepo.Subscribe", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		msg := rabbitmq.WelcomeEmailMessage{
			SubscriberID: subscriberID,
			Email:        req.Email,
			SendAt:       time.Now().Add(s.config.Storefront.WelcomeEmailDelay),
		}
		if err := s.publisher.PublishWelcomeEmail(msg); err != nil {
			logger.Error("[Subscribe] publish welcome email", zap.String("error", err.Error()))
		}
	}

	return &model.NewsletterSubscribeResponse{Email: req.Email}, nil
}

// DispatchWelcome is invoked by the queue consumer through the internal API.
func (s *newsletterAppImpl) DispatchWelcome(ctx context.Context, subscriberID uint64) error {
	sub, err := s.newsletterRepo.GetByID(ctx, subscriberID)
	if err != nil {
		logger.Error("[DispatchWelcome] error newsletterRepo.GetByID", zap.Uint64("subscriber_id", subscriberID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if sub == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if sub.WelcomedAt != nil {
		// already welcomed, redelivery is a no-op
		return nil
	}

	if err := s.newsletterRepo.MarkWelcomed(ctx, subscriberID); err != nil {
		logger.Error("[DispatchWelcome] error newsletterRepo.MarkWelcomed", zap.Uint64("subscriber_id", subscriberID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("welcome email dispatched", zap.Uint64("subscriber_id", subscriberID), zap.String("email", sub.Email))
	return nil
}
