package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"github.com/rawhoneyguide/honeyexplorer/pkg/common"
)

// NewsletterService handles newsletter signups.
type NewsletterService struct {
	repo NewsletterRepository
}

func NewNewsletterService(repo NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

// Subscribe stores a subscription for the normalized email address.
// It returns true for a new subscription and false when the address was
// already subscribed; a duplicate is an expected outcome, not an error.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	exists, err := s.repo.ExistsByEmail(ctx, normalized)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	sub := &domain.NewsletterSubscription{
		ID:           common.UUIDint64(),
		Email:        normalized,
		SubscribedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return false, err
	}
	return true, nil
}
