package catalog

import (
	"context"
	"testing"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNewsletterRepo struct {
	existing map[string]bool
	created  []*domain.NewsletterSubscription
}

func (f *fakeNewsletterRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.existing[email], nil
}

func (f *fakeNewsletterRepo) Create(_ context.Context, sub *domain.NewsletterSubscription) error {
	f.created = append(f.created, sub)
	return nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := &fakeNewsletterRepo{existing: map[string]bool{}}
	svc := NewNewsletterService(repo)

	created, err := svc.Subscribe(context.Background(), "  Bee.Fan@Example.COM ")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "bee.fan@example.com", repo.created[0].Email)
	assert.NotZero(t, repo.created[0].ID)
	assert.False(t, repo.created[0].SubscribedAt.IsZero())
}

func TestSubscribeDuplicateIsNotAnError(t *testing.T) {
	repo := &fakeNewsletterRepo{existing: map[string]bool{"bee.fan@example.com": true}}
	svc := NewNewsletterService(repo)

	created, err := svc.Subscribe(context.Background(), "Bee.Fan@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, repo.created)
}
