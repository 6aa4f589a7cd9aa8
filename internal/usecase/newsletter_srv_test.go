package usecase

import (
	"context"
	"testing"

	"ora-booking/internal/dto/request"
	"ora-booking/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeSendsWelcome(t *testing.T) {
	d := newTestDeps()

	resp, err := d.newsletterService().Subscribe(context.Background(), &request.SubscribeRequest{
		Email: "Reader@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", resp.Email)
	assert.True(t, resp.IsActive)

	require.Equal(t, 1, d.mailer.count())
	assert.Equal(t, "reader@example.com", d.mailer.sent[0].To)
	assert.Contains(t, d.mailer.sent[0].Body, "/api/newsletter/unsubscribe/")
}

func TestSubscribeTwiceIsIdempotent(t *testing.T) {
	d := newTestDeps()
	svc := d.newsletterService()

	_, err := svc.Subscribe(context.Background(), &request.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), &request.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	count, _ := d.subs.CountAll(context.Background(), false)
	assert.EqualValues(t, 1, count)
	// Welcome mail only on first subscribe.
	assert.Equal(t, 1, d.mailer.count())
}

func TestSubscribeReactivatesUnsubscribed(t *testing.T) {
	d := newTestDeps()
	svc := d.newsletterService()

	_, err := svc.Subscribe(context.Background(), &request.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	sub, err := d.subs.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), sub.UnsubscribeToken))

	resp, err := svc.Subscribe(context.Background(), &request.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.True(t, resp.IsActive)

	again, err := d.subs.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.True(t, again.IsActive)
	assert.Nil(t, again.UnsubscribedAt)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	d := newTestDeps()
	svc := d.newsletterService()

	_, err := svc.Subscribe(context.Background(), &request.SubscribeRequest{Email: "reader@example.com"})
	require.NoError(t, err)

	sub, err := d.subs.FindByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), sub.UnsubscribeToken))
	require.NoError(t, svc.Unsubscribe(context.Background(), sub.UnsubscribeToken))

	again, _ := d.subs.FindByEmail(context.Background(), "reader@example.com")
	assert.False(t, again.IsActive)
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	d := newTestDeps()

	err := d.newsletterService().Unsubscribe(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	d := newTestDeps()

	_, err := d.newsletterService().Subscribe(context.Background(), &request.SubscribeRequest{Email: "not-an-email"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}
