package usecase

import (
	"context"
	"testing"

	"ora-booking/internal/dto/request"
	"ora-booking/pkg/apperr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceGeneratesSlugFromTitle(t *testing.T) {
	d := newTestDeps()

	resp, err := d.catalogService().CreateService(context.Background(), &request.CreateServiceRequest{
		Title:       "Aircond Deep Cleaning",
		Description: "Full split-unit chemical wash",
	})
	require.NoError(t, err)
	assert.Equal(t, "aircond-deep-cleaning", resp.Slug)
	assert.True(t, resp.IsActive)
}

func TestCreateServiceKeepsProvidedSlug(t *testing.T) {
	d := newTestDeps()

	resp, err := d.catalogService().CreateService(context.Background(), &request.CreateServiceRequest{
		Title:       "Aircond Deep Cleaning",
		Slug:        "chemical-wash",
		Description: "Full split-unit chemical wash",
	})
	require.NoError(t, err)
	assert.Equal(t, "chemical-wash", resp.Slug)
}

func TestCreateServiceRejectsDuplicateSlug(t *testing.T) {
	d := newTestDeps()
	seedService(d, "Chemical Wash", 180)

	_, err := d.catalogService().CreateService(context.Background(), &request.CreateServiceRequest{
		Title:       "Another Wash",
		Slug:        "chemical-wash",
		Description: "duplicate",
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "slug")
}

func TestUpdateServiceNeverRegeneratesSlug(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Chemical Wash", 180)

	title := "Premium Chemical Wash"
	resp, err := d.catalogService().UpdateService(context.Background(), svc.ID.String(), &request.UpdateServiceRequest{
		Title: &title,
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium Chemical Wash", resp.Title)
	assert.Equal(t, "chemical-wash", resp.Slug)
}

func TestGetServiceBySlugHidesInactive(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Chemical Wash", 180)
	svc.IsActive = false

	_, err := d.catalogService().GetServiceBySlug(context.Background(), svc.Slug)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteServiceBlockedByBookings(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Chemical Wash", 180)

	_, err := d.bookingService().CreateBooking(context.Background(), "", validCreateRequest(svc))
	require.NoError(t, err)

	err = d.catalogService().DeleteService(context.Background(), svc.ID.String())
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// Service still present.
	found, ferr := d.svcs.FindByID(context.Background(), svc.ID)
	require.NoError(t, ferr)
	assert.NotNil(t, found)
}

func TestDeleteServiceForeignKeyRaceIsConflict(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Chemical Wash", 180)

	// A booking referenced the service after the count check.
	d.svcs.deleteErr = &pgconn.PgError{Code: "23503"}

	err := d.catalogService().DeleteService(context.Background(), svc.ID.String())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestDeleteServiceWithoutBookings(t *testing.T) {
	d := newTestDeps()
	svc := seedService(d, "Chemical Wash", 180)

	err := d.catalogService().DeleteService(context.Background(), svc.ID.String())
	require.NoError(t, err)

	found, ferr := d.svcs.FindByID(context.Background(), svc.ID)
	require.NoError(t, ferr)
	assert.Nil(t, found)
}
