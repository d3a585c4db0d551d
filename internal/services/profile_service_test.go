package services

import (
	"net/http"
	"testing"

	"workhub_backend/internal/models"
	"workhub_backend/internal/services/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	f := newFixture(t)

	me, err := f.svc.ProfileService.GetMe(f.db, actorOf(f.worker))
	require.NoError(t, err)
	require.NotNil(t, me.Worker)
	assert.Nil(t, me.Client)
	assert.Equal(t, f.worker.ID, me.User.ID)

	me, err = f.svc.ProfileService.GetMe(f.db, actorOf(f.client))
	require.NoError(t, err)
	require.NotNil(t, me.Client)

	me, err = f.svc.ProfileService.GetMe(f.db, actorOf(f.admin))
	require.NoError(t, err)
	assert.Nil(t, me.Worker)
	assert.Nil(t, me.Client)
}

func TestUpdateWorkerProfile(t *testing.T) {
	f := newFixture(t)

	rate := decimal.NewFromInt(25)
	busy := models.AvailabilityBusy
	city := " Astana "
	updated, err := f.svc.ProfileService.UpdateWorkerProfile(f.db, actorOf(f.worker), &dto.UpdateWorkerProfileRequest{
		Skills:       []string{"Electrics", "electrics", " wiring "},
		HourlyRate:   &rate,
		Availability: &busy,
		City:         &city,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"electrics", "wiring"}, updated.Skills)
	assert.Equal(t, "Astana", updated.City)
	assert.Equal(t, "Medeu", updated.District, "untouched fields stay")

	stored, err := f.svc.ProfileService.GetWorkerProfile(f.db, f.worker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityBusy, stored.Availability)
	assert.True(t, rate.Equal(stored.HourlyRate))

	negative := decimal.NewFromInt(-1)
	_, err = f.svc.ProfileService.UpdateWorkerProfile(f.db, actorOf(f.worker), &dto.UpdateWorkerProfileRequest{HourlyRate: &negative})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))

	_, err = f.svc.ProfileService.UpdateWorkerProfile(f.db, actorOf(f.client), &dto.UpdateWorkerProfileRequest{})
	assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
}

func TestUpdateClientProfile(t *testing.T) {
	f := newFixture(t)

	company := "Acme"
	updated, err := f.svc.ProfileService.UpdateClientProfile(f.db, actorOf(f.client), &dto.UpdateClientProfileRequest{CompanyName: &company})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "Almaty", updated.City)

	_, err = f.svc.ProfileService.GetWorkerProfile(f.db, f.client.ID)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
