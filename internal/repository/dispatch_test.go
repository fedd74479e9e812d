package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
)

func TestSameDriverConflict_SharedDriver(t *testing.T) {
	// Подготовка: машины 10 и 11 закреплены за одним водителем
	locked := map[int64]lockedVehicle{
		10: {driverID: 3, isReady: true},
		11: {driverID: 3, isReady: true},
		12: {driverID: 4, isReady: true},
	}

	// Действие
	first, second, found := sameDriverConflict([]int64{10, 12, 11}, locked)

	// Проверки: пара возвращается в порядке запроса
	require.True(t, found)
	assert.Equal(t, int64(10), first)
	assert.Equal(t, int64(11), second)
}

func TestSameDriverConflict_DistinctDrivers(t *testing.T) {
	// Подготовка
	locked := map[int64]lockedVehicle{
		10: {driverID: 3, isReady: true},
		11: {driverID: 4, isReady: true},
	}

	// Действие
	_, _, found := sameDriverConflict([]int64{10, 11}, locked)

	// Проверки
	assert.False(t, found)
}

func TestDispatchGuard(t *testing.T) {
	// Диспетчеризация допустима только из REPORTED
	assert.NoError(t, dispatchGuard(5, models.IncidentReported))

	for _, status := range []models.IncidentStatus{
		models.IncidentHandled,
		models.IncidentCompleted,
		models.IncidentRejected,
	} {
		err := dispatchGuard(5, status)
		require.Error(t, err, status)
		assert.ErrorIs(t, err, apperrors.ErrConflict, status)
	}
}

func TestFinalizeGuard(t *testing.T) {
	// Финализация допустима только из HANDLED
	assert.NoError(t, finalizeGuard(5, models.IncidentHandled))

	// Повторная финализация различима по сообщению
	err := finalizeGuard(5, models.IncidentCompleted)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "already finalized")

	for _, status := range []models.IncidentStatus{
		models.IncidentReported,
		models.IncidentRejected,
	} {
		err := finalizeGuard(5, status)
		require.Error(t, err, status)
		assert.ErrorIs(t, err, apperrors.ErrConflict, status)
	}
}
