package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sirupsen/logrus"

	"github.com/ardnsyh/emergency_dispatch_system/internal/apperrors"
	"github.com/ardnsyh/emergency_dispatch_system/internal/models"
	svc "github.com/ardnsyh/emergency_dispatch_system/internal/service"
	"github.com/ardnsyh/emergency_dispatch_system/internal/service/mocks"
	webhook_mocks "github.com/ardnsyh/emergency_dispatch_system/internal/webhook/mocks"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*svc.IncidentServiceImpl, *mocks.MockIncidentRepository, *mocks.MockActorRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	actorsMock := mocks.NewMockActorRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := svc.NewIncidentService(repoMock, actorsMock, logger, publisherMock)
	return service.(*svc.IncidentServiceImpl), repoMock, actorsMock, publisherMock
}

func TestReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	input := &svc.ReportIncidentInput{
		Description: "Пожар в жилом доме",
		Latitude:    -6.2,
		Longitude:   106.8,
	}

	// Ожидания
	actorsMock.EXPECT().
		ResidentByUserID(ctx, int64(7)).
		Return(&models.Resident{ID: 3, UserID: 7}, nil).
		Times(1)
	actorsMock.EXPECT().
		InstitutionExists(ctx, int64(2)).
		Return(true, nil).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID и стартовый статус
			inc.ID = 10
			inc.Status = models.IncidentReported
			inc.ReportedAt = time.Now()
			return nil
		}).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	incident, err := service.Report(ctx, 7, 2, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(10), incident.ID)
	assert.Equal(t, int64(3), incident.ResidentID)
	assert.Equal(t, models.IncidentReported, incident.Status)
}

func TestReport_InstitutionNotFound(t *testing.T) {
	// Подготовка
	service, _, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().ResidentByUserID(ctx, int64(7)).Return(&models.Resident{ID: 3}, nil).Times(1)
	actorsMock.EXPECT().InstitutionExists(ctx, int64(99)).Return(false, nil).Times(1)

	// Действие
	incident, err := service.Report(ctx, 7, 99, &svc.ReportIncidentInput{Description: "тест"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetForInstitution_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.IncidentDetail{
		Incident: models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentReported},
	}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2, UserID: 8}, nil).Times(1)
	repoMock.EXPECT().GetIncidentFromCache(ctx, int64(5)).Return(expected, nil).Times(1)

	// Действие
	detail, err := service.GetForInstitution(ctx, 8, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, detail)
}

func TestGetForInstitution_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.IncidentDetail{
		Incident: models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentReported},
	}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetDetail(ctx, int64(5)).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	// Действие
	detail, err := service.GetForInstitution(ctx, 8, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, detail)
}

func TestGetForInstitution_ForeignIncidentHidden(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	foreign := &models.IncidentDetail{
		Incident: models.Incident{ID: 5, InstitutionID: 99},
	}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetIncidentFromCache(ctx, int64(5)).Return(foreign, nil).Times(1)

	// Действие
	detail, err := service.GetForInstitution(ctx, 8, 5)

	// Проверки: чужой инцидент неотличим от несуществующего
	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListForInstitution_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	incidents, err := service.ListForInstitution(ctx, 8, models.IncidentStatus("BOGUS"))

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDispatch_Success(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	vehicleIDs := []int64{4, 6}
	handled := &models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled}
	assignments := []*models.IncidentVehicleAssignment{
		{ID: 1, IncidentID: 5, VehicleID: 4, Status: models.AssignmentOnRoute},
		{ID: 2, IncidentID: 5, VehicleID: 6, Status: models.AssignmentOnRoute},
	}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentReported}, nil).Times(1)
	repoMock.EXPECT().Dispatch(ctx, int64(5), vehicleIDs).Return(handled, assignments, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	incident, got, err := service.Dispatch(ctx, 8, 5, vehicleIDs)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentHandled, incident.Status)
	assert.Len(t, got, 2)
}

func TestDispatch_EmptyVehicleList(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	_, _, err := service.Dispatch(ctx, 8, 5, nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDispatch_DuplicateVehicleIDs(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	_, _, err := service.Dispatch(ctx, 8, 5, []int64{4, 6, 4})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorContains(t, err, "duplicate vehicle id 4")
}

func TestDispatch_ConflictFromRepository(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	vehicleIDs := []int64{4}

	// Ожидания: репозиторий сообщает, что машина уже занята
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentReported}, nil).Times(1)
	repoMock.EXPECT().Dispatch(ctx, int64(5), vehicleIDs).
		Return(nil, nil, apperrors.Conflictf("vehicle 4 already dispatched")).Times(1)

	// Действие
	_, _, err := service.Dispatch(ctx, 8, 5, vehicleIDs)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDispatch_ForeignIncident(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 99, Status: models.IncidentReported}, nil).Times(1)

	// Действие
	_, _, err := service.Dispatch(ctx, 8, 5, []int64{4})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReject_Success(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	rejected := &models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentRejected}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentReported}, nil).Times(1)
	repoMock.EXPECT().Reject(ctx, int64(5)).Return(rejected, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	incident, err := service.Reject(ctx, 8, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentRejected, incident.Status)
}

func TestFinalize_VehiclesStillOut(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled}, nil).Times(1)
	repoMock.EXPECT().Finalize(ctx, int64(5)).
		Return(nil, apperrors.Conflictf("incident 5 has 1 vehicles still out")).Times(1)

	// Действие
	_, err := service.Finalize(ctx, 8, 5)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestFinalize_Success(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	completed := &models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentCompleted}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled}, nil).Times(1)
	repoMock.EXPECT().Finalize(ctx, int64(5)).Return(completed, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	incident, err := service.Finalize(ctx, 8, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentCompleted, incident.Status)
}

func TestFinalize_PublishFailureDoesNotFail(t *testing.T) {
	// Подготовка: сбой публикации события не должен ронять операцию
	service, repoMock, actorsMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	completed := &models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentCompleted}

	// Ожидания
	actorsMock.EXPECT().InstitutionByUserID(ctx, int64(8)).Return(&models.Institution{ID: 2}, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, int64(5)).
		Return(&models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled}, nil).Times(1)
	repoMock.EXPECT().Finalize(ctx, int64(5)).Return(completed, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(assert.AnError).Times(1)

	// Действие
	incident, err := service.Finalize(ctx, 8, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentCompleted, incident.Status)
}

func TestListForResident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, actorsMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{
		{ID: 10, ResidentID: 3, InstitutionID: 2, Status: models.IncidentReported},
	}

	// Ожидания
	actorsMock.EXPECT().ResidentByUserID(ctx, int64(7)).Return(&models.Resident{ID: 3, UserID: 7}, nil).Times(1)
	repoMock.EXPECT().ListByResident(ctx, int64(3), models.IncidentReported).Return(expected, nil).Times(1)

	// Действие
	incidents, err := service.ListForResident(ctx, 7, models.IncidentReported)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListForResident_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestIncidentService(t)

	// Действие
	incidents, err := service.ListForResident(context.Background(), 7, "BURNING")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
