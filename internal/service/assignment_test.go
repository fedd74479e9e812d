package service_test

import (
	"bytes"
	"context"
	"testing"

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

func newTestAssignmentService(t *testing.T) (*svc.AssignmentServiceImpl, *mocks.MockAssignmentRepository, *mocks.MockIncidentRepository, *mocks.MockActorRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAssignmentRepository(ctrl)
	incidentRepoMock := mocks.NewMockIncidentRepository(ctrl)
	actorsMock := mocks.NewMockActorRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := svc.NewAssignmentService(repoMock, incidentRepoMock, actorsMock, logger, publisherMock)
	return service.(*svc.AssignmentServiceImpl), repoMock, incidentRepoMock, actorsMock, publisherMock
}

func TestArrive_Success(t *testing.T) {
	// Подготовка
	service, repoMock, incidentRepoMock, actorsMock, publisherMock := newTestAssignmentService(t)
	ctx := context.Background()
	arrived := &models.IncidentVehicleAssignment{
		ID:         1,
		IncidentID: 5,
		VehicleID:  4,
		DriverID:   3,
		Status:     models.AssignmentArrived,
	}

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3, UserID: 9}, nil).Times(1)
	repoMock.EXPECT().Arrive(ctx, int64(5), int64(3)).Return(arrived, nil).Times(1)
	incidentRepoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	assignment, err := service.Arrive(ctx, 9, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentArrived, assignment.Status)
}

func TestComplete_Success(t *testing.T) {
	// Подготовка
	service, repoMock, incidentRepoMock, actorsMock, publisherMock := newTestAssignmentService(t)
	ctx := context.Background()
	completed := &models.IncidentVehicleAssignment{
		ID:         1,
		IncidentID: 5,
		VehicleID:  4,
		DriverID:   3,
		Status:     models.AssignmentCompleted,
	}

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3}, nil).Times(1)
	repoMock.EXPECT().Complete(ctx, int64(5), int64(3)).Return(completed, nil).Times(1)
	incidentRepoMock.EXPECT().InvalidateIncidentCache(ctx, int64(5)).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	assignment, err := service.Complete(ctx, 9, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, assignment.Status)
}

func TestComplete_WithoutArrival(t *testing.T) {
	// Подготовка: завершить можно только из ARRIVED, репозиторий не находит
	// подходящего назначения
	service, repoMock, _, actorsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3}, nil).Times(1)
	repoMock.EXPECT().Complete(ctx, int64(5), int64(3)).
		Return(nil, apperrors.NotFoundf("no ARRIVED assignment on incident 5 for this driver")).Times(1)

	// Действие
	assignment, err := service.Complete(ctx, 9, 5)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, assignment)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestArrive_CallerIsNotDriver(t *testing.T) {
	// Подготовка
	service, _, _, actorsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).
		Return(nil, apperrors.NotFoundf("driver profile for user 9")).Times(1)

	// Действие
	assignment, err := service.Arrive(ctx, 9, 5)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, assignment)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListForDriver_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, actorsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	expected := []*models.Incident{
		{ID: 5, Status: models.IncidentHandled},
		{ID: 6, Status: models.IncidentHandled},
	}

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3}, nil).Times(1)
	repoMock.EXPECT().ListIncidentsByDriver(ctx, int64(3), models.AssignmentOnRoute).Return(expected, nil).Times(1)

	// Действие
	incidents, err := service.ListForDriver(ctx, 9, models.AssignmentOnRoute)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListForDriver_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _, _, _, _ := newTestAssignmentService(t)
	ctx := context.Background()

	// Действие
	incidents, err := service.ListForDriver(ctx, 9, models.AssignmentStatus("BOGUS"))

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetForDriver_Success(t *testing.T) {
	// Подготовка
	service, _, incidentRepoMock, actorsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	expected := &models.IncidentDetail{
		Incident: models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled},
		Assignments: []*models.IncidentVehicleAssignment{
			{ID: 1, IncidentID: 5, VehicleID: 4, DriverID: 3, Status: models.AssignmentOnRoute},
		},
	}

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3, UserID: 9}, nil).Times(1)
	incidentRepoMock.EXPECT().GetIncidentFromCache(ctx, int64(5)).Return(nil, nil).Times(1)
	incidentRepoMock.EXPECT().GetDetail(ctx, int64(5)).Return(expected, nil).Times(1)
	incidentRepoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	// Действие
	detail, err := service.GetForDriver(ctx, 9, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, detail)
}

func TestGetForDriver_NotAssigned(t *testing.T) {
	// Подготовка: все назначения инцидента принадлежат другому водителю
	service, _, incidentRepoMock, actorsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	foreign := &models.IncidentDetail{
		Incident: models.Incident{ID: 5, InstitutionID: 2, Status: models.IncidentHandled},
		Assignments: []*models.IncidentVehicleAssignment{
			{ID: 1, IncidentID: 5, VehicleID: 4, DriverID: 8, Status: models.AssignmentOnRoute},
		},
	}

	// Ожидания
	actorsMock.EXPECT().DriverByUserID(ctx, int64(9)).Return(&models.Driver{ID: 3, UserID: 9}, nil).Times(1)
	incidentRepoMock.EXPECT().GetIncidentFromCache(ctx, int64(5)).Return(foreign, nil).Times(1)

	// Действие
	detail, err := service.GetForDriver(ctx, 9, 5)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
