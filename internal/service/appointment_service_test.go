package service

import (
	"context"
	"testing"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentService(t *testing.T) (AppointmentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAppointmentService(
		db,
		repository.NewAppointmentRepository(db),
		repository.NewStatusHistoryRepository(db),
		nil,
		nil,
	)
	return svc, db
}

func createTestAppointment(t *testing.T, svc AppointmentService) *model.AppointmentModel {
	t.Helper()
	appointment, err := svc.Create(context.Background(), &CreateAppointmentRequest{
		PersonName:       "Maria Santos",
		PersonPhone:      "+55 11 91234-5678",
		ProfessionalID:   "prof-002",
		ProfessionalName: "Dr. Silva",
		ServiceType:      "psicologica",
		ScheduledAt:      time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		Notes:            "primeira consulta",
	})
	require.NoError(t, err)
	return appointment
}

func TestAppointmentCreateStartsAgendado(t *testing.T) {
	svc, _ := newAppointmentService(t)

	appointment := createTestAppointment(t, svc)
	assert.Equal(t, "agendado", appointment.Status)

	history, err := svc.GetHistory(appointment.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "", history[0].FromStatus)
	assert.Equal(t, "agendado", history[0].ToStatus)
	assert.Equal(t, "appointment", history[0].RecordType)
}

func TestAppointmentTransitionLifecycle(t *testing.T) {
	svc, _ := newAppointmentService(t)
	appointment := createTestAppointment(t, svc)

	for _, status := range []string{"confirmado", "concluido"} {
		_, err := svc.Transition(context.Background(), appointment.ID, &TransitionRequest{
			Status:    status,
			ActorName: "Dr. Silva",
		})
		require.NoError(t, err)
	}

	got, err := svc.Get(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "concluido", got.Status)

	history, err := svc.GetHistory(appointment.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, got.Status, history[len(history)-1].ToStatus)
}

func TestAppointmentTransitionRejectsHelpRequestStatus(t *testing.T) {
	svc, _ := newAppointmentService(t)
	appointment := createTestAppointment(t, svc)

	// 预约没有 pendente 状态,枚举校验按记录类型区分
	_, err := svc.Transition(context.Background(), appointment.ID, &TransitionRequest{Status: "pendente"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestAppointmentTransitionUnknownRecord(t *testing.T) {
	svc, db := newAppointmentService(t)

	_, err := svc.Transition(context.Background(), "nao-existe", &TransitionRequest{Status: "confirmado"})
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.StatusHistoryModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAppointmentUpdateKeepsStatus(t *testing.T) {
	svc, _ := newAppointmentService(t)
	appointment := createTestAppointment(t, svc)

	newName := "Maria S. Oliveira"
	newTime := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), appointment.ID, &UpdateAppointmentRequest{
		PersonName:  &newName,
		ScheduledAt: &newTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria S. Oliveira", updated.PersonName)
	assert.True(t, updated.ScheduledAt.Equal(newTime))
	// 更新基础字段不触碰状态
	assert.Equal(t, "agendado", updated.Status)

	history, err := svc.GetHistory(appointment.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAppointmentUpdateUnknownRecord(t *testing.T) {
	svc, _ := newAppointmentService(t)

	name := "alguém"
	_, err := svc.Update(context.Background(), "nao-existe", &UpdateAppointmentRequest{PersonName: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentListByServiceType(t *testing.T) {
	svc, _ := newAppointmentService(t)
	createTestAppointment(t, svc)

	serviceType := "psicologica"
	appointments, err := svc.List(&repository.AppointmentFilter{ServiceType: &serviceType})
	require.NoError(t, err)
	assert.Len(t, appointments, 1)

	other := "juridica"
	appointments, err = svc.List(&repository.AppointmentFilter{ServiceType: &other})
	require.NoError(t, err)
	assert.Empty(t, appointments)
}
