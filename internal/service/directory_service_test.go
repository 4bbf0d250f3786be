package service

import (
	"context"
	"testing"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDirectoryService(t *testing.T) (DirectoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewDirectoryService(
		repository.NewVisitorRepository(db),
		repository.NewProjectRepository(db),
		repository.NewVolunteerRepository(db),
		repository.NewLeaderRepository(db),
		nil,
	)
	return svc, db
}

func TestVisitorLifecycle(t *testing.T) {
	svc, _ := newDirectoryService(t)

	visitor, err := svc.CreateVisitor(context.Background(), &CreateVisitorRequest{
		Name:       "Carlos Lima",
		Phone:      "+55 11 98765-4321",
		VisitDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		InvitedBy:  "Maria Santos",
		WantsVisit: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "novo", visitor.Status)

	updated, err := svc.UpdateVisitorStatus(context.Background(), visitor.ID, "contatado")
	require.NoError(t, err)
	assert.Equal(t, "contatado", updated.Status)

	got, err := svc.GetVisitor(visitor.ID)
	require.NoError(t, err)
	assert.Equal(t, "contatado", got.Status)

	require.NoError(t, svc.DeleteVisitor(context.Background(), visitor.ID))
	_, err = svc.GetVisitor(visitor.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVisitorStatusValidation(t *testing.T) {
	svc, _ := newDirectoryService(t)

	visitor, err := svc.CreateVisitor(context.Background(), &CreateVisitorRequest{
		Name:      "Carlos Lima",
		VisitDate: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateVisitorStatus(context.Background(), visitor.ID, "sumiu")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateVisitorStatus(context.Background(), "nao-existe", "contatado")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVisitorListByStatus(t *testing.T) {
	svc, _ := newDirectoryService(t)

	first, err := svc.CreateVisitor(context.Background(), &CreateVisitorRequest{Name: "A", VisitDate: time.Now()})
	require.NoError(t, err)
	_, err = svc.CreateVisitor(context.Background(), &CreateVisitorRequest{Name: "B", VisitDate: time.Now()})
	require.NoError(t, err)

	_, err = svc.UpdateVisitorStatus(context.Background(), first.ID, "integrado")
	require.NoError(t, err)

	status := "integrado"
	visitors, err := svc.ListVisitors(&repository.VisitorFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, first.ID, visitors[0].ID)
}

func TestProjectAndVolunteers(t *testing.T) {
	svc, _ := newDirectoryService(t)

	project, err := svc.CreateProject(context.Background(), &CreateProjectRequest{
		Name:        "Cesta Básica",
		Description: "distribuição mensal de alimentos",
		Coordinator: "Ana Costa",
	})
	require.NoError(t, err)
	assert.True(t, project.Active)

	// 志愿者必须挂在已存在的项目上
	_, err = svc.AddVolunteer(context.Background(), &AddVolunteerRequest{
		ProjectID: "nao-existe",
		Name:      "Pedro Souza",
	})
	require.ErrorIs(t, err, ErrNotFound)

	volunteer, err := svc.AddVolunteer(context.Background(), &AddVolunteerRequest{
		ProjectID: project.ID,
		Name:      "Pedro Souza",
		Role:      "motorista",
	})
	require.NoError(t, err)

	volunteers, err := svc.ListVolunteers(project.ID)
	require.NoError(t, err)
	require.Len(t, volunteers, 1)
	assert.Equal(t, volunteer.ID, volunteers[0].ID)

	require.NoError(t, svc.RemoveVolunteer(context.Background(), volunteer.ID))
	volunteers, err = svc.ListVolunteers(project.ID)
	require.NoError(t, err)
	assert.Empty(t, volunteers)
}

func TestProjectDeactivationFiltersListing(t *testing.T) {
	svc, _ := newDirectoryService(t)

	project, err := svc.CreateProject(context.Background(), &CreateProjectRequest{Name: "Reforço Escolar"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateProject(context.Background(), project.ID, &UpdateProjectRequest{Active: &inactive})
	require.NoError(t, err)

	active, err := svc.ListProjects(true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListProjects(false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLeaderDirectoryOrdering(t *testing.T) {
	svc, _ := newDirectoryService(t)

	_, err := svc.CreateLeader(context.Background(), &CreateLeaderRequest{Name: "Pr. Roberto", Ministry: "louvor", SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateLeader(context.Background(), &CreateLeaderRequest{Name: "Pra. Lúcia", Ministry: "infantil", SortOrder: 1})
	require.NoError(t, err)

	leaders, err := svc.ListLeaders()
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	// 名录按展示排序返回
	assert.Equal(t, "Pra. Lúcia", leaders[0].Name)
	assert.Equal(t, "Pr. Roberto", leaders[1].Name)
}

func TestLeaderUpdateAndDelete(t *testing.T) {
	svc, _ := newDirectoryService(t)

	leader, err := svc.CreateLeader(context.Background(), &CreateLeaderRequest{Name: "Pr. Roberto"})
	require.NoError(t, err)

	ministry := "ensino"
	updated, err := svc.UpdateLeader(context.Background(), leader.ID, &UpdateLeaderRequest{Ministry: &ministry})
	require.NoError(t, err)
	assert.Equal(t, "ensino", updated.Ministry)

	require.NoError(t, svc.DeleteLeader(context.Background(), leader.ID))
	leaders, err := svc.ListLeaders()
	require.NoError(t, err)
	assert.Empty(t, leaders)

	require.ErrorIs(t, svc.DeleteLeader(context.Background(), leader.ID), ErrNotFound)
}
