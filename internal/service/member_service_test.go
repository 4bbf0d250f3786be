package service

import (
	"context"
	"testing"

	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberService(t *testing.T) MemberService {
	t.Helper()
	db := newTestDB(t)
	return NewMemberService(repository.NewMemberRepository(db), nil)
}

func TestMemberCreateNormalizesCPF(t *testing.T) {
	svc := newMemberService(t)

	member, err := svc.Create(context.Background(), &CreateMemberRequest{
		Name: "João Pereira",
		CPF:  "111.444.777-35",
	})
	require.NoError(t, err)
	assert.Equal(t, "11144477735", member.CPF)
	assert.True(t, member.Active)

	got, err := svc.Get(member.ID)
	require.NoError(t, err)
	assert.Equal(t, "João Pereira", got.Name)
}

func TestMemberCreateRejectsInvalidCPF(t *testing.T) {
	svc := newMemberService(t)

	_, err := svc.Create(context.Background(), &CreateMemberRequest{
		Name: "João Pereira",
		CPF:  "111.111.111-11",
	})
	require.Error(t, err)
}

func TestMemberCreateAllowsMissingCPF(t *testing.T) {
	svc := newMemberService(t)

	member, err := svc.Create(context.Background(), &CreateMemberRequest{Name: "Maria Santos"})
	require.NoError(t, err)
	assert.Empty(t, member.CPF)

	// CPF 唯一索引只覆盖非空值,第二条无 CPF 的记录照常创建
	second, err := svc.Create(context.Background(), &CreateMemberRequest{Name: "Pedro Lima"})
	require.NoError(t, err)
	assert.Empty(t, second.CPF)

	members, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMemberCreateDuplicateCPF(t *testing.T) {
	svc := newMemberService(t)

	_, err := svc.Create(context.Background(), &CreateMemberRequest{
		Name: "Maria Santos",
		CPF:  "111.444.777-35",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &CreateMemberRequest{
		Name: "Outra Maria",
		CPF:  "11144477735",
	})
	require.ErrorIs(t, err, ErrDuplicateCPF)
	assert.Contains(t, err.Error(), "11144477735")
}

func TestMemberUpdate(t *testing.T) {
	svc := newMemberService(t)

	member, err := svc.Create(context.Background(), &CreateMemberRequest{Name: "Maria Santos"})
	require.NoError(t, err)

	email := "maria@example.com"
	baptized := true
	updated, err := svc.Update(context.Background(), member.ID, &UpdateMemberRequest{
		Email:    &email,
		Baptized: &baptized,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", updated.Email)
	assert.True(t, updated.Baptized)
}

func TestMemberDeactivateIsSoftDelete(t *testing.T) {
	svc := newMemberService(t)

	member, err := svc.Create(context.Background(), &CreateMemberRequest{Name: "Maria Santos"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), member.ID))

	// 档案保留,仅标记停用
	got, err := svc.Get(member.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestMemberGetUnknown(t *testing.T) {
	svc := newMemberService(t)

	_, err := svc.Get("nao-existe")
	require.ErrorIs(t, err, ErrNotFound)
}
