package service

import (
	"context"
	"testing"

	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newImportService 构造测试用导入服务
func newImportService(t *testing.T) (ImportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewImportService(
		repository.NewMemberRepository(db),
		repository.NewAssistedRepository(db),
		repository.NewEventRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewUserAccountRepository(db),
		nil,
		nil,
	)
	return svc, db
}

const legacyFixture = `{
	"membros": {
		"-Mk1": {"nome": "João Pereira", "cpf": "111.444.777-35", "telefone": "+55 11 91234-5678", "batizado": true, "membroDesde": "2015-03-01"},
		"-Mk2": {"nome": "Maria Santos", "cpf": "", "endereco": "Rua das Flores, 10"},
		"-Mk3": {"cpf": "123.456.789-09"}
	},
	"assistidos": {
		"-Ak1": {"nome": "Carlos Lima", "cpf": "529.982.247-25", "observacoes": "cesta básica mensal"}
	},
	"eventos": {
		"-Ek1": {"titulo": "Culto de Páscoa", "tipo": "culto", "local": "templo", "data": "05/04/2026"},
		"-Ek2": {"titulo": "Sem data"}
	},
	"transacoes": {
		"-Tk1": {"descricao": "Oferta", "tipo": "entrada", "valor": 150.50, "data": "2026-01-15"},
		"-Tk2": {"descricao": "Aluguel", "tipo": "saida", "valor": 1200.00, "data": "2026-01-20"},
		"-Tk3": {"descricao": "Tipo inválido", "tipo": "transferencia", "valor": 10, "data": "2026-01-21"}
	},
	"usuarios": {
		"-Uk1": {"nome": "Dr. Silva", "email": "silva@example.com", "codigoAcesso": "abc123", "profissionalId": "prof-002"},
		"-Uk2": {"nome": "Sem Email"}
	}
}`

func TestImportLegacyFile(t *testing.T) {
	svc, db := newImportService(t)

	summary, err := svc.Import(context.Background(), []byte(legacyFixture))
	require.NoError(t, err)

	// 无名人员、无日期活动、未知类型流水被跳过
	assert.Equal(t, CollectionResult{Created: 2, Skipped: 1}, summary.Members)
	assert.Equal(t, CollectionResult{Created: 1}, summary.Assisted)
	assert.Equal(t, CollectionResult{Created: 1, Skipped: 1}, summary.Events)
	assert.Equal(t, CollectionResult{Created: 2, Skipped: 1}, summary.Transactions)
	assert.Equal(t, CollectionResult{Created: 1, Skipped: 1}, summary.Accounts)

	// CPF 规范化为纯数字存储
	var member model.MemberModel
	require.NoError(t, db.Where("legacy_key = ?", "-Mk1").First(&member).Error)
	assert.Equal(t, "11144477735", member.CPF)
	assert.True(t, member.Baptized)
	require.NotNil(t, member.MemberSince)

	// 金额浮点雷亚尔转分
	var tx model.TransactionModel
	require.NoError(t, db.Where("legacy_key = ?", "-Tk1").First(&tx).Error)
	assert.Equal(t, int64(15050), tx.AmountCents)
	assert.Equal(t, "entrada", tx.Direction)

	// 巴西日期格式解析
	var event model.EventModel
	require.NoError(t, db.Where("legacy_key = ?", "-Ek1").First(&event).Error)
	assert.Equal(t, 2026, event.StartsAt.Year())
	assert.Equal(t, 4, int(event.StartsAt.Month()))

	// 访问码不落明文,哈希可验证
	var account model.UserAccountModel
	require.NoError(t, db.Where("email = ?", "silva@example.com").First(&account).Error)
	assert.Equal(t, "prof-002", account.ProfessionalID)
	assert.NotEqual(t, "abc123", account.AccessHash)
	assert.True(t, utils.VerifyAccessCode("abc123", account.AccessHash))
}

func TestImportIsIdempotentByCPF(t *testing.T) {
	svc, db := newImportService(t)

	_, err := svc.Import(context.Background(), []byte(legacyFixture))
	require.NoError(t, err)

	// 重复导入同一文件:按 CPF 命中的人员原地更新,不产生重复记录
	summary, err := svc.Import(context.Background(), []byte(legacyFixture))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Members.Updated)
	// 无 CPF 的人员无法去重,重复导入会再次新建
	assert.Equal(t, 1, summary.Members.Created)
	assert.Equal(t, 1, summary.Assisted.Updated)
	assert.Equal(t, 0, summary.Assisted.Created)
	// 活动与流水按旧系统键去重
	assert.Equal(t, 1, summary.Events.Updated)
	assert.Equal(t, 0, summary.Events.Created)
	assert.Equal(t, 2, summary.Transactions.Updated)
	assert.Equal(t, 0, summary.Transactions.Created)
	// 账户按邮箱去重
	assert.Equal(t, 1, summary.Accounts.Updated)
	assert.Equal(t, 0, summary.Accounts.Created)

	var count int64
	require.NoError(t, db.Model(&model.MemberModel{}).Where("cpf = ?", "11144477735").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Model(&model.EventModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.Model(&model.TransactionModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportUpdatesExistingMemberInPlace(t *testing.T) {
	svc, db := newImportService(t)

	_, err := svc.Import(context.Background(), []byte(legacyFixture))
	require.NoError(t, err)

	var before model.MemberModel
	require.NoError(t, db.Where("cpf = ?", "11144477735").First(&before).Error)

	updated := `{"membros": {"-Mk9": {"nome": "João P. Silva", "cpf": "11144477735", "telefone": "+55 11 99999-0000"}}}`
	summary, err := svc.Import(context.Background(), []byte(updated))
	require.NoError(t, err)
	assert.Equal(t, CollectionResult{Updated: 1}, summary.Members)

	var after model.MemberModel
	require.NoError(t, db.Where("cpf = ?", "11144477735").First(&after).Error)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "João P. Silva", after.Name)
	assert.Equal(t, "+55 11 99999-0000", after.Phone)
}

func TestImportCreatesAllMembersWithoutCPF(t *testing.T) {
	svc, db := newImportService(t)

	// 没有 CPF 就没有去重键,每条记录都按原样创建
	summary, err := svc.Import(context.Background(),
		[]byte(`{"membros": {"-Mk1": {"nome": "Um"}, "-Mk2": {"nome": "Dois"}}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Members.Created)
	assert.Equal(t, 0, summary.Members.Skipped)

	var count int64
	require.NoError(t, db.Model(&model.MemberModel{}).Where("cpf = ?", "").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	svc, _ := newImportService(t)

	_, err := svc.Import(context.Background(), []byte("{nope"))
	require.Error(t, err)
}

func TestParseLegacyDate(t *testing.T) {
	require.Nil(t, parseLegacyDate(""))
	require.Nil(t, parseLegacyDate("ontem"))

	iso := parseLegacyDate("2026-02-10")
	require.NotNil(t, iso)
	assert.Equal(t, 10, iso.Day())

	br := parseLegacyDate("10/02/2026")
	require.NotNil(t, br)
	assert.Equal(t, 10, br.Day())
	assert.Equal(t, 2, int(br.Month()))

	rfc := parseLegacyDate("2026-02-10T14:00:00Z")
	require.NotNil(t, rfc)
	assert.Equal(t, 14, rfc.Hour())
}
