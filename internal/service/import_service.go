package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/JohnPitter/church-management-sub005/internal/metrics"
	"github.com/JohnPitter/church-management-sub005/internal/model"
	"github.com/JohnPitter/church-management-sub005/internal/repository"
	"github.com/JohnPitter/church-management-sub005/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ImportService 旧系统数据导入服务
// 接受旧系统导出的 JSON 文件,按集合写入当前数据库
type ImportService interface {
	Import(ctx context.Context, data []byte) (*ImportSummary, error)
}

// ImportSummary 导入结果汇总
// @Description 每个集合的导入统计
type ImportSummary struct {
	Members      CollectionResult `json:"membros"`    // 成员集合
	Assisted     CollectionResult `json:"assistidos"` // 受助者集合
	Events       CollectionResult `json:"eventos"`    // 活动集合
	Transactions CollectionResult `json:"transacoes"` // 财务流水集合
	Accounts     CollectionResult `json:"usuarios"`   // 用户账户集合
}

// CollectionResult 单个集合的导入统计
type CollectionResult struct {
	Created int `json:"created"` // 新建记录数
	Updated int `json:"updated"` // 按身份字段去重后原地更新的记录数
	Skipped int `json:"skipped"` // 因缺少必填字段被跳过的记录数
}

// legacyFile 旧系统导出文件的顶层结构
// 每个集合是任意键到记录对象的映射
type legacyFile struct {
	Assistidos map[string]legacyPerson      `json:"assistidos"`
	Membros    map[string]legacyPerson      `json:"membros"`
	Eventos    map[string]legacyEvent       `json:"eventos"`
	Transacoes map[string]legacyTransaction `json:"transacoes"`
	Usuarios   map[string]legacyUser        `json:"usuarios"`
}

// legacyPerson 旧系统的人员记录,字段均可缺失
type legacyPerson struct {
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone"`
	Endereco       string `json:"endereco"`
	DataNascimento string `json:"dataNascimento"`
	Batizado       bool   `json:"batizado"`
	MembroDesde    string `json:"membroDesde"`
	Observacoes    string `json:"observacoes"`
}

// legacyEvent 旧系统的活动记录
type legacyEvent struct {
	Titulo string `json:"titulo"`
	Tipo   string `json:"tipo"`
	Local  string `json:"local"`
	Data   string `json:"data"`
}

// legacyUser 旧系统的用户账户记录
// 访问码为明文,导入时统一 bcrypt 哈希后存储
type legacyUser struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	CodigoAcesso   string `json:"codigoAcesso"`
	ProfissionalID string `json:"profissionalId"`
}

// legacyTransaction 旧系统的财务流水记录
type legacyTransaction struct {
	Descricao string  `json:"descricao"`
	Tipo      string  `json:"tipo"` // entrada/saida
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
}

// importService 导入服务实现
type importService struct {
	memberRepo      repository.MemberRepository
	assistedRepo    repository.AssistedRepository
	eventRepo       repository.EventRepository
	transactionRepo repository.TransactionRepository
	accountRepo     repository.UserAccountRepository
	auditLogSvc     AuditLogService
	logger          *logrus.Logger
}

// NewImportService 创建导入服务
func NewImportService(
	memberRepo repository.MemberRepository,
	assistedRepo repository.AssistedRepository,
	eventRepo repository.EventRepository,
	transactionRepo repository.TransactionRepository,
	accountRepo repository.UserAccountRepository,
	auditLogSvc AuditLogService,
	logger *logrus.Logger,
) ImportService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &importService{
		memberRepo:      memberRepo,
		assistedRepo:    assistedRepo,
		eventRepo:       eventRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		auditLogSvc:     auditLogSvc,
		logger:          logger,
	}
}

// Import 导入旧系统 JSON 文件
// 人员集合按 CPF 去重:命中则原地更新,否则新建;缺少必填字段的记录跳过并计数
func (s *importService) Import(ctx context.Context, data []byte) (*ImportSummary, error) {
	var file legacyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse legacy file: %w", err)
	}

	userID := getUserIDFromContext(ctx)
	summary := &ImportSummary{}

	summary.Members = s.importMembers(file.Membros, userID)
	summary.Assisted = s.importAssisted(file.Assistidos, userID)
	summary.Events = s.importEvents(file.Eventos, userID)
	summary.Transactions = s.importTransactions(file.Transacoes, userID)
	summary.Accounts = s.importAccounts(file.Usuarios)

	// 记录审计日志
	if s.auditLogSvc != nil && userID != "" {
		_ = s.auditLogSvc.RecordAction(ctx, userID, "import", "legacy_file", "import", summary)
	}

	return summary, nil
}

// sortedKeys 返回映射的键,按字典序
// 旧文件的映射键无序,固定遍历顺序让同一文件的导入结果可复现
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseLegacyDate 解析旧系统的日期字段
// 旧数据同时存在 ISO 与巴西日期格式
func parseLegacyDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// importMembers 导入成员集合
func (s *importService) importMembers(records map[string]legacyPerson, userID string) CollectionResult {
	var result CollectionResult

	for _, key := range sortedKeys(records) {
		rec := records[key]
		if rec.Nome == "" {
			result.Skipped++
			metrics.RecordImportedRecord("membros", "skipped")
			continue
		}

		cpf := utils.NormalizeCPF(rec.CPF)
		now := time.Now()

		var existing *model.MemberModel
		if cpf != "" {
			found, err := s.memberRepo.FindByCPF(cpf)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.WithError(err).WithField("legacy_key", key).Warn("member lookup failed, skipping")
				result.Skipped++
				metrics.RecordImportedRecord("membros", "skipped")
				continue
			}
			existing = found
		}

		if existing != nil {
			existing.Name = rec.Nome
			existing.Email = rec.Email
			existing.Phone = rec.Telefone
			existing.Address = rec.Endereco
			existing.Baptized = rec.Batizado
			if d := parseLegacyDate(rec.DataNascimento); d != nil {
				existing.BirthDate = d
			}
			if d := parseLegacyDate(rec.MembroDesde); d != nil {
				existing.MemberSince = d
			}
			existing.LegacyKey = key
			existing.UpdatedAt = now
			existing.UpdatedBy = userID
			if err := s.memberRepo.Save(existing); err != nil {
				s.logger.WithError(err).WithField("legacy_key", key).Warn("member update failed, skipping")
				result.Skipped++
				metrics.RecordImportedRecord("membros", "skipped")
				continue
			}
			result.Updated++
			metrics.RecordImportedRecord("membros", "updated")
			continue
		}

		member := &model.MemberModel{
			ID:          uuid.New().String(),
			Name:        rec.Nome,
			CPF:         cpf,
			Email:       rec.Email,
			Phone:       rec.Telefone,
			BirthDate:   parseLegacyDate(rec.DataNascimento),
			Address:     rec.Endereco,
			Baptized:    rec.Batizado,
			MemberSince: parseLegacyDate(rec.MembroDesde),
			Active:      true,
			LegacyKey:   key,
			CreatedAt:   now,
			UpdatedAt:   now,
			CreatedBy:   userID,
		}
		if err := s.memberRepo.Save(member); err != nil {
			s.logger.WithError(err).WithField("legacy_key", key).Warn("member create failed, skipping")
			result.Skipped++
			metrics.RecordImportedRecord("membros", "skipped")
			continue
		}
		result.Created++
		metrics.RecordImportedRecord("membros", "created")
	}

	return result
}

// importAssisted 导入受助者集合
func (s *importService) importAssisted(records map[string]legacyPerson, userID string) CollectionResult {
	var result CollectionResult

	for _, key := range sortedKeys(records) {
		rec := records[key]
		if rec.Nome == "" {
			result.Skipped++
			metrics.RecordImportedRecord("assistidos", "skipped")
			continue
		}

		cpf := utils.NormalizeCPF(rec.CPF)
		now := time.Now()

		var existing *model.AssistedModel
		if cpf != "" {
			found, err := s.assistedRepo.FindByCPF(cpf)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.WithError(err).WithField("legacy_key", key).Warn("assisted lookup failed, skipping")
				result.Skipped++
				metrics.RecordImportedRecord("assistidos", "skipped")
				continue
			}
			existing = found
		}

		if existing != nil {
			existing.Name = rec.Nome
			existing.Phone = rec.Telefone
			existing.Address = rec.Endereco
			existing.Notes = rec.Observacoes
			existing.LegacyKey = key
			existing.UpdatedAt = now
			existing.UpdatedBy = userID
			if err := s.assistedRepo.Save(existing); err != nil {
				s.logger.WithError(err).WithField("legacy_key", key).Warn("assisted update failed, skipping")
				result.Skipped++
				metrics.RecordImportedRecord("assistidos", "skipped")
				continue
			}
			result.Updated++
			metrics.RecordImportedRecord("assistidos", "updated")
			continue
		}

		assisted := &model.AssistedModel{
			ID:        uuid.New().String(),
			Name:      rec.Nome,
			CPF:       cpf,
			Phone:     rec.Telefone,
			Address:   rec.Endereco,
			Notes:     rec.Observacoes,
			LegacyKey: key,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: userID,
		}
		if err := s.assistedRepo.Save(assisted); err != nil {
			s.logger.WithError(err).WithField("legacy_key", key).Warn("assisted create failed, skipping")
			result.Skipped++
			metrics.RecordImportedRecord("assistidos", "skipped")
			continue
		}
		result.Created++
		metrics.RecordImportedRecord("assistidos", "created")
	}

	return result
}

// importAccounts 导入用户账户集合,按邮箱去重
// 明文访问码不落库,哈希后写入 access_hash
func (s *importService) importAccounts(records map[string]legacyUser) CollectionResult {
	var result CollectionResult

	for _, key := range sortedKeys(records) {
		rec := records[key]
		if rec.Nome == "" || rec.Email == "" {
			result.Skipped++
			metrics.RecordImportedRecord("usuarios", "skipped")
			continue
		}

		var accessHash string
		if rec.CodigoAcesso != "" {
			hashed, err := utils.HashAccessCode(rec.CodigoAcesso)
			if err != nil {
				s.logger.WithError(err).WithField("legacy_key", key).Warn("access code hash failed, skipping")
				result.Skipped++
				metrics.RecordImportedRecord("usuarios", "skipped")
				continue
			}
			accessHash = hashed
		}

		now := time.Now()
		existing, err := s.accountRepo.FindByEmail(rec.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithError(err).WithField("legacy_key", key).Warn("account lookup failed, skipping")
			result.Skipped++
			metrics.RecordImportedRecord("usuarios", "skipped")
			continue
		}

		if existing != nil {
			existing.Name = rec.Nome
			existing.ProfessionalID = rec.ProfissionalID
			if accessHash != "" {
				existing.AccessHash = accessHash
			}
			existing.UpdatedAt = now
			if err := s.accountRepo.Save(existing); err != nil {
				result.Skipped++
				metrics.RecordImportedRecord("usuarios", "skipped")
				continue
			}
			result.Updated++
			metrics.RecordImportedRecord("usuarios", "updated")
			continue
		}

		account := &model.UserAccountModel{
			ID:             uuid.New().String(),
			Name:           rec.Nome,
			Email:          rec.Email,
			ProfessionalID: rec.ProfissionalID,
			AccessHash:     accessHash,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.accountRepo.Save(account); err != nil {
			result.Skipped++
			metrics.RecordImportedRecord("usuarios", "skipped")
			continue
		}
		result.Created++
		metrics.RecordImportedRecord("usuarios", "created")
	}

	return result
}

// importEvents 导入活动集合,按旧系统键去重
func (s *importService) importEvents(records map[string]legacyEvent, userID string) CollectionResult {
	var result CollectionResult

	for _, key := range sortedKeys(records) {
		rec := records[key]
		if rec.Titulo == "" {
			result.Skipped++
			metrics.RecordImportedRecord("eventos", "skipped")
			continue
		}

		startsAt := parseLegacyDate(rec.Data)
		if startsAt == nil {
			result.Skipped++
			metrics.RecordImportedRecord("eventos", "skipped")
			continue
		}

		now := time.Now()
		existing, err := s.eventRepo.FindByLegacyKey(key)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithError(err).WithField("legacy_key", key).Warn("event lookup failed, skipping")
			result.Skipped++
			metrics.RecordImportedRecord("eventos", "skipped")
			continue
		}

		if existing != nil {
			existing.Title = rec.Titulo
			existing.Type = rec.Tipo
			existing.Location = rec.Local
			existing.StartsAt = *startsAt
			existing.UpdatedAt = now
			existing.UpdatedBy = userID
			if err := s.eventRepo.Save(existing); err != nil {
				result.Skipped++
				metrics.RecordImportedRecord("eventos", "skipped")
				continue
			}
			result.Updated++
			metrics.RecordImportedRecord("eventos", "updated")
			continue
		}

		event := &model.EventModel{
			ID:        uuid.New().String(),
			Title:     rec.Titulo,
			Type:      rec.Tipo,
			Location:  rec.Local,
			StartsAt:  *startsAt,
			LegacyKey: key,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: userID,
		}
		if err := s.eventRepo.Save(event); err != nil {
			result.Skipped++
			metrics.RecordImportedRecord("eventos", "skipped")
			continue
		}
		result.Created++
		metrics.RecordImportedRecord("eventos", "created")
	}

	return result
}

// importTransactions 导入财务流水集合,按旧系统键去重
func (s *importService) importTransactions(records map[string]legacyTransaction, userID string) CollectionResult {
	var result CollectionResult

	for _, key := range sortedKeys(records) {
		rec := records[key]
		if rec.Tipo != "entrada" && rec.Tipo != "saida" {
			result.Skipped++
			metrics.RecordImportedRecord("transacoes", "skipped")
			continue
		}

		occurredAt := parseLegacyDate(rec.Data)
		if occurredAt == nil {
			result.Skipped++
			metrics.RecordImportedRecord("transacoes", "skipped")
			continue
		}

		now := time.Now()
		existing, err := s.transactionRepo.FindByLegacyKey(key)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithError(err).WithField("legacy_key", key).Warn("transaction lookup failed, skipping")
			result.Skipped++
			metrics.RecordImportedRecord("transacoes", "skipped")
			continue
		}

		// 旧系统金额为浮点雷亚尔,转为分存储
		amountCents := int64(rec.Valor*100 + 0.5)

		if existing != nil {
			existing.Description = rec.Descricao
			existing.Direction = rec.Tipo
			existing.AmountCents = amountCents
			existing.OccurredAt = *occurredAt
			existing.UpdatedAt = now
			existing.UpdatedBy = userID
			if err := s.transactionRepo.Save(existing); err != nil {
				result.Skipped++
				metrics.RecordImportedRecord("transacoes", "skipped")
				continue
			}
			result.Updated++
			metrics.RecordImportedRecord("transacoes", "updated")
			continue
		}

		tx := &model.TransactionModel{
			ID:          uuid.New().String(),
			Description: rec.Descricao,
			Direction:   rec.Tipo,
			AmountCents: amountCents,
			OccurredAt:  *occurredAt,
			LegacyKey:   key,
			CreatedAt:   now,
			UpdatedAt:   now,
			CreatedBy:   userID,
		}
		if err := s.transactionRepo.Save(tx); err != nil {
			result.Skipped++
			metrics.RecordImportedRecord("transacoes", "skipped")
			continue
		}
		result.Created++
		metrics.RecordImportedRecord("transacoes", "created")
	}

	return result
}
