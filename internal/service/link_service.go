package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlinks/internal/config"
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/repository"
	"go.uber.org/zap"
)

// LinkTTL фиксированный срок жизни любой ссылки
const LinkTTL = 24 * time.Hour

// LinkService управляет жизненным циклом ссылок: выдача кода,
// квота на пользовательский слаг, поиск и удаление.
type LinkService struct {
	repo          LinkRepository
	codeGenerator Generator
	cfg           *config.Config
	logger        *zap.Logger
	now           func() time.Time
}

// NewLinkService создает новый экземпляр LinkService
func NewLinkService(repo LinkRepository, cfg *config.Config, logger *zap.Logger) *LinkService {
	return &LinkService{
		repo:          repo,
		codeGenerator: NewCodeGenerator(),
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
	}
}

// Create нормализует URL и сохраняет запись со сгенерированным кодом
// или с пользовательским слагом.
func (s *LinkService) Create(ctx context.Context, rawURL, customSlug, identity string) (model.LinkRecord, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return model.LinkRecord{}, err
	}

	now := s.now()
	record := model.LinkRecord{
		URL:       model.URL(normalized),
		CreatedAt: now,
		ExpiresAt: now.Add(LinkTTL),
	}

	if customSlug == "" {
		return s.createWithGeneratedCode(ctx, record)
	}

	return s.createWithCustomSlug(ctx, record, customSlug, identity)
}

func (s *LinkService) createWithGeneratedCode(ctx context.Context, record model.LinkRecord) (model.LinkRecord, error) {
	for attempt := 0; attempt < s.cfg.Retry.MaxAttempts; attempt++ {
		record.Code = s.codeGenerator.GenerateCode()

		err := s.repo.CreateLink(ctx, record, LinkTTL)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, repository.ErrCodeExists) {
			return model.LinkRecord{}, fmt.Errorf("failed to save link: %w", err)
		}

		s.logger.Debug("generated code collision",
			zap.String("code", record.Code.String()),
			zap.Int("attempt", attempt+1),
		)
	}

	return model.LinkRecord{}, fmt.Errorf("failed to generate unique code after %d attempts: %w", s.cfg.Retry.MaxAttempts, ErrMaxRetriesExceeded)
}

// createWithCustomSlug сначала занимает квоту, затем сам слаг.
// Если слаг занять не удалось, квота возвращается.
func (s *LinkService) createWithCustomSlug(ctx context.Context, record model.LinkRecord, slug, identity string) (model.LinkRecord, error) {
	if err := ValidateSlug(slug); err != nil {
		return model.LinkRecord{}, err
	}

	claimed, err := s.repo.ClaimCustomSlugQuota(ctx, identity)
	if err != nil {
		return model.LinkRecord{}, fmt.Errorf("failed to claim custom slug quota: %w", err)
	}
	if !claimed {
		return model.LinkRecord{}, ErrQuotaExceeded
	}

	record.Code = model.Code(slug)
	record.IsCustomSlug = true
	record.OwnerIdentifier = identity

	err = s.repo.CreateLink(ctx, record, LinkTTL)
	if err == nil {
		return record, nil
	}

	s.releaseQuota(ctx, identity)

	if errors.Is(err, repository.ErrCodeExists) {
		return model.LinkRecord{}, ErrSlugTaken
	}

	return model.LinkRecord{}, fmt.Errorf("failed to save link: %w", err)
}

func (s *LinkService) releaseQuota(ctx context.Context, identity string) {
	if err := s.repo.ReleaseCustomSlugQuota(ctx, identity); err != nil {
		s.logger.Error("failed to release custom slug quota",
			zap.String("identity", identity),
			zap.Error(err),
		)
	}
}

// Lookup возвращает живую запись по коду
func (s *LinkService) Lookup(ctx context.Context, code model.Code) (model.LinkRecord, error) {
	record, err := s.repo.GetLink(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return model.LinkRecord{}, fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return model.LinkRecord{}, fmt.Errorf("failed to get link: %w", err)
	}

	if record.IsExpired(s.now()) {
		return model.LinkRecord{}, fmt.Errorf("%w: %s expired", ErrNotFound, code)
	}

	return record, nil
}

// Delete удаляет запись; отсутствие записи не является ошибкой.
// Для пользовательского слага освобождается квота владельца.
func (s *LinkService) Delete(ctx context.Context, code model.Code) error {
	record, err := s.repo.GetLink(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get link: %w", err)
	}

	if record.IsCustomSlug && record.OwnerIdentifier != "" {
		if err := s.repo.ReleaseCustomSlugQuota(ctx, record.OwnerIdentifier); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteLink(ctx, code); err != nil {
		return err
	}

	return nil
}

// HasUsedCustomSlug сообщает, занята ли квота identity
func (s *LinkService) HasUsedCustomSlug(ctx context.Context, identity string) (bool, error) {
	return s.repo.HasUsedCustomSlug(ctx, identity)
}

func (s *LinkService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
