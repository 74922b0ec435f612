package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/repository"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

type directoryRepository interface {
	FindByID(ctx context.Context, studentID string) (*models.StudentRecord, error)
}

type directoryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DirectoryService serves student identity lookups with a bounded TTL cache
// in front of the directory sheet.
type DirectoryService struct {
	repo      directoryRepository
	cache     directoryCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewDirectoryService constructs the directory service.
func NewDirectoryService(repo directoryRepository, cache directoryCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *DirectoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger, metrics: metrics}
}

type fetchStudentRequest struct {
	StudentID string `validate:"required"`
}

// Fetch returns the directory record for the given student id.
func (s *DirectoryService) Fetch(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	if err := s.validator.Struct(fetchStudentRequest{StudentID: studentID}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "StudentId is required")
	}

	key := "student:" + studentID
	if s.cache != nil {
		start := time.Now()
		var cached models.StudentRecord
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(start))
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("directory cache read failed", zap.Error(err))
		}
	}

	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to read student directory")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, student, s.cacheTTL); err != nil {
			s.logger.Warn("directory cache write failed", zap.Error(err))
		}
	}

	return student, nil
}
