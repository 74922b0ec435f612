package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hosteldesk/outpass-api/internal/models"
	"github.com/hosteldesk/outpass-api/internal/repository"
	appErrors "github.com/hosteldesk/outpass-api/pkg/errors"
)

type mockDirectoryRepo struct {
	students map[string]models.StudentRecord
	err      error
	calls    int
}

func (m *mockDirectoryRepo) FindByID(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.students[studentID]; ok {
		return &s, nil
	}
	return nil, repository.ErrRowNotFound
}

type mockCache struct {
	entries map[string]models.StudentRecord
	getErr  error
	setErr  error
	sets    int
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	s, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*models.StudentRecord) = s
	return nil
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.entries == nil {
		m.entries = make(map[string]models.StudentRecord)
	}
	m.entries[key] = *value.(*models.StudentRecord)
	m.sets++
	return nil
}

func TestDirectoryFetchMissFillsCache(t *testing.T) {
	repo := &mockDirectoryRepo{students: map[string]models.StudentRecord{
		"S001": {StudentID: "S001", Name: "Asha", MobileNumber: "9000000001"},
	}}
	cache := &mockCache{}
	svc := NewDirectoryService(repo, cache, time.Minute, validator.New(), zap.NewNop(), nil)

	student, err := svc.Fetch(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.entries, "student:S001")
}

func TestDirectoryFetchCacheHitSkipsRepo(t *testing.T) {
	repo := &mockDirectoryRepo{}
	cache := &mockCache{entries: map[string]models.StudentRecord{
		"student:S001": {StudentID: "S001", Name: "Asha"},
	}}
	svc := NewDirectoryService(repo, cache, time.Minute, validator.New(), zap.NewNop(), nil)

	student, err := svc.Fetch(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
	assert.Equal(t, 0, repo.calls)
}

func TestDirectoryFetchNotFound(t *testing.T) {
	repo := &mockDirectoryRepo{}
	svc := NewDirectoryService(repo, &mockCache{}, time.Minute, validator.New(), zap.NewNop(), nil)

	_, err := svc.Fetch(context.Background(), "S404")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestDirectoryFetchUpstreamFailure(t *testing.T) {
	repo := &mockDirectoryRepo{err: errors.New("quota exceeded")}
	svc := NewDirectoryService(repo, &mockCache{}, time.Minute, validator.New(), zap.NewNop(), nil)

	_, err := svc.Fetch(context.Background(), "S001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestDirectoryFetchCacheFailuresAreNonFatal(t *testing.T) {
	repo := &mockDirectoryRepo{students: map[string]models.StudentRecord{
		"S001": {StudentID: "S001", Name: "Asha"},
	}}
	cache := &mockCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewDirectoryService(repo, cache, time.Minute, validator.New(), zap.NewNop(), nil)

	student, err := svc.Fetch(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
}

func TestDirectoryFetchRequiresStudentID(t *testing.T) {
	svc := NewDirectoryService(&mockDirectoryRepo{}, &mockCache{}, time.Minute, validator.New(), zap.NewNop(), nil)

	_, err := svc.Fetch(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "StudentId is required", appErrors.FromError(err).Message)
}
