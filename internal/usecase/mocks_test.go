package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/importer"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
)

// MockProspectRepository
type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) InsertMany(ctx context.Context, prospects []*entity.Prospect) error {
	args := m.Called(ctx, prospects)
	return args.Error(0)
}

func (m *MockProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) FindOwned(ctx context.Context, id, prospecteurID string) (*entity.Prospect, error) {
	args := m.Called(ctx, id, prospecteurID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) List(ctx context.Context, filter ProspectFilter) ([]entity.Prospect, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) Count(ctx context.Context, filter ProspectFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockProspectRepository) Assign(ctx context.Context, id, prospecteurID string) error {
	args := m.Called(ctx, id, prospecteurID)
	return args.Error(0)
}

func (m *MockProspectRepository) UpdateDetails(ctx context.Context, id string, patch entity.ProspectPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProspectRepository) MarkRefus(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockProspectRepository) MarkARappeler(ctx context.Context, id string, at time.Time, date, note string) error {
	args := m.Called(ctx, id, at, date, note)
	return args.Error(0)
}

func (m *MockProspectRepository) MarkPasDeReponse(ctx context.Context, id string, at time.Time, attempts int) error {
	args := m.Called(ctx, id, at, attempts)
	return args.Error(0)
}

func (m *MockProspectRepository) MarkRdvPris(ctx context.Context, id string, at time.Time, rdv entity.Appointment) error {
	args := m.Called(ctx, id, at, rdv)
	return args.Error(0)
}

func (m *MockProspectRepository) TopPerformers(ctx context.Context, limit int) ([]PerformerCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PerformerCount), args.Error(1)
}

// MockCallRepository
type MockCallRepository struct {
	mock.Mock
}

func (m *MockCallRepository) Insert(ctx context.Context, call *entity.CallRecord) error {
	args := m.Called(ctx, call)
	return args.Error(0)
}

func (m *MockCallRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCallRepository) CountByProspecteur(ctx context.Context, prospecteurID string) (int, error) {
	args := m.Called(ctx, prospecteurID)
	return args.Int(0), args.Error(1)
}

func (m *MockCallRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCallRepository) ListByProspecteurSince(ctx context.Context, prospecteurID string, since time.Time) ([]entity.CallRecord, error) {
	args := m.Called(ctx, prospecteurID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CallRecord), args.Error(1)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByValidationToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Activate(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) (int, error) {
	args := m.Called(ctx, role, status)
	return args.Int(0), args.Error(1)
}

// MockNotificationProducer
type MockNotificationProducer struct {
	mock.Mock
}

func (m *MockNotificationProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockTabularParser
type MockTabularParser struct {
	mock.Mock
}

func (m *MockTabularParser) Parse(filename string, data []byte) (*importer.Table, error) {
	args := m.Called(filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Table), args.Error(1)
}

// MockTokenGenerator
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) Generate(userID string, role entity.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}
