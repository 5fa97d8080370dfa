package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/leadcentral/internal/entity"
	"github.com/xavierca1/leadcentral/internal/infra/importer"
	"github.com/xavierca1/leadcentral/internal/infra/queue"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByValidationToken(ctx context.Context, token string) (*entity.User, error)
	// Activate sets status=active, stores the hash and clears the token.
	Activate(ctx context.Context, id, passwordHash string) error
	UpdateStatus(ctx context.Context, id string, status entity.UserStatus) error
	ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	CountByRoleAndStatus(ctx context.Context, role entity.Role, status entity.UserStatus) (int, error)
}

// ProspectFilter narrows prospect queries. Zero values mean "no constraint".
type ProspectFilter struct {
	Status        entity.ProspectStatus
	ProspecteurID string
}

// PerformerCount is one row of the top-performer aggregation.
type PerformerCount struct {
	ProspecteurID string
	RdvCount      int
}

type ProspectRepositoryInterface interface {
	InsertMany(ctx context.Context, prospects []*entity.Prospect) error
	FindByID(ctx context.Context, id string) (*entity.Prospect, error)
	// FindOwned scopes the lookup to one prospecteur; a prospect owned by
	// someone else is indistinguishable from a missing one.
	FindOwned(ctx context.Context, id, prospecteurID string) (*entity.Prospect, error)
	List(ctx context.Context, filter ProspectFilter) ([]entity.Prospect, error)
	Count(ctx context.Context, filter ProspectFilter) (int, error)

	Assign(ctx context.Context, id, prospecteurID string) error
	UpdateDetails(ctx context.Context, id string, patch entity.ProspectPatch) error
	Delete(ctx context.Context, id string) error

	MarkRefus(ctx context.Context, id string, at time.Time) error
	MarkARappeler(ctx context.Context, id string, at time.Time, date, note string) error
	MarkPasDeReponse(ctx context.Context, id string, at time.Time, attempts int) error
	MarkRdvPris(ctx context.Context, id string, at time.Time, rdv entity.Appointment) error

	TopPerformers(ctx context.Context, limit int) ([]PerformerCount, error)
}

type CallRepositoryInterface interface {
	Insert(ctx context.Context, call *entity.CallRecord) error
	// Delete exists solely as the compensation for a failed prospect update.
	Delete(ctx context.Context, id string) error
	CountByProspecteur(ctx context.Context, prospecteurID string) (int, error)
	CountAll(ctx context.Context) (int, error)
	ListByProspecteurSince(ctx context.Context, prospecteurID string, since time.Time) ([]entity.CallRecord, error)
}

type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}

type TokenGenerator interface {
	Generate(userID string, role entity.Role) (string, error)
}

type TabularParserInterface interface {
	Parse(filename string, data []byte) (*importer.Table, error)
}
