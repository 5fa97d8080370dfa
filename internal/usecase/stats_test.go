package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadcentral/internal/entity"
)

func TestConversionRate(t *testing.T) {
	assert.Equal(t, 0.0, conversionRate(0, 0))
	assert.Equal(t, 0.0, conversionRate(5, 0))
	assert.Equal(t, 50.0, conversionRate(1, 2))
	assert.Equal(t, 33.3, conversionRate(1, 3))
	assert.Equal(t, 66.7, conversionRate(2, 3))
	assert.Equal(t, 100.0, conversionRate(7, 7))
}

func newStatsFixture() (*StatsUseCase, *MockProspectRepository, *MockCallRepository, *MockUserRepository) {
	prospects := new(MockProspectRepository)
	calls := new(MockCallRepository)
	users := new(MockUserRepository)

	uc := NewStatsUseCase(prospects, calls, users)
	uc.Now = func() time.Time { return fixedNow }

	return uc, prospects, calls, users
}

func TestStats_ForProspecteurGroupsWeeklyCallsByDay(t *testing.T) {
	uc, prospects, calls, _ := newStatsFixture()

	calls.On("CountByProspecteur", mock.Anything, "user-1").Return(10, nil)
	for status, count := range map[entity.ProspectStatus]int{
		entity.ProspectRdvPris:   3,
		entity.ProspectRefus:     4,
		entity.ProspectARappeler: 2,
		entity.ProspectPasDeRep:  1,
	} {
		prospects.On("Count", mock.Anything, ProspectFilter{Status: status, ProspecteurID: "user-1"}).Return(count, nil)
	}

	weekAgo := fixedNow.AddDate(0, 0, -7)
	day1 := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	calls.On("ListByProspecteurSince", mock.Anything, "user-1", weekAgo).Return([]entity.CallRecord{
		{Result: entity.CallRdvPris, Timestamp: day1},
		{Result: entity.CallRefus, Timestamp: day1},
		{Result: entity.CallPasDeRep, Timestamp: day2},
	}, nil)

	output, err := uc.ForProspecteur(context.Background(), "user-1")

	assert.Nil(t, err)
	assert.Equal(t, 10, output.TotalCalls)
	assert.Equal(t, 3, output.RdvPris)
	assert.Equal(t, 30.0, output.ConversionRate)

	// Sparse: only days with activity appear.
	assert.Len(t, output.DailyStats, 2)
	assert.Equal(t, 2, output.DailyStats["2024-03-14"].Calls)
	assert.Equal(t, 1, output.DailyStats["2024-03-14"].Rdv)
	assert.Equal(t, 1, output.DailyStats["2024-03-14"].Refus)
	assert.Equal(t, 1, output.DailyStats["2024-03-15"].NoResponse)
	assert.Nil(t, output.DailyStats["2024-03-13"])
}

func TestStats_ForProspecteurNoCallsMeansZeroRate(t *testing.T) {
	uc, prospects, calls, _ := newStatsFixture()

	calls.On("CountByProspecteur", mock.Anything, "user-1").Return(0, nil)
	prospects.On("Count", mock.Anything, mock.Anything).Return(0, nil)
	calls.On("ListByProspecteurSince", mock.Anything, "user-1", mock.Anything).Return([]entity.CallRecord{}, nil)

	output, err := uc.ForProspecteur(context.Background(), "user-1")

	assert.Nil(t, err)
	assert.Equal(t, 0.0, output.ConversionRate)
	assert.Empty(t, output.DailyStats)
}

func TestStats_ForAdminBuildsTopPerformers(t *testing.T) {
	uc, prospects, calls, users := newStatsFixture()

	users.On("CountByRoleAndStatus", mock.Anything, entity.RoleProspecteur, entity.UserActive).Return(4, nil)
	calls.On("CountAll", mock.Anything).Return(200, nil)
	prospects.On("Count", mock.Anything, ProspectFilter{Status: entity.ProspectRdvPris}).Return(30, nil)
	prospects.On("Count", mock.Anything, ProspectFilter{}).Return(500, nil)
	prospects.On("TopPerformers", mock.Anything, 5).Return([]PerformerCount{
		{ProspecteurID: "u1", RdvCount: 12},
		{ProspecteurID: "gone", RdvCount: 10},
		{ProspecteurID: "u2", RdvCount: 8},
	}, nil)
	users.On("FindByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Nom: "Martin", Prenom: "Claire"}, nil)
	users.On("FindByID", mock.Anything, "gone").Return(nil, entity.ErrUserNotFound)
	users.On("FindByID", mock.Anything, "u2").Return(&entity.User{ID: "u2", Nom: "Durand", Prenom: "Paul"}, nil)
	prospects.On("List", mock.Anything, ProspectFilter{Status: entity.ProspectRdvPris}).Return([]entity.Prospect{}, nil)

	output, err := uc.ForAdmin(context.Background())

	assert.Nil(t, err)
	assert.Equal(t, 4, output.TotalProspecteurs)
	assert.Equal(t, 15.0, output.ConversionRate)

	// Deleted owners are skipped, ordering preserved.
	assert.Len(t, output.TopPerformers, 2)
	assert.Equal(t, "u1", output.TopPerformers[0].ID)
	assert.Equal(t, 12, output.TopPerformers[0].RdvCount)
	assert.Equal(t, "u2", output.TopPerformers[1].ID)
}

func TestStats_ProspecteurOverviews(t *testing.T) {
	uc, prospects, calls, users := newStatsFixture()

	users.On("ListByRole", mock.Anything, entity.RoleProspecteur).Return([]entity.User{
		{ID: "u1", Nom: "Martin", Prenom: "Claire", Email: "claire@example.com", Status: entity.UserActive, CreatedAt: fixedNow},
	}, nil)
	calls.On("CountByProspecteur", mock.Anything, "u1").Return(42, nil)
	prospects.On("Count", mock.Anything, ProspectFilter{Status: entity.ProspectRdvPris, ProspecteurID: "u1"}).Return(6, nil)
	prospects.On("Count", mock.Anything, ProspectFilter{ProspecteurID: "u1"}).Return(50, nil)

	overviews, err := uc.ProspecteurOverviews(context.Background())

	assert.Nil(t, err)
	assert.Len(t, overviews, 1)
	assert.Equal(t, 42, overviews[0].TotalCalls)
	assert.Equal(t, 6, overviews[0].RdvPris)
	assert.Equal(t, 50, overviews[0].ProspectsCount)
	assert.Equal(t, "2024-03-15T10:30:00Z", overviews[0].CreatedAt)
}
