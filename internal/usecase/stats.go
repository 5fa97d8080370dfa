package usecase

import (
	"context"
	"math"
	"time"

	"github.com/xavierca1/leadcentral/internal/entity"
)

// StatsUseCase computes conversion metrics from the call ledger and the
// prospect store. Read-only.
type StatsUseCase struct {
	Prospects ProspectRepositoryInterface
	Calls     CallRepositoryInterface
	Users     UserRepositoryInterface

	Now func() time.Time
}

func NewStatsUseCase(
	prospects ProspectRepositoryInterface,
	calls CallRepositoryInterface,
	users UserRepositoryInterface,
) *StatsUseCase {
	return &StatsUseCase{
		Prospects: prospects,
		Calls:     calls,
		Users:     users,
		Now:       time.Now,
	}
}

// conversionRate = rdv / total * 100, one decimal, 0 when there are no calls.
func conversionRate(rdv, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(rdv)/float64(total)*1000) / 10
}

func (uc *StatsUseCase) ForProspecteur(ctx context.Context, prospecteurID string) (*ProspecteurStatsOutput, error) {
	totalCalls, err := uc.Calls.CountByProspecteur(ctx, prospecteurID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	counts := map[entity.ProspectStatus]int{}
	for _, status := range []entity.ProspectStatus{
		entity.ProspectRdvPris, entity.ProspectRefus,
		entity.ProspectARappeler, entity.ProspectPasDeRep,
	} {
		c, err := uc.Prospects.Count(ctx, ProspectFilter{Status: status, ProspecteurID: prospecteurID})
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		counts[status] = c
	}

	weekAgo := uc.Now().UTC().AddDate(0, 0, -7)
	weeklyCalls, err := uc.Calls.ListByProspecteurSince(ctx, prospecteurID, weekAgo)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &ProspecteurStatsOutput{
		TotalCalls:     totalCalls,
		RdvPris:        counts[entity.ProspectRdvPris],
		Refus:          counts[entity.ProspectRefus],
		ARappeler:      counts[entity.ProspectARappeler],
		PasDeReponse:   counts[entity.ProspectPasDeRep],
		ConversionRate: conversionRate(counts[entity.ProspectRdvPris], totalCalls),
		DailyStats:     groupByDay(weeklyCalls),
	}, nil
}

// groupByDay buckets ledger entries by UTC calendar day. Sparse: days with
// no activity are absent.
func groupByDay(calls []entity.CallRecord) map[string]*DailyActivity {
	daily := make(map[string]*DailyActivity)

	for _, call := range calls {
		day := call.Timestamp.UTC().Format("2006-01-02")
		bucket, ok := daily[day]
		if !ok {
			bucket = &DailyActivity{}
			daily[day] = bucket
		}

		bucket.Calls++
		switch call.Result {
		case entity.CallRdvPris:
			bucket.Rdv++
		case entity.CallRefus:
			bucket.Refus++
		case entity.CallARappeler:
			bucket.Rappel++
		case entity.CallPasDeRep:
			bucket.NoResponse++
		}
	}

	return daily
}

func (uc *StatsUseCase) ForAdmin(ctx context.Context) (*AdminStatsOutput, error) {
	totalProspecteurs, err := uc.Users.CountByRoleAndStatus(ctx, entity.RoleProspecteur, entity.UserActive)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	totalCalls, err := uc.Calls.CountAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	totalRdv, err := uc.Prospects.Count(ctx, ProspectFilter{Status: entity.ProspectRdvPris})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	totalProspects, err := uc.Prospects.Count(ctx, ProspectFilter{})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	performers, err := uc.Prospects.TopPerformers(ctx, 5)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	topPerformers := []TopPerformer{}
	for _, perf := range performers {
		user, err := uc.Users.FindByID(ctx, perf.ProspecteurID)
		if err != nil {
			// Owner deleted or unknown; skip the row rather than fail the report.
			continue
		}
		topPerformers = append(topPerformers, TopPerformer{
			ID:       user.ID,
			Nom:      user.Nom,
			Prenom:   user.Prenom,
			RdvCount: perf.RdvCount,
		})
	}

	rdvList, err := uc.Prospects.List(ctx, ProspectFilter{Status: entity.ProspectRdvPris})
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &AdminStatsOutput{
		TotalProspecteurs: totalProspecteurs,
		TotalCalls:        totalCalls,
		TotalRdv:          totalRdv,
		TotalProspects:    totalProspects,
		ConversionRate:    conversionRate(totalRdv, totalCalls),
		TopPerformers:     topPerformers,
		RdvList:           rdvList,
	}, nil
}

// ProspecteurOverviews lists every prospecteur with call/prospect roll-ups
// for the admin board.
func (uc *StatsUseCase) ProspecteurOverviews(ctx context.Context) ([]ProspecteurOverview, error) {
	users, err := uc.Users.ListByRole(ctx, entity.RoleProspecteur)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	overviews := make([]ProspecteurOverview, 0, len(users))
	for _, u := range users {
		totalCalls, err := uc.Calls.CountByProspecteur(ctx, u.ID)
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		rdv, err := uc.Prospects.Count(ctx, ProspectFilter{Status: entity.ProspectRdvPris, ProspecteurID: u.ID})
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}
		owned, err := uc.Prospects.Count(ctx, ProspectFilter{ProspecteurID: u.ID})
		if err != nil {
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
		}

		overviews = append(overviews, ProspecteurOverview{
			ID:             u.ID,
			Nom:            u.Nom,
			Prenom:         u.Prenom,
			Email:          u.Email,
			Telephone:      u.Telephone,
			Status:         u.Status,
			CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
			TotalCalls:     totalCalls,
			RdvPris:        rdv,
			ProspectsCount: owned,
		})
	}

	return overviews, nil
}
