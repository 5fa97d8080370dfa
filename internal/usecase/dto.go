package usecase

import (
	"github.com/xavierca1/leadcentral/internal/entity"
)

type RegisterInput struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type UserSummary struct {
	ID     string      `json:"id"`
	Nom    string      `json:"nom"`
	Prenom string      `json:"prenom"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
}

type ValidateOutput struct {
	Message       string `json:"message"`
	AlreadyActive bool   `json:"already_active,omitempty"`
}

type RecordCallInput struct {
	ProspectID string            `json:"prospect_id"`
	Result     entity.CallResult `json:"result"`

	RappelDate string `json:"rappel_date,omitempty"`
	RappelNote string `json:"rappel_note,omitempty"`

	RdvDate      string `json:"rdv_date,omitempty"`
	RdvHeure     string `json:"rdv_heure,omitempty"`
	RdvTelephone string `json:"rdv_telephone,omitempty"`
	RdvEmail     string `json:"rdv_email,omitempty"`
	RdvNote      string `json:"rdv_note,omitempty"`
}

type RecordCallOutput struct {
	Message string                `json:"message"`
	Status  entity.ProspectStatus `json:"status"`
}

type AssignInput struct {
	ProspectIDs    []string `json:"prospect_ids"`
	ProspecteurIDs []string `json:"prospecteur_ids"`
}

type ImportOutput struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// DailyActivity is one day of the weekly breakdown. Days without activity
// never appear in the map.
type DailyActivity struct {
	Calls      int `json:"calls"`
	Rdv        int `json:"rdv"`
	Refus      int `json:"refus"`
	Rappel     int `json:"rappel"`
	NoResponse int `json:"no_response"`
}

type ProspecteurStatsOutput struct {
	TotalCalls     int                       `json:"total_calls"`
	RdvPris        int                       `json:"rdv_pris"`
	Refus          int                       `json:"refus"`
	ARappeler      int                       `json:"a_rappeler"`
	PasDeReponse   int                       `json:"pas_de_reponse"`
	ConversionRate float64                   `json:"conversion_rate"`
	DailyStats     map[string]*DailyActivity `json:"daily_stats"`
}

type TopPerformer struct {
	ID       string `json:"id"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	RdvCount int    `json:"rdv_count"`
}

type AdminStatsOutput struct {
	TotalProspecteurs int               `json:"total_prospecteurs"`
	TotalCalls        int               `json:"total_calls"`
	TotalRdv          int               `json:"total_rdv"`
	TotalProspects    int               `json:"total_prospects"`
	ConversionRate    float64           `json:"conversion_rate"`
	TopPerformers     []TopPerformer    `json:"top_performers"`
	RdvList           []entity.Prospect `json:"rdv_list"`
}

// ProspecteurOverview is a user row enriched with activity roll-ups for the
// admin listing.
type ProspecteurOverview struct {
	ID             string            `json:"id"`
	Nom            string            `json:"nom"`
	Prenom         string            `json:"prenom"`
	Email          string            `json:"email"`
	Telephone      string            `json:"telephone"`
	Status         entity.UserStatus `json:"status"`
	CreatedAt      string            `json:"created_at"`
	TotalCalls     int               `json:"total_calls"`
	RdvPris        int               `json:"rdv_pris"`
	ProspectsCount int               `json:"prospects_count"`
}

// ProspectWithOwner expands the owning prospecteur on admin listings.
type ProspectWithOwner struct {
	entity.Prospect
	Prospecteur *UserSummary `json:"prospecteur,omitempty"`
}
