package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ProspectStatus string

const (
	ProspectUnassigned ProspectStatus = "unassigned"
	ProspectActive     ProspectStatus = "active"
	ProspectRefus      ProspectStatus = "refus"
	ProspectARappeler  ProspectStatus = "a_rappeler"
	ProspectPasDeRep   ProspectStatus = "pas_de_reponse"
	ProspectRdvPris    ProspectStatus = "rdv_pris"
)

func (s ProspectStatus) Valid() bool {
	switch s {
	case ProspectUnassigned, ProspectActive, ProspectRefus,
		ProspectARappeler, ProspectPasDeRep, ProspectRdvPris:
		return true
	}
	return false
}

// Entidade: Prospect (lead à appeler)
// Invariant: ProspecteurID is nil iff Status == unassigned.
type Prospect struct {
	ID        string  `json:"id"`
	Nom       string  `json:"nom"`
	Secteur   string  `json:"secteur"`
	Telephone string  `json:"telephone"`
	Email     *string `json:"email,omitempty"`

	Status        ProspectStatus `json:"status"`
	ProspecteurID *string        `json:"prospecteur_id,omitempty"`
	LastCall      *time.Time     `json:"last_call,omitempty"`

	RefusDate *time.Time `json:"refus_date,omitempty"`

	RappelDate *string `json:"rappel_date,omitempty"`
	RappelNote *string `json:"rappel_note,omitempty"`

	RdvDate      *string `json:"rdv_date,omitempty"`
	RdvHeure     *string `json:"rdv_heure,omitempty"`
	RdvTelephone *string `json:"rdv_telephone,omitempty"`
	RdvEmail     *string `json:"rdv_email,omitempty"`
	RdvNote      *string `json:"rdv_note,omitempty"`

	NoResponseAttempts int `json:"no_response_attempts"`

	CreatedAt time.Time `json:"created_at"`
}

// Factory: imported prospects start unassigned, without owner.
func NewProspect(nom, secteur, telephone string, email *string) (*Prospect, error) {
	p := &Prospect{
		ID:        uuid.New().String(),
		Nom:       nom,
		Secteur:   secteur,
		Telephone: telephone,
		Email:     email,
		Status:    ProspectUnassigned,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prospect) Validate() error {
	if p.Nom == "" {
		return errors.New("nom is required")
	}
	if p.Secteur == "" {
		return errors.New("secteur is required")
	}
	if p.Telephone == "" {
		return errors.New("telephone is required")
	}
	return nil
}

// Appointment groups the rdv_pris fields recorded on a prospect.
type Appointment struct {
	Date      string
	Heure     string
	Telephone string
	Email     *string
	Note      *string
}

// ProspectPatch carries the admin-editable fields. Nil means "leave as is".
type ProspectPatch struct {
	Nom       *string
	Secteur   *string
	Telephone *string
	Email     *string
}

func (p ProspectPatch) Empty() bool {
	return p.Nom == nil && p.Secteur == nil && p.Telephone == nil && p.Email == nil
}
