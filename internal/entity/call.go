package entity

import (
	"time"

	"github.com/google/uuid"
)

type CallResult string

const (
	CallRefus     CallResult = "refus"
	CallARappeler CallResult = "a_rappeler"
	CallPasDeRep  CallResult = "pas_de_reponse"
	CallRdvPris   CallResult = "rdv_pris"
)

func (r CallResult) Valid() bool {
	switch r {
	case CallRefus, CallARappeler, CallPasDeRep, CallRdvPris:
		return true
	}
	return false
}

// CallRecord is one entry of the append-only call ledger.
// Never updated or deleted once written (the sole exception is the
// compensation path when the paired prospect update fails).
type CallRecord struct {
	ID            string     `json:"id"`
	ProspectID    string     `json:"prospect_id"`
	ProspecteurID string     `json:"prospecteur_id"`
	Result        CallResult `json:"result"`
	Timestamp     time.Time  `json:"timestamp"`
}

func NewCallRecord(prospectID, prospecteurID string, result CallResult, at time.Time) *CallRecord {
	return &CallRecord{
		ID:            uuid.New().String(),
		ProspectID:    prospectID,
		ProspecteurID: prospecteurID,
		Result:        result,
		Timestamp:     at,
	}
}
