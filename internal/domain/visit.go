package domain

import "time"

// VisitOutcome indica o resultado registrado de uma visita porta a porta
type VisitOutcome string

const (
	OutcomeInterested    VisitOutcome = "interested"
	OutcomeNotInterested VisitOutcome = "not_interested"
	OutcomeFollowUp      VisitOutcome = "follow_up"
	OutcomeClosedSale    VisitOutcome = "closed_sale"
	OutcomeNotHome       VisitOutcome = "not_home"
	OutcomeWrongLocation VisitOutcome = "wrong_location"
)

// Valid indica se o valor pertence ao conjunto fechado de resultados
func (o VisitOutcome) Valid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeFollowUp,
		OutcomeClosedSale, OutcomeNotHome, OutcomeWrongLocation:
		return true
	}
	return false
}

// QualifiesForProspect indica se o resultado da visita dispara a criação
// de um prospect quando o vendedor informa nome e telefone
func (o VisitOutcome) QualifiesForProspect() bool {
	switch o {
	case OutcomeInterested, OutcomeFollowUp, OutcomeClosedSale:
		return true
	}
	return false
}

// InterestLevelForOutcome mapeia o resultado da visita para o nível de
// interesse atribuído ao prospect criado a partir dela
func InterestLevelForOutcome(o VisitOutcome) InterestLevel {
	switch o {
	case OutcomeClosedSale:
		return InterestConverted
	case OutcomeFollowUp:
		return InterestVeryInterested
	default:
		return InterestInterested
	}
}

// Visit representa o registro de uma visita feita pela equipe de vendas.
// Depois que o resultado é gravado o registro é imutável, exceto pelo
// preenchimento posterior do vínculo com o prospect.
type Visit struct {
	ID            int          `json:"id"`
	SalesPersonID int          `json:"sales_person_id"`
	ProspectID    *int         `json:"prospect_id"`
	VisitDate     time.Time    `json:"visit_date"`
	VisitTime     string       `json:"visit_time"` // HH:MM:SS
	Location      string       `json:"location"`
	Outcome       VisitOutcome `json:"outcome"`
	Feedback      string       `json:"feedback"`

	// Objeções levantadas durante a visita
	PriceConcern         bool   `json:"price_concern"`
	CoverageConcern      bool   `json:"coverage_concern"`
	HasExistingProvider  bool   `json:"has_existing_provider"`
	ExistingProviderName string `json:"existing_provider_name"`

	FollowUpDate  *time.Time `json:"follow_up_date"`
	FollowUpNotes string     `json:"follow_up_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitFilter restringe listagens de visitas. DateFrom e DateTo são
// inclusivos nas duas pontas.
type VisitFilter struct {
	SalesPersonID *int
	Outcome       *VisitOutcome
	DateFrom      *time.Time
	DateTo        *time.Time
}
