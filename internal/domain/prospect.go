package domain

import "time"

// InterestLevel indica o nível de interesse de um prospect
type InterestLevel string

const (
	InterestVeryInterested InterestLevel = "very_interested"
	InterestInterested     InterestLevel = "interested"
	InterestNeutral        InterestLevel = "neutral"
	InterestNotInterested  InterestLevel = "not_interested"
	InterestConverted      InterestLevel = "converted"
)

// Valid indica se o valor pertence ao conjunto fechado de níveis de interesse
func (l InterestLevel) Valid() bool {
	switch l {
	case InterestVeryInterested, InterestInterested, InterestNeutral,
		InterestNotInterested, InterestConverted:
		return true
	}
	return false
}

// Prospect representa um cliente em potencial identificado durante as visitas
type Prospect struct {
	ID                 int           `json:"id"`
	FullName           string        `json:"full_name"`
	Phone              string        `json:"phone"`
	Email              *string       `json:"email"`
	Address            string        `json:"address"`
	Location           string        `json:"location"` // Área/Condomínio/Prédio
	InterestLevel      InterestLevel `json:"interest_level"`
	PreferredPackageID *int          `json:"preferred_package_id"`
	AddedByID          int           `json:"added_by_id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// ProspectFilter restringe listagens de prospects
type ProspectFilter struct {
	AddedByID     *int
	InterestLevel *InterestLevel
}
