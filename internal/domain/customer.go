package domain

import "time"

// Customer representa um cliente pagante. ProspectID preserva, quando
// existir, o vínculo um-para-um com o prospect de origem.
type Customer struct {
	ID         int       `json:"id"`
	Reference  string    `json:"reference"` // código curto gerado na criação
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      *string   `json:"email"`
	Address    string    `json:"address"`
	IDNumber   string    `json:"id_number"`
	ProspectID *int      `json:"prospect_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
