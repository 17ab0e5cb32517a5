package domain

import "time"

// SalesTarget guarda a meta mensal de um vendedor. Existe no máximo uma
// linha por (vendedor, mês); a restrição de unicidade é do banco.
type SalesTarget struct {
	ID             int       `json:"id"`
	SalesPersonID  int       `json:"sales_person_id"`
	Month          time.Time `json:"month"` // sempre o primeiro dia do mês
	TargetAmount   float64   `json:"target_amount"`
	TargetCount    int       `json:"target_count"`
	TargetVisits   int       `json:"target_visits"`
	AchievedAmount float64   `json:"achieved_amount"`
	AchievedCount  int       `json:"achieved_count"`
	AchievedVisits int       `json:"achieved_visits"`
}
