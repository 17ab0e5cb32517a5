package utils

import "time"

// dateLayout é o formato aceito nos filtros e requisições (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// ParseDate converte uma data no formato YYYY-MM-DD. String vazia
// resulta na data zero, não em erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return &date, nil
}

// MonthStart trunca a data para o primeiro dia do mês em UTC
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
