package utils

import "time"

// ParseDate valida uma data no formato YYYY-MM-DD, o mesmo usado nas chaves de
// snapshot diário. String vazia retorna a data zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
