package utils

import "math"

type PaginationData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginationData(page, limit int, total int64) PaginationData {
	return PaginationData{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// Round2 rounds to two decimal places, matching the precision used
// by the statistics endpoints.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
