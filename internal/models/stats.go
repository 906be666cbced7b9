package models

// AdminStats represents catalog-wide aggregates
// swagger:model AdminStats
type AdminStats struct {
	TotalTools     int64   `json:"totalTools" example:"12"`
	TotalDownloads int64   `json:"totalDownloads" example:"3400"`
	TotalReviews   int64   `json:"totalReviews" example:"210"`
	AverageRating  float64 `json:"averageRating" example:"4.2"`
}

// AverageRating returns the arithmetic mean of ratings, or 0 when there are none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
