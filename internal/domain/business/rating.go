package business

type Rating struct {
	BusinessID int64   `json:"business_id"`
	Score      float64 `json:"score"`
}

// Summary is the average score and the number of ratings it was built from.
type Summary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func SummarizeRatings(ratings []Rating) map[int64]Summary {
	sums := make(map[int64]float64)
	out := make(map[int64]Summary)
	for _, r := range ratings {
		sums[r.BusinessID] += r.Score
		s := out[r.BusinessID]
		s.Count++
		out[r.BusinessID] = s
	}
	for id, s := range out {
		s.Average = sums[id] / float64(s.Count)
		out[id] = s
	}
	return out
}
