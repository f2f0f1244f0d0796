package models

// Stats — сводка для панели администратора.
type Stats struct {
	Projects             int      `json:"projects"`
	Apps                 int      `json:"apps"`
	MostFrequentCategory Category `json:"mostFrequentCategory,omitempty"`
	LatestProjectTitle   string   `json:"latestProjectTitle,omitempty"`
	LatestProjectAt      int64    `json:"latestProjectAt,omitempty"`
}
