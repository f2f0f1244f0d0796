package models

// MobileApp описывает мобильное приложение из витрины.
type MobileApp struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	IconURL     string   `json:"iconUrl"`
	Screenshots []string `json:"screenshots"`
	Rating      float64  `json:"rating"`    // ожидается 1.0–5.0, хранилище не проверяет
	Downloads   string   `json:"downloads"` // например "10k+"
	Size        string   `json:"size"`      // например "15 MB"
	Category    string   `json:"category"`
	DownloadURL string   `json:"downloadUrl"`
	CreatedAt   int64    `json:"createdAt"`
}

// AppPatch — частичное обновление приложения.
type AppPatch struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Tagline     *string   `json:"tagline,omitempty"`
	Description *string   `json:"description,omitempty"`
	IconURL     *string   `json:"iconUrl,omitempty"`
	Screenshots *[]string `json:"screenshots,omitempty"`
	Rating      *float64  `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Downloads   *string   `json:"downloads,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Category    *string   `json:"category,omitempty"`
	DownloadURL *string   `json:"downloadUrl,omitempty"`
}

// Apply накладывает переданные поля патча поверх приложения.
func (p AppPatch) Apply(dst *MobileApp) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Tagline != nil {
		dst.Tagline = *p.Tagline
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.IconURL != nil {
		dst.IconURL = *p.IconURL
	}
	if p.Screenshots != nil {
		dst.Screenshots = *p.Screenshots
	}
	if p.Rating != nil {
		dst.Rating = *p.Rating
	}
	if p.Downloads != nil {
		dst.Downloads = *p.Downloads
	}
	if p.Size != nil {
		dst.Size = *p.Size
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.DownloadURL != nil {
		dst.DownloadURL = *p.DownloadURL
	}
}
