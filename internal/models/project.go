// Package models содержит доменные модели витрины: проекты, мобильные приложения,
// пользователей и частичные обновления (patch) для них.
package models

// Project описывает проект из портфолио студии.
//
// ID и CreatedAt назначаются хранилищем при создании и больше не меняются.
type Project struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         Category `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	ImageURL         string   `json:"imageUrl"`
	Gallery          []string `json:"gallery"`
	Technologies     []string `json:"technologies"`
	Features         []string `json:"features"`
	DemoURL          string   `json:"demoUrl,omitempty"`
	CreatedAt        int64    `json:"createdAt"` // миллисекунды с начала эпохи
}

// ProjectPatch — частичное обновление проекта. nil означает «поле не передано».
type ProjectPatch struct {
	Title            *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Category         *Category `json:"category,omitempty" validate:"omitempty,category"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	FullDescription  *string   `json:"fullDescription,omitempty"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	Gallery          *[]string `json:"gallery,omitempty"`
	Technologies     *[]string `json:"technologies,omitempty"`
	Features         *[]string `json:"features,omitempty"`
	DemoURL          *string   `json:"demoUrl,omitempty"`
}

// Apply накладывает переданные поля патча поверх проекта.
func (p ProjectPatch) Apply(dst *Project) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.ShortDescription != nil {
		dst.ShortDescription = *p.ShortDescription
	}
	if p.FullDescription != nil {
		dst.FullDescription = *p.FullDescription
	}
	if p.ImageURL != nil {
		dst.ImageURL = *p.ImageURL
	}
	if p.Gallery != nil {
		dst.Gallery = *p.Gallery
	}
	if p.Technologies != nil {
		dst.Technologies = *p.Technologies
	}
	if p.Features != nil {
		dst.Features = *p.Features
	}
	if p.DemoURL != nil {
		dst.DemoURL = *p.DemoURL
	}
}
