package valid_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/valid"
	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

type request struct {
	Title    string          `json:"title" validate:"required"`
	Category models.Category `json:"category" validate:"required,category"`
}

func TestNew_Category(t *testing.T) {
	v := valid.New()

	tests := []struct {
		name     string
		category models.Category
		wantErr  bool
	}{
		{name: "Gym", category: models.CategoryGym},
		{name: "E-commerce", category: models.CategoryECommerce},
		{name: "Other", category: models.CategoryOther},
		{name: "All только фильтр", category: models.CategoryAll, wantErr: true},
		{name: "неизвестная", category: "Spaceship", wantErr: true},
		{name: "регистр важен", category: "gym", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(request{Title: "X", Category: tt.category})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, "category", verrs[0].Field())
			assert.Equal(t, "category", verrs[0].ActualTag())
		})
	}
}

func TestNew_PatchPointers(t *testing.T) {
	v := valid.New()

	empty := ""
	bad := models.Category("Nope")
	good := models.CategoryHotel
	rating := 7.0

	assert.NoError(t, v.Struct(models.ProjectPatch{}))
	assert.NoError(t, v.Struct(models.ProjectPatch{Category: &good}))
	assert.Error(t, v.Struct(models.ProjectPatch{Category: &bad}))
	assert.Error(t, v.Struct(models.ProjectPatch{Title: &empty}))
	assert.Error(t, v.Struct(models.AppPatch{Rating: &rating}))
}

func TestNew_JSONFieldNames(t *testing.T) {
	err := valid.New().Struct(request{Category: models.CategoryGym})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "title", verrs[0].Field())
}
