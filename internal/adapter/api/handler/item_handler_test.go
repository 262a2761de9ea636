package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api"
	"github.com/Praveenramisetti76/ShareSphere/internal/domain/entity"
)

func TestCreateItemDescriptionLengthBound(t *testing.T) {
	v := api.NewValidator()

	req := createItemRequest{
		Title:       "Old bookshelf",
		Description: strings.Repeat("a", 1000),
		Category:    "Furniture",
		Condition:   "Good",
		Images:      []string{"https://example.com/shelf.jpg"},
		SharingType: entity.SharingTypeGiveAway,
	}
	assert.NoError(t, v.Validate(&req))

	req.Description = strings.Repeat("a", 1001)
	assert.Error(t, v.Validate(&req))
}

func TestUpdateItemDescriptionLengthBound(t *testing.T) {
	v := api.NewValidator()

	ok := strings.Repeat("a", 1000)
	assert.NoError(t, v.Validate(&updateItemRequest{Description: &ok}))

	long := strings.Repeat("a", 1001)
	assert.Error(t, v.Validate(&updateItemRequest{Description: &long}))
}
