package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Praveenramisetti76/ShareSphere/internal/adapter/api"
)

func TestSendMessageContentLengthBound(t *testing.T) {
	v := api.NewValidator()

	req := sendMessageRequest{
		ReceiverID: "bob",
		ItemID:     "item-1",
		Content:    strings.Repeat("a", 1000),
	}
	assert.NoError(t, v.Validate(&req))

	req.Content = strings.Repeat("a", 1001)
	assert.Error(t, v.Validate(&req))
}
