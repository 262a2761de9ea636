package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageCounterpart(t *testing.T) {
	m := &Message{SenderID: "alice", ReceiverID: "bob"}

	assert.Equal(t, "bob", m.Counterpart("alice"))
	assert.Equal(t, "alice", m.Counterpart("bob"))
}

func TestValidMessageType(t *testing.T) {
	assert.True(t, ValidMessageType(MessageTypeInquiry))
	assert.True(t, ValidMessageType(MessageTypeOffer))
	assert.False(t, ValidMessageType("Spam"))
	assert.False(t, ValidMessageType(""))
}
