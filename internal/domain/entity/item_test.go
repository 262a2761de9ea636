package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestItemStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{ItemStatusAvailable, ItemStatusReserved, true},
		{ItemStatusAvailable, ItemStatusGivenAway, true},
		{ItemStatusAvailable, ItemStatusSold, true},
		{ItemStatusReserved, ItemStatusAvailable, true},
		{ItemStatusReserved, ItemStatusSold, true},
		{ItemStatusGivenAway, ItemStatusAvailable, false},
		{ItemStatusGivenAway, ItemStatusReserved, false},
		{ItemStatusSold, ItemStatusAvailable, false},
	}

	for _, tc := range cases {
		item := &Item{Status: tc.from}
		assert.Equal(t, tc.allowed, item.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestItemSameStatusIsAllowed(t *testing.T) {
	item := &Item{Status: ItemStatusSold}
	assert.True(t, item.CanTransitionTo(ItemStatusSold))
}

func TestItemTerminalStatus(t *testing.T) {
	assert.False(t, (&Item{Status: ItemStatusAvailable}).IsTerminalStatus())
	assert.False(t, (&Item{Status: ItemStatusReserved}).IsTerminalStatus())
	assert.True(t, (&Item{Status: ItemStatusGivenAway}).IsTerminalStatus())
	assert.True(t, (&Item{Status: ItemStatusSold}).IsTerminalStatus())
}

func TestItemIsLikedBy(t *testing.T) {
	item := &Item{Likes: []string{"alice", "bob"}}

	assert.True(t, item.IsLikedBy("alice"))
	assert.False(t, item.IsLikedBy("carol"))
}

func TestDaysUntilExpiration(t *testing.T) {
	item := &Item{ExpiresAt: time.Now().Add(10*24*time.Hour + time.Hour)}
	assert.Equal(t, 11, item.DaysUntilExpiration())

	expired := &Item{ExpiresAt: time.Now().Add(-24 * time.Hour)}
	assert.Equal(t, 0, expired.DaysUntilExpiration())

	unset := &Item{}
	assert.Equal(t, 0, unset.DaysUntilExpiration())
}

func TestValidItemEnums(t *testing.T) {
	assert.True(t, ValidItemCategory("Books"))
	assert.False(t, ValidItemCategory("Spaceships"))
	assert.True(t, ValidItemCondition("Like New"))
	assert.False(t, ValidItemCondition("Broken"))
	assert.True(t, ValidSharingType(SharingTypeKeep))
	assert.False(t, ValidSharingType("Rental"))
}
