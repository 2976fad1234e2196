package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/domain/ad"
	"adboard/internal/domain/user"
)

func TestFromAd(t *testing.T) {
	resolve := func(path string) string { return "/media/" + path }

	a := ad.New("bike", 7, decimal.NewFromInt(150), "city bike", 3, true)
	a.ID = 1

	resp := FromAd(a, resolve)
	assert.Nil(t, resp.Image)

	a.SetImage("abc.jpg")
	resp = FromAd(a, resolve)
	require.NotNil(t, resp.Image)
	assert.Equal(t, "/media/abc.jpg", *resp.Image)
}

func TestFromUser(t *testing.T) {
	u := user.New("alice", "s3cret")
	u.ID = 1
	u.PasswordHash = "$hash$"
	u.TotalAds = 4

	resp := FromUser(u)

	assert.Equal(t, int64(4), resp.TotalAds)
	// Never null in JSON, even with no locations loaded.
	assert.NotNil(t, resp.Locations)
	assert.Empty(t, resp.Locations)
}
