package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/render/internal/core/domain"
)

func TestPageCacheControl_MinimumMaxAge(t *testing.T) {
	cc := domain.NewPageCacheControl()

	cc.Update("public, max-age=300")
	cc.Update("max-age=60")
	cc.Update("max-age=900")

	age, ok := cc.MaxAge()
	assert.True(t, ok)
	assert.Equal(t, 60, age)
	assert.Equal(t, "public, max-age=60", cc.String())
}

func TestPageCacheControl_StickyFlags(t *testing.T) {
	cc := domain.NewPageCacheControl()

	cc.Update("no-cache")
	cc.Update("public, max-age=60")

	assert.True(t, cc.NoCache())
	assert.False(t, cc.NoStore())
	assert.Equal(t, "no-cache, max-age=60", cc.String())

	cc.Update("No-Store")
	assert.True(t, cc.NoStore())
	assert.Equal(t, "no-store, no-cache", cc.String())
}

func TestPageCacheControl_Private(t *testing.T) {
	cc := domain.NewPageCacheControl()

	cc.Update("private, max-age=10")
	assert.Equal(t, "private, max-age=10", cc.String())
}

func TestPageCacheControl_IgnoresGarbage(t *testing.T) {
	cc := domain.NewPageCacheControl()

	cc.Update("")
	cc.Update("max-age=abc, max-age=-1, immutable")

	_, ok := cc.MaxAge()
	assert.False(t, ok)
	assert.Equal(t, "public", cc.String())
}
