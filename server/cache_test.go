package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoKey(t *testing.T) {
	assert.Equal(t, "route\x00A\x00B", memoKey("route", "A", "B"))
	assert.NotEqual(t, memoKey("route", "A|B", "C"), memoKey("route", "A", "B|C"))
}

func TestResponseCache(t *testing.T) {
	c := newResponseCache(2)

	_, ok := c.get("x")
	assert.False(t, ok)

	c.put("x", cachedResponse{status: 200, body: []byte("1")})
	c.put("y", cachedResponse{status: 404, body: []byte("2")})
	got, ok := c.get("y")
	assert.True(t, ok)
	assert.Equal(t, 404, got.status)
	assert.Equal(t, 2, c.size())

	// full: reset before inserting
	c.put("z", cachedResponse{status: 200})
	assert.Equal(t, 1, c.size())
	_, ok = c.get("x")
	assert.False(t, ok)

	disabled := newResponseCache(0)
	disabled.put("x", cachedResponse{})
	assert.Equal(t, 0, disabled.size())
}
