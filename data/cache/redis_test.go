package cache

import (
	"testing"

	"gbooks_tgbot/config"

	"github.com/stretchr/testify/assert"
)

func TestCreateBooksPageKey_NormalizesCaseAndSpaces(t *testing.T) {
	c := NewRedisCache(&config.Config{}, nil)

	assert.Equal(t,
		c.createBooksPageKey("Dune", "Frank Herbert", 0),
		c.createBooksPageKey("  dune ", "frank   herbert", 0),
	)
}

func TestCreateBooksPageKey_DistinctSearchesGetDistinctKeys(t *testing.T) {
	c := NewRedisCache(&config.Config{}, nil)

	assert.NotEqual(t,
		c.createBooksPageKey("dune", "frank:herbert", 0),
		c.createBooksPageKey("dune:frank", "herbert", 0),
	)

	assert.NotEqual(t,
		c.createBooksPageKey("dune: messiah", "herbert", 0),
		c.createBooksPageKey("dune", ": messiah herbert", 0),
	)
}

func TestCreateBooksPageKey_DistinctPages(t *testing.T) {
	c := NewRedisCache(&config.Config{}, nil)

	assert.NotEqual(t,
		c.createBooksPageKey("dune", "herbert", 0),
		c.createBooksPageKey("dune", "herbert", 1),
	)
}
