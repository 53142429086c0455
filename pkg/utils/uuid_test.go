package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)
		assert.Empty(t, strings.Trim(id, characters))
		assert.False(t, seen[id], "id repetido: %s", id)
		seen[id] = true
	}
}
