package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectDocumentAndSubsidyListsNewestFirst(t *testing.T) {
	assert.Contains(t, findDocumentsByProjectQuery, "ORDER BY created_at DESC")
	assert.Contains(t, findSubsidiesByProjectQuery, "ORDER BY created_at DESC")
}
