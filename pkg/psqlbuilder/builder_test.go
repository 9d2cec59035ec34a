package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("rooms").
		Where(squirrel.Eq{"id": "r-1"}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM rooms WHERE id = $1 AND is_active = $2", query)
	assert.Equal(t, []interface{}{"r-1", true}, args)
}
