package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").From("bookings").
		Where(squirrel.Eq{"resource_id": "r1"}).
		Where(squirrel.LtOrEq{"start_date": "2025-03-10"}).
		ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE resource_id = $1 AND start_date <= $2", query)
	assert.Equal(t, []interface{}{"r1", "2025-03-10"}, args)

	query, _, err = Delete("bookings").Where(squirrel.Eq{"id": "b1"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM bookings WHERE id = $1", query)
}
