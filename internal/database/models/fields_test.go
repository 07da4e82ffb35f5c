package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerFieldsMatchStructTags(t *testing.T) {
	typ := reflect.TypeOf(Player{})
	require.Equal(t, typ.NumField(), len(PlayerFields))

	for _, f := range PlayerFields {
		sf, ok := typ.FieldByName(f.Field)
		require.True(t, ok, f.Field)
		assert.Equal(t, f.JSON, sf.Tag.Get("json"), f.Field)
		assert.Equal(t, "column:"+f.Column, strings.Split(sf.Tag.Get("gorm"), ";")[0], f.Field)
	}
}

func TestJSONForField(t *testing.T) {
	name, ok := JSONForField("SquadNumber")
	assert.True(t, ok)
	assert.Equal(t, "squadNumber", name)

	name, ok = JSONForField("AbbrPosition")
	assert.True(t, ok)
	assert.Equal(t, "abbrPosition", name)

	_, ok = JSONForField("squadNumber")
	assert.False(t, ok)
}

func TestPlayerUpdatableColumnsExcludeIdentity(t *testing.T) {
	cols := PlayerUpdatableColumns()

	assert.NotContains(t, cols, "id")
	assert.NotContains(t, cols, "squadNumber")
	assert.Contains(t, cols, "firstName")
	assert.Contains(t, cols, "starting11")
	assert.Len(t, cols, len(PlayerFields)-2)
}

func TestPlayerJSONUsesCamelCase(t *testing.T) {
	team := "Inter Miami CF"
	starting := true
	p := Player{FirstName: "Lionel", LastName: "Messi", SquadNumber: 10, Position: "Right Winger", Team: &team, Starting11: &starting}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(10), decoded["squadNumber"])
	assert.Equal(t, "Inter Miami CF", decoded["team"])
	assert.Nil(t, decoded["middleName"])
	assert.NotContains(t, decoded, "squad_number")
}
