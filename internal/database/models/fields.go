package models

// FieldMapping ties a Player struct field to its external JSON name and its
// store column. The two names happen to match today; callers must still go
// through this table rather than assume it.
type FieldMapping struct {
	Field    string
	JSON     string
	Column   string
	Identity bool
}

// PlayerFields lists every persisted Player field.
var PlayerFields = []FieldMapping{
	{Field: "ID", JSON: "id", Column: "id", Identity: true},
	{Field: "FirstName", JSON: "firstName", Column: "firstName"},
	{Field: "MiddleName", JSON: "middleName", Column: "middleName"},
	{Field: "LastName", JSON: "lastName", Column: "lastName"},
	{Field: "DateOfBirth", JSON: "dateOfBirth", Column: "dateOfBirth"},
	{Field: "SquadNumber", JSON: "squadNumber", Column: "squadNumber", Identity: true},
	{Field: "Position", JSON: "position", Column: "position"},
	{Field: "AbbrPosition", JSON: "abbrPosition", Column: "abbrPosition"},
	{Field: "Team", JSON: "team", Column: "team"},
	{Field: "League", JSON: "league", Column: "league"},
	{Field: "Starting11", JSON: "starting11", Column: "starting11"},
}

var jsonByField = make(map[string]string, len(PlayerFields))

func init() {
	for _, f := range PlayerFields {
		jsonByField[f.Field] = f.JSON
	}
}

// JSONForField returns the external name of a Player struct field
func JSONForField(field string) (string, bool) {
	name, ok := jsonByField[field]
	return name, ok
}

// PlayerUpdatableColumns returns the columns a full replacement overwrites:
// every column except the identity ones.
func PlayerUpdatableColumns() []string {
	cols := make([]string, 0, len(PlayerFields))
	for _, f := range PlayerFields {
		if !f.Identity {
			cols = append(cols, f.Column)
		}
	}
	return cols
}
