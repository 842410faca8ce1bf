package model

// DropdownEntry is a row of the dropdown lookup table.
type DropdownEntry struct {
	MemberName Value `json:"member_name"`
	TeamName   Value `json:"team_name"`
}
