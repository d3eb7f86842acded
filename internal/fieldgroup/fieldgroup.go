// Package fieldgroup models ACF-style field-group exports: the descriptor
// shape stored in a block's acf.json, the location rule tree that scopes a
// group to content, and the ownership predicate that decides whether a group
// belongs to exactly one named block.
package fieldgroup

import "encoding/json"

const (
	// FileName is the block-local field-group export, relative to the block
	// directory.
	FileName = "acf.json"
	// ScriptName is the legacy companion script executed when no JSON export
	// exists. It is opaque to the pipeline; the host runs it as-is.
	ScriptName = "acf.sh"
)

// Rule is a single visibility rule inside a location expression.
type Rule struct {
	Param    string `json:"param"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Location is the rule expression scoping a field group: a sequence of
// AND-groups, each a sequence of OR-rules.
type Location [][]Rule

// Descriptor is one field-group export. Fields is carried opaquely; the
// pipeline never inspects schema content, only identity and location.
type Descriptor struct {
	Key      string          `json:"key"`
	Title    string          `json:"title,omitempty"`
	Fields   json.RawMessage `json:"fields,omitempty"`
	Location Location        `json:"location,omitempty"`
}

// MatchesBlock reports whether the descriptor is single-block-scoped to the
// given block name: exactly one AND-group, holding exactly one rule, and that
// rule is {param: "block", operator: "==", value: name}. Compound expressions
// that merely reference the name are never owned; treating them as owned
// would relocate a shared field group into one block's private directory.
func (d *Descriptor) MatchesBlock(name string) bool {
	if len(d.Location) != 1 {
		return false
	}
	group := d.Location[0]
	if len(group) != 1 {
		return false
	}
	rule := group[0]
	return rule.Param == "block" && rule.Operator == "==" && rule.Value == name
}
