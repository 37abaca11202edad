// Package refresh provides the Family identity token.
// This file contains the token type and its minting helper.
package refresh

import (
	"strings"

	"github.com/google/uuid"
)

// Family identifies one type family: the same logical component across
// recompiles maps to the same Family. Tokens are minted by the refresh
// runtime and never inspected here; equality is pointer identity, and a nil
// *Family is the valid "no family" token for values the runtime has never
// seen as components.
type Family struct {
	id   string
	name string
}

// NewFamily mints a fresh Family with a unique id. name is a diagnostic label
// (typically the component's source name) and may be empty.
func NewFamily(name string) *Family {
	id := uuid.Must(uuid.NewV7()).String()
	id = strings.Replace(id, "-", "", -1)
	return &Family{id: id, name: name}
}

// ID returns the family's unique id, or "" for the nil token.
func (f *Family) ID() string {
	if f == nil {
		return ""
	}
	return f.id
}

// Name returns the family's diagnostic label, or "" for the nil token.
func (f *Family) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// String renders the family for diagnostics.
func (f *Family) String() string {
	if f == nil {
		return "<no family>"
	}
	if f.name != "" {
		return f.name + "#" + f.id
	}
	return "#" + f.id
}
