package mojang

import "strings"

// Identity is a resolved player account. It is immutable once resolved.
type Identity struct {
	// Name is the canonical display name
	Name string
	// ID is the raw 32 character hex UUID as returned by Mojang
	ID string
}

// Dashed returns the hyphenated UUID form, derived from the raw form by
// fixed position splicing into 8-4-4-4-12 hex groups
func (i *Identity) Dashed() string {
	id := i.ID
	if len(id) != 32 {
		return id
	}
	return strings.Join([]string{
		id[0:8],
		id[8:12],
		id[12:16],
		id[16:20],
		id[20:32],
	}, "-")
}
