// Package village derives a community reference from a postal address.
// Communities are lettered villages: "Village A" maps to COM-101, "Village B"
// to COM-102, and so on.
package village

import (
	"fmt"
	"regexp"
)

var pattern = regexp.MustCompile(`Village\s+([A-Z])`)

type Ref struct {
	Name string // "Village B"
	ID   string // "COM-102"
}

// Derive extracts the village letter from an address. The second return is
// false when the address carries no "Village <Letter>" token; callers must
// leave existing community fields untouched in that case.
func Derive(address string) (Ref, bool) {
	m := pattern.FindStringSubmatch(address)
	if m == nil {
		return Ref{}, false
	}
	letter := m[1][0]
	return Ref{
		Name: "Village " + m[1],
		ID:   fmt.Sprintf("COM-10%d", letter-'A'+1),
	}, true
}
