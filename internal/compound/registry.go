// Package compound describes the compound types that participate in cloud
// simulation and resolves user-supplied compound names.
package compound

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ID identifies one compound type.
type ID int

const (
	Oxygen ID = iota
	CarbonDioxide
	Glucose
	Ammonia
)

// Info carries the display metadata for one compound type.
type Info struct {
	ID    ID
	Name  string
	Color color.RGBA
}

var table = []Info{
	{ID: Oxygen, Name: "oxygen", Color: color.RGBA{R: 96, G: 160, B: 240, A: 255}},
	{ID: CarbonDioxide, Name: "co2", Color: color.RGBA{R: 150, G: 120, B: 190, A: 255}},
	{ID: Glucose, Name: "glucose", Color: color.RGBA{R: 240, G: 190, B: 70, A: 255}},
	{ID: Ammonia, Name: "ammonia", Color: color.RGBA{R: 120, G: 200, B: 120, A: 255}},
}

// All returns the registered compound types in declaration order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table)
	return out
}

// Get looks up a compound by id.
func Get(id ID) (Info, bool) {
	for _, info := range table {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Resolve maps a user-supplied name to a compound. Exact matches win, then
// unambiguous prefixes, then close misspellings within a length-scaled
// levenshtein distance.
func Resolve(name string) (Info, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" {
		return Info{}, fmt.Errorf("empty compound name")
	}

	for _, info := range table {
		if info.Name == token {
			return info, nil
		}
	}

	if len(token) >= 2 {
		for _, info := range table {
			if strings.HasPrefix(info.Name, token) {
				return info, nil
			}
		}
	}

	best := -1
	bestDist := 0
	for i, info := range table {
		dist := levenshtein.ComputeDistance(token, info.Name)
		if dist > distanceLimit(len(info.Name)) {
			continue
		}
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best >= 0 {
		return table[best], nil
	}
	return Info{}, fmt.Errorf("unknown compound %q", name)
}

// ResolveList parses a comma-separated compound list.
func ResolveList(names string) ([]Info, error) {
	var out []Info
	for _, part := range strings.Split(names, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		info, err := Resolve(part)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no compounds in %q", names)
	}
	return out, nil
}

func distanceLimit(nameLen int) int {
	limit := nameLen / 3
	if limit < 1 {
		limit = 1
	}
	return limit
}
