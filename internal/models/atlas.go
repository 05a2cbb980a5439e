package models

import "sort"

// Atlas is the immutable data the map is served from, built once at startup.
type Atlas struct {
	Provinces []Province
	Matches   []NotableMatch
}

// ProvinceNames returns the province names in sorted order.
func (a *Atlas) ProvinceNames() []string {
	names := make([]string, 0, len(a.Provinces))
	for _, p := range a.Provinces {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
