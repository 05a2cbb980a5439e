package geodata

// ProvincePlaces lists the notable places declared for one province, in display order.
type ProvincePlaces struct {
	Province string
	Places   []string
}

// Catalog is the ordered notable places table. Order drives matcher output order.
type Catalog []ProvincePlaces

// PlacesFor returns the places declared for province, or nil.
func (c Catalog) PlacesFor(province string) []string {
	for _, pp := range c {
		if pp.Province == province {
			return pp.Places
		}
	}
	return nil
}

var DefaultCatalog = Catalog{
	{"Alberta", []string{"Banff NP", "Jasper NP", "Calgary Tower", "Lake Louise", "West Edmonton Mall"}},
	{"British Columbia", []string{"Stanley Park", "Butchart Gardens", "Whistler", "Capilano Bridge", "Pacific Rim NP"}},
	{"Manitoba", []string{"The Forks", "Riding Mountain NP", "Assiniboine Zoo", "Museum for Human Rights", "FortWhyte Alive"}},
	{"New Brunswick", []string{"Bay of Fundy", "Hopewell Rocks", "Fundy NP", "Reversing Falls", "Kings Landing"}},
	{"Newfoundland and Labrador", []string{"Gros Morne NP", "Signal Hill", "L'Anse aux Meadows", "Cape Spear", "Bonavista"}},
	{"Nova Scotia", []string{"Peggy's Cove", "Cabot Trail", "Halifax Citadel", "Lunenburg", "Kejimkujik NP"}},
	{"Ontario", []string{"CN Tower", "Niagara Falls", "Algonquin Park", "Parliament Hill", "Royal Ontario Museum"}},
	{"Prince Edward Island", []string{"Green Gables", "Cavindish Beach", "Confederation Trail", "PEI NP", "Point Prim Lighthouse"}},
	{"Quebec", []string{"Old Quebec", "Mont-Tremblant", "Montmorency Falls", "Quebec City", "Sainte-Anne-de-Beaupré"}},
	{"Saskatchewan", []string{"Forestry Zoo", "Wanuskewin", "Prince Albert NP", "Wascana Centre", "RCMP Heritage Centre"}},
	{"Northwest Territories", []string{"Nahanni NP", "Great Slave Lake", "Virginia Falls", "Yellowknife", "Wood Buffalo NP"}},
	{"Nunavut", []string{"Auyuittuq NP", "Sylvia Grinnell Park", "Qaummaarviit Park", "Iqaluit", "Sirmilik NP"}},
	{"Yukon", []string{"Kluane NP", "Miles Canyon", "SS Klondike", "Whitehorse", "Tombstone Park"}},
}
