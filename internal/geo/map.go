package geo

import "fmt"

// ErrInvalidBorderTerrain : A border's terrain did not match either endpoint's occupancy terrain.
var ErrInvalidBorderTerrain = fmt.Errorf("border terrain incompatible with its endpoints")

// Map :
// Immutable in-memory catalogue of provinces, regions and borders,
// built once by `NewMap` or `Standard` and shared read-only by every
// adjudication performed against it.
//
// The `provinces` index provinces by key.
//
// The `regions` index regions by key.
//
// The `regionsByProvince` groups region keys by their parent
// province, so a province-level query ("all regions of bul") never
// needs a linear scan.
//
// The `borders` lists every border once; `bordersByRegion` indexes
// them by each endpoint for adjacency queries.
type Map struct {
	provinces         map[string]Province
	regions           map[RegionKey]Region
	regionsByProvince map[string][]RegionKey
	borders           []Border
	bordersByRegion   map[RegionKey][]Border
}

// NewMap :
// Used to build an in-memory catalogue from three ordered tables,
// validating cross-references as it goes. Mirrors the pattern of
// building a catalogue from flat rows and only then checking that
// every reference resolves, rather than validating row by row as
// they stream in.
//
// The `provinces` table declares every province in the map.
//
// The `regions` table declares every addressable subdivision,
// each referencing one of the declared provinces.
//
// The `borders` table declares every undirected adjacency between
// two declared regions.
//
// Returns the built map along with any error describing the first
// inconsistency found.
func NewMap(provinces []ProvinceSpec, regions []RegionSpec, borders []BorderSpec) (*Map, error) {
	m := &Map{
		provinces:         make(map[string]Province),
		regions:           make(map[RegionKey]Region),
		regionsByProvince: make(map[string][]RegionKey),
		bordersByRegion:   make(map[RegionKey][]Border),
	}

	for _, spec := range provinces {
		if err := spec.valid(); err != nil {
			return nil, err
		}
		if _, ok := m.provinces[spec.Key]; ok {
			return nil, ErrDuplicateProvince
		}

		m.provinces[spec.Key] = Province{
			Key:          spec.Key,
			Name:         spec.Name,
			SupplyCenter: spec.SupplyCenter,
			Home:         spec.Home,
		}
	}

	for _, spec := range regions {
		if _, ok := m.provinces[spec.Key]; !ok {
			return nil, ErrInvalidRegionProvince
		}

		key := RegionKey{Province: spec.Key, Coast: spec.Coast}
		if _, ok := m.regions[key]; ok {
			return nil, ErrDuplicateRegion
		}

		m.regions[key] = Region{
			Key:      key,
			Province: spec.Key,
			Terrain:  spec.Terrain,
		}
		m.regionsByProvince[spec.Key] = append(m.regionsByProvince[spec.Key], key)
	}

	for _, spec := range borders {
		from, ok := m.regions[spec.From]
		if !ok {
			return nil, ErrInvalidBorderRegion
		}
		to, ok := m.regions[spec.To]
		if !ok {
			return nil, ErrInvalidBorderRegion
		}
		if spec.From == spec.To {
			return nil, ErrSelfBorder
		}
		if !borderTerrainCompatible(spec.Terrain, from, to) {
			return nil, ErrInvalidBorderTerrain
		}

		b := Border{From: spec.From, To: spec.To, Terrain: spec.Terrain}
		m.borders = append(m.borders, b)
		m.bordersByRegion[spec.From] = append(m.bordersByRegion[spec.From], b)
		m.bordersByRegion[spec.To] = append(m.bordersByRegion[spec.To], b)
	}

	return m, nil
}

// borderTerrainCompatible :
// A border's terrain tag must admit at least one of the unit types
// that could plausibly occupy either of its endpoints; this guards
// against typos in hand-built tables such as a `Sea` border between
// two `Land` regions.
func borderTerrainCompatible(t Terrain, from, to Region) bool {
	for _, army := range []bool{true, false} {
		admits := (t == Land && army) || (t == Sea && !army) || t == Coast
		if !admits {
			continue
		}
		if from.CanOccupy(army) || to.CanOccupy(army) {
			return true
		}
	}
	return false
}

// FindRegion :
// Looks up a region by its key.
//
// Returns the region and whether it was found.
func (m *Map) FindRegion(key RegionKey) (Region, bool) {
	r, ok := m.regions[key]
	return r, ok
}

// FindProvince :
// Looks up a province by its key.
//
// Returns the province and whether it was found.
func (m *Map) FindProvince(key string) (Province, bool) {
	p, ok := m.provinces[key]
	return p, ok
}

// RegionsOf :
// Returns every region belonging to the given province, in the
// order they were declared to `NewMap`.
func (m *Map) RegionsOf(province string) []RegionKey {
	return m.regionsByProvince[province]
}

// Provinces :
// Returns every province declared in the map, in an unspecified order
// that may differ between calls. Callers requiring a deterministic
// iteration order should sort by `Key`.
func (m *Map) Provinces() []Province {
	out := make([]Province, 0, len(m.provinces))
	for _, p := range m.provinces {
		out = append(out, p)
	}
	return out
}

// BordersContaining :
// Returns every border having the given region as one of its two
// endpoints.
func (m *Map) BordersContaining(region RegionKey) []Border {
	return m.bordersByRegion[region]
}

// FindBordering :
// Returns the region keys directly adjacent to the given region,
// i.e. reachable by crossing exactly one border, regardless of unit
// type.
func (m *Map) FindBordering(region RegionKey) []RegionKey {
	var out []RegionKey
	for _, b := range m.bordersByRegion[region] {
		if other, ok := b.connects(region); ok {
			out = append(out, other)
		}
	}
	return out
}

// FindBorderBetween :
// Looks up the border directly joining two regions, if any.
//
// Returns the border and whether it was found.
func (m *Map) FindBorderBetween(a, b RegionKey) (Border, bool) {
	for _, border := range m.bordersByRegion[a] {
		if other, ok := border.connects(a); ok && other == b {
			return border, true
		}
	}
	return Border{}, false
}

// FindBordersBetween :
// Returns every border joining the given region to any region of the
// given province. Needed for supports and convoys aimed at a
// split-coast province, where several of its regions may each have
// their own border to the origin.
func (m *Map) FindBordersBetween(region RegionKey, province string) []Border {
	var out []Border
	for _, border := range m.bordersByRegion[region] {
		other, ok := border.connects(region)
		if !ok {
			continue
		}
		if r, found := m.regions[other]; found && r.MatchesProvince(province) {
			out = append(out, border)
		}
	}
	return out
}

// RegionMatchesProvince :
// Determines whether the given region belongs to the given province,
// ignoring any coast tag.
func (m *Map) RegionMatchesProvince(region RegionKey, province string) bool {
	r, ok := m.regions[region]
	if !ok {
		return false
	}
	return r.MatchesProvince(province)
}

// HasPassableBorder :
// Determines whether some border exists from `from` to any region of
// `toProvince`, passable by the given unit type. This is the "can
// reach" predicate used throughout support evaluation.
func (m *Map) HasPassableBorder(from RegionKey, toProvince string, army bool) bool {
	for _, b := range m.FindBordersBetween(from, toProvince) {
		if b.PassableBy(army) {
			return true
		}
	}
	return false
}
