package geo

// Standard :
// Builds the classic 34-supply-center board used by the vast majority
// of games, grounded in the original implementation's hand-written
// province/border tables. Ships as a ready-made constructor so callers
// (tests, the example command) never need to hand-assemble the full
// board themselves; callers needing a different or partial map still
// go through `NewMap` directly.
//
// Returns the built map. A panic on error would indicate a mistake in
// this table, not a caller error, so `Standard` does not return one;
// it is exercised by tests precisely to catch such mistakes.
func Standard() *Map {
	m, err := NewMap(standardProvinces, standardRegions, standardBorders)
	if err != nil {
		panic(err)
	}
	return m
}

var standardProvinces = []ProvinceSpec{
	// England
	{Key: "edi", Name: "Edinburgh", SupplyCenter: true, Home: "england"},
	{Key: "lvp", Name: "Liverpool", SupplyCenter: true, Home: "england"},
	{Key: "lon", Name: "London", SupplyCenter: true, Home: "england"},
	// France
	{Key: "bre", Name: "Brest", SupplyCenter: true, Home: "france"},
	{Key: "mar", Name: "Marseilles", SupplyCenter: true, Home: "france"},
	{Key: "par", Name: "Paris", SupplyCenter: true, Home: "france"},
	// Germany
	{Key: "ber", Name: "Berlin", SupplyCenter: true, Home: "germany"},
	{Key: "kie", Name: "Kiel", SupplyCenter: true, Home: "germany"},
	{Key: "mun", Name: "Munich", SupplyCenter: true, Home: "germany"},
	// Italy
	{Key: "rom", Name: "Rome", SupplyCenter: true, Home: "italy"},
	{Key: "nap", Name: "Naples", SupplyCenter: true, Home: "italy"},
	{Key: "ven", Name: "Venice", SupplyCenter: true, Home: "italy"},
	// Austria
	{Key: "vie", Name: "Vienna", SupplyCenter: true, Home: "austria"},
	{Key: "bud", Name: "Budapest", SupplyCenter: true, Home: "austria"},
	{Key: "tri", Name: "Trieste", SupplyCenter: true, Home: "austria"},
	// Russia
	{Key: "stp", Name: "St Petersburg", SupplyCenter: true, Home: "russia"},
	{Key: "mos", Name: "Moscow", SupplyCenter: true, Home: "russia"},
	{Key: "war", Name: "Warsaw", SupplyCenter: true, Home: "russia"},
	{Key: "sev", Name: "Sevastopol", SupplyCenter: true, Home: "russia"},
	// Turkey
	{Key: "ank", Name: "Ankara", SupplyCenter: true, Home: "turkey"},
	{Key: "con", Name: "Constantinople", SupplyCenter: true, Home: "turkey"},
	{Key: "smy", Name: "Smyrna", SupplyCenter: true, Home: "turkey"},
	// Neutral supply centers
	{Key: "bel", Name: "Belgium", SupplyCenter: true},
	{Key: "hol", Name: "Holland", SupplyCenter: true},
	{Key: "den", Name: "Denmark", SupplyCenter: true},
	{Key: "nwy", Name: "Norway", SupplyCenter: true},
	{Key: "swe", Name: "Sweden", SupplyCenter: true},
	{Key: "por", Name: "Portugal", SupplyCenter: true},
	{Key: "spa", Name: "Spain", SupplyCenter: true},
	{Key: "tun", Name: "Tunis", SupplyCenter: true},
	{Key: "gre", Name: "Greece", SupplyCenter: true},
	{Key: "ser", Name: "Serbia", SupplyCenter: true},
	{Key: "rum", Name: "Rumania", SupplyCenter: true},
	{Key: "bul", Name: "Bulgaria", SupplyCenter: true},
	// Non-supply-center land provinces
	{Key: "cly", Name: "Clyde"},
	{Key: "yor", Name: "Yorkshire"},
	{Key: "wal", Name: "Wales"},
	{Key: "pic", Name: "Picardy"},
	{Key: "gas", Name: "Gascony"},
	{Key: "bur", Name: "Burgundy"},
	{Key: "ruh", Name: "Ruhr"},
	{Key: "pru", Name: "Prussia"},
	{Key: "sil", Name: "Silesia"},
	{Key: "boh", Name: "Bohemia"},
	{Key: "tyr", Name: "Tyrolia"},
	{Key: "gal", Name: "Galicia"},
	{Key: "ukr", Name: "Ukraine"},
	{Key: "pie", Name: "Piedmont"},
	{Key: "tus", Name: "Tuscany"},
	{Key: "apu", Name: "Apulia"},
	{Key: "alb", Name: "Albania"},
	{Key: "arm", Name: "Armenia"},
	{Key: "syr", Name: "Syria"},
	{Key: "naf", Name: "North Africa"},
	{Key: "fin", Name: "Finland"},
	{Key: "lvn", Name: "Livonia"},
	// Sea provinces
	{Key: "nao", Name: "North Atlantic Ocean"},
	{Key: "nwg", Name: "Norwegian Sea"},
	{Key: "bar", Name: "Barents Sea"},
	{Key: "nth", Name: "North Sea"},
	{Key: "ska", Name: "Skagerrak"},
	{Key: "bal", Name: "Baltic Sea"},
	{Key: "bot", Name: "Gulf of Bothnia"},
	{Key: "eng", Name: "English Channel"},
	{Key: "iri", Name: "Irish Sea"},
	{Key: "mao", Name: "Mid-Atlantic Ocean"},
	{Key: "wes", Name: "Western Mediterranean"},
	{Key: "lyo", Name: "Gulf of Lyon"},
	{Key: "tyn", Name: "Tyrrhenian Sea"},
	{Key: "ion", Name: "Ionian Sea"},
	{Key: "adr", Name: "Adriatic Sea"},
	{Key: "aeg", Name: "Aegean Sea"},
	{Key: "eas", Name: "Eastern Mediterranean"},
	{Key: "bla", Name: "Black Sea"},
	{Key: "hel", Name: "Helgoland Bight"},
}

// Pure inland provinces: Land terrain, army only, no fleet ever.
var standardInland = []string{
	"par", "mun", "ruh", "bur", "boh", "vie", "tyr", "gal", "ukr", "sil", "bud", "ser", "war", "mos",
}

// Coastal land provinces with a single region: Coast terrain, army
// and fleet both.
var standardCoastal = []string{
	"edi", "lvp", "lon", "cly", "yor", "wal", "bre", "mar", "kie", "ber", "pru",
	"pie", "tus", "rom", "nap", "ven", "apu", "tri", "rum", "gre", "alb", "por",
	"naf", "tun", "fin", "nwy", "swe", "pic", "gas", "arm", "smy", "syr", "ank", "con", "sev", "bel", "hol", "den",
	"lvn",
}

// Sea-only provinces: Sea terrain, fleet only.
var standardSea = []string{
	"nao", "nwg", "bar", "nth", "ska", "bal", "bot", "eng", "iri", "mao",
	"wes", "lyo", "tyn", "ion", "adr", "aeg", "eas", "bla", "hel",
}

// standardRegions is built by init from the province-class tables above,
// plus the three split-coast provinces handled explicitly.
var standardRegions []RegionSpec

func init() {
	for _, key := range standardInland {
		standardRegions = append(standardRegions, RegionSpec{Key: key, Terrain: Land})
	}
	for _, key := range standardCoastal {
		standardRegions = append(standardRegions, RegionSpec{Key: key, Terrain: Coast})
	}
	for _, key := range standardSea {
		standardRegions = append(standardRegions, RegionSpec{Key: key, Terrain: Sea})
	}

	// Split-coast provinces: one Coast region for army movement plus
	// two Sea regions, each tagged with the coast a fleet actually
	// sails from.
	standardRegions = append(standardRegions,
		RegionSpec{Key: "spa", Terrain: Coast},
		RegionSpec{Key: "spa", Coast: North, Terrain: Sea},
		RegionSpec{Key: "spa", Coast: South, Terrain: Sea},

		RegionSpec{Key: "stp", Terrain: Coast},
		RegionSpec{Key: "stp", Coast: North, Terrain: Sea},
		RegionSpec{Key: "stp", Coast: South, Terrain: Sea},

		RegionSpec{Key: "bul", Terrain: Coast},
		RegionSpec{Key: "bul", Coast: East, Terrain: Sea},
		RegionSpec{Key: "bul", Coast: South, Terrain: Sea},
	)
}

func rk(province string) RegionKey { return RegionKey{Province: province} }
func ck(province string, c Coast) RegionKey {
	return RegionKey{Province: province, Coast: c}
}

// edge builds both directions are implied by Map's undirected border
// storage; each call declares one undirected border.
func edge(from, to RegionKey, t Terrain) BorderSpec {
	return BorderSpec{From: from, To: to, Terrain: t}
}

var standardBorders = buildStandardBorders()

func buildStandardBorders() []BorderSpec {
	var b []BorderSpec

	land := func(a, c string) { b = append(b, edge(rk(a), rk(c), Land)) }
	coast := func(a, c string) { b = append(b, edge(rk(a), rk(c), Coast)) }
	sea := func(a, c string) { b = append(b, edge(rk(a), rk(c), Sea)) }

	// Pure land (army-only) adjacencies between inland and/or coastal
	// provinces where no fleet could ever use the edge.
	land("par", "bre")
	land("par", "pic")
	land("par", "bur")
	land("par", "gas")
	land("mun", "ruh")
	land("mun", "ber")
	land("mun", "sil")
	land("mun", "boh")
	land("mun", "tyr")
	land("mun", "bur")
	land("mun", "kie")
	land("ruh", "bel")
	land("ruh", "hol")
	land("ruh", "kie")
	land("ruh", "bur")
	land("bur", "bel")
	land("bur", "mar")
	land("bur", "gas")
	land("boh", "sil")
	land("boh", "gal")
	land("boh", "vie")
	land("boh", "tyr")
	land("vie", "gal")
	land("vie", "bud")
	land("vie", "tri")
	land("vie", "tyr")
	land("tyr", "tri")
	land("tyr", "ven")
	land("tyr", "pie")
	land("gal", "sil")
	land("gal", "war")
	land("gal", "ukr")
	land("gal", "rum")
	land("gal", "bud")
	land("bud", "rum")
	land("bud", "ser")
	land("bud", "tri")
	land("ser", "tri")
	land("ser", "rum")
	land("ser", "bul")
	land("ser", "alb")
	land("ser", "gre")
	land("rum", "ukr")
	land("rum", "bul")
	land("ukr", "war")
	land("ukr", "mos")
	land("ukr", "sev")
	land("war", "pru")
	land("war", "sil")
	land("pru", "sil")
	land("war", "mos")
	land("mos", "sev")
	land("mos", "lvn")
	land("lvn", "stp")
	land("lvn", "pru")
	land("lvn", "war")
	land("sev", "arm")
	land("pie", "mar")
	land("pie", "tus")
	land("tus", "rom")
	land("tus", "ven")
	land("rom", "ven")
	land("ven", "apu")
	land("arm", "smy")
	land("con", "bul")
	land("spa", "gas")
	land("spa", "mar")
	land("stp", "fin")
	land("fin", "swe")
	land("naf", "tun")

	// Coastal (both army and fleet) land-adjacent edges along a shared
	// shoreline.
	coast("edi", "cly")
	coast("edi", "lvp")
	coast("edi", "yor")
	coast("lvp", "cly")
	coast("lvp", "wal")
	coast("lvp", "yor")
	coast("yor", "lon")
	coast("yor", "wal")
	coast("lon", "wal")
	coast("bre", "gas")
	coast("bre", "pic")
	coast("gas", "mar")
	coast("pic", "bel")
	coast("bel", "hol")
	coast("hol", "kie")
	coast("kie", "den")
	coast("kie", "ber")
	coast("ber", "pru")
	coast("den", "swe")
	coast("con", "smy")
	coast("smy", "syr")
	coast("smy", "ank")
	coast("ank", "con")
	coast("ank", "arm")
	coast("arm", "syr")
	coast("sev", "rum")
	coast("nap", "rom")
	coast("ven", "tri")
	coast("tri", "alb")
	coast("alb", "gre")
	coast("apu", "nap")
	coast("por", "spa")
	coast("gre", "bul")

	// Fleet-only sea/coast edges.
	sea("nao", "nwg")
	sea("nao", "iri")
	sea("nao", "mao")
	sea("nao", "cly")
	sea("nwg", "bar")
	sea("nwg", "nwy")
	sea("nwg", "nth")
	sea("nwg", "edi")
	sea("nwg", "cly")
	sea("bar", "stp")
	sea("bar", "nwy")
	sea("nth", "edi")
	sea("nth", "yor")
	sea("nth", "lon")
	sea("nth", "eng")
	sea("nth", "bel")
	sea("nth", "hol")
	sea("nth", "hel")
	sea("nth", "den")
	sea("nth", "ska")
	sea("nth", "nwy")
	sea("ska", "nwy")
	sea("ska", "swe")
	sea("ska", "den")
	sea("bal", "swe")
	sea("bal", "bot")
	sea("bal", "pru")
	sea("bal", "ber")
	sea("bal", "den")
	sea("bal", "kie")
	sea("bal", "lvn")
	sea("bot", "swe")
	sea("bot", "fin")
	sea("bot", "lvn")
	sea("eng", "iri")
	sea("eng", "mao")
	sea("eng", "bre")
	sea("eng", "pic")
	sea("eng", "bel")
	sea("eng", "lon")
	sea("eng", "wal")
	sea("iri", "lvp")
	sea("iri", "wal")
	sea("iri", "mao")
	sea("iri", "cly")
	sea("mao", "bre")
	sea("mao", "gas")
	sea("mao", "por")
	sea("mao", "wes")
	sea("mao", "naf")
	sea("wes", "naf")
	sea("wes", "tun")
	sea("wes", "tyn")
	sea("wes", "lyo")
	sea("lyo", "mar")
	sea("lyo", "pie")
	sea("lyo", "tus")
	sea("lyo", "tyn")
	sea("tyn", "tus")
	sea("tyn", "rom")
	sea("tyn", "nap")
	sea("tyn", "ion")
	sea("tyn", "tun")
	sea("ion", "tun")
	sea("ion", "nap")
	sea("ion", "apu")
	sea("ion", "adr")
	sea("ion", "alb")
	sea("ion", "gre")
	sea("ion", "eas")
	sea("ion", "aeg")
	sea("adr", "ven")
	sea("adr", "tri")
	sea("adr", "alb")
	sea("adr", "apu")
	sea("aeg", "gre")
	sea("aeg", "con")
	sea("aeg", "smy")
	sea("aeg", "eas")
	sea("eas", "smy")
	sea("eas", "syr")
	sea("bla", "sev")
	sea("bla", "arm")
	sea("bla", "ank")
	sea("bla", "con")
	sea("bla", "rum")
	sea("hel", "den")
	sea("hel", "kie")
	sea("hel", "hol")

	// Split-coast fleet edges: the named coast of spa/stp/bul connects
	// only to the sea zones and coast regions actually touching it.
	b = append(b,
		edge(ck("spa", North), rk("mao"), Sea),
		edge(ck("spa", North), rk("gas"), Sea),
		edge(ck("spa", North), rk("por"), Sea),
		edge(ck("spa", South), rk("mao"), Sea),
		edge(ck("spa", South), rk("por"), Sea),
		edge(ck("spa", South), rk("wes"), Sea),
		edge(ck("spa", South), rk("lyo"), Sea),
		edge(ck("spa", South), rk("mar"), Sea),

		edge(ck("stp", North), rk("bar"), Sea),
		edge(ck("stp", North), rk("nwy"), Sea),
		edge(ck("stp", South), rk("bot"), Sea),
		edge(ck("stp", South), rk("fin"), Sea),

		edge(ck("bul", East), rk("bla"), Sea),
		edge(ck("bul", East), rk("con"), Sea),
		edge(ck("bul", South), rk("aeg"), Sea),
		edge(ck("bul", South), rk("gre"), Sea),
	)

	return b
}
