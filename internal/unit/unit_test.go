package unit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func TestTypeString(t *testing.T) {
	require := require.New(t)
	require.Equal("A", unit.Army.String())
	require.Equal("F", unit.Fleet.String())
}

func TestIsArmy(t *testing.T) {
	require := require.New(t)
	require.True(unit.Army.IsArmy())
	require.False(unit.Fleet.IsArmy())
}

func TestValidRejectsMismatchedTerrain(t *testing.T) {
	require := require.New(t)
	sea := geo.Region{Key: geo.RegionKey{Province: "nth"}, Province: "nth", Terrain: geo.Sea}
	pos := unit.Position{Unit: unit.Unit{Nation: "england", Type: unit.Army}, Region: sea.Key}
	require.ErrorIs(pos.Valid(sea), unit.ErrUnitCannotOccupyRegion)
}

func TestValidAcceptsMatchingTerrain(t *testing.T) {
	require := require.New(t)
	land := geo.Region{Key: geo.RegionKey{Province: "par"}, Province: "par", Terrain: geo.Land}
	pos := unit.Position{Unit: unit.Unit{Nation: "france", Type: unit.Army}, Region: land.Key}
	require.NoError(pos.Valid(land))
}

func TestPositionString(t *testing.T) {
	pos := unit.Position{Unit: unit.Unit{Nation: "france", Type: unit.Fleet}, Region: geo.RegionKey{Province: "bre"}}
	require.Equal(t, "F bre", pos.String())
}
