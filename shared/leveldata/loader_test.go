package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="75" height="38" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="6">
 <objectgroup id="1" name="Arena">
  <object id="1" name="terrain" x="60" y="230" width="1080" height="260"/>
  <object id="2" name="ground" x="60" y="350" width="1080" height="4"/>
 </objectgroup>
 <objectgroup id="2" name="Spawns">
  <object id="4" name="b" x="1000" y="350">
   <properties>
    <property name="side" type="int" value="1"/>
    <property name="facing" value="left"/>
   </properties>
  </object>
  <object id="3" name="a" x="150" y="350">
   <properties>
    <property name="side" type="int" value="0"/>
    <property name="facing" value="right"/>
   </properties>
  </object>
 </objectgroup>
</map>`

const noTerrainTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Spawns">
  <object id="1" name="a" x="10" y="10"/>
 </objectgroup>
</map>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/dojo.tmx":  {Data: []byte(arenaTMX)},
		"broken/empty.tmx": {Data: []byte(noTerrainTMX)},
	}
}

func TestLoadArena(t *testing.T) {
	data, err := LoadArena(testFS(), "arenas/dojo.tmx")
	require.NoError(t, err)

	assert.Equal(t, "dojo", data.Name)
	assert.Equal(t, 1200, data.Width)
	assert.Equal(t, 60.0, data.TerrainLeft)
	assert.Equal(t, 1140.0, data.TerrainRight)
	assert.Equal(t, 230.0, data.TerrainTop)
	assert.Equal(t, 490.0, data.TerrainBot)
	assert.Equal(t, 350.0, data.GroundY)

	require.Len(t, data.Spawns, 2)
	assert.Equal(t, 0, data.Spawns[0].Side)
	assert.Equal(t, 150.0, data.Spawns[0].X)
	assert.True(t, data.Spawns[0].FacingRight)
	assert.Equal(t, 1, data.Spawns[1].Side)
	assert.False(t, data.Spawns[1].FacingRight)
}

func TestLoadArenaWithoutTerrain(t *testing.T) {
	_, err := LoadArena(testFS(), "broken/empty.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTerrain)
}

func TestLoadAllArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(testFS(), "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"dojo"}, names)
	assert.Contains(t, arenas, "dojo")

	_, _, err = LoadAllArenas(testFS(), "missing")
	assert.Error(t, err)
}
