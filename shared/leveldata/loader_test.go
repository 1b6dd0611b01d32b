package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/tuxrun/shared/gamemath"
)

const tileset = ` <tileset firstgid="1" name="terrain" tilewidth="32" tileheight="32" tilecount="5" columns="5">
  <tile id="0"><properties><property name="solid" type="bool" value="true"/></properties></tile>
  <tile id="1"><properties><property name="unisolid" type="bool" value="true"/></properties></tile>
  <tile id="2"><properties><property name="slope" value="45_up_left"/></properties></tile>
  <tile id="3"><properties><property name="water" type="bool" value="true"/></properties></tile>
  <tile id="4"><properties><property name="solid" type="bool" value="true"/><property name="ice" type="bool" value="true"/></properties></tile>
 </tileset>
`

func level(objects string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="5" height="2" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="music" value="level"/>
 </properties>
` + tileset + ` <layer id="1" name="tiles" width="5" height="2">
  <data encoding="csv">
0,0,0,0,0,
1,2,3,4,5
</data>
 </layer>
 <objectgroup id="2" name="objects">
` + objects + ` </objectgroup>
</map>
`
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(level(`  <object id="1" name="tux" type="player" x="10" y="20" width="32" height="32"/>
  <object id="2" type="Igel" x="96" y="0" width="32" height="32">
   <properties><property name="direction" value="left"/></properties>
  </object>
  <object id="3" type="powerup" x="64" y="0" width="32" height="32">
   <properties><property name="kind" value="fireflower"/></properties>
  </object>
`))},
	}

	lvl, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Name != "test" || lvl.Width != 160 || lvl.Height != 64 || lvl.TileSize != 32 {
		t.Errorf("level = %q %vx%v tile %v", lvl.Name, lvl.Width, lvl.Height, lvl.TileSize)
	}
	if lvl.Music != "level" {
		t.Errorf("music = %q", lvl.Music)
	}
	if want := (gamemath.Vector{X: 10, Y: 20}); lvl.PlayerSpawn != want {
		t.Errorf("player spawn = %+v, want %+v", lvl.PlayerSpawn, want)
	}

	wantTiles := []Tile{
		{Rect: gamemath.NewRect(0, 32, 32, 32), Kind: TileSolid},
		{Rect: gamemath.NewRect(32, 32, 32, 32), Kind: TilePlatform},
		{Rect: gamemath.NewRect(64, 32, 32, 32), Kind: TileRamp, Slope: gamemath.SlopeUpLeft},
		{Rect: gamemath.NewRect(96, 32, 32, 32), Kind: TileArea, Water: true},
		{Rect: gamemath.NewRect(128, 32, 32, 32), Kind: TileSolid, Ice: true},
	}
	if len(lvl.Tiles) != len(wantTiles) {
		t.Fatalf("got %d tiles, want %d", len(lvl.Tiles), len(wantTiles))
	}
	for i, want := range wantTiles {
		if lvl.Tiles[i] != want {
			t.Errorf("tile %d = %+v, want %+v", i, lvl.Tiles[i], want)
		}
	}

	if len(lvl.Spawns) != 2 {
		t.Fatalf("got %d spawns, want 2", len(lvl.Spawns))
	}
	// sorted left to right
	pu, igel := lvl.Spawns[0], lvl.Spawns[1]
	if pu.Kind != "powerup" || pu.Props["kind"] != "fireflower" {
		t.Errorf("powerup spawn = %+v", pu)
	}
	if igel.Kind != "igel" || igel.Dir != gamemath.DirLeft {
		t.Errorf("igel spawn = %+v", igel)
	}
}

func TestLoadWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(level(`  <object id="1" type="coin" x="0" y="0" width="32" height="32"/>
`))},
	}
	_, err := Load(fsys, "empty.tmx")
	if !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadAll(t *testing.T) {
	spawn := `  <object id="1" type="player" x="0" y="0" width="32" height="32"/>
`
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(level(spawn))},
		"levels/a.tmx": {Data: []byte(level(spawn))},
	}
	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if levels["a"] == nil || levels["b"] == nil {
		t.Error("missing level")
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for an empty directory")
	}
}

func TestDemoLevel(t *testing.T) {
	lvl, err := Load(os.DirFS("../../assets"), "levels/demo.tmx")
	if err != nil {
		t.Fatalf("Load demo: %v", err)
	}
	if lvl.Script == "" {
		t.Error("demo level should name its script")
	}
	kinds := map[string]int{}
	for _, s := range lvl.Spawns {
		kinds[s.Kind]++
	}
	for _, k := range []string{"igel", "jumpy", "zeekling", "crate", "coin", "powerup", "climbable", "trigger"} {
		if kinds[k] == 0 {
			t.Errorf("demo level has no %s", k)
		}
	}
}
