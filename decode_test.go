package worldmap_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosmarin/worldmap"
)

// mapBuilder assembles test buffers field by field and remembers every
// offset a read could start at, so truncation tests can check the reported
// failure position exactly.
type mapBuilder struct {
	buf        []byte
	boundaries []int
}

func (b *mapBuilder) u32(v uint32) *mapBuilder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	b.boundaries = append(b.boundaries, len(b.buf))
	return b
}

func (b *mapBuilder) str(s string) *mapBuilder {
	b.u32(uint32(len(s)))
	if len(s) > 1 {
		b.buf = append(b.buf, s...)
		b.boundaries = append(b.boundaries, len(b.buf))
	}
	return b
}

// declaredStr writes only a length, the way files encode strings of length 0
// or 1 (no payload bytes ever follow those).
func (b *mapBuilder) declaredStr(length uint32) *mapBuilder {
	return b.u32(length)
}

func (b *mapBuilder) page(base uint32, worldName, startStage string) *mapBuilder {
	for i := uint32(0); i < 16; i++ {
		b.u32(base + i)
	}
	return b.str(worldName).str(startStage)
}

// minimalMap is the smallest well-formed file: every count is zero.
func minimalMap() *mapBuilder {
	b := &mapBuilder{}
	for _, v := range []uint32{1, 0, 10, 10, 8, 3, 0, 0, 0, 0, 2} {
		b.u32(v)
	}
	b.str("").str("")
	b.u32(0) // tilesTypesCount
	b.u32(0) // tilesCount
	b.u32(0) // eventsCount
	b.u32(0) // eventsPalCount
	return b
}

// worldFixture exercises every record shape: two chips, three tiles, events
// with multiple pages, and declared event counts that disagree with the
// tile-count bound actually used for the lists.
func worldFixture() *mapBuilder {
	b := &mapBuilder{}
	for _, v := range []uint32{2, 1, 20, 15, 8, 3, 4, 5, 1, 1, 2} {
		b.u32(v)
	}
	b.str("overworld").str("bg/sky.png")

	b.u32(2) // tilesTypesCount
	b.u32(7).u32(0).u32(0).u32(3).u32(2).str("grass").str("")
	b.u32(7).u32(1).u32(1).u32(4).u32(2).str("rock").declaredStr(1)

	b.u32(3) // tilesCount
	b.u32(0).u32(1).u32(1)

	b.u32(1) // eventsCount (declared; the list itself is tilesCount long)
	b.u32(9).u32(2).u32(3).u32(1).str("boss gate").u32(2).
		page(100, "world one", "stage 1-1").
		page(200, "world two", "")
	b.u32(9).u32(0).u32(0).u32(1).str("").u32(0)
	b.u32(9).u32(6).u32(6).u32(1).str("warp").u32(1).
		page(300, "", "stage 9-9")

	b.u32(5) // eventsPalCount (declared; again tilesCount records follow)
	for i := uint32(0); i < 3; i++ {
		b.u32(1).u32(i).u32(i).u32(1).str("").u32(0)
	}
	return b
}

func TestDecodeMinimal(t *testing.T) {
	buf := minimalMap().buf

	m, n, err := worldmap.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	assert.Equal(t, uint32(1), m.Version)
	assert.Equal(t, uint32(0), m.SettingsCount)
	assert.Equal(t, uint32(10), m.HorizontalWidth)
	assert.Equal(t, uint32(10), m.VerticalWidth)
	assert.Equal(t, uint32(8), m.ChunkWidth)
	assert.Equal(t, uint32(3), m.ChunkPow)
	assert.Equal(t, uint32(0), m.InitialPositionX)
	assert.Equal(t, uint32(0), m.InitialPositionY)
	assert.Equal(t, uint32(0), m.BackgroundIndex)
	assert.Equal(t, uint32(0), m.UseBackground)
	assert.Equal(t, uint32(2), m.StringsCount)
	assert.Empty(t, m.Name.Data)
	assert.Empty(t, m.BgPath.Data)
	assert.Equal(t, uint32(0), m.TilesTypesCount)
	assert.Empty(t, m.WorldChipData)
	assert.Equal(t, uint32(0), m.TilesCount)
	assert.Empty(t, m.MapChipData)
	assert.Empty(t, m.EventData)
	assert.Empty(t, m.EventTemplateData)
}

func TestDecodeWorld(t *testing.T) {
	buf := worldFixture().buf

	m, n, err := worldmap.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	assert.Equal(t, uint32(2), m.Version)
	assert.Equal(t, []byte("overworld"), m.Name.Data)
	assert.Equal(t, []byte("bg/sky.png"), m.BgPath.Data)

	require.Len(t, m.WorldChipData, 2)
	assert.Equal(t, []byte("grass"), m.WorldChipData[0].Name.Data)
	assert.Equal(t, uint32(3), m.WorldChipData[0].Graphic)
	assert.Equal(t, []byte("rock"), m.WorldChipData[1].Name.Data)
	assert.Equal(t, uint32(1), m.WorldChipData[1].Locked)
	// declared length 1 carries no payload
	assert.Equal(t, uint32(1), m.WorldChipData[1].UnusedString.Length)
	assert.Empty(t, m.WorldChipData[1].UnusedString.Data)

	assert.Equal(t, uint32(3), m.TilesCount)
	assert.Equal(t, []uint32{0, 1, 1}, m.MapChipData)

	ev := m.EventData[0]
	assert.Equal(t, uint32(2), ev.PlacementX)
	assert.Equal(t, uint32(3), ev.PlacementY)
	assert.Equal(t, []byte("boss gate"), ev.Name.Data)
	require.Equal(t, uint32(2), ev.PagesCount)
	require.Len(t, ev.Pages, 2)
	// pages come back in stream order with every field intact
	assert.Equal(t, uint32(100), ev.Pages[0].Start)
	assert.Equal(t, uint32(101), ev.Pages[0].EventType)
	assert.Equal(t, uint32(115), ev.Pages[0].StringsCount)
	assert.Equal(t, []byte("world one"), ev.Pages[0].WorldName.Data)
	assert.Equal(t, []byte("stage 1-1"), ev.Pages[0].StartStage.Data)
	assert.Equal(t, uint32(200), ev.Pages[1].Start)
	assert.Empty(t, ev.Pages[1].StartStage.Data)

	assert.Empty(t, m.EventData[1].Pages)
	assert.Equal(t, []byte("warp"), m.EventData[2].Name.Data)
	assert.Equal(t, uint32(300), m.EventData[2].Pages[0].Start)
}

func TestEventListsBoundByTileCount(t *testing.T) {
	m, _, err := worldmap.Decode(worldFixture().buf)
	require.NoError(t, err)

	// Both event lists run for tilesCount records; the counts read from the
	// file are reported but do not drive the loops.
	assert.Equal(t, uint32(1), m.EventsCount)
	assert.Len(t, m.EventData, 3)
	assert.Equal(t, uint32(5), m.EventsPalCount)
	assert.Len(t, m.EventTemplateData, 3)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	b := worldFixture()
	want := len(b.buf)
	buf := append(b.buf, 0xDE, 0xAD, 0xBE, 0xEF)

	m, n, err := worldmap.Decode(buf)
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Equal(t, want, n)
}

func TestDecodeTruncated(t *testing.T) {
	b := worldFixture()

	boundary := make(map[int]bool, len(b.boundaries))
	for _, off := range b.boundaries {
		boundary[off] = true
	}

	for cut := 0; cut < len(b.buf); cut++ {
		m, _, err := worldmap.Decode(b.buf[:cut])
		require.Errorf(t, err, "decode of %d-byte prefix should fail", cut)
		require.Nilf(t, m, "no partial tree for %d-byte prefix", cut)

		var insufficient *worldmap.InsufficientDataError
		require.ErrorAs(t, err, &insufficient)
		if boundary[cut] || cut == 0 {
			assert.Equalf(t, cut, insufficient.Offset, "cut at field boundary %d", cut)
		} else {
			assert.Lessf(t, insufficient.Offset, cut, "cut mid-field at %d", cut)
		}
	}
}

func TestReadFile(t *testing.T) {
	buf := worldFixture().buf
	path := filepath.Join(t.TempDir(), "WorldMap.dat")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	m, err := worldmap.ReadFile(path)
	require.NoError(t, err)

	want, _, err := worldmap.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, want, m)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := worldmap.ReadFile(filepath.Join(dir, "missing.dat"))
	assert.Error(t, err)

	path := filepath.Join(dir, "short.dat")
	require.NoError(t, os.WriteFile(path, worldFixture().buf[:10], 0o644))
	_, err = worldmap.ReadFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "short.dat")
	var insufficient *worldmap.InsufficientDataError
	assert.ErrorAs(t, err, &insufficient)
}
