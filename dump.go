package worldmap

import (
	"fmt"
	"io"
)

// String renders the payload quoted, with the declared length when it
// disagrees with the payload size (lengths 0 and 1 both carry no payload).
func (s StringField) String() string {
	if int(s.Length) != len(s.Data) {
		return fmt.Sprintf("%q (declared len %d)", s.Data, s.Length)
	}
	return fmt.Sprintf("%q", s.Data)
}

// Dump writes a human-readable rendering of the whole decoded tree, one
// field per line. It is meant for eyeballing files, not for parsing.
func (m *WorldMap) Dump(w io.Writer) {
	fmt.Fprintf(w, "world map version %d (settings count %d)\n", m.Version, m.SettingsCount)
	fmt.Fprintf(w, "  name: %s\n", m.Name)
	fmt.Fprintf(w, "  size: %d x %d, chunk width %d, chunk pow %d\n",
		m.HorizontalWidth, m.VerticalWidth, m.ChunkWidth, m.ChunkPow)
	fmt.Fprintf(w, "  initial position: %d, %d\n", m.InitialPositionX, m.InitialPositionY)
	fmt.Fprintf(w, "  background: index %d, use %d, path %s\n", m.BackgroundIndex, m.UseBackground, m.BgPath)
	fmt.Fprintf(w, "  strings count: %d\n", m.StringsCount)

	fmt.Fprintf(w, "tile types: %d\n", m.TilesTypesCount)
	for i, chip := range m.WorldChipData {
		fmt.Fprintf(w, "  [%d] header %d, tile index %d, locked %d, graphic %d, strings count %d\n",
			i, chip.Header, chip.TileIndex, chip.Locked, chip.Graphic, chip.StringsCount)
		fmt.Fprintf(w, "      name %s, unused %s\n", chip.Name, chip.UnusedString)
	}

	fmt.Fprintf(w, "tiles: %d\n", m.TilesCount)
	for i, tile := range m.MapChipData {
		fmt.Fprintf(w, "  [%d] %d\n", i, tile)
	}

	fmt.Fprintf(w, "events: %d declared, %d decoded\n", m.EventsCount, len(m.EventData))
	for i := range m.EventData {
		dumpEvent(w, i, &m.EventData[i])
	}

	fmt.Fprintf(w, "event templates: %d declared, %d decoded\n", m.EventsPalCount, len(m.EventTemplateData))
	for i := range m.EventTemplateData {
		dumpEvent(w, i, &m.EventTemplateData[i])
	}
}

func dumpEvent(w io.Writer, i int, ev *EventRecord) {
	fmt.Fprintf(w, "  [%d] header %d, placement %d, %d, strings count %d, name %s\n",
		i, ev.Header, ev.PlacementX, ev.PlacementY, ev.StringsCount, ev.Name)
	fmt.Fprintf(w, "      pages: %d\n", ev.PagesCount)
	for j := range ev.Pages {
		page := &ev.Pages[j]
		fmt.Fprintf(w, "      [%d] start %d, event type %d, graphic %d\n", j, page.Start, page.EventType, page.Graphic)
		fmt.Fprintf(w, "          world number %d, pass without clear %d, play after clear %d, on game clear %d\n",
			page.WorldNumber, page.PassWithoutClear, page.PlayAfterClear, page.OnGameClear)
		fmt.Fprintf(w, "          appearance condition: world %d, variable %d, constant %d, comparison %d, total score %d\n",
			page.AppearanceConditionWorld, page.AppearanceConditionVariable, page.AppearanceConditionConstant,
			page.AppearanceConditionComparisonContent, page.AppearanceConditionTotalScore)
		fmt.Fprintf(w, "          variation: present %d, variable %d, constant %d\n",
			page.VariationSettingPresent, page.VariationVariable, page.VariationConstant)
		fmt.Fprintf(w, "          strings count %d, world name %s, start stage %s\n",
			page.StringsCount, page.WorldName, page.StartStage)
	}
}
