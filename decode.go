package worldmap

import (
	"github.com/pkg/errors"
)

// readU32s fills each destination from the stream in argument order.
func (c *cursor) readU32s(dst ...*uint32) error {
	for _, d := range dst {
		v, err := c.readU32()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

// decodeString reads one length-prefixed string. Lengths 0 and 1 are
// followed by no payload bytes; see StringField.
func decodeString(c *cursor) (StringField, error) {
	length, err := c.readU32()
	if err != nil {
		return StringField{}, err
	}
	var data []byte
	if length > 1 {
		if data, err = c.readBytes(int(length)); err != nil {
			return StringField{}, err
		}
	}
	return StringField{Length: length, Data: data}, nil
}

// decodeSeq reads count consecutive elements. The count comes straight from
// file content, so it is never trusted for allocation: capacity is capped by
// how many elements the remaining bytes could possibly hold (every element
// starts with at least one u32). Exhaustion is still only detected when an
// element read fails.
func decodeSeq[T any](c *cursor, what string, count uint32, decode func(*cursor) (T, error)) ([]T, error) {
	capHint := int(count)
	if most := c.remaining() / 4; capHint > most {
		capHint = most
	}
	out := make([]T, 0, capHint)
	for i := uint32(0); i < count; i++ {
		v, err := decode(c)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %d of %d", what, i, count)
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeChip(c *cursor) (Chip, error) {
	var chip Chip
	if err := c.readU32s(&chip.Header, &chip.TileIndex, &chip.Locked, &chip.Graphic, &chip.StringsCount); err != nil {
		return Chip{}, err
	}
	var err error
	if chip.Name, err = decodeString(c); err != nil {
		return Chip{}, err
	}
	if chip.UnusedString, err = decodeString(c); err != nil {
		return Chip{}, err
	}
	return chip, nil
}

func decodeEventPage(c *cursor) (EventPage, error) {
	var page EventPage
	err := c.readU32s(
		&page.Start, &page.EventType, &page.Graphic,
		&page.WorldNumber, &page.PassWithoutClear, &page.PlayAfterClear, &page.OnGameClear,
		&page.AppearanceConditionWorld, &page.AppearanceConditionVariable,
		&page.AppearanceConditionConstant, &page.AppearanceConditionComparisonContent,
		&page.AppearanceConditionTotalScore,
		&page.VariationSettingPresent, &page.VariationVariable, &page.VariationConstant,
		&page.StringsCount,
	)
	if err != nil {
		return EventPage{}, err
	}
	if page.WorldName, err = decodeString(c); err != nil {
		return EventPage{}, err
	}
	if page.StartStage, err = decodeString(c); err != nil {
		return EventPage{}, err
	}
	return page, nil
}

func decodeEventRecord(c *cursor) (EventRecord, error) {
	var ev EventRecord
	if err := c.readU32s(&ev.Header, &ev.PlacementX, &ev.PlacementY, &ev.StringsCount); err != nil {
		return EventRecord{}, err
	}
	var err error
	if ev.Name, err = decodeString(c); err != nil {
		return EventRecord{}, err
	}
	if ev.PagesCount, err = c.readU32(); err != nil {
		return EventRecord{}, err
	}
	if ev.Pages, err = decodeSeq(c, "page", ev.PagesCount, decodeEventPage); err != nil {
		return EventRecord{}, err
	}
	return ev, nil
}

// Decode reads one complete world map from data. On success it returns the
// decoded tree and the number of bytes consumed; trailing bytes are the
// caller's business. On failure no partial tree is returned and the
// underlying *InsufficientDataError is reachable with errors.As.
func Decode(data []byte) (*WorldMap, int, error) {
	c := &cursor{buf: data}
	var m WorldMap

	err := c.readU32s(
		&m.Version, &m.SettingsCount,
		&m.HorizontalWidth, &m.VerticalWidth,
		&m.ChunkWidth, &m.ChunkPow,
		&m.InitialPositionX, &m.InitialPositionY,
		&m.BackgroundIndex, &m.UseBackground,
		&m.StringsCount,
	)
	if err != nil {
		return nil, c.pos, err
	}
	if m.Name, err = decodeString(c); err != nil {
		return nil, c.pos, err
	}
	if m.BgPath, err = decodeString(c); err != nil {
		return nil, c.pos, err
	}

	if m.TilesTypesCount, err = c.readU32(); err != nil {
		return nil, c.pos, err
	}
	if m.WorldChipData, err = decodeSeq(c, "chip", m.TilesTypesCount, decodeChip); err != nil {
		return nil, c.pos, err
	}

	if m.TilesCount, err = c.readU32(); err != nil {
		return nil, c.pos, err
	}
	if m.MapChipData, err = decodeSeq(c, "tile", m.TilesCount, (*cursor).readU32); err != nil {
		return nil, c.pos, err
	}

	// Both event lists below are bounded by tilesCount, not by the counts
	// read just before them. Every existing file was written against that
	// behavior, so it stays until the intended semantics are confirmed;
	// callers can compare EventsCount/EventsPalCount against the decoded
	// list lengths to see the difference.
	if m.EventsCount, err = c.readU32(); err != nil {
		return nil, c.pos, err
	}
	if m.EventData, err = decodeSeq(c, "event", m.TilesCount, decodeEventRecord); err != nil {
		return nil, c.pos, err
	}

	if m.EventsPalCount, err = c.readU32(); err != nil {
		return nil, c.pos, err
	}
	if m.EventTemplateData, err = decodeSeq(c, "event template", m.TilesCount, decodeEventRecord); err != nil {
		return nil, c.pos, err
	}

	return &m, c.pos, nil
}
