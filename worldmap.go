// Package worldmap decodes the binary world map format used by the game to
// describe a level's terrain, its tile-type catalog and its placed events.
// The decoder is a single forward pass over an in-memory buffer; the result
// is a plain value tree that callers should treat as read-only.
package worldmap

// StringField is a length-prefixed raw byte string, the format's only
// variable-length primitive besides repeated records. The payload is kept
// verbatim: no encoding validation, no trimming, no terminator handling.
//
// A declared length of 0 or 1 is always followed by zero payload bytes. The
// asymmetry at length 1 is how existing files are written, so it is kept
// exactly.
type StringField struct {
	Length uint32 `json:"length"`
	Data   []byte `json:"data"`
}

// Chip is one entry of the tile-type catalog.
type Chip struct {
	Header       uint32 `json:"header"`
	TileIndex    uint32 `json:"tile_index"`
	Locked       uint32 `json:"locked"`
	Graphic      uint32 `json:"graphic"`
	StringsCount uint32 `json:"strings_count"`

	Name         StringField `json:"name"`
	UnusedString StringField `json:"unused_string"`
}

// EventPage is one conditional variant of an event: its appearance condition
// plus what it does when triggered.
type EventPage struct {
	Start     uint32 `json:"start"`
	EventType uint32 `json:"event_type"`
	Graphic   uint32 `json:"graphic"`

	WorldNumber      uint32 `json:"world_number"`
	PassWithoutClear uint32 `json:"pass_without_clear"`
	PlayAfterClear   uint32 `json:"play_after_clear"`
	OnGameClear      uint32 `json:"on_game_clear"`

	AppearanceConditionWorld             uint32 `json:"appearance_condition_world"`
	AppearanceConditionVariable          uint32 `json:"appearance_condition_variable"`
	AppearanceConditionConstant          uint32 `json:"appearance_condition_constant"`
	AppearanceConditionComparisonContent uint32 `json:"appearance_condition_comparison_content"`
	AppearanceConditionTotalScore        uint32 `json:"appearance_condition_total_score"`

	VariationSettingPresent uint32 `json:"variation_setting_present"`
	VariationVariable       uint32 `json:"variation_variable"`
	VariationConstant       uint32 `json:"variation_constant"`

	StringsCount uint32 `json:"strings_count"`

	WorldName  StringField `json:"world_name"`
	StartStage StringField `json:"start_stage"`
}

// EventRecord is a placed interactive object with one page per condition.
type EventRecord struct {
	Header     uint32 `json:"header"`
	PlacementX uint32 `json:"placement_x"`
	PlacementY uint32 `json:"placement_y"`

	StringsCount uint32      `json:"strings_count"`
	Name         StringField `json:"name"`

	PagesCount uint32      `json:"pages_count"`
	Pages      []EventPage `json:"pages"`
}

// WorldMap is the complete decoded file.
type WorldMap struct {
	Version       uint32 `json:"version"`
	SettingsCount uint32 `json:"settings_count"`

	HorizontalWidth uint32 `json:"horizontal_width"`
	VerticalWidth   uint32 `json:"vertical_width"`

	ChunkWidth uint32 `json:"chunk_width"`
	ChunkPow   uint32 `json:"chunk_pow"`

	InitialPositionX uint32 `json:"initial_position_x"`
	InitialPositionY uint32 `json:"initial_position_y"`

	BackgroundIndex uint32 `json:"background_index"`
	UseBackground   uint32 `json:"use_background"`

	StringsCount uint32 `json:"strings_count"`

	Name   StringField `json:"name"`
	BgPath StringField `json:"bg_path"`

	TilesTypesCount uint32 `json:"tiles_types_count"`
	WorldChipData   []Chip `json:"world_chip_data"`

	TilesCount  uint32   `json:"tiles_count"`
	MapChipData []uint32 `json:"map_chip_data"`

	EventsCount uint32        `json:"events_count"`
	EventData   []EventRecord `json:"event_data"`

	EventsPalCount    uint32        `json:"events_pal_count"`
	EventTemplateData []EventRecord `json:"event_template_data"`
}
