package params

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Keys of a persisted record.
const (
	KeyLeftAngle        = "left_angle"
	KeyRightAngle       = "right_angle"
	KeyLengthMultiplier = "length_multiplier"
	KeyStartingLength   = "starting_length"
	KeyStartingAngle    = "starting_angle"
	KeyStartingWidth    = "starting_width"
	KeyEndingWidth      = "ending_width"
	KeyGenerations      = "generations_number"
	KeyBackgroundColor  = "background_color"
	KeyStartingColor    = "starting_tree_color"
	KeyEndingColor      = "ending_tree_color"
)

// record is the flat on-disk shape of Params.
type record struct {
	LeftAngle        float64 `json:"left_angle"`
	RightAngle       float64 `json:"right_angle"`
	LengthMultiplier float64 `json:"length_multiplier"`
	StartingLength   float64 `json:"starting_length"`
	StartingAngle    float64 `json:"starting_angle"`
	StartingWidth    float64 `json:"starting_width"`
	EndingWidth      float64 `json:"ending_width"`
	Generations      int     `json:"generations_number"`
	BackgroundColor  Color   `json:"background_color"`
	StartingColor    Color   `json:"starting_tree_color"`
	EndingColor      Color   `json:"ending_tree_color"`
}

// ToRecord serializes p as an indented JSON object.
// Colors are rounded to two decimals, so reloading them is lossy beyond that.
func ToRecord(p Params) ([]byte, error) {
	r := record{
		LeftAngle:        p.LeftAngle,
		RightAngle:       p.RightAngle,
		LengthMultiplier: p.LengthMultiplier,
		StartingLength:   p.StartingLength,
		StartingAngle:    p.StartingAngle,
		StartingWidth:    p.StartingWidth,
		EndingWidth:      p.EndingWidth,
		Generations:      p.Generations,
		BackgroundColor:  p.BackgroundColor.Rounded(),
		StartingColor:    p.StartingColor.Rounded(),
		EndingColor:      p.EndingColor.Rounded(),
	}

	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return append(data, '\n'), nil
}

// FromRecord parses a record written by ToRecord.
//
// Every key is required. Unknown keys are ignored. Any failure is a *LoadError and
// no partially-filled Params is returned.
func FromRecord(data []byte) (Params, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Params{}, &LoadError{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	d := recordDecoder{fields: fields}

	p := Defaults()
	d.number(KeyLeftAngle, &p.LeftAngle)
	d.number(KeyRightAngle, &p.RightAngle)
	d.number(KeyLengthMultiplier, &p.LengthMultiplier)
	d.number(KeyStartingLength, &p.StartingLength)
	d.number(KeyStartingAngle, &p.StartingAngle)
	d.number(KeyStartingWidth, &p.StartingWidth)
	d.number(KeyEndingWidth, &p.EndingWidth)
	d.integer(KeyGenerations, &p.Generations)
	d.color(KeyBackgroundColor, &p.BackgroundColor)
	d.color(KeyStartingColor, &p.StartingColor)
	d.color(KeyEndingColor, &p.EndingColor)

	if d.err != nil {
		return Params{}, d.err
	}

	if err := p.Validate(); err != nil {
		return Params{}, &LoadError{Err: err}
	}

	return p, nil
}

// recordDecoder reads typed values out of a parsed record, keeping only the first failure.
type recordDecoder struct {
	fields map[string]json.RawMessage
	err    error
}

func (d *recordDecoder) raw(key string) (json.RawMessage, bool) {
	if d.err != nil {
		return nil, false
	}

	raw, ok := d.fields[key]
	if !ok {
		d.err = &LoadError{Key: key, Err: ErrMissingKey}
		return nil, false
	}
	// encoding/json silently accepts null for any type.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		d.err = &LoadError{Key: key, Err: fmt.Errorf("%w: null", ErrWrongShape)}
		return nil, false
	}

	return raw, true
}

func (d *recordDecoder) decode(key string, raw json.RawMessage, v any) bool {
	if err := json.Unmarshal(raw, v); err != nil {
		d.err = &LoadError{Key: key, Err: fmt.Errorf("%w: %v", ErrWrongShape, err)}
		return false
	}
	return true
}

func (d *recordDecoder) number(key string, dst *float64) {
	raw, ok := d.raw(key)
	if !ok {
		return
	}

	var v float64
	if d.decode(key, raw, &v) {
		*dst = v
	}
}

func (d *recordDecoder) integer(key string, dst *int) {
	raw, ok := d.raw(key)
	if !ok {
		return
	}

	var v int
	if d.decode(key, raw, &v) {
		*dst = v
	}
}

func (d *recordDecoder) color(key string, dst *Color) {
	raw, ok := d.raw(key)
	if !ok {
		return
	}

	var channels []*float64
	if !d.decode(key, raw, &channels) {
		return
	}
	if len(channels) != len(dst) {
		d.err = &LoadError{Key: key, Err: fmt.Errorf("%w: %d channels, want %d", ErrWrongShape, len(channels), len(dst))}
		return
	}

	var c Color
	for i, ch := range channels {
		if ch == nil {
			d.err = &LoadError{Key: key, Err: fmt.Errorf("%w: channel %d is null", ErrWrongShape, i)}
			return
		}
		c[i] = *ch
	}
	*dst = c
}
