// Package pb encodes maze layouts in the protobuf wire format.
//
// The message shape is:
//
//	message Layout {
//	  uint32 rows = 1;
//	  uint32 columns = 2;
//	  Coordinate root = 3;
//	  repeated Cell cells = 4;
//	}
//	message Coordinate { uint32 column = 1; uint32 row = 2; uint32 floor = 3; }
//	message Cell {
//	  uint32 column = 1; uint32 row = 2; uint32 floor = 3;
//	  uint32 direction = 4;
//	  uint32 walls = 5; // bit mask: 1 north, 2 south, 4 east, 8 west
//	}
package pb

import (
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-maze/maze"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	layoutRowsField    protowire.Number = 1
	layoutColumnsField protowire.Number = 2
	layoutRootField    protowire.Number = 3
	layoutCellField    protowire.Number = 4

	coordColumnField protowire.Number = 1
	coordRowField    protowire.Number = 2
	coordFloorField  protowire.Number = 3

	cellDirectionField protowire.Number = 4
	cellWallsField     protowire.Number = 5
)

const (
	northBit uint64 = 1 << iota
	southBit
	eastBit
	westBit
)

var ErrMalformed = errors.New("malformed layout payload")

// Protobuf implements i.LayoutEncoder.
type Protobuf struct{}

// Marshal encodes a layout.
func (Protobuf) Marshal(l maze.Layout) ([]byte, error) {
	return Marshal(l)
}

// Unmarshal decodes a layout.
func (Protobuf) Unmarshal(b []byte) (maze.Layout, error) {
	return Unmarshal(b)
}

// Marshal encodes a layout. The layout must be valid.
func Marshal(l maze.Layout) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	var b []byte
	b = appendVarintField(b, layoutRowsField, uint64(l.Rows))
	b = appendVarintField(b, layoutColumnsField, uint64(l.Columns))

	var root []byte
	root = appendVarintField(root, coordColumnField, uint64(l.RootColumn))
	root = appendVarintField(root, coordRowField, uint64(l.RootRow))
	b = protowire.AppendTag(b, layoutRootField, protowire.BytesType)
	b = protowire.AppendBytes(b, root)

	var cell []byte
	for _, c := range l.Cells {
		cell = cell[:0]
		cell = appendVarintField(cell, coordColumnField, uint64(c.Column))
		cell = appendVarintField(cell, coordRowField, uint64(c.Row))
		cell = appendVarintField(cell, coordFloorField, uint64(c.Floor))
		cell = appendVarintField(cell, cellDirectionField, uint64(c.Direction))
		cell = appendVarintField(cell, cellWallsField, wallMask(c))
		b = protowire.AppendTag(b, layoutCellField, protowire.BytesType)
		b = protowire.AppendBytes(b, cell)
	}
	return b, nil
}

// Unmarshal decodes a layout and validates it. Unknown fields are skipped.
func Unmarshal(b []byte) (maze.Layout, error) {
	var l maze.Layout
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == layoutRowsField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			var err error
			l.Rows, err = toInt(num, v)
			return n, err
		case num == layoutColumnsField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			var err error
			l.Columns, err = toInt(num, v)
			return n, err
		case num == layoutRootField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			c, err := unmarshalCell(v)
			l.RootColumn, l.RootRow = c.Column, c.Row
			return n, err
		case num == layoutCellField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			c, err := unmarshalCell(v)
			l.Cells = append(l.Cells, c)
			return n, err
		default:
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
	})
	if err != nil {
		return maze.Layout{}, err
	}
	if err := l.Validate(); err != nil {
		return maze.Layout{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return l, nil
}

func unmarshalCell(b []byte) (maze.CellLayout, error) {
	var c maze.CellLayout
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return n, nil
		}
		var err error
		switch num {
		case coordColumnField:
			c.Column, err = toInt(num, v)
		case coordRowField:
			c.Row, err = toInt(num, v)
		case coordFloorField:
			c.Floor, err = toInt(num, v)
		case cellDirectionField:
			var d int
			d, err = toInt(num, v)
			c.Direction = maze.Direction(d)
		case cellWallsField:
			c.NorthWall = v&northBit != 0
			c.SouthWall = v&southBit != 0
			c.EastWall = v&eastBit != 0
			c.WestWall = v&westBit != 0
		}
		return n, err
	})
	return c, err
}

// toInt converts a decoded varint, rejecting values no layout can hold.
func toInt(num protowire.Number, v uint64) (int, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: field %d value %d too large", ErrMalformed, num, v)
	}
	return int(v), nil
}

// consumeFields walks the tagged fields of b, handing each value to fn,
// which returns how many bytes it consumed.
func consumeFields(b []byte, fn func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %w", ErrMalformed, num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func wallMask(c maze.CellLayout) uint64 {
	var mask uint64
	if c.NorthWall {
		mask |= northBit
	}
	if c.SouthWall {
		mask |= southBit
	}
	if c.EastWall {
		mask |= eastBit
	}
	if c.WestWall {
		mask |= westBit
	}
	return mask
}
