package a2l

import (
	"fmt"

	"github.com/domohuhn/a2l/errors"
	"github.com/domohuhn/a2l/internal"
)

// RecordSize is the size in bytes of XcpData as addressed by the description
// file.
const RecordSize = internal.RecordSize

// Kind classifies a field by the role its shape plays within the record.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindArray
	KindAxis
	KindCurveValues
	KindMapValues
	KindCuboidValues
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindAxis:
		return "axis"
	case KindCurveValues:
		return "curve values"
	case KindMapValues:
		return "map values"
	case KindCuboidValues:
		return "cuboid values"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// DataType is the element type of a field.
type DataType uint8

const (
	Float32 DataType = iota + 1
	Uint16
)

// Size returns the size of a single element in bytes.
func (d DataType) Size() int {
	switch d {
	case Float32:
		return internal.Float32Size
	case Uint16:
		return internal.Uint16Size
	}
	return 0
}

func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Uint16:
		return "uint16"
	}
	return fmt.Sprintf("DataType(%d)", uint8(d))
}

// Field describes where a single object lives within XcpData. Shape lists
// the length of each dimension, outermost first; scalars have an empty
// Shape.
type Field struct {
	Name   string
	Kind   Kind
	Type   DataType
	Offset int
	Shape  []int
}

// Elements returns the number of values stored in the field.
func (f Field) Elements() int {
	return internal.Product(f.Shape...)
}

// Size returns the number of bytes the field occupies.
func (f Field) Size() int {
	return f.Elements() * f.Type.Size()
}

// End returns the offset of the first byte after the field.
func (f Field) End() int {
	return f.Offset + f.Size()
}

func vector() []int { return []int{internal.AxisLength} }

func matrix() []int { return []int{internal.AxisLength, internal.AxisLength} }

func volume() []int {
	return []int{internal.AxisLength, internal.AxisLength, internal.AxisLength}
}

// Fields returns the description of every field of XcpData, in declaration
// order. The returned slice is owned by the caller.
func Fields() []Field {
	o := internal.XcpDataOffsets
	return []Field{
		{Name: "dataArray", Kind: KindArray, Type: Float32, Offset: int(o.DataArray), Shape: vector()},
		{Name: "dataCurveAxis", Kind: KindAxis, Type: Float32, Offset: int(o.DataCurveAxis), Shape: vector()},
		{Name: "dataCurveValues", Kind: KindCurveValues, Type: Float32, Offset: int(o.DataCurveValues), Shape: vector()},
		{Name: "dataMapAxisX", Kind: KindAxis, Type: Float32, Offset: int(o.DataMapAxisX), Shape: vector()},
		{Name: "dataMapAxisY", Kind: KindAxis, Type: Float32, Offset: int(o.DataMapAxisY), Shape: vector()},
		{Name: "dataMapValues", Kind: KindMapValues, Type: Float32, Offset: int(o.DataMapValues), Shape: matrix()},
		{Name: "dataCuboidAxisX", Kind: KindAxis, Type: Float32, Offset: int(o.DataCuboidAxisX), Shape: vector()},
		{Name: "dataCuboidAxisY", Kind: KindAxis, Type: Float32, Offset: int(o.DataCuboidAxisY), Shape: vector()},
		{Name: "dataCuboidAxisZ", Kind: KindAxis, Type: Float32, Offset: int(o.DataCuboidAxisZ), Shape: vector()},
		{Name: "dataCuboidValues", Kind: KindCuboidValues, Type: Float32, Offset: int(o.DataCuboidValues), Shape: volume()},
		{Name: "measureKMH", Kind: KindScalar, Type: Float32, Offset: int(o.MeasureKMH), Shape: []int{}},
		{Name: "measureAngle", Kind: KindScalar, Type: Float32, Offset: int(o.MeasureAngle), Shape: []int{}},
		{Name: "measureMS", Kind: KindScalar, Type: Float32, Offset: int(o.MeasureMS), Shape: []int{}},
		{Name: "bitfield", Kind: KindScalar, Type: Uint16, Offset: int(o.Bitfield), Shape: []int{}},
	}
}

// Lookup returns the description of the field identified by name, as it is
// spelled in the description file. An errors.UnknownFieldError is returned
// when no such field exists.
func Lookup(name string) (Field, error) {
	for _, f := range Fields() {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, errors.UnknownFieldError{Name: name}
}

// Describe returns the same fields as Fields, and writes the layout to the
// logger configured in config.
func Describe(config Config) []Field {
	log := config.GetLogger().Named("layout")
	fields := Fields()

	log.Info("Describing XcpData layout",
		"fields", len(fields),
		"used", fields[len(fields)-1].End(),
		"size", RecordSize,
	)
	for _, f := range fields {
		log.Debug("Field",
			"name", f.Name,
			"kind", f.Kind.String(),
			"type", f.Type.String(),
			"offset", f.Offset,
			"shape", f.Shape,
			"size", f.Size(),
		)
	}
	return fields
}
