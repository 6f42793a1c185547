package internal

// AxisLength is the number of points on every axis of the example record.
const AxisLength = 5

const (
	Float32Size = 4
	Uint16Size  = 2
)

// RecordSize is the size of the example record, including the tail padding
// required by its 4-byte alignment.
const RecordSize = 776

var XcpDataOffsets = struct {
	DataArray        uint16
	DataCurveAxis    uint16
	DataCurveValues  uint16
	DataMapAxisX     uint16
	DataMapAxisY     uint16
	DataMapValues    uint16
	DataCuboidAxisX  uint16
	DataCuboidAxisY  uint16
	DataCuboidAxisZ  uint16
	DataCuboidValues uint16
	MeasureKMH       uint16
	MeasureAngle     uint16
	MeasureMS        uint16
	Bitfield         uint16
}{
	DataArray:        0,
	DataCurveAxis:    20,
	DataCurveValues:  40,
	DataMapAxisX:     60,
	DataMapAxisY:     80,
	DataMapValues:    100,
	DataCuboidAxisX:  200,
	DataCuboidAxisY:  220,
	DataCuboidAxisZ:  240,
	DataCuboidValues: 260,
	MeasureKMH:       760,
	MeasureAngle:     764,
	MeasureMS:        768,
	Bitfield:         772,
}
