// Package a2l holds the example ECU record described by example-ecu.a2l,
// together with the layout information a calibration tool needs to locate
// each of its objects.
package a2l

// XcpData is the record described in example-ecu.a2l. Field order, element
// types and array lengths are part of its contract: the description file
// addresses every object by its offset within this record.
type XcpData struct {
	DataArray       [5]float32
	DataCurveAxis   [5]float32
	DataCurveValues [5]float32

	DataMapAxisX  [5]float32
	DataMapAxisY  [5]float32
	DataMapValues [5][5]float32

	DataCuboidAxisX  [5]float32
	DataCuboidAxisY  [5]float32
	DataCuboidAxisZ  [5]float32
	DataCuboidValues [5][5][5]float32

	MeasureKMH   float32
	MeasureAngle float32
	MeasureMS    float32
	Bitfield     uint16
}

var exampleData = XcpData{
	DataArray:       [5]float32{1.0, 2.0, 3.0, 4.0, 5.0},
	DataCurveAxis:   [5]float32{6.0, 7.0, 8.0, 9.0, 10.0},
	DataCurveValues: [5]float32{0.1, 0.7, 1.0, 0.7, 0.1},

	DataMapAxisX: [5]float32{11.0, 12.0, 13.0, 14.0, 15.0},
	DataMapAxisY: [5]float32{16.0, 17.0, 18.0, 19.0, 20.0},
	DataMapValues: [5][5]float32{
		{0.1, 0.7, 2.0, 0.7, 0.1},
		{0.1, 0.7, 3.0, 0.7, 0.1},
		{0.1, 0.7, 4.0, 0.7, 0.1},
		{0.1, 0.7, 5.0, 0.7, 0.1},
		{0.1, 0.7, 6.0, 0.7, 0.1},
	},

	DataCuboidAxisX: [5]float32{11.0, 12.0, 13.0, 14.0, 15.0},
	DataCuboidAxisY: [5]float32{16.0, 17.0, 18.0, 19.0, 20.0},
	DataCuboidAxisZ: [5]float32{16.0, 17.0, 18.0, 19.0, 20.0},
	DataCuboidValues: [5][5][5]float32{
		{{0.1, 0.7, 7.0, 0.7, 0.1}, {0.1, 0.7, 8.0, 0.7, 0.1}, {0.1, 0.7, 9.0, 0.7, 0.1}, {0.1, 0.7, 10.0, 0.7, 0.1}, {0.1, 0.7, 11.0, 0.7, 0.1}},
		{{0.1, 0.7, 12.0, 0.7, 0.1}, {0.1, 0.7, 13.0, 0.7, 0.1}, {0.1, 0.7, 14.0, 0.7, 0.1}, {0.1, 0.7, 15.0, 0.7, 0.1}, {0.1, 0.7, 16.0, 0.7, 0.1}},
		{{0.1, 0.7, 17.0, 0.7, 0.1}, {0.1, 0.7, 18.0, 0.7, 0.1}, {0.1, 0.7, 19.0, 0.7, 0.1}, {0.1, 0.7, 20.0, 0.7, 0.1}, {0.1, 0.7, 21.0, 0.7, 0.1}},
		{{0.1, 0.7, 22.0, 0.7, 0.1}, {0.1, 0.7, 23.0, 0.7, 0.1}, {0.1, 0.7, 24.0, 0.7, 0.1}, {0.1, 0.7, 25.0, 0.7, 0.1}, {0.1, 0.7, 26.0, 0.7, 0.1}},
		{{0.1, 0.7, 27.0, 0.7, 0.1}, {0.1, 0.7, 28.0, 0.7, 0.1}, {0.1, 0.7, 29.0, 0.7, 0.1}, {0.1, 0.7, 30.0, 0.7, 0.1}, {0.1, 0.7, 31.0, 0.7, 0.1}},
	},

	MeasureKMH:   36.0,
	MeasureAngle: 5.0,
	MeasureMS:    10.0,
	Bitfield:     0x0201,
}

// ExampleData returns a copy of the example record. The shared instance is
// never handed out, so it stays identical to the description file for the
// lifetime of the process.
func ExampleData() XcpData {
	return exampleData
}
