package a2l

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExampleDataArray(t *testing.T) {
	x := ExampleData()
	assert.Equal(t, [5]float32{1.0, 2.0, 3.0, 4.0, 5.0}, x.DataArray)
}

func TestExampleDataTables(t *testing.T) {
	x := ExampleData()
	assert.Equal(t, float32(4.0), x.DataMapValues[2][2])
	assert.Equal(t, float32(7.0), x.DataCuboidValues[0][0][2])
	assert.Equal(t, float32(31.0), x.DataCuboidValues[4][4][2])

	for r, row := range x.DataMapValues {
		assert.Equalf(t, [5]float32{0.1, 0.7, float32(2 + r), 0.7, 0.1}, row, "row %d", r)
	}
	for i, plane := range x.DataCuboidValues {
		for j, line := range plane {
			assert.Equalf(t, [5]float32{0.1, 0.7, float32(7 + 5*i + j), 0.7, 0.1}, line, "cuboid[%d][%d]", i, j)
		}
	}
}

func TestExampleDataAxes(t *testing.T) {
	x := ExampleData()
	assert.Equal(t, [5]float32{6, 7, 8, 9, 10}, x.DataCurveAxis)
	assert.Equal(t, [5]float32{0.1, 0.7, 1.0, 0.7, 0.1}, x.DataCurveValues)
	assert.Equal(t, [5]float32{11, 12, 13, 14, 15}, x.DataMapAxisX)
	assert.Equal(t, [5]float32{16, 17, 18, 19, 20}, x.DataMapAxisY)
	assert.Equal(t, [5]float32{11, 12, 13, 14, 15}, x.DataCuboidAxisX)
	assert.Equal(t, [5]float32{16, 17, 18, 19, 20}, x.DataCuboidAxisY)
	assert.Equal(t, [5]float32{16, 17, 18, 19, 20}, x.DataCuboidAxisZ)
}

func TestExampleDataMeasurements(t *testing.T) {
	x := ExampleData()
	assert.Equal(t, float32(36.0), x.MeasureKMH)
	assert.Equal(t, float32(5.0), x.MeasureAngle)
	assert.Equal(t, float32(10.0), x.MeasureMS)
	assert.Equal(t, uint16(0x0201), x.Bitfield)
	assert.Equal(t, uint16(513), x.Bitfield)

	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, x.Bitfield)
	assert.Equal(t, []byte{0x01, 0x02}, b)
}

// TestExampleDataIsCopied makes sure callers cannot change the values handed
// out to other readers.
func TestExampleDataIsCopied(t *testing.T) {
	a := ExampleData()
	a.DataArray[0] = 100
	a.DataCuboidValues[0][0][2] = 100
	a.Bitfield = 0

	b := ExampleData()
	assert.Equal(t, float32(1.0), b.DataArray[0])
	assert.Equal(t, float32(7.0), b.DataCuboidValues[0][0][2])
	assert.Equal(t, uint16(0x0201), b.Bitfield)
	assert.NotEqual(t, a, b)
}

func TestExampleDataConcurrentReaders(t *testing.T) {
	want := ExampleData()
	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ExampleData())
		}()
	}
	wg.Wait()
}

// TestExampleDataBinaryRoundTrip writes the record in its little-endian
// memory representation, reads it back and compares every float bit by bit.
func TestExampleDataBinaryRoundTrip(t *testing.T) {
	want := ExampleData()
	buf := new(bytes.Buffer)
	require.NoError(t, binary.Write(buf, binary.LittleEndian, want))
	// binary.Write does not emit the tail padding.
	require.Equal(t, RecordSize-2, buf.Len())

	var got XcpData
	require.NoError(t, binary.Read(bytes.NewReader(buf.Bytes()), binary.LittleEndian, &got))
	assert.Equal(t, want, got)

	for i := range want.DataCurveAxis {
		assert.Equal(t, math.Float32bits(want.DataCurveAxis[i]), math.Float32bits(got.DataCurveAxis[i]))
		assert.Equal(t, math.Float32bits(want.DataCurveValues[i]), math.Float32bits(got.DataCurveValues[i]))
	}
	assert.Equal(t, math.Float32bits(36.0), math.Float32bits(got.MeasureKMH))
	assert.Equal(t, math.Float32bits(5.0), math.Float32bits(got.MeasureAngle))
	assert.Equal(t, math.Float32bits(10.0), math.Float32bits(got.MeasureMS))
	assert.Equal(t, uint16(0x0201), got.Bitfield)

	raw := buf.Bytes()
	off := bitfieldOffset(t)
	assert.Equal(t, []byte{0x01, 0x02}, raw[off:off+2])
}

func bitfieldOffset(t *testing.T) int {
	t.Helper()
	f, err := Lookup("bitfield")
	require.NoError(t, err)
	return f.Offset
}
