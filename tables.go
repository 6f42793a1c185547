package a2l

// Curve is a 1-D lookup table. Values[i] belongs to Axis[i].
type Curve struct {
	Axis   [5]float32
	Values [5]float32
}

// Map is a 2-D lookup table indexed as Values[x][y].
type Map struct {
	AxisX  [5]float32
	AxisY  [5]float32
	Values [5][5]float32
}

// Cuboid is a 3-D lookup table indexed as Values[x][y][z].
type Cuboid struct {
	AxisX  [5]float32
	AxisY  [5]float32
	AxisZ  [5]float32
	Values [5][5][5]float32
}

func (x XcpData) Curve() Curve {
	return Curve{
		Axis:   x.DataCurveAxis,
		Values: x.DataCurveValues,
	}
}

func (x XcpData) Map() Map {
	return Map{
		AxisX:  x.DataMapAxisX,
		AxisY:  x.DataMapAxisY,
		Values: x.DataMapValues,
	}
}

func (x XcpData) Cuboid() Cuboid {
	return Cuboid{
		AxisX:  x.DataCuboidAxisX,
		AxisY:  x.DataCuboidAxisY,
		AxisZ:  x.DataCuboidAxisZ,
		Values: x.DataCuboidValues,
	}
}
