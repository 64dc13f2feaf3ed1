package component

// Transform is an entity's position in arena space (Y up, origin at the
// floor's left corner) plus its visual scale.
type Transform struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

var TransformKind = NewKind[Transform]()
