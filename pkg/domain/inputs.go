package domain

// Typed inputs for each tool family. The binder fills these from the raw
// argument map; by the time an operation sees one, every field is a valid
// float64. Range and integrality checks stay in the operations themselves.

type PairInput struct {
	A Number `json:"a"`
	B Number `json:"b"`
}

type SingleInput struct {
	A Number `json:"a"`
}

type PowerInput struct {
	Base     Number `json:"base"`
	Exponent Number `json:"exponent"`
}

type ListInput struct {
	Numbers []Number `json:"numbers"`
}

func (i ListInput) Floats() []float64 {
	floats := make([]float64, 0, len(i.Numbers))
	for _, n := range i.Numbers {
		floats = append(floats, float64(n))
	}

	return floats
}

// AngleInput carries an angle in degrees.
type AngleInput struct {
	Angle Number `json:"angle"`
}

// LogInput holds a logarithm operand; Base defaults to 10 when absent.
type LogInput struct {
	Value Number `json:"value"`
	Base  Number `json:"base"`
}
