package curve

// Point is one sample of a response curve. Defined is false where the system
// produced no output; Y is meaningless there.
type Point struct {
	X       float64 `yaml:"x" json:"x"`
	Y       float64 `yaml:"y" json:"y"`
	Defined bool    `yaml:"defined" json:"defined"`
}

type Target func(x float64) float64

type Storage[POINT any] interface {
	Load(key string) (ps []POINT, err error)
	Save(key string, ps []POINT) error
}

type Report struct {
	Samples       int     `yaml:"samples" json:"samples"`
	Undefined     int     `yaml:"undefined" json:"undefined"`
	MaxAbsError   float64 `yaml:"maxAbsError" json:"maxAbsError"`
	MaxAbsErrorAt float64 `yaml:"maxAbsErrorAt" json:"maxAbsErrorAt"`
	MeanAbsError  float64 `yaml:"meanAbsError" json:"meanAbsError"`
	RMSE          float64 `yaml:"rmse" json:"rmse"`
}
