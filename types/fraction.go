package types

import (
	"fmt"
	"time"
)

// Fraction is an exact ratio of two integers, used for frame time bases
// and frame rates.
type Fraction struct {
	Num int
	Den int
}

func (f Fraction) Reverse() Fraction {
	return Fraction{
		Num: f.Den,
		Den: f.Num,
	}
}

func (f Fraction) Mul(other Fraction) Fraction {
	return Fraction{
		Num: f.Num * other.Num,
		Den: f.Den * other.Den,
	}
}

func (f Fraction) Div(other Fraction) Fraction {
	return Fraction{
		Num: f.Num * other.Den,
		Den: f.Den * other.Num,
	}
}

func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) IsValid() bool {
	return f.Den != 0
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Duration interprets v as an amount of time-base units and converts it
// to a time.Duration.
func (f Fraction) Duration(v int64) time.Duration {
	if f.Den == 0 {
		return 0
	}
	return time.Duration(float64(v) * f.Float64() * float64(time.Second))
}
