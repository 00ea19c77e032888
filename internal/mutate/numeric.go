package mutate

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// integerMutation covers the fixed-point column types spec.md §4.6
// lists. A rule's start/end kwargs narrow the generated range but
// never escape the column type's own bounds. Grounded on
// original_source/src/mutator/numeric.rs's gen_int/get_range_i64.
type integerMutation struct {
	min, max int64
}

func newIntegerMutation(kwargs map[string]any, typeMin, typeMax int64) (Mutation, error) {
	// typeMin/typeMax are kept as int64 unless a kwarg overrides them —
	// routing the unwidened bigint bounds through kwargFloat's
	// float64-typed default would round numeric_bigint's MaxInt64
	// bound to 2^63 and corrupt it on the way back to int64.
	lo := typeMin
	if v, ok := kwargs["start"]; ok {
		f, ok := v.(float64)
		if !ok {
			return nil, anonerr.New(anonerr.KindRuleParse, "start", fmt.Errorf("kwarg %q must be a number", "start"))
		}
		lo = int64(math.Round(f))
		if lo < typeMin {
			lo = typeMin
		}
	}
	hi := typeMax
	if v, ok := kwargs["end"]; ok {
		f, ok := v.(float64)
		if !ok {
			return nil, anonerr.New(anonerr.KindRuleParse, "end", fmt.Errorf("kwarg %q must be a number", "end"))
		}
		hi = int64(math.Round(f))
		if hi > typeMax {
			hi = typeMax
		}
	}
	return integerMutation{min: lo, max: hi}, nil
}

func (m integerMutation) Apply(ctx *Context) (string, error) {
	return fmt.Sprintf("%d", randInt64InRange(ctx.Rng, m.min, m.max)), nil
}

// randInt64InRange draws uniformly from [min, max]. It computes the
// span in unsigned arithmetic rather than gofakeit.Number's signed
// max-min+1, which overflows to 0 and panics in rand.Intn(0) for
// numeric_bigint's default full-int64 envelope.
func randInt64InRange(rng *rand.Rand, min, max int64) int64 {
	span := uint64(max - min) // correct even though max-min can overflow int64; two's-complement wraparound preserves the unsigned difference
	if span == ^uint64(0) {
		return min + int64(rng.Uint64())
	}
	return min + int64(rng.Uint64()%(span+1))
}

// floatMutation covers decimal/real/double_precision, which differ
// only in their default [start, end] envelope and rendering
// precision (numeric.rs's decimal/real/double_precision).
type floatMutation struct {
	start, end float64
	precision  int
}

func (m floatMutation) Apply(ctx *Context) (string, error) {
	v := gofakeit.Float64Range(m.start, m.end)
	return fmt.Sprintf("%.*f", m.precision, v), nil
}

func newDecimalMutation(kwargs map[string]any) (Mutation, error) {
	start, end, err := floatRange(kwargs, -999999.0, 999999.0)
	if err != nil {
		return nil, err
	}
	precF, err := kwargFloat(kwargs, "precision", false, 2)
	if err != nil {
		return nil, err
	}
	return floatMutation{start: start, end: end, precision: int(precF)}, nil
}

func newRealMutation(kwargs map[string]any) (Mutation, error) {
	start, end, err := floatRange(kwargs, -999999.0, 999999.0)
	if err != nil {
		return nil, err
	}
	return floatMutation{start: start, end: end, precision: 6}, nil
}

func newDoublePrecisionMutation(kwargs map[string]any) (Mutation, error) {
	start, end, err := floatRange(kwargs, -999999999.0, 999999999.0)
	if err != nil {
		return nil, err
	}
	return floatMutation{start: start, end: end, precision: 15}, nil
}

func floatRange(kwargs map[string]any, defStart, defEnd float64) (float64, float64, error) {
	start, err := kwargFloat(kwargs, "start", false, defStart)
	if err != nil {
		return 0, 0, err
	}
	end, err := kwargFloat(kwargs, "end", false, defEnd)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Type bounds for the integer family. The serial family never emits
// non-positive values, matching a sequence's own range.
const (
	smallintMin, smallintMax       = -32768, 32767
	integerMin, integerMax         = -2147483648, 2147483647
	bigintMin, bigintMax           = -9223372036854775808, 9223372036854775807
	smallserialMin, smallserialMax = 1, 32767
	serialMin, serialMax           = 1, 2147483647
	bigserialMin, bigserialMax     = 1, 9223372036854775807
)
