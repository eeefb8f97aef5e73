package drape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drape/internal/lamplan"
	"drape/internal/mesh"
)

func maskFor(t *testing.T, m *mesh.Mesh, cond lamplan.Condition, datums map[string]*lamplan.Datum) []bool {
	t.Helper()
	mask := make([]bool, m.NumCells())
	for i := range mask {
		mask[i] = true
	}
	require.NoError(t, applyCondition(mask, cond, m, datums))
	return mask
}

func TestApplyConditionOperators(t *testing.T) {
	m := lineGrid() // r = [0, 1, 2]

	cases := []struct {
		op   lamplan.Op
		want []bool
	}{
		{lamplan.OpLT, []bool{true, false, false}},
		{lamplan.OpLE, []bool{true, true, false}},
		{lamplan.OpGT, []bool{false, false, true}},
		{lamplan.OpGE, []bool{false, true, true}},
		{lamplan.OpEQ, []bool{false, true, false}},
		{lamplan.OpNE, []bool{true, false, true}},
	}
	for _, c := range cases {
		cond := lamplan.Condition{
			Field:    "r",
			Operator: c.op,
			Operand:  lamplan.Operand{Kind: lamplan.OperandScalar, Scalar: 1},
		}
		assert.Equal(t, c.want, maskFor(t, m, cond, nil), "operator %s", c.op)
	}
}

func TestApplyConditionRanges(t *testing.T) {
	m := lineGrid()

	in := lamplan.Condition{
		Field:    "r",
		Operator: lamplan.OpInRange,
		Operand:  lamplan.Operand{Kind: lamplan.OperandRange, Lo: 0.5, Hi: 1.5},
	}
	assert.Equal(t, []bool{false, true, false}, maskFor(t, m, in, nil))

	out := in
	out.Operator = lamplan.OpNotInRange
	assert.Equal(t, []bool{true, false, true}, maskFor(t, m, out, nil))
}

func TestApplyConditionNaN(t *testing.T) {
	m := lineGrid()
	m.SetCellField("q", []float64{math.NaN(), 1, 2})

	cond := lamplan.Condition{
		Field:    "q",
		Operator: lamplan.OpGT,
		Operand:  lamplan.Operand{Kind: lamplan.OperandScalar, Scalar: 0},
	}
	// NaN compares false under every ordering operator.
	assert.Equal(t, []bool{false, true, true}, maskFor(t, m, cond, nil))
}

func TestApplyConditionAccumulates(t *testing.T) {
	m := lineGrid()
	mask := []bool{false, true, true}
	cond := lamplan.Condition{
		Field:    "r",
		Operator: lamplan.OpLE,
		Operand:  lamplan.Operand{Kind: lamplan.OperandScalar, Scalar: 1},
	}
	require.NoError(t, applyCondition(mask, cond, m, nil))
	// Conjunction with the incoming mask, not replacement.
	assert.Equal(t, []bool{false, true, false}, mask)
}

func TestApplyConditionDatumOperand(t *testing.T) {
	m := lineGrid()
	m.SetCellField("d", []float64{0.05, 0.25, 0.15})

	te, err := lamplan.NewDatum("r", [][]float64{{0, 0.1}, {2, 0.2}})
	require.NoError(t, err)

	cond := lamplan.Condition{
		Field:    "d",
		Operator: lamplan.OpGT,
		Operand:  lamplan.Operand{Kind: lamplan.OperandDatum, Datum: "te"},
	}
	mask := maskFor(t, m, cond, map[string]*lamplan.Datum{"te": te})
	assert.Equal(t, []bool{false, true, false}, mask)
}
