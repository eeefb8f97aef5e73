package lamplan

import (
	"github.com/Knetic/govaluate"
)

// OperandKind discriminates the three operand shapes a condition accepts.
type OperandKind int

const (
	// OperandScalar is a literal number compared against every cell.
	OperandScalar OperandKind = iota
	// OperandRange is a [lo, hi] pair for the range operators.
	OperandRange
	// OperandDatum names a datum interpolated per cell against its base
	// field.
	OperandDatum
)

// Operand is the right-hand side of a condition.
type Operand struct {
	Kind   OperandKind
	Scalar float64
	Lo, Hi float64
	Datum  string
}

// Condition selects cells by comparing a named cell field against an
// operand.
type Condition struct {
	Field    string
	Operator Op
	Operand  Operand
}

// ThicknessKind discriminates the three thickness forms a ply accepts.
type ThicknessKind int

const (
	// ThicknessConstant is a uniform thickness.
	ThicknessConstant ThicknessKind = iota
	// ThicknessDatum interpolates a datum per cell against its base field.
	ThicknessDatum
	// ThicknessExpression evaluates an arithmetic formula over cell fields.
	ThicknessExpression
)

// Thickness is a ply's thickness specification. A string value resolves to
// a datum reference when it matches a datum name, otherwise it is parsed as
// an expression; the datum interpretation wins on collision.
type Thickness struct {
	Kind     ThicknessKind
	Constant float64
	Datum    string
	Raw      string
	Expr     *govaluate.EvaluableExpression
}

// Fields returns the cell fields an expression thickness references.
func (t Thickness) Fields() []string {
	if t.Kind != ThicknessExpression || t.Expr == nil {
		return nil
	}
	return t.Expr.Vars()
}

// Ply is one laminate layer: a material, an orientation angle in degrees, a
// thickness spec, a grouping label, an ordering key, and the conjunction of
// conditions selecting the cells it covers. No conditions means the ply
// covers every cell.
type Ply struct {
	Mat        string
	Angle      float64
	Thickness  Thickness
	Parent     string
	Conditions []Condition
	Key        int
}

// Plan is a loaded laminate plan. Ply order is the definition order, which
// breaks ties between equal keys during placement.
type Plan struct {
	Datums map[string]*Datum
	Plies  []Ply
}
