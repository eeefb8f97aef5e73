// Package lamplan loads and compiles laminate plans. A plan document (YAML,
// or JSON as a YAML subset) declares named datums and an ordered list of
// plies; loading resolves the polymorphic operator, operand, and thickness
// forms into typed variants so that evaluation never sees raw tokens.
package lamplan

import (
	"fmt"
	"os"

	"github.com/Knetic/govaluate"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type planDoc struct {
	Datums map[string]datumDoc `yaml:"datums"`
	Plies  []plyDoc            `yaml:"plies"`
}

type datumDoc struct {
	Base   string      `yaml:"base"`
	Values [][]float64 `yaml:"values"`
}

type plyDoc struct {
	Mat        string    `yaml:"mat"`
	Angle      float64   `yaml:"angle"`
	Thickness  yaml.Node `yaml:"thickness"`
	Parent     string    `yaml:"parent"`
	Conditions []condDoc `yaml:"conditions"`
	Key        int       `yaml:"key"`
}

type condDoc struct {
	Field    string    `yaml:"field"`
	Operator string    `yaml:"operator"`
	Operand  yaml.Node `yaml:"operand"`
}

// Load reads and compiles the plan document at path.
func Load(path string, log *zap.Logger) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read laminate plan: %w", err)
	}
	plan, err := Parse(data, log)
	if err != nil {
		return nil, fmt.Errorf("laminate plan %s: %w", path, err)
	}
	return plan, nil
}

// Parse compiles a plan document. Unknown top-level keys are ignored so
// that a plan may be embedded in a larger workflow config.
func Parse(data []byte, log *zap.Logger) (*Plan, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var doc planDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan document: %w", err)
	}

	plan := &Plan{Datums: make(map[string]*Datum, len(doc.Datums))}
	for name, dd := range doc.Datums {
		d, err := NewDatum(dd.Base, dd.Values)
		if err != nil {
			return nil, fmt.Errorf("datum %q: %w", name, err)
		}
		plan.Datums[name] = d
	}

	plan.Plies = make([]Ply, 0, len(doc.Plies))
	for i, pd := range doc.Plies {
		ply, err := compilePly(pd, plan.Datums, log)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i, err)
		}
		plan.Plies = append(plan.Plies, ply)
	}
	return plan, nil
}

func compilePly(pd plyDoc, datums map[string]*Datum, log *zap.Logger) (Ply, error) {
	if pd.Mat == "" {
		return Ply{}, fmt.Errorf("missing mat")
	}
	thickness, err := compileThickness(&pd.Thickness, datums, log)
	if err != nil {
		return Ply{}, err
	}
	conds := make([]Condition, 0, len(pd.Conditions))
	for j, cd := range pd.Conditions {
		cond, err := compileCondition(cd)
		if err != nil {
			return Ply{}, fmt.Errorf("condition %d: %w", j, err)
		}
		conds = append(conds, cond)
	}
	return Ply{
		Mat:        pd.Mat,
		Angle:      pd.Angle,
		Thickness:  thickness,
		Parent:     pd.Parent,
		Conditions: conds,
		Key:        pd.Key,
	}, nil
}

func compileCondition(cd condDoc) (Condition, error) {
	if cd.Field == "" {
		return Condition{}, fmt.Errorf("missing field")
	}
	op, err := ParseOp(cd.Operator)
	if err != nil {
		return Condition{}, err
	}
	operand, err := compileOperand(&cd.Operand)
	if err != nil {
		return Condition{}, err
	}
	return Condition{Field: cd.Field, Operator: op, Operand: operand}, nil
}

func compileOperand(n *yaml.Node) (Operand, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err == nil {
			return Operand{Kind: OperandScalar, Scalar: v}, nil
		}
		var name string
		if err := n.Decode(&name); err != nil || name == "" {
			return Operand{}, fmt.Errorf("%w: operand must be a number, [lo, hi] pair, or datum name", ErrOperandArity)
		}
		return Operand{Kind: OperandDatum, Datum: name}, nil
	case yaml.SequenceNode:
		var pair []float64
		if err := n.Decode(&pair); err != nil {
			return Operand{}, fmt.Errorf("%w: range operand must be a pair of numbers", ErrOperandArity)
		}
		if len(pair) != 2 {
			return Operand{}, fmt.Errorf("%w: range operand has %d values, want 2", ErrOperandArity, len(pair))
		}
		return Operand{Kind: OperandRange, Lo: pair[0], Hi: pair[1]}, nil
	default:
		return Operand{}, fmt.Errorf("%w: missing operand", ErrOperandArity)
	}
}

// compileThickness disambiguates the thickness form: a numeric literal is a
// constant, a string matching a datum name is a datum reference, any other
// string must parse as an arithmetic expression over cell fields.
func compileThickness(n *yaml.Node, datums map[string]*Datum, log *zap.Logger) (Thickness, error) {
	if n.Kind != yaml.ScalarNode {
		return Thickness{}, fmt.Errorf("%w: thickness must be a number, datum name, or expression", ErrParse)
	}
	var v float64
	if err := n.Decode(&v); err == nil {
		return Thickness{Kind: ThicknessConstant, Constant: v}, nil
	}
	var s string
	if err := n.Decode(&s); err != nil || s == "" {
		return Thickness{}, fmt.Errorf("%w: empty thickness", ErrParse)
	}
	if _, ok := datums[s]; ok {
		log.Debug("thickness string matches a datum name, resolving as datum reference",
			zap.String("thickness", s))
		return Thickness{Kind: ThicknessDatum, Datum: s, Raw: s}, nil
	}
	expr, err := govaluate.NewEvaluableExpression(s)
	if err != nil {
		return Thickness{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	return Thickness{Kind: ThicknessExpression, Raw: s, Expr: expr}, nil
}
