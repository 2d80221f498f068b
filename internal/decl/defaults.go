package decl

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML core schema tags for scalar defaults.
const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
)

var errNoDefault = errors.New("field has no default")

// GoLiteral returns the Go source expression of the field default.
func (f *Field) GoLiteral() (string, error) {
	if f.DefaultExpr != "" {
		return f.DefaultExpr, nil
	}

	if f.Default == nil {
		return "", errNoDefault
	}

	n := f.Default
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("default of %s must be a scalar, use default_expr for composite values", f.Name)
	}

	switch n.ShortTag() {
	case tagNull:
		return "nil", nil

	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", err
		}

		return strconv.FormatBool(b), nil

	case tagInt:
		var i int64
		if err := n.Decode(&i); err != nil {
			return "", err
		}

		return strconv.FormatInt(i, 10), nil

	case tagFloat:
		var fl float64
		if err := n.Decode(&fl); err != nil {
			return "", err
		}

		if math.IsInf(fl, 0) || math.IsNaN(fl) {
			return "", fmt.Errorf("default of %s is not a finite number", f.Name)
		}

		return strconv.FormatFloat(fl, 'g', -1, 64), nil

	case tagStr:
		return strconv.Quote(n.Value), nil

	default:
		return "", fmt.Errorf("default of %s has unsupported tag %s", f.Name, n.ShortTag())
	}
}

// DefaultValue returns the runtime value of the field default. Scalars
// decode as YAML does; expressions must be Go constants (or nil).
func (f *Field) DefaultValue() (any, error) {
	if f.Default != nil {
		var v any
		if err := f.Default.Decode(&v); err != nil {
			return nil, fmt.Errorf("decoding default of %s: %w", f.Name, err)
		}

		return v, nil
	}

	if f.DefaultExpr != "" {
		return evalConstant(f.DefaultExpr)
	}

	return nil, errNoDefault
}

// evalConstant evaluates a constant Go expression with the universe scope.
func evalConstant(expr string) (any, error) {
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", expr, err)
	}

	if tv.IsNil() {
		return nil, nil
	}

	if tv.Value == nil {
		return nil, fmt.Errorf("%q is not a constant expression", expr)
	}

	switch v := tv.Value; v.Kind() {
	case constant.Bool:
		return constant.BoolVal(v), nil
	case constant.String:
		return constant.StringVal(v), nil
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return int(i), nil
		}

		return nil, fmt.Errorf("%q overflows int64", expr)
	case constant.Float:
		fl, _ := constant.Float64Val(v)
		return fl, nil
	default:
		return nil, fmt.Errorf("%q has unsupported constant kind %s", expr, v.Kind())
	}
}
