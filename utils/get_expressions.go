package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/knetic/govaluate"
)

// Parameters available to canvas dimension expressions.
const (
	SourceWidthParam  = "SourceWidth"
	SourceHeightParam = "SourceHeight"
)

// MaxCanvasElements bounds a single dimension and the width*height product.
const MaxCanvasElements = math.MaxInt32

// CheckCanvasSize rejects canvases with a non-positive side or more than
// MaxCanvasElements elements.
func CheckCanvasSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas %d x %d must have positive dimensions", width, height)
	}
	if width > MaxCanvasElements/height {
		return fmt.Errorf("canvas %d x %d exceeds %d elements", width, height, MaxCanvasElements)
	}
	return nil
}

// GetExpressionFunctions defines functions usable in width/height expressions.
func GetExpressionFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		// Align rounds a value up to the next multiple of n (e.g. framebuffer pitch).
		"Align": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("Align expects 2 arguments (value, multiple)")
			}
			value, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 1 (value) must be numeric for Align")
			}
			multiple, ok := args[1].(float64)
			if !ok {
				return nil, fmt.Errorf("arg 2 (multiple) must be numeric for Align")
			}
			if multiple <= 0 {
				return nil, fmt.Errorf("Align multiple must be positive, got %v", multiple)
			}
			return math.Ceil(value/multiple) * multiple, nil
		},
		"Min": func(args ...interface{}) (interface{}, error) {
			return foldNumeric("Min", args, math.Min)
		},
		"Max": func(args ...interface{}) (interface{}, error) {
			return foldNumeric("Max", args, math.Max)
		},
	}
}

func foldNumeric(name string, args []interface{}, fn func(a, b float64) float64) (interface{}, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s expects at least 1 argument", name)
	}
	var result float64
	for i, arg := range args {
		v, ok := arg.(float64)
		if !ok {
			return nil, fmt.Errorf("arg %d must be numeric for %s", i+1, name)
		}
		if i == 0 {
			result = v
			continue
		}
		result = fn(result, v)
	}
	return result, nil
}

// IsValidDimensionExpression performs basic checks on a potential dimension expression.
// This is NOT a full expression parser.
func IsValidDimensionExpression(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "..." {
		return false
	}
	return true
}

// CheckDimensionExpression parses expr without evaluating it and rejects
// references to anything but the source dimensions.
func CheckDimensionExpression(expr string) error {
	if !IsValidDimensionExpression(expr) {
		return fmt.Errorf("empty dimension expression")
	}
	if _, err := strconv.Atoi(strings.TrimSpace(expr)); err == nil {
		return nil
	}
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, GetExpressionFunctions())
	if err != nil {
		return fmt.Errorf("invalid dimension expression '%s': %w", expr, err)
	}
	for _, v := range parsed.Vars() {
		if v != SourceWidthParam && v != SourceHeightParam {
			return fmt.Errorf("dimension expression '%s' references unknown parameter '%s'", expr, v)
		}
	}
	return nil
}

// EvaluateDimension resolves a canvas dimension. expr is either a positive
// integer or an expression over SourceWidth and SourceHeight.
func EvaluateDimension(expr string, sourceWidth, sourceHeight int) (int, error) {
	trimmed := strings.TrimSpace(expr)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 || n > MaxCanvasElements {
			return 0, fmt.Errorf("dimension %d out of range (1..%d)", n, MaxCanvasElements)
		}
		return n, nil
	}
	if err := CheckDimensionExpression(trimmed); err != nil {
		return 0, err
	}
	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(trimmed, GetExpressionFunctions())
	if err != nil {
		return 0, fmt.Errorf("invalid dimension expression '%s': %w", trimmed, err)
	}
	result, err := parsed.Evaluate(map[string]interface{}{
		SourceWidthParam:  float64(sourceWidth),
		SourceHeightParam: float64(sourceHeight),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate dimension expression '%s': %w", trimmed, err)
	}
	f, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("dimension expression '%s' is not numeric (got %T)", trimmed, result)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("dimension expression '%s' evaluated to non-integer %v", trimmed, f)
	}
	if f <= 0 || f > MaxCanvasElements {
		return 0, fmt.Errorf("dimension expression '%s' evaluated to out-of-range %v", trimmed, f)
	}
	return int(f), nil
}
