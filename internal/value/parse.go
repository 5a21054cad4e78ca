package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseConfig controls string-to-Value parsing (§4.1): the Null sentinel,
// whether Null parsing is enabled, and the Timestamp parser hook.
type ParseConfig struct {
	NullSentinel   string // case-insensitive; default "N/A"
	AllowNullParse bool
	ParseTS        func(s string) (Timestamp, bool)
}

// DefaultParseConfig enables Null parsing with the "N/A" sentinel and no
// timestamp parser (callers needing Timestamp columns must supply one from
// package tsparse).
func DefaultParseConfig() ParseConfig {
	return ParseConfig{NullSentinel: "N/A", AllowNullParse: true}
}

// Parse converts a cell string into a Value of the requested tag, per the
// grammar in §4.1. Vector tags are not parseable from a single cell string
// and always fail.
func Parse(s string, tag Tag, cfg ParseConfig) (Value, error) {
	if cfg.AllowNullParse && strings.EqualFold(s, cfg.NullSentinel) {
		return NewNull(), nil
	}

	switch tag {
	case Str:
		return NewStr(s), nil
	case Bool:
		return parseBool(s)
	case Char:
		if len(s) == 0 {
			return Value{}, fmt.Errorf("value: empty string has no Char")
		}
		return NewChar(s[0]), nil
	case Int32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("value: %q is not a valid Int32: %w", s, err)
		}
		return NewInt32(int32(i)), nil
	case Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value: %q is not a valid Int64: %w", s, err)
		}
		return NewInt64(i), nil
	case Float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Value{}, fmt.Errorf("value: %q is not a valid Float32: %w", s, err)
		}
		return NewFloat32(float32(f)), nil
	case Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, fmt.Errorf("value: %q is not a valid Float64: %w", s, err)
		}
		return NewFloat64(f), nil
	case TagTimestamp:
		if cfg.ParseTS == nil {
			return Value{}, fmt.Errorf("value: no timestamp parser configured")
		}
		ts, ok := cfg.ParseTS(s)
		if !ok {
			return Value{}, fmt.Errorf("value: %q is not a valid Timestamp", s)
		}
		return NewTimestamp(ts), nil
	default:
		return Value{}, fmt.Errorf("value: tag %s is not parseable from a cell string", tag)
	}
}

// parseBool recognizes the first-byte grammar from §4.1:
// {0,f,F,N,n} -> false, {1,t,T,Y,y} -> true.
func parseBool(s string) (Value, error) {
	if len(s) == 0 {
		return Value{}, fmt.Errorf("value: empty string is not a valid Bool")
	}
	switch s[0] {
	case '0', 'f', 'F', 'N', 'n':
		return NewBool(false), nil
	case '1', 't', 'T', 'Y', 'y':
		return NewBool(true), nil
	default:
		return Value{}, fmt.Errorf("value: %q is not a valid Bool", s)
	}
}
