package operation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// defaultKind is used when Bind is called directly rather than through a
// typed registry.
const defaultKind = "operation"

// Bind validates and coerces raw argument input against a definition,
// producing a bound ConfigurableOperation. It is a pure function: no side
// effects, deterministic for the same inputs.
//
// Every supplied argument must match a slot of the definition and coerce to
// the declared type; required slots must be present. Values are stored in a
// canonical serialization (base-10 integers, "true"/"false", RFC3339 UTC
// timestamps, JSON string arrays for lists) so that binding the same input
// twice yields field-wise equal results.
func Bind(def Definition, input RawInput) (ConfigurableOperation, error) {
	return bind(defaultKind, def, input)
}

func bind(kind string, def Definition, input RawInput) (ConfigurableOperation, error) {
	var zero ConfigurableOperation
	if input.Code != def.Code {
		return zero, errUnknownCode(kind, input.Code)
	}

	supplied := make(map[string]string, len(input.Arguments))
	for _, raw := range input.Arguments {
		if _, dup := supplied[raw.Name]; dup {
			return zero, errBadValue(kind, def.Code, raw.Name, "argument supplied more than once")
		}
		supplied[raw.Name] = raw.Value
	}

	args := make([]Arg, 0, len(def.Args))
	for _, spec := range def.Args {
		value, ok := supplied[spec.Name]
		if !ok {
			if spec.Required {
				return zero, errMissingArgument(kind, def.Code, spec.Name)
			}
			continue
		}
		delete(supplied, spec.Name)

		canonical, err := coerce(spec, value)
		if err != nil {
			return zero, errBadValue(kind, def.Code, spec.Name, err.Error())
		}
		args = append(args, Arg{Name: spec.Name, Value: canonical})
	}

	// Anything left over names a slot the definition doesn't have.
	for name := range supplied {
		return zero, errUnknownArgument(kind, def.Code, name)
	}

	return ConfigurableOperation{
		Code:        def.Code,
		Description: append([]LocalizedString(nil), def.Description...),
		Args:        args,
	}, nil
}

func coerce(spec ArgSpec, value string) (string, error) {
	if !spec.List {
		return coerceScalar(spec.Type, value)
	}

	dec := json.NewDecoder(strings.NewReader(value))
	dec.UseNumber()
	var elems []any
	if err := dec.Decode(&elems); err != nil {
		return "", fmt.Errorf("expected a JSON array for list argument: %v", err)
	}

	out := make([]string, len(elems))
	for i, el := range elems {
		var raw string
		switch v := el.(type) {
		case string:
			raw = v
		case json.Number:
			raw = v.String()
		case bool:
			raw = strconv.FormatBool(v)
		default:
			return "", fmt.Errorf("list element %d is not a primitive value", i)
		}
		canonical, err := coerceScalar(spec.Type, raw)
		if err != nil {
			return "", fmt.Errorf("list element %d: %v", i, err)
		}
		out[i] = canonical
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func coerceScalar(t ArgType, value string) (string, error) {
	switch t {
	case ArgInt:
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return "", fmt.Errorf("%q is not an integer", value)
		}
		return strconv.FormatInt(n, 10), nil
	case ArgString:
		return value, nil
	case ArgBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("%q is not a boolean", value)
		}
		return strconv.FormatBool(b), nil
	case ArgID:
		id := strings.TrimSpace(value)
		if id == "" {
			return "", fmt.Errorf("identifier must not be empty")
		}
		return id, nil
	case ArgDatetime:
		ts, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("%q is not an RFC3339 timestamp", value)
		}
		return ts.UTC().Format(time.RFC3339), nil
	default:
		return "", fmt.Errorf("unsupported argument type %q", t)
	}
}
