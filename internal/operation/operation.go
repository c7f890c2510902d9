package operation

// ArgType enumerates the value types an operation argument can declare.
type ArgType string

const (
	ArgInt      ArgType = "int"
	ArgString   ArgType = "string"
	ArgBoolean  ArgType = "boolean"
	ArgID       ArgType = "ID"
	ArgDatetime ArgType = "datetime"
)

// LocalizedString is a translatable piece of UI text keyed by language code.
type LocalizedString struct {
	LanguageCode string `json:"language_code" yaml:"language_code"`
	Value        string `json:"value" yaml:"value"`
}

// English is shorthand for a single-locale description.
func English(value string) []LocalizedString {
	return []LocalizedString{{LanguageCode: "en", Value: value}}
}

// ArgSpec declares one argument slot of an operation definition.
type ArgSpec struct {
	Name        string            `json:"name"`
	Type        ArgType           `json:"type"`
	List        bool              `json:"list"`
	Required    bool              `json:"required"`
	Label       []LocalizedString `json:"label,omitempty"`
	UIComponent string            `json:"ui_component,omitempty"`
}

// Definition describes a configurable operation: its unique code, localized
// description, and ordered argument schema. Definitions are immutable once
// registered and live for the process lifetime.
type Definition struct {
	Code        string            `json:"code"`
	Description []LocalizedString `json:"description"`
	Args        []ArgSpec         `json:"args"`
}

func (d Definition) argSpec(name string) (ArgSpec, bool) {
	for _, a := range d.Args {
		if a.Name == name {
			return a, true
		}
	}
	return ArgSpec{}, false
}

// Arg is one bound argument value. Values are stored in their canonical
// string serialization (see Bind), which round-trips integers and IDs without
// precision loss.
type Arg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ConfigurableOperation is a bound operation instance: the output of a
// successful Bind. It is a value object with no identity of its own, embedded
// into the entity that owns it (a promotion or shipping method). It carries
// the definition's description so consumers can render it without access to
// the registry.
type ConfigurableOperation struct {
	Code        string            `json:"code"`
	Description []LocalizedString `json:"description,omitempty"`
	Args        []Arg             `json:"args"`
}

// RawArg is one untrusted argument value as received from the API layer.
// List-typed slots carry a JSON array in Value.
type RawArg struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// RawInput is the untrusted operation input shape received from the API
// layer: {code, arguments: [{name, value}]}.
type RawInput struct {
	Code      string   `json:"code" yaml:"code"`
	Arguments []RawArg `json:"arguments" yaml:"arguments"`
}
