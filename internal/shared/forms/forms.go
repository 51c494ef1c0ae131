// Package forms implements the validation and sanitization pipeline applied
// to form submissions before any persistence operation. Each field carries an
// ordered rule chain; every validator sees the output of the transformers
// before it. The pipeline accumulates field errors instead of stopping at the
// first failure, touches no storage, and returns the same result when re-run
// on its own cleaned output.
package forms

import "time"

// FieldError is one validation failure, attached to the field it belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the ordered list of accumulated field errors. A field may appear
// more than once.
type Errors []FieldError

func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// For returns the messages recorded for one field, in rule order.
func (e Errors) For(field string) []string {
	var msgs []string
	for _, fe := range e {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}

// Values is the cleaned field set produced by a pipeline run. Optional fields
// whose submitted value was empty are omitted entirely.
type Values map[string]string

func (v Values) Get(name string) string {
	return v[name]
}

func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Date parses a cleaned optional-date field. ok is false when the field was
// omitted or its value did not survive validation as a calendar date.
func (v Values) Date(name string) (time.Time, bool) {
	raw, present := v[name]
	if !present {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Result of applying one rule to the current field value.
type ruleResult struct {
	value   string
	message string // non-empty records a field error; the chain continues
	omit    bool   // stop the chain and drop the field from the cleaned set
}

// Rule is one step in a field's chain: either a transformer (rewrites the
// value) or a check (records an error message, passing the value through).
type Rule func(value string) ruleResult

// Field pairs a form field name with its ordered rule chain.
type Field struct {
	Name  string
	Rules []Rule
}

// F builds a Field. Rules apply left to right.
func F(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Form is a declarative, reusable description of one submission's fields.
type Form struct {
	fields []Field
}

func New(fields ...Field) *Form {
	return &Form{fields: fields}
}

// Run applies every field's rule chain to the raw submitted values and
// returns the cleaned set plus all accumulated errors. Missing fields are
// treated as empty submissions.
func (f *Form) Run(raw map[string]string) (Values, Errors) {
	cleaned := make(Values, len(f.fields))
	var errs Errors

	for _, field := range f.fields {
		value := raw[field.Name]
		omit := false

		for _, rule := range field.Rules {
			res := rule(value)
			if res.omit {
				omit = true
				break
			}
			value = res.value
			if res.message != "" {
				errs = append(errs, FieldError{Field: field.Name, Message: res.message})
			}
		}

		if !omit {
			cleaned[field.Name] = value
		}
	}

	return cleaned, errs
}
