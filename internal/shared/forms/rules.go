package forms

import (
	"html"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ISODateLayout is the extended ISO-8601 calendar date form accepted by the
// optional date rule and by HTML date inputs.
const ISODateLayout = "2006-01-02"

// Trim strips surrounding whitespace.
func Trim() Rule {
	return func(v string) ruleResult {
		return ruleResult{value: strings.TrimSpace(v)}
	}
}

// Required records msg when the value is empty. The chain continues so later
// transformers still run.
func Required(msg string) Rule {
	return func(v string) ruleResult {
		if v == "" {
			return ruleResult{value: v, message: msg}
		}
		return ruleResult{value: v}
	}
}

// MinLength records msg when the value is shorter than n runes.
func MinLength(n int, msg string) Rule {
	return func(v string) ruleResult {
		if utf8.RuneCountInString(v) < n {
			return ruleResult{value: v, message: msg}
		}
		return ruleResult{value: v}
	}
}

// MaxLength records msg when the value is longer than n runes.
func MaxLength(n int, msg string) Rule {
	return func(v string) ruleResult {
		if utf8.RuneCountInString(v) > n {
			return ruleResult{value: v, message: msg}
		}
		return ruleResult{value: v}
	}
}

// OneOf records msg unless the value is one of the allowed set. Empty
// values are skipped, as ozzo rules do, so optional fields keep their
// defaults.
func OneOf(msg string, allowed ...string) Rule {
	values := make([]interface{}, len(allowed))
	for i, a := range allowed {
		values[i] = a
	}
	return check(validation.In(values...), msg)
}

// Escape replaces markup-significant characters with HTML entities. The
// value is unescaped first so that re-running the pipeline on cleaned output
// is stable rather than double-escaping.
func Escape() Rule {
	return func(v string) ruleResult {
		return ruleResult{value: html.EscapeString(html.UnescapeString(v))}
	}
}

// Alphanumeric records msg when the value contains anything beyond letters
// and digits. Empty values are skipped, as ozzo rules do, so a missing
// required field reports only the Required message.
func Alphanumeric(msg string) Rule {
	return check(is.Alphanumeric, msg)
}

// OptionalISODate omits the field entirely when the submitted value is
// empty. Otherwise the value must be an extended ISO-8601 calendar date,
// else msg is recorded.
func OptionalISODate(msg string) Rule {
	dateRule := validation.Date(ISODateLayout)
	return func(v string) ruleResult {
		if v == "" {
			return ruleResult{omit: true}
		}
		if err := validation.Validate(v, dateRule); err != nil {
			return ruleResult{value: v, message: msg}
		}
		return ruleResult{value: v}
	}
}

// check wraps an ozzo validation rule as a pipeline check.
func check(rule validation.Rule, msg string) Rule {
	return func(v string) ruleResult {
		if err := validation.Validate(v, rule); err != nil {
			return ruleResult{value: v, message: msg}
		}
		return ruleResult{value: v}
	}
}
