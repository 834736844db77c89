// Package validate evaluates an ordered list of field rules against request
// input and collects the failure messages in rule order.
package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// Rule ties one field value to a predicate and the message reported when the
// predicate fails.
type Rule struct {
	Field   string
	Value   string
	Valid   func(string) bool
	Message string
}

// Run evaluates the rules in order and returns the messages of the failed
// ones, preserving order. Once a rule for a field fails, later rules for the
// same field are skipped so a blank email reports only the presence message.
func Run(rules []Rule) []string {
	var msgs []string
	failed := make(map[string]bool)

	for _, r := range rules {
		if failed[r.Field] {
			continue
		}
		if !r.Valid(r.Value) {
			failed[r.Field] = true
			msgs = append(msgs, r.Message)
		}
	}
	return msgs
}

// NotBlank reports whether s contains any non-whitespace character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Email reports whether s is a well-formed email address.
func Email(s string) bool {
	return v.Var(s, "email") == nil
}
