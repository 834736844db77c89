package validate_test

import (
	"reflect"
	"testing"

	"github.com/danabekov/course-catalog/internal/validate"
)

func TestRun_AllPass(t *testing.T) {
	msgs := validate.Run([]validate.Rule{
		{Field: "title", Value: "T", Valid: validate.NotBlank, Message: "title required"},
		{Field: "email", Value: "a@x.com", Valid: validate.Email, Message: "bad email"},
	})
	if len(msgs) != 0 {
		t.Errorf("messages = %v, want none", msgs)
	}
}

func TestRun_FailuresKeepRuleOrder(t *testing.T) {
	msgs := validate.Run([]validate.Rule{
		{Field: "first", Value: "", Valid: validate.NotBlank, Message: "first required"},
		{Field: "second", Value: "ok", Valid: validate.NotBlank, Message: "second required"},
		{Field: "third", Value: "   ", Valid: validate.NotBlank, Message: "third required"},
	})
	want := []string{"first required", "third required"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("messages = %v, want %v", msgs, want)
	}
}

func TestRun_SkipsLaterRulesForFailedField(t *testing.T) {
	msgs := validate.Run([]validate.Rule{
		{Field: "email", Value: "", Valid: validate.NotBlank, Message: "email required"},
		{Field: "email", Value: "", Valid: validate.Email, Message: "email invalid"},
	})
	want := []string{"email required"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("messages = %v, want %v", msgs, want)
	}
}

func TestRun_SecondRuleReachedWhenFirstPasses(t *testing.T) {
	msgs := validate.Run([]validate.Rule{
		{Field: "email", Value: "not-an-email", Valid: validate.NotBlank, Message: "email required"},
		{Field: "email", Value: "not-an-email", Valid: validate.Email, Message: "email invalid"},
	})
	want := []string{"email invalid"}
	if !reflect.DeepEqual(msgs, want) {
		t.Errorf("messages = %v, want %v", msgs, want)
	}
}

func TestEmail(t *testing.T) {
	if !validate.Email("a@x.com") {
		t.Error("a@x.com rejected")
	}
	if validate.Email("not-an-email") {
		t.Error("not-an-email accepted")
	}
}
