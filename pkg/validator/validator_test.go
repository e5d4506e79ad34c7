package validator

import "testing"

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	JoinDate string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
	Gender   string `json:"gender" validate:"omitempty,oneof=M F O"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Password: "123", JoinDate: "10/03/2026", Gender: "X"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"email":     "email must be a valid email address",
		"password":  "password must be at least 6 characters",
		"join_date": "join_date must match the format 2006-01-02",
		"gender":    "gender must be one of: M F O",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&sample{Email: "a@x.com", Password: "pw1234", JoinDate: "2026-03-10"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
