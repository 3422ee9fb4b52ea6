package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	sentinels := map[string]error{
		"ErrEmailTaken":         ErrEmailTaken,
		"ErrAccountNotFound":    ErrAccountNotFound,
		"ErrInvalidCredentials": ErrInvalidCredentials,
		"ErrUnauthenticated":    ErrUnauthenticated,
		"ErrTaskNotFound":       ErrTaskNotFound,
		"ErrSessionNotFound":    ErrSessionNotFound,
	}
	for name, err := range sentinels {
		if err == nil {
			t.Errorf("%s should not be nil", name)
		}
	}
}

func TestIsValidation(t *testing.T) {
	err := Validationf("title must be at most %d characters", 120)
	if !IsValidation(err) {
		t.Error("Validationf result should report as validation")
	}
	if got := err.Error(); got != "title must be at most 120 characters" {
		t.Errorf("unexpected message %q", got)
	}
	if IsValidation(ErrTaskNotFound) {
		t.Error("sentinel should not report as validation")
	}
}
