package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestSpyError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidTarget, "bad target")
	if err.Code != ErrCodeInvalidTarget {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidTarget, err.Code)
	}
	if err.Message != "bad target" {
		t.Errorf("expected message 'bad target', got %q", err.Message)
	}
}

func TestSpyError_FunctionTarget_Success(t *testing.T) {
	err := FunctionTarget()
	if err.Code != ErrCodeInvalidTarget {
		t.Errorf("expected INVALID_TARGET, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "function, not a class-like type") {
		t.Errorf("expected message to name the function kind, got %q", err.Message)
	}
}

func TestSpyError_InstanceTarget_NamesTypeTwice(t *testing.T) {
	err := InstanceTarget("Calculator")
	if got := strings.Count(err.Message, "Calculator"); got != 2 {
		t.Errorf("expected the type to be named twice, got %d in %q", got, err.Message)
	}
	if err.Details["received"] != "Calculator" {
		t.Errorf("expected received=Calculator, got %v", err.Details["received"])
	}
	if err.Details["expected"] != "Calculator" {
		t.Errorf("expected expected=Calculator, got %v", err.Details["expected"])
	}
}

func TestSpyError_ContractViolation_Success(t *testing.T) {
	err := ContractViolation("Frobnicate", "Calculator")
	if err.Code != ErrCodeContractViolation {
		t.Errorf("expected CONTRACT_VIOLATION, got %s", err.Code)
	}
	if err.Details["member"] != "Frobnicate" {
		t.Errorf("expected member=Frobnicate, got %v", err.Details["member"])
	}
	if err.Details["target"] != "Calculator" {
		t.Errorf("expected target=Calculator, got %v", err.Details["target"])
	}
}

func TestSpyError_WithCause_Unwrap(t *testing.T) {
	cause := fmt.Errorf("reflection blew up")
	err := InvalidConfig("no name").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "cause: reflection blew up") {
		t.Errorf("expected error string to include the cause, got %q", err.Error())
	}
}

func TestSpyError_WithDetail_Success(t *testing.T) {
	err := InvalidConfig("no name").WithDetail("proxy", "Calculator()")
	if err.Details["proxy"] != "Calculator()" {
		t.Errorf("expected proxy detail, got %v", err.Details["proxy"])
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"direct match", ContractViolation("M", "T"), ErrCodeContractViolation, true},
		{"code mismatch", ContractViolation("M", "T"), ErrCodeInvalidTarget, false},
		{"wrapped", fmt.Errorf("outer: %w", FunctionTarget()), ErrCodeInvalidTarget, true},
		{"plain error", fmt.Errorf("boom"), ErrCodeInvalidTarget, false},
		{"nil", nil, ErrCodeInvalidTarget, false},
	}
	for _, tc := range tests {
		if got := IsCode(tc.err, tc.code); got != tc.want {
			t.Errorf("%s: IsCode = %v, want %v", tc.name, got, tc.want)
		}
	}
}
