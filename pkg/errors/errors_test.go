package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingColumn, "prize table lacks column %q", "prize")
	if err.Code != ErrCodeMissingColumn {
		t.Errorf("Code = %s, want MISSING_COLUMN", err.Code)
	}
	want := `MISSING_COLUMN: prize table lacks column "prize"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrCodeSolverFailed, cause, "solver %s exited", "pcsf-solve")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if !Is(err, ErrCodeSolverFailed) {
		t.Error("Is(err, SOLVER_FAILED) = false, want true")
	}
}

func TestIs_WrappedDeeper(t *testing.T) {
	inner := New(ErrCodeSolverOutput, "edge references unknown vertex")
	outer := fmt.Errorf("run pcsf: %w", inner)

	if !Is(outer, ErrCodeSolverOutput) {
		t.Error("Is() did not find code through fmt wrapping")
	}
	if Is(outer, ErrCodeSolverFailed) {
		t.Error("Is() matched the wrong code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidProportion, "p=2")); got != ErrCodeInvalidProportion {
		t.Errorf("GetCode() = %s, want INVALID_PROPORTION", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %s, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidTable, "edge list needs three columns")
	if got := UserMessage(err); got != "edge list needs three columns" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
