package http

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBankIDValidation(t *testing.T) {
	type P struct {
		BankID string `validate:"bankid"`
	}
	cv := NewValidator()

	for _, s := range []string{"alrajhi", "snb", "bank_2", "a-b"} {
		if err := cv.Validate(P{BankID: s}); err != nil {
			t.Fatalf("expected valid bank id %q, got err: %v", s, err)
		}
	}

	for _, s := range []string{
		"",                      // empty
		"AlRajhi",               // uppercase
		"al rajhi",              // space
		strings.Repeat("a", 33), // too long
		"بنك",                   // non-ascii
	} {
		err := cv.Validate(P{BankID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !containsFieldMsg(ToFieldErrors(err), "BankID", "lowercase bank id") {
			t.Fatalf("expected bankid message for %q, got: %+v", s, ToFieldErrors(err))
		}
	}
}

func TestEnumValidations(t *testing.T) {
	type P struct {
		Sector string `json:"employment_sector" validate:"sector"`
		Type   string `json:"property_type"     validate:"proptype"`
		State  string `json:"property_state"    validate:"propstate"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{Sector: "Government", Type: "house", State: "offplan"}); err != nil {
		t.Fatalf("expected valid enums, got %v", err)
	}

	err := cv.Validate(P{Sector: "student", Type: "castle", State: "ruined"})
	if err == nil {
		t.Fatal("expected enum errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "employment_sector", "government, military") {
		t.Fatalf("missing sector message: %+v", fe)
	}
	if !containsFieldMsg(fe, "property_type", "apartment, villa") {
		t.Fatalf("missing type message: %+v", fe)
	}
	if !containsFieldMsg(fe, "property_state", "ready, offplan") {
		t.Fatalf("missing state message: %+v", fe)
	}
}

func TestMoneyValidation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"money"`
	}
	cv := NewValidator()

	for _, v := range []float64{0, 10000, 4500.5, 1.29} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected money OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999, math.NaN(), math.Inf(1)} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected money error for %v", v)
		}
		if !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
			t.Fatalf("unexpected mapping for %v: %+v", v, ToFieldErrors(err))
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string  `json:"name"        validate:"required"`
		Years  int     `json:"loan_years"  validate:"gte=1,lte=30"`
		Family int     `json:"family_size" validate:"gte=1,lte=20"`
		Salary float64 `json:"salary"      validate:"gt=0"`
		Action string  `json:"action"      validate:"oneof=next back goto"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Name: "", Years: 31, Family: 0, Salary: 0, Action: "skip"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "loan_years", "less than or equal to 30") {
		t.Fatalf("missing lte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "family_size", "greater than or equal to 1") {
		t.Fatalf("missing gte message: %+v", fe)
	}
	if !containsFieldMsg(fe, "salary", "greater than 0") {
		t.Fatalf("missing gt message: %+v", fe)
	}
	if !containsFieldMsg(fe, "action", "one of next back goto") {
		t.Fatalf("missing oneof message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
