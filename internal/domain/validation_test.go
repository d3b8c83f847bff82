package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCompositeAmount(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		components []string
		wantErr    bool
	}{
		{name: "exact sum", total: "1500.00", components: []string{"500.00", "1000.00"}, wantErr: false},
		{name: "within tolerance", total: "1500.00", components: []string{"500.00", "1000.009"}, wantErr: false},
		{name: "beyond tolerance", total: "1500.00", components: []string{"500.00", "1000.02"}, wantErr: true},
		{name: "all components zero", total: "0", components: []string{"0", "0"}, wantErr: true},
		{name: "negative component", total: "100.00", components: []string{"200.00", "-100.00"}, wantErr: true},
		{name: "three components", total: "1000.00", components: []string{"500.00", "300.00", "200.00"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps := make([]decimal.Decimal, len(tt.components))
			for i, c := range tt.components {
				comps[i] = dec(c)
			}

			err := ValidateCompositeAmount(dec(tt.total), comps...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("expected ErrInvalidAmount, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestErrorTaxonomy(t *testing.T) {
	// Account and loan misses share the wire code but must not match each
	// other through errors.Is.
	if errors.Is(ErrAccountNotFound, ErrLoanNotFound) {
		t.Error("account and loan not-found must stay distinct")
	}

	wrapped := ErrInsufficientBalance.WithMessage("account 123: need 100.00, have 50.00")
	if !errors.Is(wrapped, ErrInsufficientBalance) {
		t.Error("WithMessage copy must match its sentinel")
	}
	if wrapped.Code != "BYTE_003" || wrapped.Status != StatusBadRequest {
		t.Errorf("wrapped copy lost code or status: %+v", wrapped)
	}
}
