package application

import (
	"errors"
	"testing"

	"jd/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "label",
			value:     "Taxes",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "label",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "label",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		levels  []domain.Level
		want    string
		wantErr bool
	}{
		{name: "any level", value: "11.04", want: "11.04"},
		{name: "category expected", value: "11", levels: []domain.Level{domain.LevelCategory}, want: "11"},
		{name: "category or area", value: "10-19", levels: []domain.Level{domain.LevelCategory, domain.LevelArea}, want: "10-19"},
		{name: "wrong level", value: "11.04", levels: []domain.Level{domain.LevelCategory}, wantErr: true},
		{name: "garbage", value: "Taxes", wantErr: true},
		{name: "empty", value: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ValidateNumber("number", tt.value, tt.levels...)
			if tt.wantErr {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.want {
				t.Errorf("got %s, want %s", n, tt.want)
			}
		})
	}
}

func TestValidateLabel(t *testing.T) {
	if err := ValidateLabel("label", "Receipts 2024"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "a/b", "line\nbreak", ".."} {
		var valErr *ValidationError
		if err := ValidateLabel("label", bad); !errors.As(err, &valErr) {
			t.Errorf("ValidateLabel(%q) = %v, want ValidationError", bad, err)
		}
	}
}
