package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "parent@example.com", false},
		{"valid with plus", "parent+hub@example.com", false},
		{"empty", "", true},
		{"missing domain", "parent@", true},
		{"missing at", "parent.example.com", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("longenough"); err != nil {
		t.Errorf("unexpected error for valid password: %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected error for short password")
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Alice"); err != nil {
		t.Errorf("unexpected error for valid name: %v", err)
	}
	if err := ValidateName("A"); err == nil {
		t.Error("expected error for one-character name")
	}
	if err := ValidateName("  "); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestValidateInviteCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"valid", "AB12-CD34", false},
		{"lowercase normalized", "ab12-cd34", false},
		{"missing dash", "AB12CD34", true},
		{"too short", "AB1-CD3", true},
		{"empty", "", true},
		{"symbols", "AB!2-CD34", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInviteCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInviteCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}
