package utils

import "testing"

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("pdf", "md", "txt")

	for _, v := range []string{"pdf", "md", "txt"} {
		if err := validate(v); err != nil {
			t.Errorf("validate(%q) = %v, want nil", v, err)
		}
	}
	if err := validate("docx"); err == nil {
		t.Error("expected an error for a value outside the allowed set")
	}
}
