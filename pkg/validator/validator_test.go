package validator

import "testing"

type message struct {
	Role    string `validate:"required,speaker"`
	Content string `validate:"max=10"`
}

func TestValidate_Speaker(t *testing.T) {
	v := New()
	for _, role := range []string{"user", "assistant", "candidate", "agent"} {
		if err := v.Validate(message{Role: role}); err != nil {
			t.Fatalf("%s: unexpected error %v", role, err)
		}
	}
	if err := v.Validate(message{Role: "system"}); err == nil {
		t.Fatalf("expected unknown role to fail")
	}
	if err := v.Validate(message{Role: "user", Content: "this is far too long"}); err == nil {
		t.Fatalf("expected max length to fail")
	}
}
