package logging

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()

	if id == "" {
		t.Fatal("GenerateRequestID returned empty string")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateRequestID returned non-UUID %q: %v", id, err)
	}
}

func TestGenerateRequestIDUniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id := GenerateRequestID()
		if ids[id] {
			t.Errorf("Duplicate request ID generated: %s", id)
		}
		ids[id] = true
	}
}
