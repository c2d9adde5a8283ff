package primitives

import "testing"

func TestLessonValidate(t *testing.T) {
	noop := func(*Output) {}
	tests := []struct {
		name    string
		lesson  Lesson
		wantErr bool
	}{
		{"valid", NewLesson("hello", "Hello", noop), false},
		{"missing ID", NewLesson("", "Hello", noop), true},
		{"missing body", NewLesson("hello", "Hello", nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lesson.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLessonTags(t *testing.T) {
	base := NewLesson("closures", "Closures", func(*Output) {})
	tagged := base.WithTags("closures", "functions")
	if base.HasTag("closures") {
		t.Error("WithTags must not modify the receiver")
	}
	if !tagged.HasTag("functions") {
		t.Error("tagged lesson should carry functions tag")
	}
	if tagged.HasTag("loops") {
		t.Error("unexpected loops tag")
	}
}
