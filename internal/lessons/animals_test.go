package lessons

import "testing"

func TestDescribeAnimal(t *testing.T) {
	tests := []struct {
		name   string
		animal Animal
		want   string
	}{
		{"bird", Bird{}, BirdMessage},
		{"fish", Fish{Weight: 3}, FishMessage},
		{"mammal", Mammal{IsCow: false, Weight: 120.63}, MammalMessage},
		{"cow", Mammal{IsCow: true, Weight: 700}, MammalMessage},
		{"bird pointer", &Bird{}, BirdMessage},
		{"fish pointer", &Fish{Weight: 1}, FishMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeAnimal(tt.animal); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeAnimalExactlyOneMessage(t *testing.T) {
	counts := map[string]int{}
	for _, a := range []Animal{Bird{}, Fish{}, Mammal{}} {
		counts[DescribeAnimal(a)]++
	}
	for _, msg := range []string{BirdMessage, FishMessage, MammalMessage} {
		if counts[msg] != 1 {
			t.Errorf("message %q produced %d times, want 1", msg, counts[msg])
		}
	}
	if len(counts) != 3 {
		t.Errorf("unexpected messages: %v", counts)
	}
}

func TestDescribeAnimalNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil animal")
		}
	}()
	DescribeAnimal(nil)
}
