package cube

import "testing"

func TestStickerRotateCW(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"0 to 1", 0, 1},
		{"1 to 2", 1, 2},
		{"2 to 3", 2, 3},
		{"3 wraps to 0", 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sticker{Color: Red, Orientation: tt.in}.RotateCW()
			if s.Orientation != tt.want {
				t.Errorf("RotateCW() orientation = %d, want %d", s.Orientation, tt.want)
			}
			if s.Color != Red {
				t.Errorf("RotateCW() changed color to %v", s.Color)
			}
		})
	}
}

func TestStickerRotateCWRoundTrip(t *testing.T) {
	s := Sticker{Color: Blue, Orientation: 2}
	got := s.RotateCW().RotateCCW()
	if got != s {
		t.Errorf("RotateCW().RotateCCW() = %+v, want %+v", got, s)
	}
}

func TestStickerRotateByNegative(t *testing.T) {
	s := Sticker{Orientation: 1}.rotateBy(-1)
	if s.Orientation != 0 {
		t.Errorf("rotateBy(-1) from 1 = %d, want 0", s.Orientation)
	}

	s = Sticker{Orientation: 0}.rotateBy(-1)
	if s.Orientation != 3 {
		t.Errorf("rotateBy(-1) from 0 = %d, want 3", s.Orientation)
	}
}

func TestStickerRotateByFourIsIdentity(t *testing.T) {
	s := Sticker{Color: Green, Orientation: 2}
	if got := s.rotateBy(4); got != s {
		t.Errorf("rotateBy(4) = %+v, want identity %+v", got, s)
	}
	if got := s.rotateBy(-4); got != s {
		t.Errorf("rotateBy(-4) = %+v, want identity %+v", got, s)
	}
}
