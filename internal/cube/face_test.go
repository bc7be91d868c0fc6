package cube

import "testing"

func TestFaceBaseIndex(t *testing.T) {
	tests := []struct {
		face Face
		want int
	}{
		{Up, 0},
		{Down, 4},
		{Left, 8},
		{Right, 12},
		{Front, 16},
		{Back, 20},
	}

	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			if got := tt.face.baseIndex(); got != tt.want {
				t.Errorf("%v.baseIndex() = %d, want %d", tt.face, got, tt.want)
			}
		})
	}
}
