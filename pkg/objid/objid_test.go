package objid

import "testing"

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"OI_DEFAULT", int32(OI_DEFAULT), 10},
		{"CI_CHEST01", int32(CI_CHEST01), 25},
		{"CI_CRAFTMATS01", int32(CI_CRAFTMATS01), 3231},
		{"XI_HIT_CRITICAL01", int32(XI_HIT_CRITICAL01), 11},
		{"MI_MALE", int32(MI_MALE), 11},
		{"MI_FEMALE", int32(MI_FEMALE), 12},
		{"MI_PET_098_1", int32(MI_PET_098_1), 3431},
		{"RI_TRIGGER", int32(RI_TRIGGER), 10},
		{"RI_PLACE", int32(RI_PLACE), 15},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
