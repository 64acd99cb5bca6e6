package dmtxgo

import (
	"errors"
	"testing"
)

func newTestImage(t *testing.T, width, height int) *Image {
	t.Helper()
	img, err := New(make([]byte, width*height), width, height, Pack8bppK)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return img
}

func TestPropRoundTrip(t *testing.T) {
	tests := []struct {
		prop  Prop
		value int
	}{
		{PropXmin, 2},
		{PropXmax, 7},
		{PropWidth, 12},
		{PropHeight, 15},
		{PropRowPadBytes, 3},
		{PropScale, 2},
	}
	for _, tt := range tests {
		t.Run(tt.prop.String(), func(t *testing.T) {
			img := newTestImage(t, 10, 10)
			if err := img.SetProp(tt.prop, tt.value); err != nil {
				t.Fatalf("SetProp: %v", err)
			}
			if got, ok := img.Prop(tt.prop); !ok || got != tt.value {
				t.Errorf("Prop = %d (%v), want %d", got, ok, tt.value)
			}
		})
	}
}

func TestPropYInversion(t *testing.T) {
	img := newTestImage(t, 10, 10)

	if err := img.SetProp(PropYmin, 2); err != nil {
		t.Fatal(err)
	}
	if got, _ := img.Prop(PropYmax); got != 7 {
		t.Errorf("Ymax after setting Ymin=2 is %d, want 7", got)
	}
	if got, _ := img.Prop(PropYmin); got != 0 {
		t.Errorf("Ymin changed to %d", got)
	}

	if err := img.SetProp(PropYmax, 6); err != nil {
		t.Fatal(err)
	}
	if got, _ := img.Prop(PropYmin); got != 3 {
		t.Errorf("Ymin after setting Ymax=6 is %d, want 3", got)
	}
	if got, _ := img.Prop(PropScaledYmin); got != 3 {
		t.Errorf("scaled Ymin = %d, want 3", got)
	}
	if got, _ := img.Prop(PropScaledYmax); got != 7 {
		t.Errorf("scaled Ymax = %d, want 7", got)
	}
}

func TestPropScaledFieldsFloor(t *testing.T) {
	img := newTestImage(t, 17, 11)
	if err := img.SetProp(PropXmin, 4); err != nil {
		t.Fatal(err)
	}
	if err := img.SetProp(PropXmax, 14); err != nil {
		t.Fatal(err)
	}
	if err := img.SetProp(PropYmin, 1); err != nil { // yMax = 9
		t.Fatal(err)
	}
	if err := img.SetProp(PropYmax, 8); err != nil { // yMin = 2
		t.Fatal(err)
	}

	for scale := 1; scale <= 5; scale++ {
		if err := img.SetProp(PropScale, scale); err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		pairs := []struct {
			scaled, unscaled Prop
		}{
			{PropScaledWidth, PropWidth},
			{PropScaledHeight, PropHeight},
			{PropScaledXmin, PropXmin},
			{PropScaledXmax, PropXmax},
			{PropScaledYmin, PropYmin},
			{PropScaledYmax, PropYmax},
		}
		for _, p := range pairs {
			s, _ := img.Prop(p.scaled)
			u, _ := img.Prop(p.unscaled)
			if s != u/scale {
				t.Errorf("scale %d: %s = %d, want %d", scale, p.scaled, s, u/scale)
			}
		}
		area, _ := img.Prop(PropScaledArea)
		if want := (17 / scale) * (11 / scale); area != want {
			t.Errorf("scale %d: scaled area = %d, want %d", scale, area, want)
		}
	}

	// Bounds set after the scale are floored by the current scale.
	if err := img.SetProp(PropXmax, 13); err != nil {
		t.Fatal(err)
	}
	if got, _ := img.Prop(PropScaledXmax); got != 13/5 {
		t.Errorf("scaled Xmax = %d, want %d", got, 13/5)
	}
}

func TestPropReadOnlyValues(t *testing.T) {
	img, err := New(make([]byte, 4*6*5), 6, 5, Pack32bppXRGB)
	if err != nil {
		t.Fatal(err)
	}
	want := map[Prop]int{
		PropArea:          30,
		PropBitsPerPixel:  32,
		PropBytesPerPixel: 4,
		PropImageFlip:     int(FlipNone),
		PropScaledArea:    30,
	}
	for p, v := range want {
		if got, ok := img.Prop(p); !ok || got != v {
			t.Errorf("%s = %d (%v), want %d", p, got, ok, v)
		}
	}
	if err := img.SetProp(PropArea, 1); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("SetProp(AREA) err = %v, want ErrUnknownProperty", err)
	}
	if _, ok := img.Prop(Prop(100)); ok {
		t.Error("unknown property should be undefined")
	}
}

func TestSetPropInvalidWindowIsNotRolledBack(t *testing.T) {
	img := newTestImage(t, 10, 10)

	err := img.SetProp(PropXmin, 9)
	if !errors.Is(err, ErrInvalidCropWindow) {
		t.Fatalf("err = %v, want ErrInvalidCropWindow", err)
	}
	if got, _ := img.Prop(PropXmin); got != 9 {
		t.Errorf("Xmin = %d, want rejected value 9 left in place", got)
	}

	err = img.SetProp(PropXmin, 0)
	if err != nil {
		t.Fatalf("restoring Xmin: %v", err)
	}

	if err := img.SetProp(PropXmax, 10); !errors.Is(err, ErrInvalidCropWindow) {
		t.Errorf("Xmax=width err = %v, want ErrInvalidCropWindow", err)
	}
	if err := img.SetProp(PropXmax, 9); err != nil {
		t.Fatal(err)
	}
	if err := img.SetProp(PropYmin, 10); !errors.Is(err, ErrInvalidCropWindow) {
		t.Errorf("Ymin=height err = %v, want ErrInvalidCropWindow", err)
	}
	if err := img.SetProp(PropYmin, 0); err != nil {
		t.Fatal(err)
	}
	if err := img.SetProp(PropWidth, 5); !errors.Is(err, ErrInvalidCropWindow) {
		t.Errorf("shrinking width under the crop window err = %v, want ErrInvalidCropWindow", err)
	}
	if got, _ := img.Prop(PropWidth); got != 5 {
		t.Errorf("width = %d, want 5", got)
	}
}

func TestSetPropRejectsFlipX(t *testing.T) {
	img := newTestImage(t, 4, 4)
	if err := img.SetProp(PropImageFlip, int(FlipX)); !errors.Is(err, ErrFlipXUnsupported) {
		t.Errorf("err = %v, want ErrFlipXUnsupported", err)
	}
	if err := img.SetProp(PropImageFlip, int(FlipX|FlipY)); !errors.Is(err, ErrFlipXUnsupported) {
		t.Errorf("err = %v, want ErrFlipXUnsupported", err)
	}
	if img.Flip() != FlipNone {
		t.Errorf("flip = %s, want NONE", img.Flip())
	}
	if err := img.SetProp(PropImageFlip, 8); !errors.Is(err, ErrInvalidFlip) {
		t.Errorf("err = %v, want ErrInvalidFlip", err)
	}
	if err := img.SetProp(PropImageFlip, int(FlipY)); err != nil {
		t.Fatal(err)
	}
	if got, _ := img.Prop(PropImageFlip); Flip(got) != FlipY {
		t.Errorf("flip = %s, want Y", Flip(got))
	}
}

func TestSetPropRejectsBadScale(t *testing.T) {
	img := newTestImage(t, 4, 4)
	for _, s := range []int{0, -2} {
		if err := img.SetProp(PropScale, s); !errors.Is(err, ErrInvalidScale) {
			t.Errorf("scale %d err = %v, want ErrInvalidScale", s, err)
		}
	}
	if img.Scale() != 1 {
		t.Errorf("scale = %d, want 1", img.Scale())
	}
}

func TestPropString(t *testing.T) {
	if PropScaledYmax.String() != "SCALED_YMAX" {
		t.Errorf("String() = %q", PropScaledYmax.String())
	}
	if Prop(-1).String() != "Prop(-1)" {
		t.Errorf("String() = %q", Prop(-1).String())
	}
}
