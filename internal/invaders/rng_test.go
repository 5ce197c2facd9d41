package invaders

import "testing"

func TestXorShift32DefaultSequence(t *testing.T) {
	rng := NewXorShift32(DefaultSeed)
	expected := []uint32{
		0xf89b3e70,
		0x75fb4a9a,
		0x89a89d0e,
		0xdb2b114a,
		0x9943b4ab,
		0x1502cb40,
	}

	for i, want := range expected {
		if got := rng.Next(); got != want {
			t.Errorf("Next() #%d = %#x, expected %#x", i, got, want)
		}
	}
}

func TestXorShift32SeedOne(t *testing.T) {
	rng := NewXorShift32(1)
	expected := []uint32{270369, 67634689, 2647435461}

	for i, want := range expected {
		if got := rng.Next(); got != want {
			t.Errorf("Next() #%d = %d, expected %d", i, got, want)
		}
	}
}

func TestXorShift32ZeroSeed(t *testing.T) {
	zero := NewXorShift32(0)
	def := NewXorShift32(DefaultSeed)

	if zero.State() != DefaultSeed {
		t.Errorf("State() = %#x, expected %#x", zero.State(), DefaultSeed)
	}
	for i := 0; i < 10; i++ {
		if a, b := zero.Next(), def.Next(); a != b {
			t.Fatalf("draw %d: zero seed = %d, default seed = %d", i, a, b)
		}
	}
}

func TestXorShift32Range(t *testing.T) {
	rng := NewXorShift32(DefaultSeed)

	// 0xf89b3e70 % 701 == 270, 0x75fb4a9a % 701 == 422
	if got := rng.Range(0, 700); got != 270 {
		t.Errorf("Range(0, 700) = %d, expected 270", got)
	}
	if got := rng.Range(0, 700); got != 422 {
		t.Errorf("Range(0, 700) = %d, expected 422", got)
	}

	for i := 0; i < 1000; i++ {
		v := rng.Range(-3, 5)
		if v < -3 || v > 5 {
			t.Fatalf("Range(-3, 5) = %d, out of bounds", v)
		}
	}
}

func TestXorShift32RangeSinglePoint(t *testing.T) {
	rng := NewXorShift32(DefaultSeed)
	before := rng.State()

	if got := rng.Range(7, 7); got != 7 {
		t.Errorf("Range(7, 7) = %d, expected 7", got)
	}
	if rng.State() == before {
		t.Error("Range(7, 7) should still consume one draw")
	}

	before = rng.State()
	if got := rng.Range(4, 2); got != 4 {
		t.Errorf("Range(4, 2) = %d, expected 4", got)
	}
	if rng.State() != before {
		t.Error("Range on an empty interval should not advance the state")
	}
}
