package value_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/tomsons/go-esrp/value"
)

var (
	wantHex = "034bf53e4f"
	wantBin = []byte{0x03, 0x4b, 0xf5, 0x3e, 0x4f}
	wantInt = big.NewInt(14159265359)
)

func TestFromInt_PublishedVector_MatchesAllViews(t *testing.T) {
	v, err := value.FromInt(wantInt)
	if err != nil {
		t.Fatalf("FromInt() error = %v, want nil", err)
	}
	if v.Hex() != wantHex {
		t.Errorf("Hex() = %q, want %q", v.Hex(), wantHex)
	}
	if !bytes.Equal(v.Bin(), wantBin) {
		t.Errorf("Bin() = %x, want %x", v.Bin(), wantBin)
	}
	if v.Int().Cmp(wantInt) != 0 {
		t.Errorf("Int() = %v, want %v", v.Int(), wantInt)
	}
}

func TestFromBytes_PublishedVector_MatchesAllViews(t *testing.T) {
	v := value.FromBytes(wantBin)
	if v.Hex() != wantHex {
		t.Errorf("Hex() = %q, want %q", v.Hex(), wantHex)
	}
	if v.Int().Cmp(wantInt) != 0 {
		t.Errorf("Int() = %v, want %v", v.Int(), wantInt)
	}
}

func TestFromHex_PublishedVector_MatchesAllViews(t *testing.T) {
	v, err := value.FromHex(wantHex)
	if err != nil {
		t.Fatalf("FromHex() error = %v, want nil", err)
	}
	if v.Int().Cmp(wantInt) != 0 {
		t.Errorf("Int() = %v, want %v", v.Int(), wantInt)
	}
	if !bytes.Equal(v.Bin(), wantBin) {
		t.Errorf("Bin() = %x, want %x", v.Bin(), wantBin)
	}
}

func TestFromHex_OddLength_IsLeftPadded(t *testing.T) {
	v, err := value.FromHex("7c0")
	if err != nil {
		t.Fatalf("FromHex() error = %v, want nil", err)
	}
	if v.Hex() != "07c0" {
		t.Errorf("Hex() = %q, want %q", v.Hex(), "07c0")
	}
}

func TestFromHex_Malformed_Errors(t *testing.T) {
	_, err := value.FromHex("not-hex")
	if !errors.Is(err, value.ErrMalformedValue) {
		t.Errorf("FromHex() error = %v, want ErrMalformedValue", err)
	}
}

func TestFromInt_Negative_Errors(t *testing.T) {
	_, err := value.FromInt(big.NewInt(-1))
	if !errors.Is(err, value.ErrNegativeValue) {
		t.Errorf("FromInt() error = %v, want ErrNegativeValue", err)
	}
}

func TestRoundTrip_IntThroughBinThroughHex(t *testing.T) {
	for _, n := range []int64{0, 1, 255, 256, 14159265359, 1 << 40} {
		orig, err := value.FromInt(big.NewInt(n))
		if err != nil {
			t.Fatalf("FromInt(%d) error = %v", n, err)
		}

		viaBin := value.FromBytes(orig.Bin())
		if viaBin.Int().Cmp(orig.Int()) != 0 {
			t.Errorf("FromBytes(orig.Bin()).Int() = %v, want %v", viaBin.Int(), orig.Int())
		}

		viaHex, err := value.FromHex(orig.Hex())
		if err != nil {
			t.Fatalf("FromHex(%q) error = %v", orig.Hex(), err)
		}
		if viaHex.Int().Cmp(orig.Int()) != 0 {
			t.Errorf("FromHex(orig.Hex()).Int() = %v, want %v", viaHex.Int(), orig.Int())
		}

		if len(orig.Hex())%2 != 0 {
			t.Errorf("Hex() length is odd: %q", orig.Hex())
		}
	}
}

func TestHex_IsLowercase(t *testing.T) {
	v, err := value.FromHex("ABCDEF")
	if err != nil {
		t.Fatalf("FromHex() error = %v", err)
	}
	if v.Hex() != "abcdef" {
		t.Errorf("Hex() = %q, want lowercase %q", v.Hex(), "abcdef")
	}
}

func TestMod_ReducesCorrectly(t *testing.T) {
	a, _ := value.FromInt(big.NewInt(17))
	n, _ := value.FromInt(big.NewInt(5))
	if got := a.Mod(n).Int().Int64(); got != 2 {
		t.Errorf("Mod() = %d, want 2", got)
	}
}

func TestIsZero(t *testing.T) {
	if !value.Zero.IsZero() {
		t.Error("Zero.IsZero() = false, want true")
	}
	one, _ := value.FromInt(big.NewInt(1))
	if one.IsZero() {
		t.Error("one.IsZero() = true, want false")
	}
}
