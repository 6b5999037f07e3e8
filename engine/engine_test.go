package engine_test

import (
	"math/big"
	"testing"

	"github.com/tomsons/go-esrp/engine"
	"github.com/tomsons/go-esrp/esrpcrypto"
	"github.com/tomsons/go-esrp/group"
	"github.com/tomsons/go-esrp/value"
)

func mustOpenSSL(t *testing.T, opts esrpcrypto.Options) *esrpcrypto.OpenSSL {
	t.Helper()
	c, err := esrpcrypto.NewOpenSSL(opts)
	if err != nil {
		t.Fatalf("NewOpenSSL() error = %v", err)
	}
	return c
}

func TestK_IsDeterministic_AcrossEngineInstances(t *testing.T) {
	crypto := mustOpenSSL(t, esrpcrypto.Options{"hash": "sha256"})
	grp := group.Default()

	e1 := engine.New(crypto, grp)
	e2 := engine.New(crypto, grp)

	if e1.K().Hex() != e2.K().Hex() {
		t.Errorf("k differs across instances: %s != %s", e1.K().Hex(), e2.K().Hex())
	}
}

func TestCalcX_PublishedVector(t *testing.T) {
	crypto := mustOpenSSL(t, esrpcrypto.Options{"hash": "sha256"})
	std := engine.NewStandard(crypto, group.Default())

	salt, err := value.FromInt(big.NewInt(1117))
	if err != nil {
		t.Fatalf("value.FromInt() error = %v", err)
	}

	x, err := std.CalcX("verysecure", salt, "")
	if err != nil {
		t.Fatalf("CalcX() error = %v", err)
	}
	want := "9e4cae19d40bc58571ae7237cb13563f5598da5d596389cb55e8311be2d90cbe"
	if x.Hex() != want {
		t.Errorf("CalcX() = %s, want %s", x.Hex(), want)
	}
}

func TestCalcB_IsAlwaysReducedModN(t *testing.T) {
	crypto := mustOpenSSL(t, esrpcrypto.Options{"hash": "sha256"})
	grp := group.Default()
	e := engine.New(crypto, grp)

	// Pick v = N-1 and b large enough that k*v + g^b would exceed N
	// un-reduced; CalcB must still return something strictly less than N.
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(grp.N.Int(), one)
	v, err := value.FromInt(nMinus1)
	if err != nil {
		t.Fatalf("value.FromInt() error = %v", err)
	}
	b, err := value.FromInt(big.NewInt(12345))
	if err != nil {
		t.Fatalf("value.FromInt() error = %v", err)
	}

	B := e.CalcB(b, v)
	if B.Int().Cmp(grp.N.Int()) >= 0 {
		t.Errorf("CalcB() = %s is not < N", B.Hex())
	}
	if B.Int().Sign() < 0 {
		t.Errorf("CalcB() = %s is negative", B.Hex())
	}
}

