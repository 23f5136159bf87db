package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"golang.org/x/crypto/blowfish"
)

func TestDeriveTickKey(t *testing.T) {
	tests := []struct {
		ticks uint32
		want  uint32
	}{
		{0, 0},
		{0x0000FFFF, 0},
		{0x00010000, 0x00010000},
		{0x12345678, 0x12340000},
		{0xFFFFFFFF, 0xFFFF0000},
	}
	for _, tt := range tests {
		if got := DeriveTickKey(tt.ticks); got != tt.want {
			t.Errorf("DeriveTickKey(%#x) = %#x, want %#x", tt.ticks, got, tt.want)
		}
	}
}

func TestTickKeyMaterial(t *testing.T) {
	tests := []struct {
		key  uint32
		want string
	}{
		{0, "00000000"},
		{0x00AB0000, "00ab0000"},
		{0xFFFF0000, "ffff0000"},
	}
	for _, tt := range tests {
		if got := string(TickKeyMaterial(tt.key)); got != tt.want {
			t.Errorf("TickKeyMaterial(%#x) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// Standard Blowfish vectors with each 32-bit half read little-endian: the
// plaintext and ciphertext halves are the byte-reversed reference values.
func TestEncryptBlowfishECB_KnownAnswer(t *testing.T) {
	tests := []struct {
		name  string
		key   string // hex
		plain string // hex
		want  string // hex
	}{
		// reference: 0000000000000000 -> 4ef997456198dd78
		{"zero", "0000000000000000", "0000000000000000", "4597f94e78dd9861"},
		// reference: key 3000000000000000, 1000000000000001 -> 7d856f9a613063f2
		{"asymmetric", "3000000000000000", "0000001001000000", "9a6f857df2633061"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _ := hex.DecodeString(tt.key)
			plain, _ := hex.DecodeString(tt.plain)
			got, err := EncryptBlowfishECB(key, plain)
			if err != nil {
				t.Fatal(err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("got %x, want %s", got, tt.want)
			}
		})
	}
}

func TestEncryptBlowfishECB_TickKey(t *testing.T) {
	got, err := EncryptBlowfishECB(TickKeyMaterial(DeriveTickKey(123456789)), []byte("12345678"))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(got) != "988e8750cabf13fc" {
		t.Errorf("got %x, want 988e8750cabf13fc", got)
	}
}

func TestEncryptBlowfishECB_Padding(t *testing.T) {
	key := TickKeyMaterial(0x12340000)
	tests := []struct {
		in   int
		want int
	}{
		{1, 8},
		{8, 8},
		{9, 16},
		{23, 24},
	}
	for _, tt := range tests {
		out, err := EncryptBlowfishECB(key, bytes.Repeat([]byte{'a'}, tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != tt.want {
			t.Errorf("len(%d bytes encrypted) = %d, want %d", tt.in, len(out), tt.want)
		}
	}
}

func TestEncryptBlowfishECB_BlocksIndependent(t *testing.T) {
	key := TickKeyMaterial(0xABCD0000)
	plain := []byte("samebloksamebloksameblok")
	out, err := EncryptBlowfishECB(key, plain)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out[0:8], out[8:16]) || !bytes.Equal(out[8:16], out[16:24]) {
		t.Errorf("identical plaintext blocks encrypted differently: %x", out)
	}
}

func TestBlowfishECB_RoundTrip(t *testing.T) {
	key := TickKeyMaterial(DeriveTickKey(987654321))
	plain := []byte(" /T =987654321 /DEV.TestSID =abc /SYS.Region =3")

	ct, err := EncryptBlowfishECB(key, plain)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ct[:len(plain)], plain) {
		t.Fatal("ciphertext equals plaintext")
	}

	pt, err := decryptBlowfishECB(key, ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bytes.TrimRight(pt, "\x00"), plain) {
		t.Errorf("got %q, want %q", pt, plain)
	}
}

func TestEncryptBlowfishECB_BadKey(t *testing.T) {
	_, err := EncryptBlowfishECB(nil, []byte("data"))
	if !errors.Is(err, util.ErrEncryption) {
		t.Fatalf("expected ErrEncryption, got %v", err)
	}
}

func TestDecryptBlowfishECB_BadLength(t *testing.T) {
	_, err := decryptBlowfishECB(TickKeyMaterial(0), make([]byte, 7))
	if !errors.Is(err, util.ErrEncryption) {
		t.Fatalf("expected ErrEncryption, got %v", err)
	}
}

// decryptBlowfishECB reverses EncryptBlowfishECB. Padding is left in place.
func decryptBlowfishECB(key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlowfishBlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of %d",
			util.ErrEncryption, len(ciphertext), BlowfishBlockSize)
	}
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: blowfish key: %w", util.ErrEncryption, err)
	}

	out := make([]byte, len(ciphertext))
	copy(out, ciphertext)
	for off := 0; off < len(out); off += BlowfishBlockSize {
		block := out[off : off+BlowfishBlockSize]
		swapHalves(block)
		c.Decrypt(block, block)
		swapHalves(block)
	}
	return out, nil
}
