package crypto

import (
	"encoding/binary"
	"fmt"

	"github.com/Skpow1234/oxilauncher/internal/util"
	"golang.org/x/crypto/blowfish"
)

// BlowfishBlockSize is the cipher block size in bytes.
const BlowfishBlockSize = blowfish.BlockSize

// DeriveTickKey keeps the top 16 bits of the tick count.
func DeriveTickKey(ticks uint32) uint32 {
	return ticks & 0xFFFF0000
}

// TickKeyMaterial renders key as eight lowercase hex digits. The ASCII bytes,
// not the numeric value, are what the cipher is keyed with.
func TickKeyMaterial(key uint32) []byte {
	return []byte(fmt.Sprintf("%08x", key))
}

// EncryptBlowfishECB zero-pads plaintext to the block size and encrypts each
// block on its own. Both 32-bit halves of a block are little-endian, which is
// how the game client's Blowfish reads them; x/crypto/blowfish is big-endian,
// so every half is byte-swapped on the way in and out.
func EncryptBlowfishECB(key, plaintext []byte) ([]byte, error) {
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: blowfish key: %w", util.ErrEncryption, err)
	}

	out := padBlocks(plaintext)
	for off := 0; off < len(out); off += BlowfishBlockSize {
		block := out[off : off+BlowfishBlockSize]
		swapHalves(block)
		c.Encrypt(block, block)
		swapHalves(block)
	}
	return out, nil
}

func padBlocks(b []byte) []byte {
	n := len(b)
	if rem := n % BlowfishBlockSize; rem != 0 {
		n += BlowfishBlockSize - rem
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// swapHalves reverses the byte order of both 32-bit words in an 8-byte block.
func swapHalves(block []byte) {
	l := binary.LittleEndian.Uint32(block[0:4])
	r := binary.LittleEndian.Uint32(block[4:8])
	binary.BigEndian.PutUint32(block[0:4], l)
	binary.BigEndian.PutUint32(block[4:8], r)
}
