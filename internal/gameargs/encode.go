package gameargs

import (
	"strconv"

	"github.com/Skpow1234/oxilauncher/internal/clock"
	"github.com/Skpow1234/oxilauncher/internal/crypto"
	"github.com/Skpow1234/oxilauncher/internal/util"
	"github.com/rs/zerolog"
)

// Token framing.
const (
	TokenPrefix = "//**sqex0003"
	TokenSuffix = "**//"
)

// Encode encrypts plain (a rendered Set) keyed by ticks and frames it.
// The same ticks and plain always produce the same token.
func Encode(plain string, ticks uint32) (string, error) {
	return encode(plain, ticks, zerolog.Nop())
}

func encode(plain string, ticks uint32, log zerolog.Logger) (string, error) {
	key := crypto.DeriveTickKey(ticks)
	material := crypto.TickKeyMaterial(key)

	msg := " /T =" + strconv.FormatUint(uint64(ticks), 10) + plain
	ct, err := crypto.EncryptBlowfishECB(material, []byte(msg))
	if err != nil {
		return "", err
	}

	body := util.B64URLEncode(ct)
	sum := crypto.Checksum(key)
	log.Debug().
		Uint32("ticks", ticks).
		Str("key", string(material)).
		Int("ciphertext_len", len(ct)).
		Str("checksum", string(sum)).
		Msg("encoded game arguments")

	return TokenPrefix + body + string(sum) + TokenSuffix, nil
}

// Encoder encodes argument strings using ticks from a clock source.
type Encoder struct {
	Clock  clock.Source
	Logger zerolog.Logger
}

// NewEncoder returns an encoder reading host uptime.
func NewEncoder(logger zerolog.Logger) *Encoder {
	return &Encoder{Clock: clock.Uptime{}, Logger: logger}
}

// Encode reads the clock once and encodes plain.
func (e *Encoder) Encode(plain string) (string, error) {
	return encode(plain, e.Clock.Ticks(), e.Logger)
}
