// Package gameargs builds the game client's command-line arguments and
// encodes them into the obfuscated token the client accepts.
package gameargs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Skpow1234/oxilauncher/internal/auth"
)

// DefaultLobbyPort is the emulator's lobby port.
const DefaultLobbyPort = 54994

// LobbySlots is the number of lobby host/port pairs the client reads.
const LobbySlots = 8

// Argument keys understood by the client.
const (
	KeyDataPathType    = "DEV.DataPathType"
	KeyUseSqPack       = "DEV.UseSqPack"
	KeyMaxExpansion    = "DEV.MaxEntitledExpansionID"
	KeyTestSID         = "DEV.TestSID"
	KeyRegion          = "SYS.Region"
	KeyLanguage        = "language"
	KeyVersion         = "ver"
	KeyGMServerHost    = "DEV.GMServerHost"
	keyLobbyHostFormat = "DEV.LobbyHost%02d"
	keyLobbyPortFormat = "DEV.LobbyPort%02d"
)

// Arg is one key/value pair.
type Arg struct {
	Key   string
	Value string
}

// Set is an ordered argument list. Order is preserved in the rendered string.
type Set []Arg

// String renders the set as " /Key =Value" pairs with no separators.
func (s Set) String() string {
	var b strings.Builder
	for _, a := range s {
		b.WriteString(" /")
		b.WriteString(a.Key)
		b.WriteString(" =")
		b.WriteString(a.Value)
	}
	return b.String()
}

// Build assembles the argument set for a session. Every lobby slot gets the
// session's single lobby host and lobbyPort; the server only hands out one.
func Build(sess auth.Session, version string, lobbyPort int) Set {
	if lobbyPort == 0 {
		lobbyPort = DefaultLobbyPort
	}
	port := strconv.Itoa(lobbyPort)

	set := make(Set, 0, 8+2*LobbySlots)
	set = append(set,
		Arg{KeyDataPathType, "1"},
		Arg{KeyUseSqPack, "1"},
		Arg{KeyMaxExpansion, strconv.Itoa(int(sess.MaxExpansion))},
		Arg{KeyTestSID, sess.SessionID},
		Arg{KeyRegion, strconv.Itoa(int(sess.Region))},
		Arg{KeyLanguage, strconv.Itoa(int(sess.Language))},
		Arg{KeyVersion, version},
		Arg{KeyGMServerHost, sess.FrontierHost},
	)
	for i := 1; i <= LobbySlots; i++ {
		set = append(set,
			Arg{fmt.Sprintf(keyLobbyHostFormat, i), sess.LobbyHost},
			Arg{fmt.Sprintf(keyLobbyPortFormat, i), port},
		)
	}
	return set
}
