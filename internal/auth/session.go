// Package auth talks to the emulator's lobby API to obtain a game session.
package auth

// Defaults applied to every session; the API does not return these.
const (
	DefaultRegion       int32 = 3
	DefaultMaxExpansion int32 = 1
	DefaultLanguage     int32 = 1
)

// Session is the normalized result of a successful login or registration.
type Session struct {
	SessionID    string
	LobbyHost    string
	FrontierHost string
	Region       int32
	MaxExpansion int32
	Language     int32
}

// Credentials identify the account and the API path to post them to.
type Credentials struct {
	Username string
	Password string
	Endpoint string
}

// loginResponse is the wire shape of a successful login/register reply.
type loginResponse struct {
	SID          string `json:"sId"`
	LobbyHost    string `json:"lobbyHost"`
	FrontierHost string `json:"frontierHost"`
}

// loginRequest is the wire shape of the credentials body.
type loginRequest struct {
	Username string `json:"username"`
	Pass     string `json:"pass"`
}

func newSession(r loginResponse) Session {
	return Session{
		SessionID:    r.SID,
		LobbyHost:    r.LobbyHost,
		FrontierHost: r.FrontierHost,
		Region:       DefaultRegion,
		MaxExpansion: DefaultMaxExpansion,
		Language:     DefaultLanguage,
	}
}
