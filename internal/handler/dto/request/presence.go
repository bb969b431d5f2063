package request

type PresencePingRequest struct {
	SessionID string `json:"sessionId"`
}

type PresenceDisconnectRequest struct {
	SessionID string `json:"sessionId"`
}
