package entity

// ChatMessage is one line of room chat, attributed to the sender's mark.
// Messages live only in the transcript of connected clients, never on disk.
type ChatMessage struct {
	Player string `json:"player"`
	Text   string `json:"text"`
}
