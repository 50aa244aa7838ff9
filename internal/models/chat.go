package models

import "time"

const (
	SenderKeima = "keima"
	SenderUser  = "user"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
