// Package diet is the premium diet chat.
package diet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/keima/internal/models"
)

var (
	ErrPremiumRequired = errors.New("Módulo de Dieta Premium: assine para conversar com a Keima")
	ErrEmptyMessage    = errors.New("empty message")
)

// Suggestions are quick prompts offered under the chat.
var Suggestions = []string{
	"Quero trocar um alimento do almoço",
	"Estou com muita fome, posso comer mais?",
	"Não gostei de um prato, tem substituto?",
	"Como está meu progresso?",
}

// Responder produces the assistant's reply to a user message.
type Responder interface {
	Reply(ctx context.Context, history []models.ChatMessage, msg models.ChatMessage) (models.ChatMessage, error)
}

const DefaultReply = "Entendi sua solicitação! Como usuário premium, posso te ajudar com ajustes personalizados na sua dieta. Que tal me contar mais detalhes?"

// CannedResponder waits Delay and answers with Text.
type CannedResponder struct {
	Delay time.Duration
	Text  string
}

func NewCannedResponder() *CannedResponder {
	return &CannedResponder{Delay: time.Second, Text: DefaultReply}
}

func (c *CannedResponder) Reply(ctx context.Context, history []models.ChatMessage, msg models.ChatMessage) (models.ChatMessage, error) {
	timer := time.NewTimer(c.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return models.ChatMessage{}, ctx.Err()
	case <-timer.C:
	}
	return NewMessage(models.SenderKeima, c.Text), nil
}

func NewMessage(sender, text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Greeting opens every conversation.
func Greeting(firstName string) string {
	return fmt.Sprintf("Olá, %s! Bora tirar dúvidas ou ajustar sua dieta hoje? Lembre-se, meu foco atual é manter seu objetivo de perda de peso. 😊", firstName)
}

// Chat is one conversation. Non-premium users only see the greeting.
type Chat struct {
	premium   bool
	responder Responder

	mu       sync.Mutex
	messages []models.ChatMessage
}

func NewChat(firstName string, premium bool, responder Responder) *Chat {
	return &Chat{
		premium:   premium,
		responder: responder,
		messages:  []models.ChatMessage{NewMessage(models.SenderKeima, Greeting(firstName))},
	}
}

func (c *Chat) Premium() bool {
	return c.premium
}

// Send appends the user message, then the reply. The user message stays in
// the conversation even if the responder fails.
func (c *Chat) Send(ctx context.Context, text string) (models.ChatMessage, error) {
	if !c.premium {
		return models.ChatMessage{}, ErrPremiumRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	msg := NewMessage(models.SenderUser, text)
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	history := make([]models.ChatMessage, len(c.messages))
	copy(history, c.messages)
	c.mu.Unlock()

	reply, err := c.responder.Reply(ctx, history, msg)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("diet reply: %w", err)
	}

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.mu.Unlock()
	return reply, nil
}

func (c *Chat) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}
