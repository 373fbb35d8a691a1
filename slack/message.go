package slack

import (
	"fmt"
	"math/rand"
)

// Response visibility in the channel.
const (
	TypeEphemeral = "ephemeral"
	TypeInChannel = "in_channel"
)

var emojis = []string{
	":flushed:", ":smile:", ":musical_note:", ":musical_keyboard:",
	":musical_score:", ":bangbang:", ":rocket:", ":candy:",
	":headphones:", ":violin:", ":microphone:", ":bomb:", ":tada:",
	":video_camera:", ":speaker:", ":radio:",
}

// Message is a block-kit chat message.
type Message struct {
	ResponseType string  `json:"response_type"`
	Blocks       []Block `json:"blocks"`
}

// Block is a single block-kit section.
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Text is a block-kit text object.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewMessage builds a header+body message. An empty header yields a
// body-only message.
func NewMessage(header, body, msgType string) Message {
	msg := Message{
		ResponseType: msgType,
		Blocks: []Block{
			{Type: "section", Text: &Text{Type: "mrkdwn", Text: body}},
		},
	}
	if header != "" {
		msg.Blocks = append([]Block{
			{Type: "section", Text: &Text{Type: "mrkdwn", Text: header}},
		}, msg.Blocks...)
	}
	return msg
}

// UserMessage decorates the header with the requesting user's mention
// and a random emoji, matching the bot's house style.
func UserMessage(user, header, body, msgType string) Message {
	decorated := fmt.Sprintf("<@%s> *%s* %s", user, header, emojis[rand.Intn(len(emojis))])
	return NewMessage(decorated, body, msgType)
}
