package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"shipment-service/internal/dto"
)

// Message событие из файла: тип, ключ сущности и исходное тело без изменений.
type Message struct {
	Type string
	Key  string
	Body json.RawMessage
}

type envelope struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	ReferenceID string `json:"referenceId"`
}

// Read разбирает JSON массив событий.
func Read(r io.Reader) ([]Message, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	messages := make([]Message, 0, len(raw))
	for i, body := range raw {
		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("decode message %d: %w", i, err)
		}

		key := env.ReferenceID
		if env.Type == dto.TypeOrganization {
			key = env.ID
		}

		messages = append(messages, Message{
			Type: env.Type,
			Key:  key,
			Body: body,
		})
	}
	return messages, nil
}
