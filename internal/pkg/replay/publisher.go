package replay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shipment-service/internal/dto"
	"shipment-service/pkg/retrier"
)

var (
	// ErrRejected сервис ответил 4xx, повтор не поможет.
	ErrRejected = errors.New("message rejected")
	ErrServer   = errors.New("server error")
)

// HTTPRetryConfig ретраи сетевых ошибок и 5xx, 4xx сразу возвращается.
func HTTPRetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsedTime:  10 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry: func(err error) bool {
			return !errors.Is(err, ErrRejected)
		},
	}
}

type HTTPPublisher struct {
	client  *http.Client
	addr    string
	retrier retrier.Retrier
}

func NewHTTPPublisher(client *http.Client, addr string, retrier retrier.Retrier) *HTTPPublisher {
	return &HTTPPublisher{
		client:  client,
		addr:    strings.TrimRight(addr, "/"),
		retrier: retrier,
	}
}

// Publish организации уходят на /organization, все остальное на /shipment.
func (p *HTTPPublisher) Publish(ctx context.Context, msg Message) error {
	endpoint := "/shipment"
	if msg.Type == dto.TypeOrganization {
		endpoint = "/organization"
	}

	return p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return p.post(ctx, p.addr+endpoint, msg.Body)
	})
}

func (p *HTTPPublisher) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %d %s", ErrServer, resp.StatusCode, respBody)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: %d %s", ErrRejected, resp.StatusCode, respBody)
	}
	return nil
}

type KafkaPublisher struct {
	sender Sender
}

func NewKafkaPublisher(sender Sender) *KafkaPublisher {
	return &KafkaPublisher{sender: sender}
}

// Publish ключ сообщения id организации или referenceId отправки.
func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	return p.sender.Send(ctx, msg.Key, msg.Body)
}
