package memberservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/GYM-ReservationService/internal/domain"
)

// Client клиент для работы со справочником участников
// Справочник (участники, их расписания и исключения) принадлежит внешнему
// сервису; здесь он используется только для чтения.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника участников
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListActiveWithSchedules получает активных участников вместе с их
// еженедельными расписаниями и исключениями
func (c *Client) ListActiveWithSchedules(ctx context.Context) ([]domain.Member, error) {
	url := fmt.Sprintf("%s/internal/members?status=ACTIVE&include=schedules", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload []Member
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	members := make([]domain.Member, 0, len(payload))
	for _, m := range payload {
		member, err := m.ToDomain()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	c.log.Info("Fetched %d active members with schedules", len(members))
	return members, nil
}
