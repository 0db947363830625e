// Package coach реализует клиент внешнего API генерации текста,
// который подбирает короткую тренировочную подсказку по выполненному упражнению.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/weespies87/gymapp/internal/config"
)

type Client struct {
	apiURL     string
	token      string
	model      string
	httpClient *http.Client
}

// New создаёт новый клиент API подсказок.
func New(cfg config.CoachAPI) *Client {
	timeout := cfg.CoachTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     cfg.CoachURL,
		token:      cfg.CoachToken,
		model:      cfg.CoachModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Suggest запрашивает короткую подсказку и мотивацию по только что
// выполненному упражнению. Текст используется в toast-попапе клиента.
func (c *Client) Suggest(ctx context.Context, activity string, sets, reps, weight int) (string, error) {
	prompt := fmt.Sprintf(
		"As a gym guru look at the workout I just did, and give me a good next exercise "+
			"with some suggestions and motivational speech. Activity: %s, Sets: %d, Reps: %d, Weight: %d. "+
			"The response should be short, less than a few lines, as it will be used in a toast pop up.",
		activity, sets, reps, weight)

	body := generateRequest{
		Model:  c.model,
		Prompt: prompt,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status: " + resp.Status)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", err
	}
	return genResp.Response, nil
}
