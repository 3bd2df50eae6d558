package llmclient

import (
	"bytes"
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/app-rank-navi-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message é uma mensagem com papel (system/user/assistant) para o backend de
// geração de texto.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

type LLMClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &LLMClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete envia as mensagens e retorna o texto gerado.
func (c *LLMClient) Complete(ctx context.Context, messages []Message) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:    c.config.LLM.Model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar a requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.LLM.URL, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.LLM.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("backend de geração respondeu %s", resp.Status)
	}

	var response completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if len(response.Choices) == 0 {
		return "", errors.New("resposta sem conteúdo gerado")
	}

	return response.Choices[0].Message.Content, nil
}
