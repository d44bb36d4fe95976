package insightsservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.5-flash"

// Client клиент генерации инсайтов удержания клиентов через Gemini API
type Client struct {
	client  *genai.Client
	modelID string
	log     Logger
}

// NewClient создает новый экземпляр клиента инсайтов
// При пустом apiKey возвращает nil-клиент: инсайты отключены,
// сервис продолжает работать без них
func NewClient(ctx context.Context, apiKey, modelID string, log Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("insightsservice: API key not set, insights disabled")
		return nil, nil
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInsightsUnavailable, err)
	}

	return &Client{
		client:  client,
		modelID: modelID,
		log:     log,
	}, nil
}

// GenerateInsights анализирует записи и возвращает стратегии снижения неявок
// вместе с готовыми текстами сообщений. Один запрос без повторных попыток
func (c *Client) GenerateInsights(ctx context.Context, appointments []AppointmentData, professionalName, lang string) (*Insights, error) {
	if c == nil {
		return nil, ErrDisabled
	}

	c.log.Info("GenerateInsights: appointments=%d, lang=%s", len(appointments), lang)

	data, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal appointments: %v", ErrInsightsUnavailable, err)
	}

	model := c.client.GenerativeModel(c.modelID)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	prompt := buildPrompt(professionalName, lang, string(data))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.log.Error("GenerateInsights: generation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInsightsUnavailable, err)
	}

	text, err := extractText(resp)
	if err != nil {
		c.log.Error("GenerateInsights: %v", err)
		return nil, err
	}

	var insights Insights
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		c.log.Error("GenerateInsights: failed to decode response: %v", err)
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &insights, nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func buildPrompt(professionalName, lang, appointmentsJSON string) string {
	language := "Portuguese (Brazil)"
	switch lang {
	case "en":
		language = "English (US)"
	case "es":
		language = "Spanish (ES)"
	}

	return fmt.Sprintf(`You are a customer retention specialist for independent professionals.
Analyze the appointments of %s and create strategies to reduce no-shows.

IMPORTANT: Respond strictly in the following language: %s.
FOCUS: Short WhatsApp messages optimized for "Interactive Buttons" of the Business API.

Data: %s

Return JSON:
1. insights: 3 critical observations about client behavior.
2. optimization: A suggestion for changes in schedule or intervals.
3. messages:
   - reminder24h: Short text (max 140 chars) for the "Confirm Presence" button.
   - confirmation: Text for immediate confirmation after booking.
   - reschedule: Empathetic text for when the client clicks "Reschedule".`,
		professionalName, language, appointmentsJSON)
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"insights": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"optimization": {Type: genai.TypeString},
			"messages": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"reminder24h":  {Type: genai.TypeString},
					"confirmation": {Type: genai.TypeString},
					"reschedule":   {Type: genai.TypeString},
				},
			},
		},
	}
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
