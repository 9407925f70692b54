// Package ai answers natural-language questions about the shop using OpenAI
// structured output. The agent only reads a snapshot of current state — it
// never mutates anything.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	"retail-manager/internal/core"
)

// ShopSnapshot is the state handed to the model: products, debts, and sales
// as they stand at request time.
type ShopSnapshot struct {
	Products []core.Product `json:"products"`
	Debts    []core.Debt    `json:"debts"`
	Sales    []core.Sale    `json:"sales"`
}

// assistantReply is the structured output contract for the model.
type assistantReply struct {
	Answer string `json:"answer" jsonschema_description:"Plain-text answer to the shop owner's question"`
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// Ask answers a question about the snapshot. The model is instructed to use
// only the provided data and to say so when the data cannot answer.
func (a *Agent) Ask(ctx context.Context, question string, snapshot *ShopSnapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	prompt := fmt.Sprintf(`You are an assistant for a small retail shop owner.
Answer the owner's question using ONLY the shop data below.
Rules:
1. Base every figure on the data; never invent numbers.
2. If the data cannot answer the question, say so.
3. Keep the answer short and practical.

Shop data (JSON):
%s

Question: %s`, data, question)

	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return "", fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "shop_assistant_reply",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("Answer to a question about the shop's inventory, sales, and debts"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}

	var reply assistantReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return "", fmt.Errorf("failed to parse completion: %w", err)
	}
	return reply.Answer, nil
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v assistantReply
	return reflector.Reflect(v)
}
