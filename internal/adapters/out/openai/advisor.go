// Package openai implements the advisory functions on the OpenAI Responses
// API with strict JSON schema output.
//
// Every call degrades to a neutral answer when the model fails or answers
// with something unusable:
//
//	ParseAddressChange -> hasChange false
//	AnalyzeOverstock   -> empty list
//	StorageAdvice      -> 0 units, "Error en cálculo", "0%"
//	OptimizeRoute      -> the addresses in the given order
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"logistics/internal/core/ports"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

var _ ports.Advisor = (*Advisor)(nil)

var errEmptyResponse = errors.New("empty response content")

type Advisor struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewAdvisor(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *Advisor {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &Advisor{
		client: &client,
		model:  model,
		logger: logger.With("component", "openai_advisor"),
	}
}

type emailAnswer struct {
	HasChange       bool   `json:"hasChange"`
	OrderID         string `json:"orderId"`
	Provider        string `json:"provider"`
	NewAddress      string `json:"newAddress"`
	InstructionType string `json:"instructionType"`
}

func (a *Advisor) ParseAddressChange(ctx context.Context, email string) (ports.AddressChangeCandidate, error) {
	prompt := fmt.Sprintf(`Analiza el siguiente correo electrónico para identificar si hay una solicitud de cambio de dirección de entrega.
Si el correo menciona un pedido (por ejemplo SO-1001) devuélvelo en orderId. Usa cadenas vacías cuando un dato no aparezca.
"%s"`, email)

	var answer emailAnswer
	if err := a.ask(ctx, "address_change", "Delivery address change found in an email", prompt, &answer); err != nil {
		a.logger.WarnContext(ctx, "Email analysis failed", "error", err)
		return ports.AddressChangeCandidate{}, nil
	}
	return ports.AddressChangeCandidate{
		HasChange:       answer.HasChange,
		OrderID:         strings.TrimSpace(answer.OrderID),
		Provider:        strings.TrimSpace(answer.Provider),
		NewAddress:      strings.TrimSpace(answer.NewAddress),
		InstructionType: ports.InstructionType(answer.InstructionType),
	}, nil
}

type overstockAnswer struct {
	Suggestions []ports.OverstockSuggestion `json:"suggestions"`
}

func (a *Advisor) AnalyzeOverstock(ctx context.Context, items []ports.OverstockItem) ([]ports.OverstockSuggestion, error) {
	if len(items) == 0 {
		return []ports.OverstockSuggestion{}, nil
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(`Analiza estos datos de inventario para una empresa de toallas. Identifica los artículos que parecen tener exceso de stock (cantidad alta en relación con otros). Para cada artículo identificado, proporciona una estrategia de negocio concisa y procesable para reducir el excedente.

Datos:
%s`, data)

	var answer overstockAnswer
	if err := a.ask(ctx, "overstock_analysis", "Overstocked products with a strategy for each", prompt, &answer); err != nil {
		a.logger.WarnContext(ctx, "Overstock analysis failed", "error", err)
		return []ports.OverstockSuggestion{}, nil
	}
	if answer.Suggestions == nil {
		return []ports.OverstockSuggestion{}, nil
	}
	return answer.Suggestions, nil
}

// StorageFallback is returned when the model cannot size the shelf.
var StorageFallback = ports.StorageRecommendation{TotalUnits: 0, Arrangement: "Error en cálculo", Efficiency: "0%"}

func (a *Advisor) StorageAdvice(ctx context.Context, shelf, item ports.Dimensions) (ports.StorageRecommendation, error) {
	prompt := fmt.Sprintf(`Como experto en logística de almacenes para una distribuidora de toallas, calcula cuántas unidades caben en un espacio de %gx%gx%g cm, si cada unidad mide %gx%gx%g cm.
Además de la matemática, sugiere el mejor método de doblado o estibado para maximizar el espacio y facilitar el picking.`,
		shelf.Width, shelf.Height, shelf.Depth, item.Width, item.Height, item.Depth)

	var answer ports.StorageRecommendation
	if err := a.ask(ctx, "storage_advice", "Units per shelf and how to stack them", prompt, &answer); err != nil {
		a.logger.WarnContext(ctx, "Storage advice failed", "error", err)
		return StorageFallback, nil
	}
	return answer, nil
}

type routeAnswer struct {
	Addresses []string `json:"addresses"`
}

// OptimizeRoute keeps the input order unless the model returns exactly the
// same addresses in a new order.
func (a *Advisor) OptimizeRoute(ctx context.Context, addresses []string) ([]string, error) {
	if len(addresses) < 2 {
		return addresses, nil
	}
	prompt := fmt.Sprintf(`Dada la siguiente lista de direcciones de entrega, determina el orden más eficiente para visitarlas, comenzando desde la primera dirección. Devuelve las mismas direcciones, sin modificarlas, en el orden de visita.

Direcciones:
%s`, strings.Join(addresses, "\n"))

	var answer routeAnswer
	if err := a.ask(ctx, "route_order", "Delivery addresses in visiting order", prompt, &answer); err != nil {
		a.logger.WarnContext(ctx, "Route optimization failed", "error", err)
		return addresses, nil
	}
	if !samePlaces(addresses, answer.Addresses) {
		a.logger.WarnContext(ctx, "Route optimization changed the stop list, keeping input order")
		return addresses, nil
	}
	return answer.Addresses, nil
}

func samePlaces(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	counts := make(map[string]int, len(want))
	for _, a := range want {
		counts[a]++
	}
	for _, a := range got {
		counts[a]--
		if counts[a] < 0 {
			return false
		}
	}
	return true
}

// ask sends the prompt and decodes the structured answer into out, whose
// type also defines the JSON schema the model must follow.
func (a *Advisor) ask(ctx context.Context, name, description, prompt string, out any) error {
	schema, err := schemaFor(out)
	if err != nil {
		return err
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(a.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        name,
					Strict:      param.NewOpt(true),
					Schema:      schema,
					Description: param.NewOpt(description),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return errEmptyResponse
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse completion: %w", err)
	}
	return nil
}

func schemaFor(v any) (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	raw, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schema, nil
}
