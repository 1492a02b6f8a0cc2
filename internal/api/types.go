package api

import (
	"encoding/json"

	"github.com/hammamikhairi/cookbook/internal/domain"
	"github.com/hammamikhairi/cookbook/internal/engine"
)

// entryRequest keeps every field raw so the engine, not the decoder, decides
// how a wrongly typed value is reported and in which order.
type entryRequest struct {
	Name          json.RawMessage `json:"name"`
	Type          json.RawMessage `json:"type"`
	CookTime      json.RawMessage `json:"cookTime"`
	RequiredItems json.RawMessage `json:"requiredItems"`
}

func (req entryRequest) draft() engine.Draft {
	name, _ := rawValue(req.Name).(string)
	kind, _ := rawValue(req.Type).(string)
	d := engine.Draft{
		Name:     name,
		Type:     kind,
		CookTime: number(rawValue(req.CookTime)),
	}

	list, ok := rawValue(req.RequiredItems).([]any)
	if !ok {
		return d
	}
	d.RequiredItems = make([]engine.DraftItem, 0, len(list))
	for _, v := range list {
		var item engine.DraftItem
		if obj, ok := v.(map[string]any); ok {
			if s, ok := obj["name"].(string); ok {
				item.Name = &s
			}
			item.Quantity = number(obj["quantity"])
		}
		d.RequiredItems = append(d.RequiredItems, item)
	}
	return d
}

// rawValue decodes a raw field into a generic value; absent or malformed
// input yields nil.
func rawValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func number(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

type requiredItemJSON struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

type entryResponse struct {
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	CookTime      *float64           `json:"cookTime,omitempty"`
	RequiredItems []requiredItemJSON `json:"requiredItems,omitempty"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	out := entryResponse{Name: e.Name, Type: e.Kind.String()}
	switch e.Kind {
	case domain.KindIngredient:
		ct := e.CookTime
		out.CookTime = &ct
	case domain.KindRecipe:
		out.RequiredItems = make([]requiredItemJSON, 0, len(e.RequiredItems))
		for _, it := range e.RequiredItems {
			out.RequiredItems = append(out.RequiredItems, requiredItemJSON{Name: it.Name, Quantity: it.Quantity})
		}
	}
	return out
}

type summaryResponse struct {
	Name        string             `json:"name"`
	CookTime    float64            `json:"cookTime"`
	Ingredients []requiredItemJSON `json:"ingredients"`
}

func toSummaryResponse(s *domain.Summary) summaryResponse {
	out := summaryResponse{
		Name:        s.Name,
		CookTime:    s.CookTime,
		Ingredients: make([]requiredItemJSON, 0, len(s.Ingredients)),
	}
	for _, in := range s.Ingredients {
		out.Ingredients = append(out.Ingredients, requiredItemJSON{Name: in.Name, Quantity: in.Quantity})
	}
	return out
}
