package service

import (
	"encoding/json"
	"imoveis/cmd/internal/contract"
	"imoveis/cmd/internal/utils/apierror"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// toPropertyInput coerces an already presence-checked payload into typed
// fields. Text fields also accept JSON numbers (a numeric cep, for
// instance); valor accepts a number or a numeric string.
func toPropertyInput(payload contract.PropertyPayload) (*contract.PropertyInput, apierror.ErrorResponse) {
	problems := apierror.NewStructured(http.StatusBadRequest)

	text := func(field string) string {
		s, ok := asText(payload[field])
		if !ok {
			problems.Add(field, "Invalid value provided, expected text")
		}
		return s
	}

	input := &contract.PropertyInput{
		Logradouro:     text("logradouro"),
		TipoLogradouro: text("tipo_logradouro"),
		Bairro:         text("bairro"),
		Cidade:         text("cidade"),
		CEP:            text("cep"),
		Tipo:           text("tipo"),
		DataAquisicao:  text("data_aquisicao"),
	}

	valor, ok := asNumber(payload["valor"])
	if !ok {
		problems.Add("valor", "Invalid value provided, expected number")
	}
	input.Valor = valor

	if !problems.Empty() {
		return nil, problems
	}
	return input, nil
}

func asText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
