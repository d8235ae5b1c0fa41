package repository

import (
	"fmt"
	"imoveis/cmd/internal/domain/entity"
	"strconv"
	"time"
)

// PropertyColumns is the positional layout every read path selects.
const PropertyColumns = "id, logradouro, tipo_logradouro, bairro, cidade, cep, tipo, valor, data_aquisicao"

const propertyColumnCount = 9

const dateLayout = "2006-01-02"

// RowToProperty maps one positional row (see PropertyColumns) into a
// Property. Drivers disagree on the Go types they hand back (int64 vs
// int32, []byte vs string, time.Time for DATE columns), so each position
// is normalized here.
func RowToProperty(row []any) (*entity.Property, error) {
	if len(row) < propertyColumnCount {
		return nil, fmt.Errorf("row has %d columns, expected %d", len(row), propertyColumnCount)
	}

	id, err := asInt(row[0])
	if err != nil {
		return nil, fmt.Errorf("column id: %w", err)
	}

	valor, err := asFloat(row[7])
	if err != nil {
		return nil, fmt.Errorf("column valor: %w", err)
	}

	return &entity.Property{
		ID:             id,
		Logradouro:     asString(row[1]),
		TipoLogradouro: asString(row[2]),
		Bairro:         asString(row[3]),
		Cidade:         asString(row[4]),
		CEP:            asString(row[5]),
		Tipo:           asString(row[6]),
		Valor:          valor,
		DataAquisicao:  asDate(row[8]),
	}, nil
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case int:
		return n, nil
	case []byte:
		return strconv.Atoi(string(n))
	case string:
		return strconv.Atoi(n)
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case []byte:
		return strconv.ParseFloat(string(n), 64)
	case string:
		return strconv.ParseFloat(n, 64)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// asDate renders DATE columns the way they were stored. sqlite hands back
// a time.Time for any text it can parse, so only a bare UTC midnight is
// shortened to YYYY-MM-DD. Anything else keeps its clock and offset.
func asDate(v any) string {
	t, ok := v.(time.Time)
	if !ok {
		return asString(v)
	}

	if _, offset := t.Zone(); offset == 0 && t.Equal(t.Truncate(24*time.Hour)) {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339Nano)
}
