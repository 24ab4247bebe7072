package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value aceita número ou string no JSON. A API de anúncios devolve valores
// monetários formatados como texto ("12,50") em alguns relatórios e como número em outros.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}

	*v = Value(data)
	return nil
}

func (v Value) String() string {
	return string(v)
}
