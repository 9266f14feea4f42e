package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrWeightNotNumeric = errors.New("weight must be a string or a number")

// Weight вес пакета в том виде, в каком его прислали: строкой или числом.
// Число сохраняется в исходной записи, парсинг делает сервис.
type Weight string

func (w *Weight) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*w = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = Weight(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrWeightNotNumeric
	}
	*w = Weight(n.String())
	return nil
}

func (w Weight) String() string {
	return string(w)
}
