package contentRepository

import (
	"EportsTech/internal/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeOptionalText keeps the column NULL for an absent optional record.
func encodeOptionalText(t entity.LocalizedText) (interface{}, error) {
	if t == nil {
		return nil, nil
	}
	return encodeJSON(t)
}

func encodeOptionalList(l entity.LocalizedList) (interface{}, error) {
	if l == nil {
		return nil, nil
	}
	return encodeJSON(l)
}

func decodeText(raw []byte) (entity.LocalizedText, error) {
	var t entity.LocalizedText
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
	}
	return t.Normalize(), nil
}

func decodeOptionalText(raw []byte) (entity.LocalizedText, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	return decodeText(raw)
}

func decodeOptionalList(raw []byte) (entity.LocalizedList, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var l entity.LocalizedList
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, err
	}
	return l.Normalize(), nil
}
