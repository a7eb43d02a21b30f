package store

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

// encodeSettingValue serializes a typed value into its storage string.
// The type tag is validated here so a bad write is rejected up front.
func encodeSettingValue(valueType string, value interface{}) (string, error) {
	switch valueType {
	case entity.SettingTypeString:
		s, ok := value.(string)
		if !ok {
			return "", validationErr("value", "expected a string value")
		}
		return s, nil
	case entity.SettingTypeBoolean:
		b, ok := value.(bool)
		if !ok {
			return "", validationErr("value", "expected a boolean value")
		}
		return strconv.FormatBool(b), nil
	case entity.SettingTypeNumber:
		switch n := value.(type) {
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(n), nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		default:
			return "", validationErr("value", "expected a numeric value")
		}
	case entity.SettingTypeJSON:
		b, err := json.Marshal(value)
		if err != nil {
			return "", validationErr("value", "value is not serializable as JSON")
		}
		return string(b), nil
	default:
		return "", validationErr("type", "type must be one of string, boolean, number, json")
	}
}

// decodeSettingValue turns a stored string back into its typed value.
// Decode failures are soft: the raw string comes back and a warning is
// logged, so one corrupt row cannot break a settings read.
func decodeSettingValue(logger *zap.Logger, key, valueType, raw string) interface{} {
	switch valueType {
	case entity.SettingTypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Warn("Failed to decode boolean setting, returning raw value",
				zap.String("key", key), zap.Error(err))
			return raw
		}
		return b
	case entity.SettingTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("Failed to decode numeric setting, returning raw value",
				zap.String("key", key), zap.Error(err))
			return raw
		}
		return n
	case entity.SettingTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			logger.Warn("Failed to decode json setting, returning raw value",
				zap.String("key", key), zap.Error(err))
			return raw
		}
		return v
	default:
		return raw
	}
}
