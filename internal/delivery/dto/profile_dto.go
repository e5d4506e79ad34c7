package dto

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ProfileRequest is a sparse profile payload. Fields returns only the columns
// the caller actually sent; JSON null counts as not sent.
type ProfileRequest interface {
	Fields() (map[string]interface{}, error)
}

func setField[T any](fields map[string]interface{}, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}

func setDateField(fields map[string]interface{}, column string, value *string) error {
	if value == nil {
		return nil
	}
	date, err := time.Parse(DateLayout, *value)
	if err != nil {
		return fmt.Errorf("%s: %w", column, err)
	}
	fields[column] = date
	return nil
}
