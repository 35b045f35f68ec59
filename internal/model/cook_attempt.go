package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringArray stores a list of strings as a JSON array column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// CookAttempt is one entry in the append-only cook journal
type CookAttempt struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt      time.Time   `gorm:"index" json:"created_at"`
	SessionID      *uuid.UUID  `gorm:"type:uuid;index" json:"session_id,omitempty"`
	Ingredients    StringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Technique      string      `gorm:"size:16;not null" json:"technique"`
	CombinationKey string      `gorm:"size:512;not null" json:"combination_key"`
	DishName       string      `gorm:"size:255;not null" json:"dish_name"`
	Matched        bool        `gorm:"not null" json:"matched"`
}

// BeforeCreate assigns an id so sqlite and postgres behave the same
func (a *CookAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
