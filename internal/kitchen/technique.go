package kitchen

import (
	"errors"
	"fmt"
	"strings"
)

// Technique is the cooking method applied to a selection of ingredients.
type Technique string

const (
	Fry   Technique = "Fry"
	Whisk Technique = "Whisk"
	Bake  Technique = "Bake"
)

// ErrUnknownTechnique is returned when a technique name is outside the closed set
var ErrUnknownTechnique = errors.New("unknown technique")

var techniques = []Technique{Fry, Whisk, Bake}

// Techniques returns the closed set of techniques in display order
func Techniques() []Technique {
	out := make([]Technique, len(techniques))
	copy(out, techniques)
	return out
}

// ParseTechnique maps a name such as "fry" or "Fry" to its Technique
func ParseTechnique(name string) (Technique, error) {
	name = strings.TrimSpace(name)
	for _, t := range techniques {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTechnique, name)
}

// Valid reports whether t is one of Fry, Whisk or Bake
func (t Technique) Valid() bool {
	for _, known := range techniques {
		if t == known {
			return true
		}
	}
	return false
}

func (t Technique) String() string {
	return string(t)
}
