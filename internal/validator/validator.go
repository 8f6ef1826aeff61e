package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Translate maps a gin binding failure onto the per-field messages the API
// contract promises, one entry per violated field. messages is keyed by the
// validator struct namespace ("RegisterRequest.Name"); fields without an
// entry fall back to the raw validator message.
func Translate(err error, messages map[string]string) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid request body"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.StructNamespace()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, fe.Error())
		}
	}
	return out
}
