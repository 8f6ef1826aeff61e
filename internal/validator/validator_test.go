package validator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func TestTranslateMapsEveryField(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleRequest{})
	msgs := Translate(err, map[string]string{
		"sampleRequest.Name":  "Name is required",
		"sampleRequest.Email": "Please include a valid email",
	})
	want := []string{"Name is required", "Please include a valid email"}
	if !reflect.DeepEqual(msgs, want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
}

func TestTranslateFallsBackPerField(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleRequest{Name: "ok"})
	msgs := Translate(err, map[string]string{})
	if len(msgs) != 1 || msgs[0] == "" {
		t.Fatalf("expected one fallback message, got %v", msgs)
	}
}

func TestTranslateNonValidatorError(t *testing.T) {
	msgs := Translate(errors.New("unexpected EOF"), nil)
	if !reflect.DeepEqual(msgs, []string{"Invalid request body"}) {
		t.Fatalf("expected generic message, got %v", msgs)
	}
}
