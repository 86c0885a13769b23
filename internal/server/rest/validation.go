package rest

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/hotelbook/internal/common"
	"github.com/go-playground/validator/v10"
)

// bindingErrors turns a gin binding failure on req into per-field messages.
// Each field's message comes from its msg tag and its path from the json
// or form tag. ok is false when err is not a validation failure.
func bindingErrors(req any, err error) (ve *common.ValidationError, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	ve = &common.ValidationError{}
	seen := map[string]bool{}
	for _, fe := range verrs {
		path, msg := fe.Field(), fe.Error()
		if sf, found := t.FieldByName(fe.StructField()); found {
			if name := tagName(sf, "json"); name != "" {
				path = name
			} else if name := tagName(sf, "form"); name != "" {
				path = name
			}
			if m := sf.Tag.Get("msg"); m != "" {
				msg = m
			}
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		ve.Add(path, msg)
	}
	return ve, true
}

func tagName(sf reflect.StructField, key string) string {
	name, _, _ := strings.Cut(sf.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}
