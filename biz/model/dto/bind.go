package dto

import (
	"errors"
	"fmt"
)

var ErrInvalidBody = errors.New("invalid request body")

// Body is a decoded JSON request body before any shape checks.
type Body any

func NewRegisterReq(body Body) (RegisterReq, error) {
	fields, err := asObject(body)
	if err != nil {
		return RegisterReq{}, err
	}

	var req RegisterReq
	if req.Name, err = stringField(fields, "name"); err != nil {
		return RegisterReq{}, err
	}
	if req.Email, err = stringField(fields, "email"); err != nil {
		return RegisterReq{}, err
	}
	if req.Password, err = stringField(fields, "password"); err != nil {
		return RegisterReq{}, err
	}
	return req, nil
}

func NewLoginReq(body Body) (LoginReq, error) {
	fields, err := asObject(body)
	if err != nil {
		return LoginReq{}, err
	}

	var req LoginReq
	if req.Email, err = stringField(fields, "email"); err != nil {
		return LoginReq{}, err
	}
	if req.Password, err = stringField(fields, "password"); err != nil {
		return LoginReq{}, err
	}
	return req, nil
}

// asObject accepts a JSON object; a nil body (no payload) is an empty object.
func asObject(body Body) (map[string]any, error) {
	if body == nil {
		return map[string]any{}, nil
	}
	fields, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: body is %T, not an object", ErrInvalidBody, body)
	}
	return fields, nil
}

// stringField treats an absent or null field as empty.
func stringField(fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %T, not a string", ErrInvalidBody, key, v)
	}
	return s, nil
}
