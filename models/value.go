// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Decoded JSON lives in the generic encoding/json value space:
// map[string]any, []any, string, json.Number, bool and nil.
//
// The accessors below never fail. An absent field and a field of the wrong
// type are both reported as "not found" through the boolean result, leaving
// every fallback decision to the caller.

// AsObject reports whether v is a JSON object and returns it.
func AsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// AsArray reports whether v is a JSON array and returns it.
func AsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// AsString reports whether v is a JSON string and returns it.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Field returns the value stored under key when v is an object that has it.
func Field(v any, key string) (any, bool) {
	obj, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	value, ok := obj[key]
	return value, ok
}

// ArrayField returns v[key] when v is an object and the field holds an array.
func ArrayField(v any, key string) ([]any, bool) {
	value, ok := Field(v, key)
	if !ok {
		return nil, false
	}
	return AsArray(value)
}

// StringField returns v[key] when v is an object and the field holds a string.
func StringField(v any, key string) (string, bool) {
	value, ok := Field(v, key)
	if !ok {
		return "", false
	}
	return AsString(value)
}
