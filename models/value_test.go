package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	doc := map[string]any{
		"tag":       "proxy",
		"outbounds": []any{"DIRECT"},
		"port":      json.Number("443"),
		"nested":    map[string]any{"k": "v"},
	}

	tests := []struct {
		name   string
		check  func() (any, bool)
		want   any
		wantOK bool
	}{
		{
			name:   "string field present",
			check:  func() (any, bool) { return StringField(doc, "tag") },
			want:   "proxy",
			wantOK: true,
		},
		{
			name:   "string field wrong type",
			check:  func() (any, bool) { return StringField(doc, "port") },
			want:   "",
			wantOK: false,
		},
		{
			name:   "string field absent",
			check:  func() (any, bool) { return StringField(doc, "missing") },
			want:   "",
			wantOK: false,
		},
		{
			name:   "array field present",
			check:  func() (any, bool) { return ArrayField(doc, "outbounds") },
			want:   []any{"DIRECT"},
			wantOK: true,
		},
		{
			name:   "array field wrong type",
			check:  func() (any, bool) { return ArrayField(doc, "nested") },
			want:   []any(nil),
			wantOK: false,
		},
		{
			name:   "field on non-object",
			check:  func() (any, bool) { return Field([]any{1}, "tag") },
			want:   nil,
			wantOK: false,
		},
		{
			name:   "field on nil",
			check:  func() (any, bool) { return Field(nil, "tag") },
			want:   nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.check()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsObjectAndArray(t *testing.T) {
	_, ok := AsObject([]any{})
	assert.False(t, ok)

	_, ok = AsArray(map[string]any{})
	assert.False(t, ok)

	obj, ok := AsObject(map[string]any{"a": true})
	assert.True(t, ok)
	assert.Equal(t, true, obj["a"])
}

func TestMergeRequest_URL(t *testing.T) {
	req := MergeRequest{TemplateURL: "http://t", NodesURL: "http://n"}

	assert.Equal(t, "http://t", req.URL(SourceTemplate))
	assert.Equal(t, "http://n", req.URL(SourceNodes))
}

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
