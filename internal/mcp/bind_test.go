package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

type bindInput struct {
	ClientID string   `json:"client_id" validate:"required,client_id"`
	ISINs    []string `json:"isins" validate:"omitempty,dive,isin"`
	Limit    int      `json:"limit" validate:"omitempty,min=1,max=5"`
}

func TestBinder_Bind(t *testing.T) {
	b := NewBinder(discardLogger())

	tests := []struct {
		name      string
		raw       string
		wantCode  string
		wantField string
	}{
		{name: "valid", raw: `{"client_id":"BZ-00001","isins":["US0378331005"],"limit":2}`},
		{name: "null arguments", raw: `null`, wantCode: werrors.CodeMissingParameter, wantField: "client_id"},
		{name: "empty client", raw: `{"client_id":""}`, wantCode: werrors.CodeMissingParameter, wantField: "client_id"},
		{name: "malformed client", raw: `{"client_id":"C-1"}`, wantCode: werrors.CodeInvalidFormat, wantField: "client_id"},
		{name: "bad isin element", raw: `{"client_id":"BZ-00001","isins":["US0378331006"]}`, wantCode: werrors.CodeInvalidFormat, wantField: "isin"},
		{name: "limit too large", raw: `{"client_id":"BZ-00001","limit":6}`, wantCode: werrors.CodeInvalidFormat, wantField: "limit"},
		{name: "wrong type", raw: `{"client_id":42}`, wantCode: werrors.CodeInvalidFormat, wantField: "client_id"},
		{name: "not an object", raw: `[1,2]`, wantCode: werrors.CodeInvalidFormat, wantField: "arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in bindInput

			err := b.Bind(json.RawMessage(tt.raw), &in)
			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "BZ-00001", in.ClientID)

				return
			}

			require.ErrorIs(t, err, werrors.ErrValidation)
			assert.Equal(t, tt.wantCode, werrors.CodeOf(err))

			var ve *werrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
