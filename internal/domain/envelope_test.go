package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want string
	}{
		{
			name: "ok carries data and no error",
			env:  OK(map[string]string{"id": "abc"}),
			want: `{"success":true,"data":{"id":"abc"},"error":null}`,
		},
		{
			name: "ok list records the count",
			env:  OKList([]int{1, 2, 3}, 3),
			want: `{"success":true,"data":[1,2,3],"error":null,"count":3}`,
		},
		{
			name: "empty list keeps a zero count",
			env:  OKList([]int{}, 0),
			want: `{"success":true,"data":[],"error":null,"count":0}`,
		},
		{
			name: "fail carries a message and null data",
			env:  Fail("no such container"),
			want: `{"success":false,"data":null,"error":"no such container"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.env)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}

func TestEnvelopeExclusive(t *testing.T) {
	ok := OK("payload")
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)
	assert.NotNil(t, ok.Data)

	bad := Fail("broken")
	assert.False(t, bad.Success)
	require.NotNil(t, bad.Error)
	assert.Equal(t, "broken", *bad.Error)
	assert.Nil(t, bad.Data)
}
