package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_Unmarshal(t *testing.T) {
	cases := []struct {
		in    string
		want  Int
		fails bool
	}{
		{in: `3`, want: NewInt(3)},
		{in: `"42"`, want: NewInt(42)},
		{in: `" 7 "`, want: NewInt(7)},
		{in: `4.0`, want: NewInt(4)},
		{in: `0`, want: NewInt(0)},
		{in: `null`, want: Int{}},
		{in: `""`, want: Int{}},
		{in: `"abc"`, fails: true},
		{in: `2.5`, fails: true},
		{in: `true`, fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var got struct {
				ID Int `json:"id"`
			}
			err := json.Unmarshal([]byte(`{"id":`+tc.in+`}`), &got)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.ID)
		})
	}
}

func TestInt_AbsentField(t *testing.T) {
	var got struct {
		ID Int `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &got))
	assert.False(t, got.ID.Valid)
	assert.Nil(t, got.ID.Ptr())
	assert.False(t, got.ID.Positive())
}

func TestInt_Marshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Int `json:"a"`
		B Int `json:"b"`
	}{A: NewInt(9)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":9,"b":null}`, string(b))
}
