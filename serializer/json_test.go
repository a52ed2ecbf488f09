package serializer

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalSortsMapKeys(t *testing.T) {
	t.Parallel()

	s := JSON{}

	first, err := s.Marshal(map[string]any{"iss": "Google", "aud": "M1", "iat": 1000, "exp": 4600})
	require.NoError(t, err)
	assert.JSONEq(t, `{"aud":"M1","exp":4600,"iat":1000,"iss":"Google"}`, string(first))
	assert.Equal(t, `{"aud":"M1","exp":4600,"iat":1000,"iss":"Google"}`, string(first))

	for i := 0; i < 20; i++ {
		again, err := s.Marshal(map[string]any{"exp": 4600, "iat": 1000, "aud": "M1", "iss": "Google"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	out, err := JSON{}.Marshal(map[string]any{"origin": "https://shop.example/?a=1&b=<2>"})
	require.NoError(t, err)
	assert.Equal(t, `{"origin":"https://shop.example/?a=1&b=<2>"}`, string(out))
}

func TestMarshalRejectsNonJSONValues(t *testing.T) {
	t.Parallel()

	_, err := JSON{}.Marshal(map[string]any{"fn": func() {}})
	require.Error(t, err)

	_, err = JSON{}.Marshal(map[string]any{"nan": math.NaN()})
	require.Error(t, err)
}

func TestUnmarshalDefaultsToFloat64(t *testing.T) {
	t.Parallel()

	var out map[string]any
	require.NoError(t, JSON{}.Unmarshal([]byte(`{"iat":1000,"nested":{"list":[1,"a",true,null]}}`), &out))

	assert.Equal(t, map[string]any{
		"iat":    float64(1000),
		"nested": map[string]any{"list": []any{float64(1), "a", true, nil}},
	}, out)
}

func TestUnmarshalUseNumber(t *testing.T) {
	t.Parallel()

	var out map[string]any
	require.NoError(t, JSON{UseNumber: true}.Unmarshal([]byte(`{"big":9007199254740993} `), &out))
	assert.Equal(t, json.Number("9007199254740993"), out["big"])
}

func TestUnmarshalRejectsTrailingData(t *testing.T) {
	t.Parallel()

	for _, s := range []Serializer{JSON{}, JSON{UseNumber: true}} {
		var out map[string]any
		assert.Error(t, s.Unmarshal([]byte(`{"a":1}{"b":2}`), &out))
		assert.Error(t, s.Unmarshal([]byte(`{"a":1`), &out))
	}
}
