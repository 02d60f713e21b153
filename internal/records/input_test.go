package records

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitInput_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected UnitInput
	}{
		{
			name:     "Portuguese keys",
			body:     `{"nome_unidade":"Lab A","grupo_unidade":"IT","id_unidade":"U-001","observacoes":"n"}`,
			expected: UnitInput{Name: "Lab A", Group: "IT", ExternalID: "U-001", Notes: "n"},
		},
		{
			name:     "Short keys",
			body:     `{"name":"Lab A","grupo":"IT","id_unidade":"U-001"}`,
			expected: UnitInput{Name: "Lab A", Group: "IT", ExternalID: "U-001"},
		},
		{
			name:     "Portuguese keys win",
			body:     `{"name":"short","nome_unidade":"Lab A","grupo":"x","grupo_unidade":"IT","id_unidade":"U-001"}`,
			expected: UnitInput{Name: "Lab A", Group: "IT", ExternalID: "U-001"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var in UnitInput
			require.NoError(t, json.Unmarshal([]byte(tc.body), &in))
			assert.Equal(t, tc.expected, in)
		})
	}
}

func TestUnitInput_UnmarshalJSON_TypeError(t *testing.T) {
	var in UnitInput
	err := json.Unmarshal([]byte(`{"grupo_unidade":7}`), &in)

	var typeErr *json.UnmarshalTypeError
	require.True(t, errors.As(err, &typeErr), "got %v", err)
	assert.Equal(t, "grupo_unidade", typeErr.Field)
}

func TestID_UnmarshalJSON(t *testing.T) {
	for _, body := range []string{`{"unidade":12}`, `{"unidade":"12"}`, `{"unidade":" 12 "}`} {
		var in FailureInput
		require.NoError(t, json.Unmarshal([]byte(body), &in), body)
		require.NotNil(t, in.UnitID)
		assert.Equal(t, ID(12), *in.UnitID)
	}

	var in FailureInput
	require.NoError(t, json.Unmarshal([]byte(`{"unidade":null}`), &in))
	assert.Nil(t, in.UnitID)

	for _, body := range []string{`{"unidade":"12a"}`, `{"unidade":1.5}`, `{"unidade":false}`} {
		var in FailureInput
		err := json.Unmarshal([]byte(body), &in)

		var typeErr *json.UnmarshalTypeError
		require.True(t, errors.As(err, &typeErr), "%s: got %v", body, err)
		assert.Equal(t, "unidade", typeErr.Field)
		assert.Equal(t, "A valid integer is required.", TypeMessage(typeErr.Type.Kind()))
	}
}
