package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advithialva/expenso/internal/money"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    money.Cents
		wantErr bool
	}

	tests := []testCase{
		{name: "Integer", input: "1000", want: 100000},
		{name: "TwoDecimals", input: "12.34", want: 1234},
		{name: "OneDecimal", input: "-4.5", want: -450},
		{name: "Negative", input: "-4.50", want: -450},
		{name: "Zero", input: "0", want: 0},
		{name: "ZeroDecimal", input: "0.00", want: 0},
		{name: "LeadingPlus", input: "+3.25", want: 325},
		{name: "RoundsDown", input: "12.344", want: 1234},
		{name: "RoundsUp", input: "12.346", want: 1235},
		{name: "Empty", input: "", wantErr: true},
		{name: "BareSign", input: "-", wantErr: true},
		{name: "TrailingDot", input: "12.", wantErr: true},
		{name: "TwoDots", input: "1.2.3", wantErr: true},
		{name: "Letters", input: "abc", wantErr: true},
		{name: "Exponent", input: "1e2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "995.50", money.Cents(99550).String())
	assert.Equal(t, "-4.50", money.Cents(-450).String())
	assert.Equal(t, "0.00", money.Cents(0).String())
	assert.Equal(t, "-0.05", money.Cents(-5).String())
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(money.Cents(-450))
	require.NoError(t, err)
	assert.Equal(t, "-4.50", string(b))

	var c money.Cents
	require.NoError(t, json.Unmarshal([]byte("995.5"), &c))
	assert.Equal(t, money.Cents(99550), c)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &c))
}
