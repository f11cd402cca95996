package bizimtransfer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Scalar `json:"a"`
		B Scalar `json:"b"`
		C Scalar `json:"c"`
		D Scalar `json:"d"`
		E Scalar `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"abc","b":12345,"c":45.5,"d":null,"e":true}`), &v))
	assert.Equal(t, Scalar("abc"), v.A)
	assert.Equal(t, Scalar("12345"), v.B)
	assert.Equal(t, Scalar("45.5"), v.C)
	assert.Equal(t, Scalar(""), v.D)
	assert.Equal(t, Scalar("true"), v.E)

	var s Scalar
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &s))
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		valid bool
	}{
		{`45.50`, "45.50", true},
		{`"45.50"`, "45.50", true},
		{`120`, "120", true},
		{`"7"`, "7", true},
		{`null`, "", false},
		{`""`, "", false},
		{`"45,50"`, "45,50", false},
		{`"on request"`, "on request", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.valid, m.Valid)
			assert.Equal(t, tt.want, m.String())
		})
	}

	var m Money
	assert.Error(t, json.Unmarshal([]byte(`{"amount":10}`), &m))
}

func TestWay_Direction(t *testing.T) {
	assert.Equal(t, DirectionOutbound, Way{Type: "yon1"}.Direction(0))
	assert.Equal(t, DirectionOutbound, Way{Type: "yon1-transfer"}.Direction(1))
	assert.Equal(t, DirectionReturn, Way{Type: "yon2"}.Direction(0))
	assert.Equal(t, DirectionOutbound, Way{Type: "outbound"}.Direction(0))
	assert.Equal(t, DirectionReturn, Way{Type: ""}.Direction(1))
}

func TestEnvelope_NumericDescription(t *testing.T) {
	var e Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"status":"error","description":404}`), &e))
	assert.False(t, e.Succeeded())
	assert.Equal(t, "Error: 404", e.ErrorText())
}

func TestEnvelope(t *testing.T) {
	assert.True(t, Envelope{Status: "success"}.Succeeded())
	assert.False(t, Envelope{Status: "error"}.Succeeded())
	assert.Equal(t, "Error: No cars available", Envelope{Status: "error", Description: "No cars available"}.ErrorText())
	assert.Equal(t, "Error: Unknown error occurred", Envelope{Status: "error"}.ErrorText())
}

func TestPlaceDetails_Defaults(t *testing.T) {
	var d PlaceDetails
	assert.Equal(t, "N/A", d.DisplayName())
	assert.Equal(t, "N/A", d.DisplayAddress())
	_, ok := d.Coordinates()
	assert.False(t, ok)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"AYT","geometry":{"location":{"lat":36.9,"lng":30.8}}}`), &d))
	assert.Equal(t, "AYT", d.DisplayName())
	loc, ok := d.Coordinates()
	require.True(t, ok)
	assert.Equal(t, 36.9, *loc.Lat)

	var empty PlaceDetails
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","geometry":{"location":{}}}`), &empty))
	_, ok = empty.Coordinates()
	assert.False(t, ok)
}
