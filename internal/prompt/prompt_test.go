package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("Bill\r\nGates"), &out)

	first, err := p.Ask("Enter a first name: ")
	require.NoError(t, err)
	last, err := p.Ask("Enter a last name: ")
	require.NoError(t, err)

	assert.Equal(t, "Bill", first)
	assert.Equal(t, "Gates", last)
	assert.Equal(t, "Enter a first name: Enter a last name: ", out.String())

	_, err = p.Ask("Enter a first name: ")
	assert.ErrorContains(t, err, `read answer to "Enter a first name:"`)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: " y \n", want: true},
		{input: "yes\n"},
		{input: "n\n"},
		{input: "\n"},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			ok, err := New(strings.NewReader(tt.input), &out).Confirm("Sure? (y/n) ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
