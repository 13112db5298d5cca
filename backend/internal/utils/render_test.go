package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text", input: "hello", expected: "hello"},
		{name: "line breaks", input: "one\ntwo\r\nthree", expected: "one<br>two<br>three"},
		{name: "formatting kept", input: "<b>bold</b>", expected: "<b>bold</b>"},
		{name: "script removed", input: "hi<script>alert(1)</script>", expected: "hi"},
		{name: "event handler removed", input: `<b onclick="x()">bold</b>`, expected: "<b>bold</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayHTML(tt.input))
		})
	}
}
