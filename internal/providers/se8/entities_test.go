package se8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"A &#40;B&#41;", "A (B)"},
		{"&lt;番外&gt;", "<番外>"},
		{"&ldquo;你好&rdquo;", "“你好”"},
		{"等等&hellip;", "等等…"},
		{"I &hearts; you", "I ♥ you"},
		{"&amp; stays", "&amp; stays"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeEntities(tt.in), tt.in)
	}
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "第1话", "A (B) <C> “D” … ♥", "100% & more"} {
		once := DecodeEntities(s)
		assert.Equal(t, s, once)
		assert.Equal(t, once, DecodeEntities(once))
	}
}
