package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"ok\": true\n}", PrettyJson(map[string]bool{"ok": true}))
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
}
