package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code   string
		isDate bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yy h:mm", true},
		{"[h]:mm:ss", true},
		{"[$-409]d-mmm-yy;@", true},
		{`dd" of "mmmm`, true},
		{"General", false},
		{"@", false},
		{"0.00", false},
		{"#,##0", false},
		{"0.00E+00", false},
		{`"Day "0`, false},
		{"[Red]0.00", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.isDate, isDateFormatCode(tt.code), "code %q", tt.code)
	}
}

func TestIsDateNumFmt(t *testing.T) {
	assert.True(t, isDateNumFmt(14, nil))
	assert.True(t, isDateNumFmt(22, nil))
	assert.False(t, isDateNumFmt(0, nil))
	assert.False(t, isDateNumFmt(2, nil))

	custom := "0.0%"
	assert.False(t, isDateNumFmt(14, &custom), "custom code wins over the id")
	custom = "yyyy/mm/dd"
	assert.True(t, isDateNumFmt(164, &custom))

	empty := ""
	assert.True(t, isDateNumFmt(14, &empty))
}
