package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a := &thing{1}
	b := &thing{1}

	assert.Equal(t, Name(a), Name(a), "names are memoized")
	assert.NotEmpty(t, Name(b))
	assert.Regexp(t, `^[A-Z]`, Name(a))

	var nilThing *thing
	assert.Equal(t, "Ø", Name(nilThing))
	assert.Equal(t, "Ø", Name(nil))
}
