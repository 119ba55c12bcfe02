package enforce

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	assert.NotPanics(t, func() { ENFORCE(true) })
	assert.NotPanics(t, func() { ENFORCE(nil) })
	var err error
	assert.NotPanics(t, func() { ENFORCE(err) })

	assert.Panics(t, func() { ENFORCE(false, "should fail") })
	assert.Panics(t, func() { ENFORCE(errors.New("boom")) })
	assert.Panics(t, func() { ENFORCE("always") })
	assert.Panics(t, func() { ENFORCE(3) })
}
