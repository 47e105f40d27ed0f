package util_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/buildsettings/util"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 42, util.Must(42, nil))
}

func TestMust_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "util.Must: boom", func() {
		util.Must(0, errors.New("boom"))
	})
}
