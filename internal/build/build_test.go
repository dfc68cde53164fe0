package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildinfo/internal/build"
)

func TestAgent(t *testing.T) {
	original := build.Version
	t.Cleanup(func() { build.Version = original })

	build.Version = "1.4.0"
	agent := build.Agent()

	assert.Equal(t, "buildinfo", agent.Name())
	assert.Equal(t, "1.4.0", agent.Version())
	assert.Equal(t, "buildinfo/1.4.0", agent.String())
}

func TestAgent_Default(t *testing.T) {
	assert.Equal(t, "buildinfo/dev", build.Agent().String())
}
