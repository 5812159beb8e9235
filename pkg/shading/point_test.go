package shading

import (
	"testing"

	"github.com/df07/go-lighting-kernel/pkg/core"
	"github.com/df07/go-lighting-kernel/pkg/material"
	"github.com/stretchr/testify/assert"
)

type stubScene struct {
	env material.EnvironmentEDF
}

func (s *stubScene) EnvironmentEDF() material.EnvironmentEDF { return s.env }

func TestNewPoint_BasisFollowsShadingNormal(t *testing.T) {
	shadingNormal := core.NewVec3(1, 2, 0.5).Normalize()
	geometricNormal := core.NewVec3(0, 1, 0)

	outgoing := core.NewVec3(0, 0, 1)
	p := NewPoint(core.NewVec3(1, 0, 0), geometricNormal, shadingNormal, outgoing,
		core.NewVec2(0.5, 0.5), 3.0, material.NewLambertian(core.GraySpectrum(0.5)), nil)

	assert.Equal(t, shadingNormal, p.Basis.Normal)
	assert.Equal(t, geometricNormal, p.GeometricNormal)
	assert.Equal(t, outgoing, p.Outgoing)
	assert.Equal(t, 3.0, p.Distance)
	assert.NotNil(t, p.Material)
}

func TestPoint_EnvironmentEDF(t *testing.T) {
	var p Point
	assert.Nil(t, p.EnvironmentEDF(), "no scene reference means no environment")

	env := material.NewUniformEnvironmentEDF(core.GraySpectrum(1))
	p.Scene = &stubScene{env: env}
	assert.Equal(t, material.EnvironmentEDF(env), p.EnvironmentEDF())

	p.Scene = &stubScene{}
	assert.Nil(t, p.EnvironmentEDF())
}
