package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/probekit/cpu-affinity/pkg/affinity"
)

type fakeCounter struct {
	count int
	err   error
}

func (f *fakeCounter) Count() (int, error) {
	return f.count, f.err
}

func TestBuildReport(t *testing.T) {
	rep := buildReport(&fakeCounter{count: 3})

	assert.Equal(t, 3, rep.AffinityCPUs)
	assert.Equal(t, "sched_getaffinity", rep.Source)
	assert.GreaterOrEqual(t, rep.OnlineCPUs, 1)
	assert.GreaterOrEqual(t, rep.ConfiguredCPUs, rep.OnlineCPUs)
	assert.GreaterOrEqual(t, rep.PresentCPUs, 1)
	assert.GreaterOrEqual(t, rep.RuntimeCPUs, 1)
}

func TestBuildReport_Fallback(t *testing.T) {
	rep := buildReport(&fakeCounter{err: affinity.ErrUnsupported})

	assert.Equal(t, "portable-fallback", rep.Source)
	assert.Equal(t, rep.OnlineCPUs, rep.AffinityCPUs)
}

func TestBuildReport_QueryFailed(t *testing.T) {
	rep := buildReport(&fakeCounter{err: errors.New("query rejected")})

	assert.Equal(t, "portable-fallback", rep.Source)
	assert.Equal(t, rep.OnlineCPUs, rep.AffinityCPUs)
}
