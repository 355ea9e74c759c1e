package demo

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"owncollections/log"
	"owncollections/metrics"
)

func newLogger(buf *bytes.Buffer) log.Logger {
	l := log.New()
	l.SetOutput(buf)
	l.SetLevel("debug")
	return l
}

func TestRunArrayList(t *testing.T) {
	var buf bytes.Buffer
	list, err := RunArrayList(newLogger(&buf), &Options{InitialCapacity: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{-21, 6, 40, 199}, list.Values())
	assert.Equal(t, 4, list.Capacity())
	assert.Contains(t, buf.String(), "removed 10 at index 0 [25, 20, 30]")
}

func TestRunLinkedList(t *testing.T) {
	var buf bytes.Buffer
	lists, err := RunLinkedList(newLogger(&buf), nil)
	require.NoError(t, err)
	require.Len(t, lists, 3)

	assert.Equal(t, "1 2 3 4 5 23", lists[0].String())
	assert.Equal(t, "2 1 3 10", lists[1].String())
	assert.Equal(t, "2 3 5 6 7 8", lists[2].String())
	assert.Contains(t, buf.String(), "remove rejected")
}

func TestDumpMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf)

	c := metrics.NewCollector("listdemo")
	reg := prometheus.NewRegistry()
	reg.MustRegister(c)

	opts := &Options{Collector: c}
	_, err := RunArrayList(logger, opts)
	require.NoError(t, err)
	_, err = RunLinkedList(logger, opts)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, DumpMetrics(logger, reg))
	out := buf.String()
	assert.Contains(t, out, "listdemo_container_capacity 10")
	assert.Contains(t, out, "listdemo_container_size 6")
	assert.Contains(t, out, "container=linked-index")
}
