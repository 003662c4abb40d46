package probe

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T) int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	return listener.Addr().(*net.TCPAddr).Port
}

// closedPort returns a port nothing listens on.
func closedPort(t *testing.T) int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func TestProbe(t *testing.T) {
	open1 := listen(t)
	open2 := listen(t)
	closed := closedPort(t)

	p := NewProber([]int{open2, closed, open1}, nil)
	p.Timeout = 500 * time.Millisecond
	p.Concurrency = 2

	result := p.Probe(context.Background(), []string{"127.0.0.1", ""})

	expected := []int{open1, open2}
	if open1 > open2 {
		expected = []int{open2, open1}
	}
	assert.Equal(t, expected, result["127.0.0.1"])
	assert.Equal(t, []int{}, result[""])
}

func TestProbeCancelled(t *testing.T) {
	port := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProber([]int{port}, nil)
	result := p.Probe(ctx, []string{"127.0.0.1"})
	assert.Empty(t, result["127.0.0.1"])
}
