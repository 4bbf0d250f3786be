package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeartbeatPumpClosesChannelOnCancel 心跳 goroutine 持有通道所有权,
// 连接断开后由它关闭通道,消费端读到关闭信号退出
func TestHeartbeatPumpClosesChannelOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	messageChan := make(chan []byte, 4)

	done := make(chan struct{})
	go func() {
		heartbeatPump(ctx, "hr-001", time.Millisecond, messageChan)
		close(done)
	}()

	msg, ok := <-messageChan
	require.True(t, ok)
	assert.Contains(t, string(msg), `"heartbeat"`)
	assert.Contains(t, string(msg), "hr-001")

	cancel()
	<-done

	// 排空缓冲后通道已关闭
	for {
		if _, ok := <-messageChan; !ok {
			break
		}
	}
}

func TestHeartbeatPumpStopsWhenBufferFull(t *testing.T) {
	messageChan := make(chan []byte, 1)

	done := make(chan struct{})
	go func() {
		heartbeatPump(context.Background(), "hr-001", time.Millisecond, messageChan)
		close(done)
	}()

	// 没有消费者:缓冲写满后下一次心跳直接退出并关闭通道
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("heartbeat pump did not stop with a full buffer")
	}

	msg, ok := <-messageChan
	require.True(t, ok)
	assert.Contains(t, string(msg), "heartbeat")

	_, ok = <-messageChan
	assert.False(t, ok)
}
