package analytics

import (
	"log/slog"
	"testing"

	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	posthog.Client
	captured []posthog.Capture
	closed   bool
}

func (r *recordingClient) Enqueue(msg posthog.Message) error {
	if c, ok := msg.(posthog.Capture); ok {
		r.captured = append(r.captured, c)
	}
	return nil
}

func (r *recordingClient) Close() error {
	r.closed = true
	return nil
}

func TestInitializePosthogClient_EmptyKeyIsDisabled(t *testing.T) {
	w := InitializePosthogClient("", "https://eu.i.posthog.com", slog.Default())

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("user-1", EventTransferCreated, nil)
		w.Close()
	})
}

func TestPosthogClientWrapper_NilIsSafe(t *testing.T) {
	var w *PosthogClientWrapper
	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() { w.Enqueue("u", "e", nil) })
}

func TestPosthogClientWrapper_Enqueue(t *testing.T) {
	client := &recordingClient{}
	w := NewPosthogClientWrapper(client, slog.Default())

	w.Enqueue("user-1", EventShiftClosed, map[string]any{"shift_id": "shift-1"})
	w.Close()

	require.Len(t, client.captured, 1)
	assert.Equal(t, "user-1", client.captured[0].DistinctId)
	assert.Equal(t, EventShiftClosed, client.captured[0].Event)
	assert.Equal(t, "shift-1", client.captured[0].Properties["shift_id"])
	assert.True(t, client.closed)
}
