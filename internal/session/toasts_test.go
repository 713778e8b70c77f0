package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_ToastsExpire(t *testing.T) {
	clk := &clock{t: time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC)}
	f := NewFeed(0)
	f.now = clk.Now

	first := f.Toast("Éxito", "Registro guardado")
	assert.Equal(t, "2025-06-05T14:00:00.000Z", first.CreatedAt)
	assert.Equal(t, "2025-06-05T14:00:05.000Z", first.ExpiresAt)

	clk.Advance(3 * time.Second)
	f.Toast("Aviso", "segundo")
	assert.Len(t, f.Active(), 2)

	clk.Advance(2 * time.Second)
	active := f.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "segundo", active[0].Message)

	clk.Advance(5 * time.Second)
	assert.Empty(t, f.Active())
}

func TestFeed_Subscribe(t *testing.T) {
	f := NewFeed(time.Minute)
	ch, cancel := f.Subscribe(4)

	f.Toast("t", "m")
	f.Publish(Event{Type: EventSnapshot, Data: "payments"})

	e := <-ch
	assert.Equal(t, EventToast, e.Type)
	assert.Equal(t, "m", e.Data.(Toast).Message)
	assert.Equal(t, EventSnapshot, (<-ch).Type)

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestFeed_SlowSubscriberDoesNotBlock(t *testing.T) {
	f := NewFeed(time.Minute)
	ch, cancel := f.Subscribe(1)
	defer cancel()

	for i := 0; i < 10; i++ {
		f.Publish(Event{Type: EventSnapshot})
	}
	assert.Len(t, ch, 1)
}

func TestFeed_CloseEndsSubscriptions(t *testing.T) {
	f := NewFeed(time.Minute)
	ch, cancel := f.Subscribe(1)
	f.Close()
	_, open := <-ch
	assert.False(t, open)
	cancel()

	late, _ := f.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}
