package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plugdeck/internal/domain"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventScanCompleted, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ScanCompletedEvent{PluginsFound: 3})

	select {
	case e := <-received:
		event, ok := e.(ScanCompletedEvent)
		require.True(t, ok)
		assert.Equal(t, 3, event.PluginsFound)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	bus := New()

	scans := make(chan DomainEvent, 2)
	bus.Subscribe(EventScanStarted, func(e DomainEvent) {
		scans <- e
	})

	bus.Publish(ErrorEvent{Message: "nope"})
	bus.Publish(ScanStartedEvent{Paths: []string{"/tmp/plugins"}})

	select {
	case e := <-scans:
		assert.Equal(t, EventScanStarted, e.Type())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case e := <-scans:
		t.Fatalf("unexpected extra event: %v", e.Type())
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	bus := New()

	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)
	bus.Subscribe(EventPluginDiscovered, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventPluginDiscovered, func(e DomainEvent) { second <- e })

	bus.Publish(PluginDiscoveredEvent{Plugin: domain.Plugin{ID: "vimmer"}})

	for _, ch := range []chan DomainEvent{first, second} {
		select {
		case e := <-ch:
			event, ok := e.(PluginDiscoveredEvent)
			require.True(t, ok)
			assert.Equal(t, "vimmer", event.Plugin.ID)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	bus := New()

	bus.Subscribe(EventError, func(e DomainEvent) {
		panic("handler blew up")
	})

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventError, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(ErrorEvent{Message: "boom"})

	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event after handler panic")
	}

	// The bus must still deliver subsequent events
	bus.Publish(ErrorEvent{Message: "again"})
	select {
	case <-received:
	case <-time.After(5 * time.Second):
		t.Fatal("bus stopped dispatching after handler panic")
	}
}
