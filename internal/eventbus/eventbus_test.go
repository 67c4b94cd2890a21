package eventbus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chemvista/internal/domain"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan DomainEvent, 2)
	b.Subscribe(EventThemeChanged, func(e DomainEvent) { got <- e })
	b.Subscribe(EventNavigated, func(e DomainEvent) { t.Errorf("unexpected delivery of %s", e.Type()) })

	b.Publish(ThemeChangedEvent{Theme: domain.ThemeDark})

	select {
	case e := <-got:
		ev, ok := e.(ThemeChangedEvent)
		require.True(t, ok)
		require.Equal(t, domain.ThemeDark, ev.Theme)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(nil)
	defer b.Close()

	var mu sync.Mutex
	count := 0
	unsubscribe := b.Subscribe(EventNavigated, func(DomainEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	done := make(chan struct{}, 4)
	b.Subscribe(EventNavigated, func(DomainEvent) { done <- struct{}{} })

	b.Publish(NavigatedEvent{Path: "/compound/1"})
	<-done
	unsubscribe()
	b.Publish(NavigatedEvent{Path: "/compound/2"})
	<-done

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, count)
}

func TestHandlerPanicDoesNotStopOthers(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan error, 1)
	b.Subscribe(EventSearchFailed, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventSearchFailed, func(e DomainEvent) { done <- e.(SearchFailedEvent).Err })

	b.Publish(SearchFailedEvent{Query: "na", Err: errors.New("offline")})

	select {
	case err := <-done:
		require.EqualError(t, err, "offline")
	case <-time.After(2 * time.Second):
		t.Fatal("second handler did not run")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New(nil)
	b.Close()
	b.Close()
}

func TestCloseDeliversQueuedEvents(t *testing.T) {
	b := New(nil)

	var mu sync.Mutex
	var got []string
	release := make(chan struct{})
	b.Subscribe(EventThemeChanged, func(e DomainEvent) {
		<-release
		mu.Lock()
		got = append(got, string(e.(ThemeChangedEvent).Theme))
		mu.Unlock()
	})

	b.Publish(ThemeChangedEvent{Theme: domain.ThemeDark})
	b.Publish(ThemeChangedEvent{Theme: domain.ThemeLight})
	b.Publish(ThemeChangedEvent{Theme: domain.ThemeDark})
	close(release)
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"dark", "light", "dark"}, got)
}
