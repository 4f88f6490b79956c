package notify

import (
	"reflect"
	"testing"
)

func TestHub_PublishInRegistrationOrder(t *testing.T) {
	var h Hub[int]
	var got []string

	h.Subscribe(func(v int) { got = append(got, "a") })
	h.Subscribe(func(v int) { got = append(got, "b") })
	h.Subscribe(func(v int) { got = append(got, "c") })

	h.Publish(1)

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHub_Cancel(t *testing.T) {
	var h Hub[string]
	var calls int

	cancel := h.Subscribe(func(string) { calls++ })
	h.Publish("first")
	cancel()
	cancel()
	h.Publish("second")

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if n := len(h.snapshot()); n != 0 {
		t.Errorf("expected no subscribers, got %d", n)
	}
}

func TestHub_SubscriberMayUnsubscribeDuringPublish(t *testing.T) {
	var h Hub[int]
	var cancel func()
	var calls int

	cancel = h.Subscribe(func(int) {
		calls++
		cancel()
	})

	h.Publish(1)
	h.Publish(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	var h Hub[int]
	h.Publish(42)
}
