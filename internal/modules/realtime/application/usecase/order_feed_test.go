package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	orders "savoria/internal/modules/orders/domain"
	"savoria/internal/modules/realtime/domain"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []*domain.Message
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg *domain.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
}

func (b *recordingBroadcaster) all() []*domain.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*domain.Message{}, b.messages...)
}

type gatedFetcher struct {
	mu      sync.Mutex
	gates   []chan struct{}
	results []orders.List
	calls   int
}

func (f *gatedFetcher) FetchOrders(context.Context) (orders.List, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	gate := f.gates[idx]
	result := f.results[idx]
	f.mu.Unlock()
	<-gate
	return result, nil
}

func TestRefreshBroadcastsSnapshot(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	fetcher := &gatedFetcher{
		gates:   []chan struct{}{make(chan struct{})},
		results: []orders.List{{Items: []orders.Order{{ID: "ord-1"}}, Total: 1}},
	}
	close(fetcher.gates[0])

	uc := NewOrderFeedUseCase(fetcher, NewBroadcastUseCase(broadcaster))
	uc.Refresh(context.Background())

	messages := broadcaster.all()
	if len(messages) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(messages))
	}
	if messages[0].Topic != "orders.list" {
		t.Fatalf("expected orders.list topic, got %q", messages[0].Topic)
	}
	data, ok := messages[0].Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data type %T", messages[0].Data)
	}
	if data["total"] != 1 {
		t.Fatalf("expected total 1, got %v", data["total"])
	}
}

func TestRefreshBroadcastsInSequenceOrder(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	uc := NewOrderFeedUseCase(instantFetcher{}, NewBroadcastUseCase(broadcaster))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.Refresh(context.Background())
		}()
	}
	wg.Wait()

	// Every applied snapshot must leave strictly newer than the previous one;
	// an older snapshot broadcast after a newer one would regress the view.
	prev := uint64(0)
	for i, msg := range broadcaster.all() {
		data, ok := msg.Data.(map[string]any)
		if !ok {
			t.Fatalf("unexpected data type %T", msg.Data)
		}
		seq, ok := data["seq"].(uint64)
		if !ok {
			t.Fatalf("unexpected seq type %T", data["seq"])
		}
		if seq <= prev {
			t.Fatalf("broadcast %d regressed: seq %d after %d", i, seq, prev)
		}
		prev = seq
	}
}

type instantFetcher struct{}

func (instantFetcher) FetchOrders(context.Context) (orders.List, error) {
	return orders.List{}, nil
}

func TestRefreshDiscardsStaleResponse(t *testing.T) {
	broadcaster := &recordingBroadcaster{}
	fetcher := &gatedFetcher{
		gates: []chan struct{}{make(chan struct{}), make(chan struct{})},
		results: []orders.List{
			{Items: []orders.Order{{ID: "stale"}}, Total: 1},
			{Items: []orders.Order{{ID: "fresh"}}, Total: 1},
		},
	}

	uc := NewOrderFeedUseCase(fetcher, NewBroadcastUseCase(broadcaster))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		uc.Refresh(context.Background())
	}()
	// Wait until the first fetch is in flight so the second gets a newer seq.
	for {
		fetcher.mu.Lock()
		started := fetcher.calls == 1
		fetcher.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}
	go func() {
		defer wg.Done()
		uc.Refresh(context.Background())
	}()

	// Release the newer fetch first, then the stale one.
	for {
		fetcher.mu.Lock()
		both := fetcher.calls == 2
		fetcher.mu.Unlock()
		if both {
			break
		}
		time.Sleep(time.Millisecond)
	}
	close(fetcher.gates[1])
	time.Sleep(10 * time.Millisecond)
	close(fetcher.gates[0])
	wg.Wait()

	messages := broadcaster.all()
	if len(messages) != 1 {
		t.Fatalf("expected only the fresh snapshot, got %d broadcasts", len(messages))
	}
	data := messages[0].Data.(map[string]any)
	items := data["items"].([]orders.Order)
	if items[0].ID != "fresh" {
		t.Fatalf("expected fresh snapshot applied, got %q", items[0].ID)
	}
}
