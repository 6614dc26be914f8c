package store

import (
	"context"

	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/storage"
)

// persistOp is one unit of background durability work: either a full-value
// snapshot write or a key removal.
type persistOp struct {
	payload string
	remove  bool
}

// persister owns the background durability work for one store key. Writes
// are full-value replacements, so the channel holds at most one pending op
// and a newer one simply displaces it (last-write-wins). Removals travel
// the same channel, which keeps them ordered behind any write the goroutine
// has already dequeued. Mutations never wait on the write.
type persister struct {
	kv      storage.KV
	key     string
	pending chan persistOp
	done    chan struct{}
	onError func(error)
}

func newPersister(kv storage.KV, key string, onError func(error)) *persister {
	p := &persister{
		kv:      kv,
		key:     key,
		pending: make(chan persistOp, 1),
		done:    make(chan struct{}),
		onError: onError,
	}
	go p.run()
	return p
}

// enqueue hands a serialized snapshot to the background writer without
// blocking. Only the store's single mutation path calls this.
func (p *persister) enqueue(payload string) {
	p.send(persistOp{payload: payload})
}

// enqueueRemove schedules deletion of the key. A pending snapshot is
// displaced; it would be erased immediately anyway.
func (p *persister) enqueueRemove() {
	p.send(persistOp{remove: true})
}

func (p *persister) send(op persistOp) {
	for {
		select {
		case p.pending <- op:
			return
		default:
			// Displace the stale pending op.
			select {
			case <-p.pending:
			default:
			}
		}
	}
}

func (p *persister) run() {
	defer close(p.done)
	for op := range p.pending {
		if op.remove {
			if err := p.kv.Remove(context.Background(), p.key); err != nil {
				logger.Error("Persistence remove failed", "key", p.key, "error", err)
				if p.onError != nil {
					p.onError(err)
				}
			}
			continue
		}
		if err := p.kv.Set(context.Background(), p.key, op.payload); err != nil {
			logger.Error("Persistence write failed", "key", p.key, "error", err)
			if p.onError != nil {
				p.onError(err)
			}
		}
	}
}

// close flushes the pending op, if any, before returning.
func (p *persister) close() {
	close(p.pending)
	<-p.done
}
