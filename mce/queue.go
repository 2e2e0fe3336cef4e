// This file implements the candidate queue handed to the prevalence
// miner: a priority queue over the distinct signatures of the result map.
package mce

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// CandidateQueue orders candidate signatures for sequential consumption by
// the miner. The ordering comparator is injectable; the default dequeues
// larger patterns first (see DefaultSignatureLess).
type CandidateQueue struct {
	pq *priorityqueue.Queue
}

// NewCandidateQueue returns an empty queue ordered by less.
func NewCandidateQueue(less SignatureLess) *CandidateQueue {
	return &CandidateQueue{
		pq: priorityqueue.NewWith(func(a, b interface{}) int {
			sa, sb := a.(Signature), b.(Signature)
			switch {
			case less(sa, sb):
				return -1
			case less(sb, sa):
				return 1
			default:
				return 0
			}
		}),
	}
}

// ExtractCandidates pushes every distinct signature of the result map into
// a fresh CandidateQueue. Queue order follows Options.QueueLess
// (DefaultSignatureLess unless WithQueueComparator overrides it).
// Complexity: O(S log S) for S distinct signatures.
func ExtractCandidates(res *Result, opts ...Option) *CandidateQueue {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	q := NewCandidateQueue(cfg.QueueLess)
	if res == nil {
		return q
	}
	for _, sig := range res.Signatures() {
		q.Push(sig)
	}

	return q
}

// Push enqueues a signature.
func (q *CandidateQueue) Push(sig Signature) { q.pq.Enqueue(sig) }

// Pop dequeues the highest-priority signature; ok is false on an empty
// queue.
func (q *CandidateQueue) Pop() (Signature, bool) {
	v, ok := q.pq.Dequeue()
	if !ok {
		return nil, false
	}

	return v.(Signature), true
}

// Len reports the number of queued signatures.
func (q *CandidateQueue) Len() int { return q.pq.Size() }

// Empty reports whether the queue holds no signatures.
func (q *CandidateQueue) Empty() bool { return q.pq.Empty() }
