package tetris

import "math/rand"

// PieceSource decides which kind spawns next.
type PieceSource interface {
	Next() Kind
}

// RandomSource picks kinds uniformly at random from a seeded generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly random kind.
func (s *RandomSource) Next() Kind {
	return Kinds[s.rng.Intn(len(Kinds))]
}

// QueueSource replays a fixed sequence of kinds and then yields I forever.
type QueueSource struct {
	queue []Kind
}

// NewQueueSource creates a source that returns kinds in order.
func NewQueueSource(kinds ...Kind) *QueueSource {
	return &QueueSource{queue: append([]Kind(nil), kinds...)}
}

// Push appends kinds to the end of the queue.
func (s *QueueSource) Push(kinds ...Kind) {
	s.queue = append(s.queue, kinds...)
}

// Next pops the front of the queue.
func (s *QueueSource) Next() Kind {
	if len(s.queue) == 0 {
		return KindI
	}
	k := s.queue[0]
	s.queue = s.queue[1:]
	return k
}
