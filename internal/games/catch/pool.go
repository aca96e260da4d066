package catch

// Pool owns the active falling entities in spawn order.
//
// Removal is deferred: the resolver schedules indices while it scans and
// Flush compacts the slice afterwards, so the scan never sees a shifted slice
// and an entity can only be removed once.
type Pool struct {
	entities []Entity
	marked   []bool
	pending  int
	nextID   uint64
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		entities: make([]Entity, 0, 32),
		marked:   make([]bool, 0, 32),
	}
}

// Add inserts an entity and assigns it a fresh ID.
func (p *Pool) Add(e Entity) uint64 {
	p.nextID++
	e.ID = p.nextID
	p.entities = append(p.entities, e)
	p.marked = append(p.marked, false)
	return e.ID
}

// Len returns the number of active entities, including ones scheduled for removal.
func (p *Pool) Len() int {
	return len(p.entities)
}

// At returns the entity at index i.
func (p *Pool) At(i int) Entity {
	return p.entities[i]
}

// Advance moves every entity down by FallSpeed*dt.
func (p *Pool) Advance(dt float64) {
	for i := range p.entities {
		p.entities[i].Y -= p.entities[i].FallSpeed * dt
	}
}

// Schedule marks index i for removal at the next Flush.
// It reports false if the index was already scheduled.
func (p *Pool) Schedule(i int) bool {
	if i < 0 || i >= len(p.marked) || p.marked[i] {
		return false
	}
	p.marked[i] = true
	p.pending++
	return true
}

// Scheduled reports whether index i is waiting for removal.
func (p *Pool) Scheduled(i int) bool {
	return p.marked[i]
}

// Flush removes every scheduled entity, keeping spawn order, and returns the count.
func (p *Pool) Flush() int {
	if p.pending == 0 {
		return 0
	}
	kept := p.entities[:0]
	for i, e := range p.entities {
		if !p.marked[i] {
			kept = append(kept, e)
		}
	}
	removed := p.pending
	p.entities = kept
	p.marked = p.marked[:len(kept)]
	clear(p.marked)
	p.pending = 0
	return removed
}

// Entities returns a copy of the active entities.
func (p *Pool) Entities() []Entity {
	out := make([]Entity, len(p.entities))
	copy(out, p.entities)
	return out
}

// Clear drops every entity. IDs keep increasing across clears.
func (p *Pool) Clear() {
	p.entities = p.entities[:0]
	p.marked = p.marked[:0]
	p.pending = 0
}
