package session

import "github.com/actuallystonmai/nutriguide-service/internal/domain"

// DefaultPageSize is the number of recommendations shown per page.
const DefaultPageSize = 4

type State int

const (
	StateEmpty State = iota
	StateActive
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Paginator serves a recommendation result in fixed-size pages, wrapping back
// to the first page once the end is reached. It is not safe for concurrent use;
// Session guards it.
type Paginator struct {
	result   []domain.Recommendation
	offset   int
	pageSize int
	state    State
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize}
}

// SetResult replaces the result and rewinds to the first page.
func (p *Paginator) SetResult(result []domain.Recommendation) {
	p.result = result
	p.offset = 0
	p.state = StateActive
}

// NextPage advances by one page, wrapping to 0 when the next offset would run
// past the result. It is a no-op while there is nothing to page.
func (p *Paginator) NextPage() {
	if p.state != StateActive || len(p.result) == 0 {
		return
	}
	next := p.offset + p.pageSize
	if next < len(p.result) {
		p.offset = next
	} else {
		p.offset = 0
	}
}

// CurrentPage returns the slice to render now. The tail page may be short.
func (p *Paginator) CurrentPage() []domain.Recommendation {
	if p.state != StateActive || len(p.result) == 0 {
		return []domain.Recommendation{}
	}
	end := min(p.offset+p.pageSize, len(p.result))
	page := make([]domain.Recommendation, end-p.offset)
	copy(page, p.result[p.offset:end])
	return page
}

func (p *Paginator) Offset() int {
	return p.offset
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

func (p *Paginator) Len() int {
	return len(p.result)
}

func (p *Paginator) State() State {
	return p.state
}
