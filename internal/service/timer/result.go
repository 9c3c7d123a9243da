package timer

import (
	"time"

	"github.com/heartmarshall/focuslog-backend/internal/domain"
)

// ActiveSession is the running session with its elapsed time derived at read.
type ActiveSession struct {
	Session    *domain.Session
	Elapsed    time.Duration
	ElapsedMin int
}

// ListResult is one page of sessions plus the total matching count.
type ListResult struct {
	Sessions []*domain.Session
	Total    int
}
