package viewer

import (
	"time"

	"github.com/ytget/map-viewer/internal/model"
)

// Snapshot is the outcome of one fetch for one view state
type Snapshot struct {
	RequestID string
	State     model.ViewState
	Action    model.Action
	Layer     string
	ImagePath string // set only on success
	Err       error
	Duration  time.Duration
	FetchedAt time.Time
}

// OK reports whether the image was fetched and stored
func (s Snapshot) OK() bool {
	return s.Err == nil && s.ImagePath != ""
}
