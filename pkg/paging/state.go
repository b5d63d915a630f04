package paging

// State is the serializable position triple. It carries everything needed to
// reconstruct a controller's position across process or view restarts; there
// is no versioning beyond the three fields.
type State struct {
	PageCount int     `json:"pageCount" yaml:"pageCount"`
	Page      int     `json:"page"      yaml:"page"`
	Offset    float64 `json:"offset"    yaml:"offset"`
}

// Save captures the current position triple.
func (c *Controller) Save() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		PageCount: c.pageCount,
		Page:      c.page,
		Offset:    c.offset,
	}
}

// Restore replaces the position with a previously saved triple. The triple
// goes through the same validation as construction and the position is left
// untouched on failure.
func (c *Controller) Restore(s State) error {
	if err := validate(s.PageCount, s.Page, s.Offset); err != nil {
		return err
	}

	c.mu.Lock()
	c.pageCount = s.PageCount
	c.page = s.Page
	c.offset = s.Offset
	c.mu.Unlock()

	c.notify()

	return nil
}
