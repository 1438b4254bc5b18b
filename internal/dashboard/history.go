package dashboard

import (
	"slices"

	"github.com/julianstephens/campusbuddy/internal/constants"
	"github.com/julianstephens/campusbuddy/internal/models"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

// History is the capped, newest-first list of recent outputs.
type History struct {
	st *state
}

// Record prepends an output, keeping the 20 most recent. The returned error
// only reports a failed write; the entry stays in memory.
func (h *History) Record(typ constants.OutputType, title, preview, content string) (models.RecentOutput, error) {
	out := models.RecentOutput{
		ID:        h.st.newID(),
		Type:      typ,
		Title:     title,
		Timestamp: utils.Timestamp(h.st.now()),
		Preview:   preview,
		Content:   content,
	}

	prev := h.st.outputs.Get()
	if len(prev) > constants.MaxRecentOutputs-1 {
		prev = prev[:constants.MaxRecentOutputs-1]
	}
	next := make([]models.RecentOutput, 0, len(prev)+1)
	next = append(next, out)
	next = append(next, prev...)

	return out, h.st.outputs.Set(next)
}

// List returns the recent outputs, newest first.
func (h *History) List() []models.RecentOutput {
	return slices.Clone(h.st.outputs.Get())
}

// Recent returns at most n entries, newest first.
func (h *History) Recent(n int) []models.RecentOutput {
	all := h.st.outputs.Get()
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return slices.Clone(all)
}

func (h *History) Get(id string) (models.RecentOutput, bool) {
	for _, o := range h.st.outputs.Get() {
		if o.ID == id {
			return o, true
		}
	}
	return models.RecentOutput{}, false
}

// record wraps Record for views that attach the entry to an Output.
func record[T any](h *History, out *Output[T], typ constants.OutputType, title, preview, content string) {
	rec, err := h.Record(typ, title, preview, content)
	out.Record = &rec
	out.Warning = err
}
