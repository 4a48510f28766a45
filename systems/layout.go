package systems

import (
	"log"

	"github.com/automoto/scrollfx/components"
	"github.com/automoto/scrollfx/motion"
)

// FlowPinner applies pin states to page nodes. Spacer changes push later sections down and ask
// the engine to re-resolve every link.
type FlowPinner struct {
	page   *components.PageData
	engine *motion.Engine
}

func NewFlowPinner() *FlowPinner {
	return &FlowPinner{}
}

// SetEngine connects the engine that is refreshed after a reflow.
func (f *FlowPinner) SetEngine(e *motion.Engine) { f.engine = e }

// Bind routes pins to page. A nil page drops pins until the next Bind.
func (f *FlowPinner) Bind(page *components.PageData) {
	f.page = page
	if page != nil {
		page.Relayout()
	}
}

func (f *FlowPinner) ApplyPin(el motion.Element, st motion.PinState) {
	n, ok := el.(*components.Node)
	if !ok {
		log.Printf("Warning: pin on unsupported element %T", el)
		return
	}
	spacerChanged := n.Pin.Spacer != st.Spacer
	n.Pin = st
	if !spacerChanged || f.page == nil {
		return
	}
	if f.page.Relayout() && f.engine != nil {
		f.engine.Refresh()
	}
}
