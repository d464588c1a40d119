package domain

// AddModeKind distinguishes how point-adding was entered.
type AddModeKind string

const (
	// ModeIdle - map clicks are no-ops.
	ModeIdle AddModeKind = "idle"
	// ModeManual - entered via the toggle button; stays on across clicks.
	ModeManual AddModeKind = "manual"
	// ModeScoped - entered on behalf of a pedido; single-shot, the next
	// click records the address and drops back to idle.
	ModeScoped AddModeKind = "scoped"
)

// AddMode is the interaction state of a trip. The original UI folded this
// into two flags (a global "adding points" boolean plus a pedido id); the
// tagged variant makes the two lifetimes explicit.
type AddMode struct {
	Kind     AddModeKind `json:"kind"`
	PedidoID int64       `json:"pedido_id,omitempty"`
}

func Idle() AddMode {
	return AddMode{Kind: ModeIdle}
}

func ManualAdd() AddMode {
	return AddMode{Kind: ModeManual}
}

func ScopedAdd(pedidoID int64) AddMode {
	return AddMode{Kind: ModeScoped, PedidoID: pedidoID}
}

// Adding reports whether a map click should append a waypoint.
func (m AddMode) Adding() bool {
	return m.Kind == ModeManual || m.Kind == ModeScoped
}
