package domain

// Trip is one waypoint route session: the operator's working set of stops,
// the current interaction mode, the per-session pedido flags and the last
// computed route. Position 0 of Waypoints is the start; positions >=1 are
// stops in insertion order, which is the visit order.
type Trip struct {
	ID        string
	Seed      *LatLng
	Waypoints []LatLng
	Mode      AddMode

	// AddressAdded records which pedidos got an address during this
	// session. UI-session state only, never persisted.
	AddressAdded map[int64]bool

	Route *RouteResult

	// Computing guards against overlapping route computations;
	// Generation lets a computation that survived a clear be discarded.
	Computing  bool
	Generation uint64
}

// NewTrip seeds a trip with the optional initial coordinate.
func NewTrip(id string, seed *LatLng) *Trip {
	t := &Trip{
		ID:           id,
		Mode:         Idle(),
		AddressAdded: make(map[int64]bool),
	}
	if seed != nil {
		s := *seed
		t.Seed = &s
		t.Waypoints = []LatLng{s}
	}
	return t
}

// Append adds a waypoint at the end. Insertion order is delivery order;
// duplicates are allowed.
func (t *Trip) Append(p LatLng) {
	t.Waypoints = append(t.Waypoints, p)
}

// Reset replaces the waypoint sequence with just the seed (or empties it)
// and invalidates the computed route.
func (t *Trip) Reset() {
	if t.Seed != nil {
		t.Waypoints = []LatLng{*t.Seed}
	} else {
		t.Waypoints = nil
	}
	t.Route = nil
	t.Generation++
}

// Click applies one map click to the trip. Returns whether a waypoint was
// appended. Clicks while idle are no-ops; a scoped click additionally marks
// the pedido's address flag and drops back to idle.
func (t *Trip) Click(p LatLng) bool {
	switch t.Mode.Kind {
	case ModeManual:
		t.Append(p)
		return true
	case ModeScoped:
		t.Append(p)
		t.AddressAdded[t.Mode.PedidoID] = true
		t.Mode = Idle()
		return true
	default:
		return false
	}
}

// ToggleManual flips the manual add mode. Entering it replaces any scoped
// mode; there is a single global mode at a time.
func (t *Trip) ToggleManual() {
	if t.Mode.Kind == ModeManual {
		t.Mode = Idle()
	} else {
		t.Mode = ManualAdd()
	}
}

// EnterScoped puts the trip in single-shot add mode on behalf of a pedido.
func (t *Trip) EnterScoped(pedidoID int64) {
	t.Mode = ScopedAdd(pedidoID)
}

func (t *Trip) Clone() *Trip {
	out := *t
	if t.Seed != nil {
		s := *t.Seed
		out.Seed = &s
	}
	out.Waypoints = append([]LatLng(nil), t.Waypoints...)
	out.AddressAdded = make(map[int64]bool, len(t.AddressAdded))
	for k, v := range t.AddressAdded {
		out.AddressAdded[k] = v
	}
	out.Route = t.Route.Clone()
	return &out
}
