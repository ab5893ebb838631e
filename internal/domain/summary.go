package domain

// PayBreakdown is the regular/overtime split of a total hour count under a
// contract. Produced by the pay policy; never persisted.
type PayBreakdown struct {
	RegularHours float64
	ExtraHours   float64
	RegularPay   float64
	ExtraPay     float64
	TotalPay     float64
}

// Summary is the derived reporting snapshot computed from the current
// entries and contract. It is a pure function of its inputs, recomputed on
// every read; never persisted.
type Summary struct {
	TotalHours       float64
	RegularHours     float64
	ExtraHours       float64
	UniqueDaysWorked int
	RegularPay       float64
	ExtraPay         float64
	TotalPay         float64
}
