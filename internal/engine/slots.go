package engine

// Grid layout. Every team projects onto the same 21 rows.
var (
	lineupSlots   = []string{"C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "DH"}
	rotationSlots = []string{"SP1", "SP2", "SP3", "SP4", "SP5"}
	bullpenSlots  = []string{"CL", "SU1", "SU2", "MR1", "MR2", "MR3", "MR4"}
)

// topBullpenSlots are the late-inning roles that RP trade assets map onto.
var topBullpenSlots = map[string]bool{"CL": true, "SU1": true, "SU2": true}

// slotEligibility maps a lineup slot to the natural position codes that may
// fill it. Catchers only catch; shortstops cover the other infield spots;
// corner outfielders span the outfield by proximity. A nil entry (DH)
// accepts any position code.
var slotEligibility = map[string][]string{
	"C":  {"C"},
	"1B": {"1B", "3B"},
	"2B": {"2B", "SS"},
	"3B": {"3B", "SS"},
	"SS": {"SS"},
	"LF": {"LF", "CF", "RF", "OF"},
	"CF": {"CF", "OF"},
	"RF": {"RF", "CF", "LF", "OF"},
	"DH": nil,
}

// SlotSection returns the section a slot belongs to.
func SlotSection(slot string) Section {
	for _, s := range rotationSlots {
		if s == slot {
			return SectionRotation
		}
	}
	for _, s := range bullpenSlots {
		if s == slot {
			return SectionBullpen
		}
	}
	return SectionLineup
}

// SlotAccepts reports whether a player with the given natural position code
// may occupy the slot.
func SlotAccepts(slot, position string) bool {
	switch SlotSection(slot) {
	case SectionRotation:
		return position == "SP" || position == "P"
	case SectionBullpen:
		return position == "RP" || position == "SP" || position == "P"
	}
	allowed, ok := slotEligibility[slot]
	if !ok {
		return false
	}
	if allowed == nil { // DH takes anyone
		return true
	}
	for _, pos := range allowed {
		if pos == position {
			return true
		}
	}
	return false
}

// IsTopBullpenSlot reports whether a slot is one of the three late-inning
// bullpen roles.
func IsTopBullpenSlot(slot string) bool {
	return topBullpenSlots[slot]
}

// AllSlots returns the full layout in section order.
func AllSlots() []string {
	slots := make([]string, 0, len(lineupSlots)+len(rotationSlots)+len(bullpenSlots))
	slots = append(slots, lineupSlots...)
	slots = append(slots, rotationSlots...)
	slots = append(slots, bullpenSlots...)
	return slots
}
