package engine

// ProjectionYears is the planning horizon. Offset 0 is the current season.
const ProjectionYears = 6

// Section groups grid rows into the three roster areas.
type Section int

const (
	SectionLineup Section = iota
	SectionRotation
	SectionBullpen
)

func (s Section) String() string {
	switch s {
	case SectionLineup:
		return "Lineup"
	case SectionRotation:
		return "Rotation"
	case SectionBullpen:
		return "Bullpen"
	}
	return "Unknown"
}

// ContractStatus describes how a grid cell is covered.
type ContractStatus string

const (
	StatusUnderContract ContractStatus = "under-contract"
	StatusFinalYear     ContractStatus = "final-year"
	StatusArbEligible   ContractStatus = "arb-eligible"
	StatusEmpty         ContractStatus = "empty"
	StatusProspect      ContractStatus = "prospect"
)

// Indicator is a per-cell risk or opportunity tag.
type Indicator string

const (
	IndicatorFA        Indicator = "FA"
	IndicatorCliff     Indicator = "CLIFF"
	IndicatorExtension Indicator = "EXT"
	IndicatorExpensive Indicator = "EXPENSIVE"
	IndicatorTradeBait Indicator = "TR"
	IndicatorUpgrade   Indicator = "UPGRADE"
	IndicatorTrade     Indicator = "TRADE"
	IndicatorFATarget  Indicator = "FA_TARGET"
)

// GridCell is one slot-year of the projection grid.
type GridCell struct {
	PlayerID   string
	Name       string
	Age        int
	Rating     float64
	Salary     int
	Status     ContractStatus
	Prospect   bool
	MinSalary  bool
	Overridden bool
	Source     string // override source type, when Overridden
	Indicators []Indicator
}

// Empty reports whether the cell has no occupant.
func (c *GridCell) Empty() bool {
	return c.Status == StatusEmpty
}

// HasIndicator reports whether the cell carries a tag.
func (c *GridCell) HasIndicator(ind Indicator) bool {
	for _, i := range c.Indicators {
		if i == ind {
			return true
		}
	}
	return false
}

func (c *GridCell) addIndicator(ind Indicator) {
	if !c.HasIndicator(ind) {
		c.Indicators = append(c.Indicators, ind)
	}
}

// GridRow is one roster slot across the full horizon. The year range is
// contiguous and bounded, so cells live in a dense array indexed by offset.
type GridRow struct {
	Slot    string
	Section Section
	Cells   [ProjectionYears]GridCell
}

// Grid is the finished projection for one team: rows by slot, columns by
// year offset. It is rebuilt from scratch every planning run.
type Grid struct {
	TeamID   string
	BaseYear int // calendar year of offset 0
	Rows     []*GridRow
}

// Row returns the row for a slot, or nil.
func (g *Grid) Row(slot string) *GridRow {
	for _, r := range g.Rows {
		if r.Slot == slot {
			return r
		}
	}
	return nil
}

// SectionRows returns the rows belonging to one section, in layout order.
func (g *Grid) SectionRows(section Section) []*GridRow {
	var rows []*GridRow
	for _, r := range g.Rows {
		if r.Section == section {
			rows = append(rows, r)
		}
	}
	return rows
}
