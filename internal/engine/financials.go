package engine

// YearFinancials is one projection year's payroll, totalled per section.
type YearFinancials struct {
	Year     int // calendar year
	Lineup   int
	Rotation int
	Bullpen  int
	Total    int
}

// AggregateFinancials sums payroll per section and overall for every year
// of the grid.
func AggregateFinancials(grid *Grid) [ProjectionYears]YearFinancials {
	var financials [ProjectionYears]YearFinancials

	for y := 0; y < ProjectionYears; y++ {
		financials[y].Year = grid.BaseYear + y
	}

	for _, row := range grid.Rows {
		for y := 0; y < ProjectionYears; y++ {
			salary := row.Cells[y].Salary
			switch row.Section {
			case SectionLineup:
				financials[y].Lineup += salary
			case SectionRotation:
				financials[y].Rotation += salary
			case SectionBullpen:
				financials[y].Bullpen += salary
			}
			financials[y].Total += salary
		}
	}

	return financials
}
