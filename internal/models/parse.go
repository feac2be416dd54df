package models

import (
	"strconv"
	"strings"
	"time"
)

// Row parsers for the league sheet exports. Incomplete or malformed rows
// come back as nil with no error; the loaders skip them and move on.

// ParseRosterRow parses one power-ranking row:
// team, slot, playerId, name, age, rating.
func ParseRosterRow(row []string) (*RosterEntry, string, error) {
	if len(row) < 6 {
		return nil, "", nil
	}
	team := strings.TrimSpace(row[0])
	slot := strings.TrimSpace(row[1])
	if team == "" || slot == "" {
		return nil, "", nil
	}

	entry := &RosterEntry{
		Slot:     slot,
		PlayerID: strings.TrimSpace(row[2]),
		Name:     strings.TrimSpace(row[3]),
	}
	if age, err := strconv.Atoi(strings.TrimSpace(row[4])); err == nil {
		entry.Age = age
	}
	if rating, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64); err == nil {
		entry.Rating = rating
	}
	return entry, team, nil
}

// ParseContractRow parses one contract row:
// playerId, teamId, years, currentYear, clubOption, noTrade, salary1..salaryN.
func ParseContractRow(row []string) (*Contract, error) {
	if len(row) < 7 {
		return nil, nil
	}
	playerID := strings.TrimSpace(row[0])
	if playerID == "" {
		return nil, nil
	}

	c := &Contract{
		PlayerID: playerID,
		TeamID:   strings.TrimSpace(row[1]),
	}
	if years, err := strconv.Atoi(strings.TrimSpace(row[2])); err == nil {
		c.Years = years
	}
	if current, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil {
		c.CurrentYear = current
	}
	c.ClubOption = parseBool(row[4])
	c.NoTrade = parseBool(row[5])

	for i := 6; i < len(row); i++ {
		value := strings.TrimSpace(row[i])
		if value == "" {
			break
		}
		c.Salaries = append(c.Salaries, parseDollars(value))
	}

	if c.Years == 0 || c.CurrentYear == 0 || c.CurrentYear > c.Years {
		return nil, nil
	}
	return c, nil
}

// ParseProspectRow parses one prospect pool row:
// playerId, name, teamId, position, age, level, ceiling, current, stamina.
func ParseProspectRow(row []string) (*Prospect, error) {
	if len(row) < 8 {
		return nil, nil
	}
	playerID := strings.TrimSpace(row[0])
	name := strings.TrimSpace(row[1])
	if playerID == "" || name == "" {
		return nil, nil
	}

	p := &Prospect{
		PlayerID: playerID,
		Name:     name,
		TeamID:   strings.TrimSpace(row[2]),
		Position: strings.ToUpper(strings.TrimSpace(row[3])),
		Level:    strings.TrimSpace(row[5]),
	}
	if age, err := strconv.Atoi(strings.TrimSpace(row[4])); err == nil {
		p.Age = age
	}
	if ceiling, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64); err == nil {
		p.Ceiling = ceiling
	}
	if current, err := strconv.ParseFloat(strings.TrimSpace(row[7]), 64); err == nil {
		p.Current = current
	}
	if len(row) > 8 {
		if stamina, err := strconv.Atoi(strings.TrimSpace(row[8])); err == nil {
			p.Stamina = stamina
		}
	}
	return p, nil
}

// ParseServiceRow parses one service-time row: playerId, serviceYears.
func ParseServiceRow(row []string) (string, int, bool) {
	if len(row) < 2 {
		return "", 0, false
	}
	playerID := strings.TrimSpace(row[0])
	years, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if playerID == "" || err != nil {
		return "", 0, false
	}
	return playerID, years, true
}

// ParseRatingRow parses one projection row: playerId, ceiling, devOverride.
func ParseRatingRow(row []string) (*PlayerRating, error) {
	if len(row) < 2 {
		return nil, nil
	}
	playerID := strings.TrimSpace(row[0])
	if playerID == "" {
		return nil, nil
	}

	r := &PlayerRating{PlayerID: playerID}
	if ceiling, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err == nil {
		r.Ceiling = ceiling
	}
	if len(row) > 2 {
		r.DevOverride = parseBool(row[2])
	}
	return r, nil
}

// ParseOverrideRecord parses one stored override row in the order the
// override store writes them.
func ParseOverrideRecord(record []string) (*Override, error) {
	if len(record) < 11 {
		return nil, nil
	}

	o := &Override{
		TeamID:         record[0],
		Slot:           record[1],
		PlayerID:       record[3],
		PlayerName:     record[4],
		ContractStatus: record[8],
		SourceType:     record[9],
	}
	if year, err := strconv.Atoi(record[2]); err == nil {
		o.Year = year
	}
	if age, err := strconv.Atoi(record[5]); err == nil {
		o.Age = age
	}
	if rating, err := strconv.ParseFloat(record[6], 64); err == nil {
		o.Rating = rating
	}
	if salary, err := strconv.Atoi(record[7]); err == nil {
		o.Salary = salary
	}
	if created, err := time.Parse(time.RFC3339, record[10]); err == nil {
		o.CreatedAt = created
	}
	if o.TeamID == "" || o.Slot == "" || o.Year == 0 {
		return nil, nil
	}
	return o, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// parseDollars parses "$12,500,000" or a plain integer into dollars.
func parseDollars(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
