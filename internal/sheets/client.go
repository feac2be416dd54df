package sheets

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pmurley/outlook-bot/internal/models"
)

// Client fetches league data from public Google Sheets using CSV export.
type Client struct {
	spreadsheetID string
	httpClient    *http.Client
}

func NewClient(spreadsheetID string) (*Client, error) {
	return &Client{
		spreadsheetID: spreadsheetID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Sheet GIDs
const (
	RostersGID   = "633435137"
	ContractsGID = "286507798"
	HittersGID   = "396888711"
	PitchersGID  = "1669990835"
	ServiceGID   = "36423663"
	RatingsGID   = "1204587343"
)

// LoadSnapshot fetches every input the planner needs. The independent
// sheets download concurrently; the snapshot is only assembled once all of
// them have resolved.
func (c *Client) LoadSnapshot(season int) (*models.LeagueSnapshot, error) {
	snap := &models.LeagueSnapshot{
		Season:       season,
		Rosters:      make(map[string]models.TeamRoster),
		Contracts:    make(map[string]models.Contract),
		Ratings:      make(map[string]models.PlayerRating),
		ServiceYears: make(map[string]int),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	fetch := func(gid string, apply func([][]string)) {
		defer wg.Done()
		data, err := c.GetSheetDataCSV(gid)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		apply(data)
	}

	wg.Add(6)
	go fetch(RostersGID, func(data [][]string) { c.applyRosters(snap, data) })
	go fetch(ContractsGID, func(data [][]string) { c.applyContracts(snap, data) })
	go fetch(HittersGID, func(data [][]string) { snap.Hitters = parseProspects(data) })
	go fetch(PitchersGID, func(data [][]string) { snap.Pitchers = parseProspects(data) })
	go fetch(ServiceGID, func(data [][]string) { c.applyServiceYears(snap, data) })
	go fetch(RatingsGID, func(data [][]string) { c.applyRatings(snap, data) })
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("failed to load league snapshot: %w", firstErr)
	}
	return snap, nil
}

func (c *Client) applyRosters(snap *models.LeagueSnapshot, data [][]string) {
	for i := 1; i < len(data); i++ {
		entry, team, err := models.ParseRosterRow(data[i])
		if err != nil || entry == nil {
			continue
		}
		roster := snap.Rosters[team]
		roster.TeamID = team
		roster.Entries = append(roster.Entries, *entry)
		snap.Rosters[team] = roster
	}
}

func (c *Client) applyContracts(snap *models.LeagueSnapshot, data [][]string) {
	for i := 1; i < len(data); i++ {
		contract, err := models.ParseContractRow(data[i])
		if err != nil || contract == nil {
			continue
		}
		snap.Contracts[contract.PlayerID] = *contract
	}
}

func (c *Client) applyServiceYears(snap *models.LeagueSnapshot, data [][]string) {
	for i := 1; i < len(data); i++ {
		playerID, years, ok := models.ParseServiceRow(data[i])
		if !ok {
			continue
		}
		snap.ServiceYears[playerID] = years
	}
}

func (c *Client) applyRatings(snap *models.LeagueSnapshot, data [][]string) {
	for i := 1; i < len(data); i++ {
		rating, err := models.ParseRatingRow(data[i])
		if err != nil || rating == nil {
			continue
		}
		snap.Ratings[rating.PlayerID] = *rating
	}
}

func parseProspects(data [][]string) models.ProspectPool {
	var pool models.ProspectPool
	for i := 1; i < len(data); i++ {
		prospect, err := models.ParseProspectRow(data[i])
		if err != nil || prospect == nil {
			continue
		}
		pool = append(pool, *prospect)
	}
	return pool
}

// GetSheetDataCSV fetches data from a specific sheet tab as CSV.
func (c *Client) GetSheetDataCSV(gid string) ([][]string, error) {
	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", c.spreadsheetID, gid)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	var data [][]string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		data = append(data, record)
	}

	return data, nil
}
