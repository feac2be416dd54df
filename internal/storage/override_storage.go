package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pmurley/outlook-bot/internal/models"
)

const overrideFileName = "overrides.csv"

// OverrideStorage persists manual grid overrides. Overrides are the only
// planner state that outlives a run; everything else is rebuilt from the
// snapshot.
type OverrideStorage struct {
	mu       sync.RWMutex
	filePath string
}

// NewOverrideStorage creates the store, initializing the CSV file under
// dataDir if needed.
func NewOverrideStorage(dataDir string) (*OverrideStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, overrideFileName)
	store := &OverrideStorage{filePath: filePath}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := store.createFile(); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *OverrideStorage) createFile() error {
	file, err := os.Create(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to create override file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	headers := []string{"TeamID", "Slot", "Year", "PlayerID", "PlayerName", "Age", "Rating", "Salary", "ContractStatus", "SourceType", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	writer.Flush()

	return writer.Error()
}

// Add appends an override record. An existing record for the same
// team/slot/year is replaced.
func (s *OverrideStorage) Add(override models.Override) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	kept := records[:1] // header
	for _, record := range records[1:] {
		if len(record) >= 3 && record[0] == override.TeamID && record[1] == override.Slot && record[2] == strconv.Itoa(override.Year) {
			continue
		}
		kept = append(kept, record)
	}

	if override.CreatedAt.IsZero() {
		override.CreatedAt = time.Now()
	}
	kept = append(kept, []string{
		override.TeamID,
		override.Slot,
		strconv.Itoa(override.Year),
		override.PlayerID,
		override.PlayerName,
		strconv.Itoa(override.Age),
		strconv.FormatFloat(override.Rating, 'f', 1, 64),
		strconv.Itoa(override.Salary),
		override.ContractStatus,
		override.SourceType,
		override.CreatedAt.Format(time.RFC3339),
	})

	return s.writeAll(kept)
}

// Remove deletes the override pinned to a team/slot/year, if any.
func (s *OverrideStorage) Remove(teamID, slot string, year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readAll()
	if err != nil {
		return err
	}

	kept := records[:1]
	removed := false
	for _, record := range records[1:] {
		if len(record) >= 3 && record[0] == teamID && record[1] == slot && record[2] == strconv.Itoa(year) {
			removed = true
			continue
		}
		kept = append(kept, record)
	}

	if !removed {
		return fmt.Errorf("no override found for %s %s %d", teamID, slot, year)
	}
	return s.writeAll(kept)
}

// GetAll returns every stored override.
func (s *OverrideStorage) GetAll() ([]models.Override, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	var overrides []models.Override
	for i := 1; i < len(records); i++ {
		override, err := models.ParseOverrideRecord(records[i])
		if err != nil || override == nil {
			continue
		}
		overrides = append(overrides, *override)
	}
	return overrides, nil
}

func (s *OverrideStorage) readAll() ([][]string, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open override file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read override file: %w", err)
	}
	return records, nil
}

func (s *OverrideStorage) writeAll(records [][]string) error {
	file, err := os.Create(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to create override file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write override records: %w", err)
	}
	writer.Flush()

	return writer.Error()
}
