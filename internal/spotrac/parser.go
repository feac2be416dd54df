package spotrac

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type SearchResult struct {
	Type          string // single, multiple, none
	PlayerResults []PlayerSearchResult
	ErrorMessage  string
}

type PlayerSearchResult struct {
	Name     string
	Team     string
	Position string
	URL      string
	ID       string
}

// ContractInfo is the subset of a Spotrac contract page the lookup command
// shows: headline terms plus the per-year payroll schedule.
type ContractInfo struct {
	PlayerName    string
	Team          string
	Status        string // Pre-Arbitration, Arbitration, etc.
	ContractTerms string
	AverageSalary string
	FreeAgent     string
	ContractYears []ContractYear
}

type ContractYear struct {
	Year   int
	Age    int
	Status string
	Salary int // dollars; 0 when the page shows no figure
}

// ParseSearchResults parses a Spotrac search page.
func ParseSearchResults(body io.Reader) (*SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var results []PlayerSearchResult
	listGroups := doc.Find("div.list-group")

	// The second list-group holds the actual results.
	if listGroups.Length() >= 2 {
		listGroups.Eq(1).Find("a.list-group-item").Each(func(i int, s *goquery.Selection) {
			href, exists := s.Attr("href")
			if !exists {
				return
			}

			name := strings.TrimSpace(s.Find("span.text-danger").Text())
			position := strings.TrimSpace(s.Find("span.badge").Text())

			team := ""
			fullText := strings.TrimSpace(s.Find("span").First().Text())
			if start := strings.LastIndex(fullText, "("); start != -1 {
				if end := strings.LastIndex(fullText, ")"); end > start {
					team = fullText[start+1 : end]
				}
			}

			results = append(results, PlayerSearchResult{
				Name:     name,
				Team:     team,
				Position: position,
				URL:      href,
				ID:       playerIDFromURL(href),
			})
		})
	}

	result := &SearchResult{PlayerResults: results}
	switch {
	case len(results) == 1:
		result.Type = "single"
	case len(results) > 1:
		result.Type = "multiple"
	default:
		result.Type = "none"
		result.ErrorMessage = "No players found"
	}
	return result, nil
}

// ParseContractInfo parses a player contract page.
func ParseContractInfo(body io.Reader) (*ContractInfo, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	info := &ContractInfo{}

	title := doc.Find("title").Text()
	if strings.Contains(title, "|") {
		info.PlayerName = strings.TrimSpace(strings.Split(title, "|")[0])
	}

	// The wrapper marked (CURRENT) carries the active deal.
	doc.Find("div.contract-wrapper").EachWithBreak(func(i int, wrapper *goquery.Selection) bool {
		headerText := wrapper.Find("h2").Text()
		if !strings.Contains(headerText, "(CURRENT)") {
			return true
		}

		switch {
		case strings.Contains(headerText, "Pre-Arbitration"):
			info.Status = "Pre-Arbitration"
		case strings.Contains(headerText, "Arbitration"):
			info.Status = "Arbitration"
		case strings.Contains(headerText, "Free Agent"):
			info.Status = "Free Agent"
		}

		wrapper.Find("div.contract-details div.cell").Each(func(j int, s *goquery.Selection) {
			label := strings.TrimSpace(s.Find("div.label").Text())
			value := strings.TrimSpace(s.Find("div.value").Text())
			switch label {
			case "Contract Terms:":
				info.ContractTerms = value
			case "Average Salary:":
				info.AverageSalary = value
			case "Free Agent:":
				info.FreeAgent = value
			}
		})
		return false
	})

	info.ContractYears = parseContractTable(doc)
	return info, nil
}

// parseContractTable finds the payroll table by its headers and extracts
// the per-year schedule.
func parseContractTable(doc *goquery.Document) []ContractYear {
	var years []ContractYear

	doc.Find("table").EachWithBreak(func(tableIdx int, table *goquery.Selection) bool {
		yearCol, ageCol, payrollCol := -1, -1, -1
		table.Find("thead th").Each(func(i int, s *goquery.Selection) {
			header := strings.ToLower(strings.TrimSpace(s.Text()))
			switch {
			case strings.Contains(header, "year") && yearCol == -1:
				yearCol = i
			case strings.Contains(header, "age") && ageCol == -1:
				ageCol = i
			case strings.Contains(header, "payroll") && payrollCol == -1:
				payrollCol = i
			}
		})

		if yearCol < 0 || payrollCol < 0 {
			return true // not the payroll table, keep looking
		}

		table.Find("tbody tr").Each(func(rowIdx int, row *goquery.Selection) {
			var year ContractYear
			row.Find("td").Each(func(cellIdx int, cell *goquery.Selection) {
				text := strings.TrimSpace(cell.Text())
				switch cellIdx {
				case yearCol:
					if v, err := strconv.Atoi(text); err == nil {
						year.Year = v
					}
				case ageCol:
					if v, err := strconv.Atoi(text); err == nil {
						year.Age = v
					}
				case payrollCol:
					if option := cell.Find("div.option"); option.Length() > 0 {
						year.Status = strings.TrimSpace(option.Text())
					} else {
						year.Salary = parseDollarAmount(text)
					}
				}
			})
			if year.Year > 0 {
				years = append(years, year)
			}
		})
		return false
	})

	return years
}

func playerIDFromURL(href string) string {
	parts := strings.Split(href, "/")
	for i, part := range parts {
		if part == "id" && i+1 < len(parts) {
			id := parts[i+1]
			if idx := strings.Index(id, "?"); idx != -1 {
				id = id[:idx]
			}
			return id
		}
	}
	return ""
}

func parseDollarAmount(s string) int {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	s = strings.ReplaceAll(s, ",", "")
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}
