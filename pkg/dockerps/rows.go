package dockerps

import (
	"strings"
)

// Placeholder stands in for an empty ports field
const Placeholder = "-"

// Row is one container
type Row struct {
	Name   string `json:"name" yaml:"name"`
	Ports  string `json:"ports" yaml:"ports"`
	Status string `json:"status" yaml:"status"`
}

// ParseRows parses tab separated listing output, one row per non-empty
// line. Missing trailing fields are empty, except ports which become
// Placeholder.
func ParseRows(output string) []Row {
	var rows []Row
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		for len(fields) < 3 {
			fields = append(fields, "")
		}
		row := Row{
			Name:   strings.TrimSpace(fields[0]),
			Ports:  strings.TrimSpace(fields[1]),
			Status: strings.TrimSpace(fields[2]),
		}
		if row.Ports == "" {
			row.Ports = Placeholder
		}
		rows = append(rows, row)
	}
	return rows
}
