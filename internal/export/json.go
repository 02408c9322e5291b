package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/sim"
	"github.com/san-kum/sortviz/internal/sorting"
)

type ExportData struct {
	Algorithm  string        `json:"algorithm"`
	Bars       int           `json:"bars"`
	Initial    []int         `json:"initial"`
	Final      []int         `json:"final"`
	Sorted     bool          `json:"sorted"`
	Frames     int           `json:"frames"`
	Stats      sorting.Stats `json:"stats"`
	ElapsedSec float64       `json:"elapsed_sec"`
}

func newExportData(res *sim.Result) ExportData {
	return ExportData{
		Algorithm:  res.Algorithm,
		Bars:       len(res.Initial),
		Initial:    res.Initial,
		Final:      res.Final,
		Sorted:     res.Sorted,
		Frames:     res.Frames,
		Stats:      res.Stats,
		ElapsedSec: res.Elapsed.Seconds(),
	}
}

// WriteJSON encodes the results as an indented JSON array.
func WriteJSON(w io.Writer, results ...*sim.Result) error {
	data := make([]ExportData, len(results))
	for i, res := range results {
		data[i] = newExportData(res)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, results ...*sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, results...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
