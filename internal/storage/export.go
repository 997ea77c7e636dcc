package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/controlbox/internal/sim"
)

type ExportData struct {
	Element    string             `json:"element"`
	Signal     string             `json:"signal"`
	Controller string             `json:"controller"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Inputs     []float64          `json:"inputs"`
	Outputs    []float64          `json:"outputs"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes the full run, metadata included, as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		Element:    meta.Element,
		Signal:     meta.Signal,
		Controller: meta.Controller,
		Dt:         meta.Dt,
		Duration:   meta.Duration,
		Steps:      len(result.Times),
		Times:      result.Times,
		Inputs:     result.Inputs,
		Outputs:    result.Outputs,
		Metrics:    result.Metrics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the sample traces as t,u,y rows with a header.
func ExportCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"t", "u", "y"}); err != nil {
		return err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'g', -1, 64),
			strconv.FormatFloat(result.Inputs[i], 'g', -1, 64),
			strconv.FormatFloat(result.Outputs[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
