package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// printer renders results as an ASCII table or as indented JSON.
type printer struct {
	w    io.Writer
	json bool
}

// placemarks prints rows as a table, or v as JSON.
func (p printer) placemarks(rows []domain.Placemark, v any) error {
	if p.json {
		return p.encode(v)
	}
	table := p.table("#", "Accuracy", "Address", "Lng", "Lat", "Country", "Locality", "Postal code", "Street")
	for i, pm := range rows {
		table.Append([]string{
			strconv.Itoa(i + 1),
			optInt(pm.Accuracy),
			optString(pm.Address),
			optFloat(pm.Coordinates.Lng),
			optFloat(pm.Coordinates.Lat),
			optString(pm.Details.CountryCode),
			optString(pm.Details.LocalityName),
			optString(pm.Details.PostalCode),
			optString(pm.Details.Street),
		})
	}
	table.Render()
	return nil
}

func (p printer) lngLat(ll domain.LngLat) error {
	if p.json {
		return p.encode(ll)
	}
	table := p.table("Lng", "Lat", "Accuracy")
	table.Append([]string{optFloat(ll.Lng), optFloat(ll.Lat), optInt(ll.Accuracy)})
	table.Render()
	return nil
}

func (p printer) accuracy(level int, description string) error {
	if p.json {
		return p.encode(map[string]any{"level": level, "description": description})
	}
	table := p.table("Level", "Description")
	table.Append([]string{strconv.Itoa(level), description})
	table.Render()
	return nil
}

func (p printer) table(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func (p printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func optString(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func optInt(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}

func optFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
