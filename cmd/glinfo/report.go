package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/gogpu/glproc"
	"github.com/olekukonko/tablewriter"
)

const (
	formatTable = "table"
	formatPlain = "plain"
	formatTOML  = "toml"
)

// report is the printable form of a preload run.
type report struct {
	Loader     string       `toml:"loader"`
	API        string       `toml:"api"`
	Version    string       `toml:"version"`
	Vendor     string       `toml:"vendor"`
	Renderer   string       `toml:"renderer"`
	DeviceType string       `toml:"device_type"`
	Extensions int          `toml:"extensions"`
	Resolved   int          `toml:"resolved"`
	Missing    int          `toml:"missing"`
	Commands   []commandRow `toml:"commands"`
}

type commandRow struct {
	Command string `toml:"command"`
	Symbol  string `toml:"symbol,omitempty"`
	Tag     string `toml:"tag,omitempty"`
	Error   string `toml:"error,omitempty"`
}

func newReport(loader string, rep *glproc.Report, missingOnly bool) *report {
	r := &report{Loader: loader}
	if c := rep.Capabilities; c != nil {
		r.API = c.API.String()
		r.Version = c.Version.String()
		r.Vendor = c.Adapter.Vendor
		r.Renderer = c.Adapter.Name
		r.DeviceType = c.Adapter.DeviceType.String()
		r.Extensions = c.NumExtensions()
	}
	for _, b := range rep.Bindings {
		if b.OK() {
			r.Resolved++
			if missingOnly {
				continue
			}
			r.Commands = append(r.Commands, commandRow{
				Command: b.Command.Name(),
				Symbol:  b.Symbol.Name,
				Tag:     b.Symbol.Tag.String(),
			})
			continue
		}
		r.Missing++
		r.Commands = append(r.Commands, commandRow{Command: b.Command.Name(), Error: b.Err.Error()})
	}
	return r
}

func (r *report) write(w io.Writer, format string, useColor bool) error {
	switch format {
	case formatTOML:
		return toml.NewEncoder(w).Encode(r)
	case formatPlain:
		return r.writePlain(w)
	default:
		return r.writeTable(w, useColor)
	}
}

func (r *report) summary(w io.Writer) {
	fmt.Fprintf(w, "loader:      %s\n", r.Loader)
	fmt.Fprintf(w, "context:     %s %s\n", r.API, r.Version)
	fmt.Fprintf(w, "vendor:      %s\n", r.Vendor)
	fmt.Fprintf(w, "renderer:    %s (%s)\n", r.Renderer, r.DeviceType)
	fmt.Fprintf(w, "extensions:  %d\n", r.Extensions)
	fmt.Fprintf(w, "commands:    %d resolved, %d missing\n", r.Resolved, r.Missing)
}

func (r *report) writePlain(w io.Writer) error {
	r.summary(w)
	for _, row := range r.Commands {
		if row.Error != "" {
			fmt.Fprintf(w, "%s\tmissing\n", row.Command)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Command, row.Symbol, row.Tag)
	}
	return nil
}

func (r *report) writeTable(w io.Writer, useColor bool) error {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	if useColor {
		ok.EnableColor()
		bad.EnableColor()
	} else {
		ok.DisableColor()
		bad.DisableColor()
	}

	r.summary(w)
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Command", "Symbol", "Tag"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, row := range r.Commands {
		if row.Error != "" {
			table.Append([]string{row.Command, bad.Sprint("missing"), ""})
			continue
		}
		table.Append([]string{row.Command, ok.Sprint(row.Symbol), row.Tag})
	}
	table.SetFooter([]string{"", strconv.Itoa(r.Resolved) + " resolved", strconv.Itoa(r.Missing) + " missing"})
	table.Render()
	return nil
}
