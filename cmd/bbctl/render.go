package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bigbinarytech/institute/internal/app/models"
	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func activeLabel(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}

func renderCourses(w io.Writer, courses []*models.Course) {
	if len(courses) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No courses found")
		return
	}

	table := newTable(w, []string{"Title", "Slug", "Specialization", "Duration", "Price", "Active"})
	for _, c := range courses {
		table.Append([]string{
			c.Title,
			c.Slug,
			c.SpecializationName,
			c.Duration,
			strconv.FormatFloat(c.Price, 'f', 2, 64),
			activeLabel(c.IsActive),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%d course(s)\n", len(courses))
}

func renderMedia(w io.Writer, result *dto.MediaListResponse) {
	if len(result.Assets) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No media assets found")
		return
	}

	table := newTable(w, []string{"Key", "Name", "Section", "Type", "Size", "Active", "URL"})
	for _, a := range result.Assets {
		table.Append([]string{
			a.AssetKey,
			a.AssetName,
			a.Section,
			a.MimeType,
			humanSize(a.FileSize),
			activeLabel(a.IsActive),
			a.AssetURL,
		})
	}
	table.Render()
	p := result.Pagination
	fmt.Fprintf(w, "Page %d of %d, %d asset(s)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
