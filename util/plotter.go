package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"jewgo-server/hours"
	"jewgo-server/models/restaurant"
)

// PlotWeeklyHours generates an HTML file rendering a restaurant's weekly
// opening hours as a bar chart (opening and closing hour per day).
func PlotWeeklyHours(r restaurant.Restaurant) {
	sched := hours.ParseHours(r.HoursInput())
	if sched == nil {
		log.Printf("No parseable hours for restaurant %s, skipping plot", r.ID)
		return
	}

	days := make([]string, 0, len(hours.Weekdays))
	openData := make([]opts.BarData, 0, len(hours.Weekdays))
	closeData := make([]opts.BarData, 0, len(hours.Weekdays))
	for i, day := range hours.Weekdays {
		days = append(days, hours.WeekdayAbbrevs[i])
		if dh, ok := sched[day]; ok {
			openData = append(openData, opts.BarData{Value: float64(hours.TimeToMinutes(dh.Open)) / 60})
			closeData = append(closeData, opts.BarData{Value: float64(hours.TimeToMinutes(dh.Close)) / 60})
		} else {
			openData = append(openData, opts.BarData{Value: 0})
			closeData = append(closeData, opts.BarData{Value: 0})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Hours",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: r.Name + " weekly hours (hour of day)",
		}),
	)

	bar.SetXAxis(days).
		AddSeries("Opens", openData).
		AddSeries("Closes", closeData)

	out := fmt.Sprintf("weekly_hours_%s.html", r.ID)
	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Weekly hours chart generated: " + out)
}
