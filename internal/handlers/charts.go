package handlers

import (
	"net/http"
	"time"

	"github.com/phanduy2004/english-for-community/internal/progress"
	"github.com/phanduy2004/english-for-community/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"
)

var chartMetricLabels = map[string]string{
	"study_seconds":      "Study Time (seconds)",
	"reading_accuracy":   "Reading Accuracy",
	"reading_wpm":        "Reading Speed (WPM)",
	"dictation_accuracy": "Dictation Accuracy",
	"speaking_score":     "Speaking Score",
	"writing_score":      "Writing Score",
}

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

// GetTimeline renders one metric's daily values as a self-contained echarts
// page. Defaults to the last 30 days of study time.
func (h *ChartsHandler) GetTimeline(c *gin.Context) {
	user := currentUser(c)

	metric := c.DefaultQuery("metric", "study_seconds")
	if !repository.ValidChartMetric(metric) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown chart metric"})
		return
	}

	now := time.Now()
	to := c.DefaultQuery("to", progress.LocalDateKey(now, user.Timezone))
	from := c.DefaultQuery("from", progress.LocalDateKey(now.AddDate(0, 0, -29), user.Timezone))

	var (
		data []repository.TimelineDataPoint
		err  error
	)
	if metric == "study_seconds" {
		data, err = repository.GetStudyTimeline(c.Request.Context(), user.ID, from, to)
	} else {
		data, err = repository.GetSkillTimeline(c.Request.Context(), user.ID, metric, from, to)
	}
	if err != nil {
		h.log.Error("Failed to load chart data",
			zap.Uint("userID", user.ID), zap.String("metric", metric), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chart data"})
		return
	}

	line := buildTimelineChart(data, chartMetricLabels[metric])
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := line.Render(c.Writer); err != nil {
		h.log.Error("Failed to render chart", zap.Error(err))
	}
}

func buildTimelineChart(data []repository.TimelineDataPoint, metricLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Progress Over Time",
			Subtitle: metricLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}

	line.AddSeries(metricLabel, items).
		SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
