package repository

import (
	"context"
	"fmt"

	"github.com/phanduy2004/english-for-community/internal/database"
)

type TimelineDataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// skillStatColumns maps chart metric keys to their {total,count} column
// pairs. Averages are computed in SQL as total/count so they always reflect
// the running sums.
var skillStatColumns = map[string][2]string{
	"reading_accuracy":   {"reading_accuracy_total", "reading_accuracy_count"},
	"reading_wpm":        {"reading_wpm_total", "reading_wpm_count"},
	"dictation_accuracy": {"dictation_accuracy_total", "dictation_accuracy_count"},
	"speaking_score":     {"speaking_score_total", "speaking_score_count"},
	"writing_score":      {"writing_score_total", "writing_score_count"},
}

// ValidChartMetric reports whether key names a charted statistic.
func ValidChartMetric(key string) bool {
	_, ok := skillStatColumns[key]
	return key == "study_seconds" || ok
}

// GetStudyTimeline returns daily study seconds between two date keys.
func GetStudyTimeline(ctx context.Context, userID uint, fromDate, toDate string) ([]TimelineDataPoint, error) {
	var data []TimelineDataPoint
	err := database.DB.WithContext(ctx).Raw(`
		SELECT date, study_seconds AS value
		FROM user_daily_progresses
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date;
	`, userID, fromDate, toDate).Scan(&data).Error
	return data, err
}

// GetSkillTimeline returns the daily average for one per-skill statistic.
// Days without samples are omitted rather than charted as zero.
func GetSkillTimeline(ctx context.Context, userID uint, metricKey, fromDate, toDate string) ([]TimelineDataPoint, error) {
	columns, ok := skillStatColumns[metricKey]
	if !ok {
		return nil, fmt.Errorf("unknown chart metric %q", metricKey)
	}

	var data []TimelineDataPoint
	query := fmt.Sprintf(`
		SELECT date, %s / %s AS value
		FROM user_daily_progresses
		WHERE user_id = ? AND date >= ? AND date <= ? AND %s > 0
		ORDER BY date;
	`, columns[0], columns[1], columns[1])

	err := database.DB.WithContext(ctx).Raw(query, userID, fromDate, toDate).Scan(&data).Error
	return data, err
}
