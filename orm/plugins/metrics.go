package plugins

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/clawpad/clawpad/metrics"
)

const startTimeKey = "metrics:start_time"

var tableFromSQL = regexp.MustCompile(`(?i)(?:FROM|INTO|UPDATE)\s+["\x60]?(\w+)["\x60]?`)

// MetricsPlugin is a GORM plugin that tracks database query metrics
type MetricsPlugin struct{}

func NewMetricsPlugin() *MetricsPlugin {
	return &MetricsPlugin{}
}

func (p *MetricsPlugin) Name() string {
	return "MetricsPlugin"
}

func (p *MetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	registrations := []func() error{
		func() error { return cb.Query().Before("*").Register("metrics:before_query", p.before) },
		func() error { return cb.Query().After("*").Register("metrics:after_query", p.after) },
		func() error { return cb.Row().Before("*").Register("metrics:before_row", p.before) },
		func() error { return cb.Row().After("*").Register("metrics:after_row", p.after) },
		func() error { return cb.Raw().Before("*").Register("metrics:before_raw", p.before) },
		func() error { return cb.Raw().After("*").Register("metrics:after_raw", p.after) },
		func() error { return cb.Create().Before("*").Register("metrics:before_create", p.before) },
		func() error { return cb.Create().After("*").Register("metrics:after_create", p.after) },
		func() error { return cb.Update().Before("*").Register("metrics:before_update", p.before) },
		func() error { return cb.Update().After("*").Register("metrics:after_update", p.after) },
		func() error { return cb.Delete().Before("*").Register("metrics:before_delete", p.before) },
		func() error { return cb.Delete().After("*").Register("metrics:after_delete", p.after) },
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}

func (p *MetricsPlugin) before(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func (p *MetricsPlugin) after(db *gorm.DB) {
	value, ok := db.InstanceGet(startTimeKey)
	if !ok {
		return
	}
	start, ok := value.(time.Time)
	if !ok {
		return
	}

	operation := getOperationType(db)
	status := "success"
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		status = "error"
	}

	metrics.DBQueriesTotal().WithLabelValues(operation, status).Inc()
	metrics.DBQueryDuration().WithLabelValues(operation, getTableName(db)).Observe(time.Since(start).Seconds())

	if operation != "SELECT" && db.RowsAffected >= 0 {
		metrics.DBRowsAffected().WithLabelValues(operation).Observe(float64(db.RowsAffected))
	}
}

// getOperationType returns the leading SQL keyword of the statement
func getOperationType(db *gorm.DB) string {
	if db.Statement == nil {
		return "UNKNOWN"
	}
	sql := strings.TrimSpace(db.Statement.SQL.String())
	if sql == "" {
		return "UNKNOWN"
	}

	keyword := strings.ToUpper(strings.SplitN(sql, " ", 2)[0])
	switch keyword {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "CREATE", "ALTER", "DROP":
		return keyword
	case "WITH":
		return "SELECT"
	default:
		return "OTHER"
	}
}

func getTableName(db *gorm.DB) string {
	if db.Statement == nil {
		return "unknown"
	}
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if matches := tableFromSQL.FindStringSubmatch(db.Statement.SQL.String()); len(matches) > 1 {
		return matches[1]
	}
	return "unknown"
}
