package dto

import "sort"

// Values of HealthReport.Status and of each entry in Checks.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthReport is the body of /health/live and /health/ready.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessReport folds check outcomes into a report. A nil error reads
// as HealthOK; any failure makes the whole report not ready.
func ToReadinessReport(results map[string]error) HealthReport {
	report := HealthReport{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			report.Checks[name] = err.Error()
			report.Status = HealthNotReady
			continue
		}
		report.Checks[name] = HealthOK
	}
	return report
}

// Failing lists the names of failed checks in sorted order.
func (h HealthReport) Failing() []string {
	var names []string
	for name, state := range h.Checks {
		if state != HealthOK {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
