package config

import (
	"time"

	"github.com/appserver-io/confnode/model"
	"github.com/robfig/cron/v3"
)

// Schedule parses the cron expression of the job. Expressions take a
// leading seconds field; descriptors such as @daily are accepted.
func Schedule(j *model.JobNode) (cron.Schedule, error) {
	return cronParser.Parse(j.Schedule())
}

// NextRun returns the first activation of the job after t.
func NextRun(j *model.JobNode, t time.Time) (time.Time, error) {
	s, err := Schedule(j)
	if err != nil {
		return time.Time{}, err
	}
	return s.Next(t), nil
}
