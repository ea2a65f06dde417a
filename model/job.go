package model

// JobNode is a scheduled script execution.
type JobNode struct {
	node
	name     string
	schedule string
	execute  *ExecuteNode
}

func NewJobNode(name, schedule string, execute *ExecuteNode) *JobNode {
	return &JobNode{name: name, schedule: schedule, execute: execute}
}

func (n *JobNode) Name() string {
	return n.name
}

// Schedule returns the cron expression of the job.
func (n *JobNode) Schedule() string {
	return n.schedule
}

func (n *JobNode) Execute() *ExecuteNode {
	return n.execute
}
